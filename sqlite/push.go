package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/lib/array"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/Mushus/retweet/sqlite/ent/pushsubscription"
)

type PushSubscriptionDB struct {
	*SQLite
}

func NewPushSubscriptionDB(db *SQLite) retweet.PushSubscriptionStore {
	return &PushSubscriptionDB{SQLite: db}
}

// Save upserts on the endpoint, so re-subscribing from the same browser
// refreshes the keys instead of duplicating the row.
func (d *PushSubscriptionDB) Save(c context.Context, sub *retweet.PushSubscription) error {
	err := d.cli.PushSubscription.Create().
		SetID(sub.Endpoint).
		SetAccountID(sub.AccountID).
		SetP256dh(sub.P256dh).
		SetAuth(sub.Auth).
		OnConflict().
		UpdateNewValues().
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to save subscription: %w", errors.WithStack(err))
	}
	return nil
}

func (d *PushSubscriptionDB) ListByAccounts(c context.Context, accountIDs []string) ([]*retweet.PushSubscription, error) {
	subs, err := d.cli.PushSubscription.Query().
		Where(pushsubscription.AccountIDIn(accountIDs...)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", errors.WithStack(err))
	}
	return array.Map(subs, func(s *ent.PushSubscription) *retweet.PushSubscription {
		return &retweet.PushSubscription{
			AccountID: s.AccountID,
			Endpoint:  s.ID,
			P256dh:    s.P256dh,
			Auth:      s.Auth,
		}
	}), nil
}

func (d *PushSubscriptionDB) Delete(c context.Context, endpoint string) error {
	err := d.cli.PushSubscription.DeleteOneID(endpoint).Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete subscription: %w", errors.WithStack(err))
	}
	return nil
}
