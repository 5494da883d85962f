package retweet

import (
	"context"
	"errors"
	"fmt"
)

type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon,omitempty"`
	URL   string `json:"url"`
}

// Notifier delivers a notification to one browser subscription.
// ErrSubscriptionGone means the subscription is dead and should be pruned.
type Notifier interface {
	Push(c context.Context, sub *PushSubscription, n *Notification) error
}

var ErrSubscriptionGone = errors.New("push subscription is gone")

// Mailer sends the password recovery mail.
type Mailer interface {
	SendRecovery(c context.Context, to, username, link string) error
}

// SubscribePush registers a browser push subscription for the account.
func (p *Processor) SubscribePush(c context.Context, accountID string, sub *PushSubscription) error {
	if sub.Endpoint == "" {
		return Validation("subscription endpoint is required")
	}
	sub.AccountID = accountID
	if err := p.subs.Save(c, sub); err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

// notifyFollowers fans a notification out to the followers of accountID.
// Delivery is fire-and-forget: it runs off the request goroutine and
// failures are logged, never surfaced to the triggering request.
func (p *Processor) notifyFollowers(accountID string, n *Notification) {
	go func() {
		c := context.Background()

		followers, err := p.follows.ListFollowers(c, accountID)
		if err != nil {
			p.log.Error().Err(err).Str("account_id", accountID).Msg("failed to list followers for push")
			return
		}
		if len(followers) == 0 {
			return
		}
		subs, err := p.subs.ListByAccounts(c, followers)
		if err != nil {
			p.log.Error().Err(err).Str("account_id", accountID).Msg("failed to list subscriptions")
			return
		}

		for _, sub := range subs {
			if err := p.notifier.Push(c, sub, n); err != nil {
				if errors.Is(err, ErrSubscriptionGone) {
					if err := p.subs.Delete(c, sub.Endpoint); err != nil {
						p.log.Warn().Err(err).Str("endpoint", sub.Endpoint).Msg("failed to prune subscription")
					}
					continue
				}
				p.log.Warn().Err(err).Str("endpoint", sub.Endpoint).Msg("push delivery failed")
			}
		}
	}()
}
