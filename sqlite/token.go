package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/Mushus/retweet/sqlite/ent/authtoken"
	"github.com/Mushus/retweet/sqlite/ent/recoverytoken"
)

// auth token

type AuthTokenDB struct {
	*SQLite
}

func NewAuthTokenDB(db *SQLite) retweet.AuthTokenStore {
	return &AuthTokenDB{SQLite: db}
}

func (d *AuthTokenDB) Create(c context.Context, token *retweet.AuthToken) error {
	err := d.cli.AuthToken.Create().
		SetID(token.Token).
		SetAccountID(token.AccountID).
		SetIssuedAt(token.IssuedAt).
		SetUserAgent(token.UserAgent).
		SetIP(token.IP).
		Exec(c)
	if err != nil {
		if ent.IsConstraintError(err) {
			return retweet.ErrTokenExists
		}
		return fmt.Errorf("failed to create auth token: %w", errors.WithStack(err))
	}
	return nil
}

func (d *AuthTokenDB) Find(c context.Context, token string) (*retweet.AuthToken, error) {
	t, err := d.cli.AuthToken.Get(c, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get auth token: %w", errors.WithStack(err))
	}
	return &retweet.AuthToken{
		AccountID: t.AccountID,
		Token:     t.ID,
		IssuedAt:  t.IssuedAt,
		UserAgent: t.UserAgent,
		IP:        t.IP,
	}, nil
}

func (d *AuthTokenDB) Delete(c context.Context, token string) error {
	err := d.cli.AuthToken.DeleteOneID(token).Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete auth token: %w", errors.WithStack(err))
	}
	return nil
}

func (d *AuthTokenDB) DeleteByAccount(c context.Context, accountID string) error {
	_, err := d.cli.AuthToken.Delete().
		Where(authtoken.AccountID(accountID)).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete auth tokens: %w", errors.WithStack(err))
	}
	return nil
}

// recovery token

type RecoveryTokenDB struct {
	*SQLite
}

func NewRecoveryTokenDB(db *SQLite) retweet.RecoveryTokenStore {
	return &RecoveryTokenDB{SQLite: db}
}

// Replace keeps at most one live recovery token per account: the delete
// and the insert share a transaction.
func (d *RecoveryTokenDB) Replace(c context.Context, token *retweet.RecoveryToken) error {
	tx, err := d.cli.Tx(c)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", errors.WithStack(err))
	}

	_, err = tx.RecoveryToken.Delete().
		Where(recoverytoken.AccountID(token.AccountID)).
		Exec(c)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete recovery token: %w", errors.WithStack(err))
	}

	err = tx.RecoveryToken.Create().
		SetID(token.Token).
		SetAccountID(token.AccountID).
		SetIssuedAt(token.IssuedAt).
		Exec(c)
	if err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return retweet.ErrTokenExists
		}
		return fmt.Errorf("failed to create recovery token: %w", errors.WithStack(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit recovery token: %w", errors.WithStack(err))
	}
	return nil
}

func (d *RecoveryTokenDB) Find(c context.Context, token string) (*retweet.RecoveryToken, error) {
	t, err := d.cli.RecoveryToken.Get(c, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get recovery token: %w", errors.WithStack(err))
	}
	return &retweet.RecoveryToken{
		AccountID: t.AccountID,
		Token:     t.ID,
		IssuedAt:  t.IssuedAt,
	}, nil
}

func (d *RecoveryTokenDB) Delete(c context.Context, token string) error {
	err := d.cli.RecoveryToken.DeleteOneID(token).Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete recovery token: %w", errors.WithStack(err))
	}
	return nil
}
