package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/Mushus/retweet/sqlite/ent/account"
)

type AccountDB struct {
	*SQLite
}

func NewAccountDB(db *SQLite) retweet.AccountStore {
	return &AccountDB{SQLite: db}
}

func (d *AccountDB) Create(c context.Context, acc *retweet.Account) error {
	err := d.cli.Account.Create().
		SetID(acc.ID).
		SetUsername(acc.Username).
		SetEmail(acc.Email).
		SetPassword(acc.Password).
		SetCreatedAt(acc.CreatedAt).
		Exec(c)
	if err != nil {
		if domainErr := uniqueViolation(err, map[string]error{
			"accounts.username": retweet.ErrUsernameTaken,
			"accounts.email":    retweet.ErrEmailTaken,
			"accounts.id":       retweet.ErrIDExists,
		}); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create account: %w", errors.WithStack(err))
	}
	return nil
}

func (d *AccountDB) Find(c context.Context, id string) (*retweet.Account, error) {
	acc, err := d.cli.Account.Get(c, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func (d *AccountDB) FindByUsername(c context.Context, username string) (*retweet.Account, error) {
	acc, err := d.cli.Account.Query().
		Where(account.Username(username)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func (d *AccountDB) FindByEmail(c context.Context, email string) (*retweet.Account, error) {
	acc, err := d.cli.Account.Query().
		Where(account.Email(email)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", errors.WithStack(err))
	}
	return toAccount(acc), nil
}

func (d *AccountDB) Update(c context.Context, acc *retweet.Account) error {
	err := d.cli.Account.UpdateOneID(acc.ID).
		SetDisplayName(acc.DisplayName).
		SetEmail(acc.Email).
		SetPassword(acc.Password).
		SetAvatarID(acc.AvatarID).
		SetBannerID(acc.BannerID).
		SetBio(acc.Bio).
		SetWebsite(acc.Website).
		SetLocation(acc.Location).
		SetIsAdmin(acc.IsAdmin).
		SetIsSuspended(acc.IsSuspended).
		SetIsDeleted(acc.IsDeleted).
		Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return retweet.ErrNotFound
		}
		if domainErr := uniqueViolation(err, map[string]error{
			"accounts.email": retweet.ErrEmailTaken,
		}); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to update account: %w", errors.WithStack(err))
	}
	return nil
}

func toAccount(acc *ent.Account) *retweet.Account {
	return &retweet.Account{
		ID:          acc.ID,
		Username:    acc.Username,
		DisplayName: acc.DisplayName,
		Email:       acc.Email,
		Password:    acc.Password,
		CreatedAt:   acc.CreatedAt,
		AvatarID:    acc.AvatarID,
		BannerID:    acc.BannerID,
		Bio:         acc.Bio,
		Website:     acc.Website,
		Location:    acc.Location,
		IsAdmin:     acc.IsAdmin,
		IsSuspended: acc.IsSuspended,
		IsDeleted:   acc.IsDeleted,
	}
}
