package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/sqlite/ent"
)

type MediaDB struct {
	*SQLite
}

func NewMediaDB(db *SQLite) retweet.MediaStore {
	return &MediaDB{SQLite: db}
}

func (d *MediaDB) Create(c context.Context, m *retweet.Media) error {
	err := d.cli.Media.Create().
		SetID(m.ID).
		SetFile(m.File).
		SetType(mediaTypeValue(m.Type)).
		SetAccountID(m.AccountID).
		SetTweetID(m.TweetID).
		SetCreatedAt(m.CreatedAt).
		Exec(c)
	if err != nil {
		if ent.IsConstraintError(err) {
			return retweet.ErrIDExists
		}
		return fmt.Errorf("failed to create media: %w", errors.WithStack(err))
	}
	return nil
}

func (d *MediaDB) Find(c context.Context, id string) (*retweet.Media, error) {
	m, err := d.cli.Media.Get(c, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media: %w", errors.WithStack(err))
	}
	return &retweet.Media{
		ID:        m.ID,
		File:      m.File,
		Type:      mediaTypeOf(m.Type),
		AccountID: m.AccountID,
		TweetID:   m.TweetID,
		CreatedAt: m.CreatedAt,
		IsDeleted: m.IsDeleted,
	}, nil
}

func (d *MediaDB) AttachTweet(c context.Context, mediaID, tweetID string) error {
	err := d.cli.Media.UpdateOneID(mediaID).
		SetTweetID(tweetID).
		Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return retweet.ErrNotFound
		}
		return fmt.Errorf("failed to attach media: %w", errors.WithStack(err))
	}
	return nil
}

func (d *MediaDB) SoftDelete(c context.Context, id string) error {
	err := d.cli.Media.UpdateOneID(id).
		SetIsDeleted(true).
		Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return retweet.ErrNotFound
		}
		return fmt.Errorf("failed to delete media: %w", errors.WithStack(err))
	}
	return nil
}
