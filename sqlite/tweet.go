package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/lib/array"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/Mushus/retweet/sqlite/ent/tweet"
)

type TweetDB struct {
	*SQLite
}

func NewTweetDB(db *SQLite) retweet.TweetStore {
	return &TweetDB{SQLite: db}
}

func (d *TweetDB) Create(c context.Context, t *retweet.Tweet) error {
	err := d.cli.Tweet.Create().
		SetID(t.ID).
		SetContent(t.Content).
		SetAuthorID(t.AuthorID).
		SetMediaID(t.MediaID).
		SetRepliesTo(t.RepliesTo).
		SetRepliesToAuthor(t.RepliesToAuthor).
		SetSortID(retweet.GenerateSortableID()).
		SetCreatedAt(t.CreatedAt).
		Exec(c)
	if err != nil {
		if domainErr := uniqueViolation(err, map[string]error{
			"tweets.id": retweet.ErrIDExists,
		}); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create tweet: %w", errors.WithStack(err))
	}
	return nil
}

// CreateRetweet inserts the wrapper only while no live wrapper by the same
// author exists for the same original. Check and insert share a transaction.
func (d *TweetDB) CreateRetweet(c context.Context, wrapper *retweet.Tweet) error {
	tx, err := d.cli.Tx(c)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", errors.WithStack(err))
	}

	content := retweet.EncodeRetweetContent(wrapper.RetweetOf)
	exists, err := tx.Tweet.Query().
		Where(
			tweet.AuthorID(wrapper.AuthorID),
			tweet.Content(content),
			tweet.IsDeleted(false),
		).
		Exist(c)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to query retweet: %w", errors.WithStack(err))
	}
	if exists {
		tx.Rollback()
		return retweet.ErrAlreadyRetweeted
	}

	err = tx.Tweet.Create().
		SetID(wrapper.ID).
		SetContent(content).
		SetAuthorID(wrapper.AuthorID).
		SetSortID(retweet.GenerateSortableID()).
		SetCreatedAt(wrapper.CreatedAt).
		Exec(c)
	if err != nil {
		tx.Rollback()
		if domainErr := uniqueViolation(err, map[string]error{
			"tweets.id": retweet.ErrIDExists,
		}); domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create retweet: %w", errors.WithStack(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit retweet: %w", errors.WithStack(err))
	}
	return nil
}

func (d *TweetDB) Find(c context.Context, id string) (*retweet.Tweet, error) {
	t, err := d.cli.Tweet.Get(c, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tweet: %w", errors.WithStack(err))
	}
	return toTweet(t), nil
}

func (d *TweetDB) FindRetweet(c context.Context, authorID, originalID string) (*retweet.Tweet, error) {
	t, err := d.cli.Tweet.Query().
		Where(
			tweet.AuthorID(authorID),
			tweet.Content(retweet.EncodeRetweetContent(originalID)),
			tweet.IsDeleted(false),
		).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, retweet.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get retweet: %w", errors.WithStack(err))
	}
	return toTweet(t), nil
}

func (d *TweetDB) ListByAuthors(c context.Context, authorIDs []string) ([]*retweet.Tweet, error) {
	tweets, err := d.cli.Tweet.Query().
		Where(tweet.AuthorIDIn(authorIDs...)).
		Order(ent.Asc(tweet.FieldSortID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", errors.WithStack(err))
	}
	return array.Map(tweets, toTweet), nil
}

func (d *TweetDB) ListReplies(c context.Context, tweetID string) ([]*retweet.Tweet, error) {
	tweets, err := d.cli.Tweet.Query().
		Where(tweet.RepliesTo(tweetID)).
		Order(ent.Asc(tweet.FieldSortID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", errors.WithStack(err))
	}
	return array.Map(tweets, toTweet), nil
}

func (d *TweetDB) ListRetweeters(c context.Context, tweetID string) ([]string, error) {
	wrappers, err := d.cli.Tweet.Query().
		Where(
			tweet.Content(retweet.EncodeRetweetContent(tweetID)),
			tweet.IsDeleted(false),
		).
		Order(ent.Asc(tweet.FieldSortID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list retweeters: %w", errors.WithStack(err))
	}
	return array.Map(wrappers, func(t *ent.Tweet) string {
		return t.AuthorID
	}), nil
}

func (d *TweetDB) CountReplies(c context.Context, tweetID string) (int, error) {
	count, err := d.cli.Tweet.Query().
		Where(
			tweet.RepliesTo(tweetID),
			tweet.IsDeleted(false),
		).
		Count(c)
	if err != nil {
		return 0, fmt.Errorf("failed to count replies: %w", errors.WithStack(err))
	}
	return count, nil
}

func (d *TweetDB) SoftDelete(c context.Context, id string) error {
	err := d.cli.Tweet.UpdateOneID(id).
		SetIsDeleted(true).
		Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return retweet.ErrNotFound
		}
		return fmt.Errorf("failed to delete tweet: %w", errors.WithStack(err))
	}
	return nil
}

// SoftDeleteWithRetweets soft-deletes the tweet and its live wrappers in
// one transaction, so no wrapper keeps pointing at a tweet that reads as
// deleted.
func (d *TweetDB) SoftDeleteWithRetweets(c context.Context, id string) error {
	tx, err := d.cli.Tx(c)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", errors.WithStack(err))
	}

	if err := tx.Tweet.UpdateOneID(id).SetIsDeleted(true).Exec(c); err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return retweet.ErrNotFound
		}
		return fmt.Errorf("failed to delete tweet: %w", errors.WithStack(err))
	}

	_, err = tx.Tweet.Update().
		Where(
			tweet.Content(retweet.EncodeRetweetContent(id)),
			tweet.IsDeleted(false),
		).
		SetIsDeleted(true).
		Save(c)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete retweets: %w", errors.WithStack(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete: %w", errors.WithStack(err))
	}
	return nil
}

func toTweet(t *ent.Tweet) *retweet.Tweet {
	out := &retweet.Tweet{
		ID:              t.ID,
		Content:         t.Content,
		AuthorID:        t.AuthorID,
		MediaID:         t.MediaID,
		RepliesTo:       t.RepliesTo,
		RepliesToAuthor: t.RepliesToAuthor,
		CreatedAt:       t.CreatedAt,
		IsDeleted:       t.IsDeleted,
	}
	if originalID, ok := retweet.ParseRetweetContent(t.Content); ok {
		out.RetweetOf = originalID
		out.Content = ""
	}
	return out
}
