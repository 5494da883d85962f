package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/lib/array"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/Mushus/retweet/sqlite/ent/follow"
	"github.com/Mushus/retweet/sqlite/ent/like"
)

// follow

type FollowDB struct {
	*SQLite
}

func NewFollowDB(db *SQLite) retweet.FollowStore {
	return &FollowDB{SQLite: db}
}

// Follow writes the relationship as one row; the unique (follower,
// followee) index turns a duplicate into ErrAlreadyFollowing. A colliding
// row id is retried with a fresh one.
func (d *FollowDB) Follow(c context.Context, followerID, followeeID string) error {
	for {
		err := d.cli.Follow.Create().
			SetID(retweet.GenerateSortableID()).
			SetFollowerID(followerID).
			SetFolloweeID(followeeID).
			Exec(c)
		if err == nil {
			return nil
		}
		domainErr := uniqueViolation(err, map[string]error{
			"follows.follower_id": retweet.ErrAlreadyFollowing,
			"follows.id":          retweet.ErrIDExists,
		})
		if domainErr == retweet.ErrIDExists {
			continue
		}
		if domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create follow: %w", errors.WithStack(err))
	}
}

func (d *FollowDB) Unfollow(c context.Context, followerID, followeeID string) error {
	n, err := d.cli.Follow.Delete().
		Where(
			follow.FollowerID(followerID),
			follow.FolloweeID(followeeID),
		).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", errors.WithStack(err))
	}
	if n == 0 {
		return retweet.ErrNotFollowing
	}
	return nil
}

func (d *FollowDB) IsFollowing(c context.Context, followerID, followeeID string) (bool, error) {
	exists, err := d.cli.Follow.Query().
		Where(
			follow.FollowerID(followerID),
			follow.FolloweeID(followeeID),
		).
		Exist(c)
	if err != nil {
		return false, fmt.Errorf("failed to query follow: %w", errors.WithStack(err))
	}
	return exists, nil
}

func (d *FollowDB) ListFollows(c context.Context, accountID string) ([]string, error) {
	follows, err := d.cli.Follow.Query().
		Where(follow.FollowerID(accountID)).
		Order(ent.Asc(follow.FieldID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", errors.WithStack(err))
	}
	return array.Map(follows, func(f *ent.Follow) string {
		return f.FolloweeID
	}), nil
}

func (d *FollowDB) ListFollowers(c context.Context, accountID string) ([]string, error) {
	followers, err := d.cli.Follow.Query().
		Where(follow.FolloweeID(accountID)).
		Order(ent.Asc(follow.FieldID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", errors.WithStack(err))
	}
	return array.Map(followers, func(f *ent.Follow) string {
		return f.FollowerID
	}), nil
}

// like

type LikeDB struct {
	*SQLite
}

func NewLikeDB(db *SQLite) retweet.LikeStore {
	return &LikeDB{SQLite: db}
}

func (d *LikeDB) Like(c context.Context, accountID, tweetID string) error {
	for {
		err := d.cli.Like.Create().
			SetID(retweet.GenerateSortableID()).
			SetAccountID(accountID).
			SetTweetID(tweetID).
			Exec(c)
		if err == nil {
			return nil
		}
		domainErr := uniqueViolation(err, map[string]error{
			"likes.account_id": retweet.ErrAlreadyLiked,
			"likes.id":         retweet.ErrIDExists,
		})
		if domainErr == retweet.ErrIDExists {
			continue
		}
		if domainErr != nil {
			return domainErr
		}
		return fmt.Errorf("failed to create like: %w", errors.WithStack(err))
	}
}

func (d *LikeDB) Unlike(c context.Context, accountID, tweetID string) error {
	n, err := d.cli.Like.Delete().
		Where(
			like.AccountID(accountID),
			like.TweetID(tweetID),
		).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", errors.WithStack(err))
	}
	if n == 0 {
		return retweet.ErrNotLiked
	}
	return nil
}

func (d *LikeDB) IsLiked(c context.Context, accountID, tweetID string) (bool, error) {
	exists, err := d.cli.Like.Query().
		Where(
			like.AccountID(accountID),
			like.TweetID(tweetID),
		).
		Exist(c)
	if err != nil {
		return false, fmt.Errorf("failed to query like: %w", errors.WithStack(err))
	}
	return exists, nil
}

// ListLiked orders by descending row id, so the most recent like comes
// first.
func (d *LikeDB) ListLiked(c context.Context, accountID string) ([]string, error) {
	likes, err := d.cli.Like.Query().
		Where(like.AccountID(accountID)).
		Order(ent.Desc(like.FieldID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", errors.WithStack(err))
	}
	return array.Map(likes, func(l *ent.Like) string {
		return l.TweetID
	}), nil
}

func (d *LikeDB) ListLikers(c context.Context, tweetID string) ([]string, error) {
	likes, err := d.cli.Like.Query().
		Where(like.TweetID(tweetID)).
		Order(ent.Asc(like.FieldID)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", errors.WithStack(err))
	}
	return array.Map(likes, func(l *ent.Like) string {
		return l.AccountID
	}), nil
}
