package retweet

import "context"

// Store interfaces. All membership mutations (follows, likes, retweet
// wrappers) are single atomic store operations; duplicate-add and
// missing-remove come back as Conflict kinds, never as silent no-ops.

type AccountStore interface {
	// Create fails with ErrIDExists, ErrUsernameTaken or ErrEmailTaken on
	// the matching unique constraint.
	Create(c context.Context, account *Account) error
	Find(c context.Context, id string) (*Account, error)
	FindByUsername(c context.Context, username string) (*Account, error)
	FindByEmail(c context.Context, email string) (*Account, error)
	Update(c context.Context, account *Account) error
}

type TweetStore interface {
	Create(c context.Context, tweet *Tweet) error
	// CreateRetweet inserts a wrapper tweet, failing with
	// ErrAlreadyRetweeted while a live wrapper by the same author for the
	// same original exists. Check and insert run in one transaction.
	CreateRetweet(c context.Context, wrapper *Tweet) error
	Find(c context.Context, id string) (*Tweet, error)
	// FindRetweet returns the live wrapper authored by authorID referencing
	// originalID, or ErrNotFound.
	FindRetweet(c context.Context, authorID, originalID string) (*Tweet, error)
	// ListByAuthors returns tweets by any of the given authors in store
	// insertion order, soft-deleted ones included.
	ListByAuthors(c context.Context, authorIDs []string) ([]*Tweet, error)
	ListReplies(c context.Context, tweetID string) ([]*Tweet, error)
	// ListRetweeters returns the ids of accounts with a live wrapper for
	// the tweet, i.e. the tweet's retweets set.
	ListRetweeters(c context.Context, tweetID string) ([]string, error)
	CountReplies(c context.Context, tweetID string) (int, error)
	SoftDelete(c context.Context, id string) error
	// SoftDeleteWithRetweets soft-deletes the tweet and every live wrapper
	// referencing it in one transaction.
	SoftDeleteWithRetweets(c context.Context, id string) error
}

type FollowStore interface {
	// Follow records the relationship as a single row, so both the follows
	// and followers side become visible atomically.
	Follow(c context.Context, followerID, followeeID string) error
	Unfollow(c context.Context, followerID, followeeID string) error
	IsFollowing(c context.Context, followerID, followeeID string) (bool, error)
	ListFollows(c context.Context, accountID string) ([]string, error)
	ListFollowers(c context.Context, accountID string) ([]string, error)
}

type LikeStore interface {
	Like(c context.Context, accountID, tweetID string) error
	Unlike(c context.Context, accountID, tweetID string) error
	IsLiked(c context.Context, accountID, tweetID string) (bool, error)
	// ListLiked returns tweet ids in reverse like-insertion order, most
	// recently liked first.
	ListLiked(c context.Context, accountID string) ([]string, error)
	ListLikers(c context.Context, tweetID string) ([]string, error)
}

type MediaStore interface {
	Create(c context.Context, media *Media) error
	Find(c context.Context, id string) (*Media, error)
	// AttachTweet records the owning tweet of an attachment once the tweet
	// id is known.
	AttachTweet(c context.Context, mediaID, tweetID string) error
	SoftDelete(c context.Context, id string) error
}

type AuthTokenStore interface {
	// Create fails with ErrTokenExists on a duplicate token.
	Create(c context.Context, token *AuthToken) error
	Find(c context.Context, token string) (*AuthToken, error)
	Delete(c context.Context, token string) error
	DeleteByAccount(c context.Context, accountID string) error
}

type RecoveryTokenStore interface {
	// Replace deletes any live token for the account and inserts the new
	// one in a single transaction, keeping at most one per account.
	Replace(c context.Context, token *RecoveryToken) error
	Find(c context.Context, token string) (*RecoveryToken, error)
	Delete(c context.Context, token string) error
}

type PushSubscriptionStore interface {
	// Save upserts on the subscription endpoint.
	Save(c context.Context, sub *PushSubscription) error
	ListByAccounts(c context.Context, accountIDs []string) ([]*PushSubscription, error)
	Delete(c context.Context, endpoint string) error
}
