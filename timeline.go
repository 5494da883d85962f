package retweet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Mushus/retweet/lib/array"
)

// resolveTweet turns a raw tweet into its display form. A wrapper is
// replaced by the original it references, annotated with the retweeting
// account; when the original cannot be found the wrapper itself is shown
// as a fallback instead of failing the whole list.
func (p *Processor) resolveTweet(c context.Context, tweet *Tweet, viewer *Account) (*DisplayTweet, error) {
	display := tweet
	var retweetedBy *Account

	if tweet.IsRetweet() {
		original, err := p.tweets.Find(c, tweet.RetweetOf)
		switch {
		case err == nil && !original.IsDeleted:
			retweeter, err := p.accounts.Find(c, tweet.AuthorID)
			if err != nil && !errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("failed to find retweeter: %w", err)
			}
			display = original
			retweetedBy = retweeter
		case err != nil && !errors.Is(err, ErrNotFound):
			return nil, fmt.Errorf("failed to find original tweet: %w", err)
		}
	}

	author, err := p.accounts.Find(c, display.AuthorID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to find author: %w", err)
	}

	likers, err := p.likes.ListLikers(c, display.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}
	retweeters, err := p.tweets.ListRetweeters(c, display.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list retweeters: %w", err)
	}
	replies, err := p.tweets.CountReplies(c, display.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count replies: %w", err)
	}

	d := &DisplayTweet{
		Tweet:        display,
		Author:       author,
		RetweetedBy:  retweetedBy,
		LikeCount:    len(likers),
		RetweetCount: len(retweeters),
		ReplyCount:   replies,
	}
	if viewer != nil {
		for _, id := range likers {
			if id == viewer.ID {
				d.Liked = true
				break
			}
		}
		for _, id := range retweeters {
			if id == viewer.ID {
				d.Retweeted = true
				break
			}
		}
	}
	return d, nil
}

// Timeline - the home feed: tweets authored by the viewer or any followed
// account, restricted to top-level tweets and replies addressed to the
// viewer, most recent first.
func (p *Processor) Timeline(c context.Context, viewer *Account) ([]*DisplayTweet, error) {
	follows, err := p.follows.ListFollows(c, viewer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	authorIDs := append(follows, viewer.ID)

	raw, err := p.tweets.ListByAuthors(c, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	tweets := make([]*Tweet, 0, len(raw))
	for _, t := range raw {
		if !p.visibleTo(t, viewer) {
			continue
		}
		if t.IsReply() && t.RepliesToAuthor != viewer.Username {
			continue
		}
		tweets = append(tweets, t)
	}
	sortNewestFirst(tweets)

	return array.MapErr(tweets, func(t *Tweet) (*DisplayTweet, error) {
		return p.resolveTweet(c, t, viewer)
	})
}

// ProfileTweets - the tweets shown on an account page: authored by the
// account, replies excluded.
func (p *Processor) ProfileTweets(c context.Context, accountID string, viewer *Account, includeDeleted bool) ([]*DisplayTweet, error) {
	raw, err := p.tweets.ListByAuthors(c, []string{accountID})
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}

	tweets := make([]*Tweet, 0, len(raw))
	for _, t := range raw {
		if t.IsReply() {
			continue
		}
		if t.IsDeleted && (!includeDeleted || t.IsRetweet()) {
			continue
		}
		tweets = append(tweets, t)
	}
	sortNewestFirst(tweets)

	return array.MapErr(tweets, func(t *Tweet) (*DisplayTweet, error) {
		return p.resolveTweet(c, t, viewer)
	})
}

// LikedTweets - the tweets an account liked, most recently liked first.
func (p *Processor) LikedTweets(c context.Context, accountID string, viewer *Account, includeDeleted bool) ([]*DisplayTweet, error) {
	ids, err := p.likes.ListLiked(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likes: %w", err)
	}

	tweets := make([]*Tweet, 0, len(ids))
	for _, id := range ids {
		t, err := p.tweets.Find(c, id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to find tweet: %w", err)
		}
		if t.IsDeleted && !includeDeleted {
			continue
		}
		tweets = append(tweets, t)
	}

	return array.MapErr(tweets, func(t *Tweet) (*DisplayTweet, error) {
		return p.resolveTweet(c, t, viewer)
	})
}

// Replies - the non-deleted replies of a tweet in reply order.
func (p *Processor) Replies(c context.Context, tweetID string, viewer *Account) ([]*DisplayTweet, error) {
	raw, err := p.tweets.ListReplies(c, tweetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	tweets := make([]*Tweet, 0, len(raw))
	for _, t := range raw {
		if !p.visibleTo(t, viewer) {
			continue
		}
		tweets = append(tweets, t)
	}
	return array.MapErr(tweets, func(t *Tweet) (*DisplayTweet, error) {
		return p.resolveTweet(c, t, viewer)
	})
}

// ViewTweet - a single tweet page.
func (p *Processor) ViewTweet(c context.Context, tweetID string, viewer *Account) (*DisplayTweet, error) {
	tweet, err := p.tweets.Find(c, tweetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to find tweet: %w", err)
	}
	if !p.visibleTo(tweet, viewer) {
		return nil, ErrTweetNotFound
	}
	return p.resolveTweet(c, tweet, viewer)
}

// visibleTo applies the soft-delete visibility rule: deleted tweets are
// hidden except from admins, and deleted wrappers are hidden from everyone.
func (p *Processor) visibleTo(t *Tweet, viewer *Account) bool {
	if !t.IsDeleted {
		return true
	}
	if t.IsRetweet() {
		return false
	}
	return viewer != nil && viewer.IsAdmin
}

// sortNewestFirst orders by creation time descending. Store lists come in
// insertion order, so reversing first makes timestamp ties fall back to
// descending insertion order under the stable sort.
func sortNewestFirst(tweets []*Tweet) {
	for i, j := 0, len(tweets)-1; i < j; i, j = i+1, j-1 {
		tweets[i], tweets[j] = tweets[j], tweets[i]
	}
	sort.SliceStable(tweets, func(i, j int) bool {
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
}
