package retweet

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Follow - accountID starts following targetID. Both sides of the
// relationship are one store row, so there is no partially applied state.
func (p *Processor) Follow(c context.Context, accountID, targetID string) error {
	if accountID == targetID {
		return ErrSelfFollow
	}
	target, err := p.accounts.Find(c, targetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	if target.IsDeleted {
		return ErrAccountNotFound
	}
	if err := p.follows.Follow(c, accountID, targetID); err != nil {
		return err
	}
	p.log.Info().Str("account_id", accountID).Str("target_id", targetID).Msg("follow")
	return nil
}

func (p *Processor) Unfollow(c context.Context, accountID, targetID string) error {
	if accountID == targetID {
		return ErrSelfFollow
	}
	if err := p.follows.Unfollow(c, accountID, targetID); err != nil {
		return err
	}
	p.log.Info().Str("account_id", accountID).Str("target_id", targetID).Msg("unfollow")
	return nil
}

func (p *Processor) Like(c context.Context, account *Account, tweetID string) error {
	tweet, err := p.visibleTweet(c, tweetID)
	if err != nil {
		return err
	}
	if err := p.likes.Like(c, account.ID, tweet.ID); err != nil {
		return err
	}
	p.log.Info().Str("account_id", account.ID).Str("tweet_id", tweet.ID).Msg("like")
	p.notifyFollowers(tweet.AuthorID, &Notification{
		Title: fmt.Sprintf("@%s liked a tweet", account.Username),
		Body:  tweet.Content,
		URL:   fmt.Sprintf("%s/t/%s", p.baseURL, tweet.ID),
	})
	return nil
}

func (p *Processor) Unlike(c context.Context, account *Account, tweetID string) error {
	tweet, err := p.visibleTweet(c, tweetID)
	if err != nil {
		return err
	}
	if err := p.likes.Unlike(c, account.ID, tweet.ID); err != nil {
		return err
	}
	p.log.Info().Str("account_id", account.ID).Str("tweet_id", tweet.ID).Msg("unlike")
	return nil
}

// Retweet materializes the retweet as a wrapper tweet authored by the
// account. At most one live wrapper exists per (author, original) pair;
// the store enforces it.
func (p *Processor) Retweet(c context.Context, account *Account, tweetID string) (*Tweet, error) {
	original, err := p.visibleTweet(c, tweetID)
	if err != nil {
		return nil, err
	}

	wrapper := &Tweet{
		AuthorID:  account.ID,
		RetweetOf: original.ID,
		CreatedAt: p.now(),
	}
	for {
		wrapper.ID = generateID()
		err := p.tweets.CreateRetweet(c, wrapper)
		if errors.Is(err, ErrIDExists) {
			continue
		}
		if err != nil {
			return nil, err
		}
		break
	}
	p.log.Info().Str("account_id", account.ID).Str("tweet_id", original.ID).
		Str("wrapper_id", wrapper.ID).Msg("retweet")
	p.notifyFollowers(account.ID, &Notification{
		Title: fmt.Sprintf("@%s retweeted", account.Username),
		Body:  original.Content,
		URL:   fmt.Sprintf("%s/t/%s", p.baseURL, original.ID),
	})
	return wrapper, nil
}

func (p *Processor) Unretweet(c context.Context, account *Account, tweetID string) error {
	original, err := p.visibleTweet(c, tweetID)
	if err != nil {
		return err
	}
	wrapper, err := p.tweets.FindRetweet(c, account.ID, original.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotRetweeted
		}
		return fmt.Errorf("failed to find retweet: %w", err)
	}
	if err := p.tweets.SoftDelete(c, wrapper.ID); err != nil {
		return fmt.Errorf("failed to delete retweet: %w", err)
	}
	p.log.Info().Str("account_id", account.ID).Str("tweet_id", original.ID).Msg("unretweet")
	return nil
}

// CreateTweet validates and persists a tweet, optionally as a reply and
// with an uploaded attachment. The parent author's username is cached on
// the row for timeline filtering.
func (p *Processor) CreateTweet(c context.Context, author *Account, content, attachment, repliesTo string) (*Tweet, error) {
	length := utf8.RuneCountInString(content)
	if length == 0 {
		return nil, Validation("tweet content is required")
	}
	if length > MaxTweetLength {
		return nil, Validation(fmt.Sprintf("tweet must be %d characters or shorter", MaxTweetLength))
	}
	if _, isWrapper := ParseRetweetContent(content); isWrapper {
		return nil, Validation("tweet content is reserved")
	}

	var media *Media
	if attachment != "" {
		media = &Media{
			File:      attachment,
			Type:      MediaTypeAttachment,
			CreatedAt: p.now(),
		}
		for {
			media.ID = generateID()
			err := p.media.Create(c, media)
			if errors.Is(err, ErrIDExists) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to create media: %w", err)
			}
			break
		}
	}

	tweet := &Tweet{
		Content:   content,
		AuthorID:  author.ID,
		CreatedAt: p.now(),
	}
	if media != nil {
		tweet.MediaID = media.ID
	}
	if repliesTo != "" {
		parent, err := p.visibleTweet(c, repliesTo)
		if err != nil {
			return nil, err
		}
		parentAuthor, err := p.accounts.Find(c, parent.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to find parent author: %w", err)
		}
		tweet.RepliesTo = parent.ID
		tweet.RepliesToAuthor = parentAuthor.Username
	}

	for {
		tweet.ID = generateID()
		err := p.tweets.Create(c, tweet)
		if errors.Is(err, ErrIDExists) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create tweet: %w", err)
		}
		break
	}
	if media != nil {
		if err := p.media.AttachTweet(c, media.ID, tweet.ID); err != nil {
			return nil, fmt.Errorf("failed to attach media: %w", err)
		}
	}
	p.log.Info().Str("account_id", author.ID).Str("tweet_id", tweet.ID).Msg("tweet created")
	p.notifyFollowers(author.ID, &Notification{
		Title: fmt.Sprintf("@%s tweeted", author.Username),
		Body:  content,
		URL:   fmt.Sprintf("%s/t/%s", p.baseURL, tweet.ID),
	})
	return tweet, nil
}

// DeleteTweet soft-deletes a tweet. Deleting an original cascades over its
// live wrappers in the same transaction; deleting a wrapper only retracts
// that account's retweet.
func (p *Processor) DeleteTweet(c context.Context, tweetID string, requester *Account) error {
	tweet, err := p.tweets.Find(c, tweetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrTweetNotFound
		}
		return fmt.Errorf("failed to find tweet: %w", err)
	}
	if tweet.IsDeleted {
		return ErrAlreadyDeleted
	}
	if requester.ID != tweet.AuthorID && !requester.IsAdmin {
		return ErrForbidden
	}

	if tweet.IsRetweet() {
		if err := p.tweets.SoftDelete(c, tweet.ID); err != nil {
			return fmt.Errorf("failed to delete retweet: %w", err)
		}
	} else {
		if err := p.tweets.SoftDeleteWithRetweets(c, tweet.ID); err != nil {
			return fmt.Errorf("failed to delete tweet: %w", err)
		}
	}
	p.log.Info().Str("account_id", requester.ID).Str("tweet_id", tweet.ID).Msg("tweet deleted")
	return nil
}

// visibleTweet resolves a tweet id to its live original: wrappers are
// followed to the tweet they reference, and soft-deleted tweets read as
// absent.
func (p *Processor) visibleTweet(c context.Context, tweetID string) (*Tweet, error) {
	tweet, err := p.tweets.Find(c, tweetID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTweetNotFound
		}
		return nil, fmt.Errorf("failed to find tweet: %w", err)
	}
	if tweet.IsRetweet() {
		original, err := p.tweets.Find(c, tweet.RetweetOf)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ErrTweetNotFound
			}
			return nil, fmt.Errorf("failed to find tweet: %w", err)
		}
		tweet = original
	}
	if tweet.IsDeleted {
		return nil, ErrTweetNotFound
	}
	return tweet, nil
}
