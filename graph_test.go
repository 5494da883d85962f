package retweet

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollow(t *testing.T) {
	c := context.Background()

	t.Run("follow and unfollow", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")

		require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

		following, err := f.proc.follows.IsFollowing(c, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.True(t, following)

		require.NoError(t, f.proc.Unfollow(c, alice.ID, bob.ID))
		following, err = f.proc.follows.IsFollowing(c, alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("duplicate follow conflicts", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")

		require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))
		assert.ErrorIs(t, f.proc.Follow(c, alice.ID, bob.ID), ErrAlreadyFollowing)
	})

	t.Run("unfollow without follow conflicts", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		assert.ErrorIs(t, f.proc.Unfollow(c, alice.ID, bob.ID), ErrNotFollowing)
	})

	t.Run("self follow rejected", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		assert.ErrorIs(t, f.proc.Follow(c, alice.ID, alice.ID), ErrSelfFollow)
	})

	t.Run("deleted account cannot be followed", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		require.NoError(t, f.proc.DeleteAccount(c, bob.ID))
		assert.ErrorIs(t, f.proc.Follow(c, alice.ID, bob.ID), ErrAccountNotFound)
	})
}

func TestLike(t *testing.T) {
	c := context.Background()

	t.Run("like and unlike", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, bob, "hello")

		require.NoError(t, f.proc.Like(c, alice, tweet.ID))
		assert.ErrorIs(t, f.proc.Like(c, alice, tweet.ID), ErrAlreadyLiked)

		require.NoError(t, f.proc.Unlike(c, alice, tweet.ID))
		assert.ErrorIs(t, f.proc.Unlike(c, alice, tweet.ID), ErrNotLiked)
	})

	t.Run("liking a wrapper targets the original", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		carol := f.signup(c, "carol")
		tweet := f.tweet(c, bob, "hello")

		wrapper, err := f.proc.Retweet(c, carol, tweet.ID)
		require.NoError(t, err)

		require.NoError(t, f.proc.Like(c, alice, wrapper.ID))

		likers, err := f.proc.likes.ListLikers(c, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{alice.ID}, likers)
	})

	t.Run("deleted tweet cannot be liked", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, bob, "hello")
		require.NoError(t, f.proc.DeleteTweet(c, tweet.ID, bob))
		assert.ErrorIs(t, f.proc.Like(c, alice, tweet.ID), ErrTweetNotFound)
	})
}

func TestConcurrentLikes(t *testing.T) {
	c := context.Background()
	f := newFixture()
	author := f.signup(c, "author")
	tweet := f.tweet(c, author, "popular")

	const n = 32
	accounts := make([]*Account, n)
	for i := range accounts {
		accounts[i] = f.signup(c, fmt.Sprintf("user%02d", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i, account := range accounts {
		wg.Add(1)
		go func(i int, account *Account) {
			defer wg.Done()
			errs[i] = f.proc.Like(c, account, tweet.ID)
		}(i, account)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "like %d", i)
	}
	likers, err := f.proc.likes.ListLikers(c, tweet.ID)
	require.NoError(t, err)
	assert.Len(t, likers, n)
}

func TestRetweet(t *testing.T) {
	c := context.Background()

	t.Run("creates a single live wrapper", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, bob, "hello")

		wrapper, err := f.proc.Retweet(c, alice, tweet.ID)
		require.NoError(t, err)
		assert.Equal(t, tweet.ID, wrapper.RetweetOf)
		assert.Equal(t, alice.ID, wrapper.AuthorID)
		assert.True(t, wrapper.IsRetweet())

		_, err = f.proc.Retweet(c, alice, tweet.ID)
		assert.ErrorIs(t, err, ErrAlreadyRetweeted)
	})

	t.Run("retweeting a wrapper targets the original", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		carol := f.signup(c, "carol")
		tweet := f.tweet(c, bob, "hello")

		wrapper, err := f.proc.Retweet(c, carol, tweet.ID)
		require.NoError(t, err)

		second, err := f.proc.Retweet(c, alice, wrapper.ID)
		require.NoError(t, err)
		assert.Equal(t, tweet.ID, second.RetweetOf)
	})

	t.Run("unretweet then retweet again", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, bob, "hello")

		_, err := f.proc.Retweet(c, alice, tweet.ID)
		require.NoError(t, err)
		require.NoError(t, f.proc.Unretweet(c, alice, tweet.ID))
		assert.ErrorIs(t, f.proc.Unretweet(c, alice, tweet.ID), ErrNotRetweeted)

		_, err = f.proc.Retweet(c, alice, tweet.ID)
		require.NoError(t, err)
	})
}

func TestCreateTweet(t *testing.T) {
	c := context.Background()

	t.Run("length limits", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")

		_, err := f.proc.CreateTweet(c, alice, "", "", "")
		assert.True(t, IsKind(err, KindValidation))

		_, err = f.proc.CreateTweet(c, alice, strings.Repeat("x", MaxTweetLength+1), "", "")
		assert.True(t, IsKind(err, KindValidation))

		// multibyte runes count once
		_, err = f.proc.CreateTweet(c, alice, strings.Repeat("あ", MaxTweetLength), "", "")
		assert.NoError(t, err)
	})

	t.Run("reply records the parent author", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		parent := f.tweet(c, bob, "parent")

		reply, err := f.proc.CreateTweet(c, alice, "child", "", parent.ID)
		require.NoError(t, err)
		assert.Equal(t, parent.ID, reply.RepliesTo)
		assert.Equal(t, "bob", reply.RepliesToAuthor)
		assert.True(t, reply.IsReply())
	})

	t.Run("reply to a missing tweet", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		_, err := f.proc.CreateTweet(c, alice, "child", "", "nope")
		assert.ErrorIs(t, err, ErrTweetNotFound)
	})

	t.Run("attachment is linked to the tweet", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")

		tweet, err := f.proc.CreateTweet(c, alice, "with picture", "pic.png", "")
		require.NoError(t, err)
		require.NotEmpty(t, tweet.MediaID)

		media, err := memMedia{f.store}.Find(c, tweet.MediaID)
		require.NoError(t, err)
		assert.Equal(t, tweet.ID, media.TweetID)
		assert.Equal(t, MediaTypeAttachment, media.Type)
	})
}

func TestDeleteTweet(t *testing.T) {
	c := context.Background()

	t.Run("author deletes own tweet", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		tweet := f.tweet(c, alice, "hello")

		require.NoError(t, f.proc.DeleteTweet(c, tweet.ID, alice))
		assert.ErrorIs(t, f.proc.DeleteTweet(c, tweet.ID, alice), ErrAlreadyDeleted)
	})

	t.Run("other accounts are forbidden", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, alice, "hello")

		assert.ErrorIs(t, f.proc.DeleteTweet(c, tweet.ID, bob), ErrForbidden)
	})

	t.Run("admin may delete any tweet", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		admin := f.signup(c, "admin")
		admin.IsAdmin = true
		require.NoError(t, f.store.Update(c, admin))
		tweet := f.tweet(c, alice, "hello")

		assert.NoError(t, f.proc.DeleteTweet(c, tweet.ID, admin))
	})

	t.Run("deleting the original retracts live wrappers", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, alice, "hello")

		wrapper, err := f.proc.Retweet(c, bob, tweet.ID)
		require.NoError(t, err)

		require.NoError(t, f.proc.DeleteTweet(c, tweet.ID, alice))

		stored, err := f.proc.tweets.Find(c, wrapper.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsDeleted)

		retweeters, err := f.proc.tweets.ListRetweeters(c, tweet.ID)
		require.NoError(t, err)
		assert.Empty(t, retweeters)
	})

	t.Run("deleting a wrapper keeps the original", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		tweet := f.tweet(c, alice, "hello")

		wrapper, err := f.proc.Retweet(c, bob, tweet.ID)
		require.NoError(t, err)

		require.NoError(t, f.proc.DeleteTweet(c, wrapper.ID, bob))

		original, err := f.proc.tweets.Find(c, tweet.ID)
		require.NoError(t, err)
		assert.False(t, original.IsDeleted)
	})
}

func TestPushFanOut(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	require.NoError(t, f.proc.Follow(c, bob.ID, alice.ID))
	require.NoError(t, f.proc.SubscribePush(c, bob.ID, &PushSubscription{
		Endpoint: "https://push.example.com/bob",
		P256dh:   "p",
		Auth:     "a",
	}))

	f.tweet(c, alice, "hello followers")

	select {
	case <-f.notifier.pushed:
	case <-time.After(time.Second):
		t.Fatal("no push delivered")
	}

	f.notifier.mu.Lock()
	defer f.notifier.mu.Unlock()
	require.Len(t, f.notifier.pushes, 1)
	assert.Equal(t, "@alice tweeted", f.notifier.pushes[0].Title)
	assert.Equal(t, "hello followers", f.notifier.pushes[0].Body)
}

func TestPushPrunesGoneSubscriptions(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	require.NoError(t, f.proc.Follow(c, bob.ID, alice.ID))
	require.NoError(t, f.proc.SubscribePush(c, bob.ID, &PushSubscription{
		Endpoint: "https://push.example.com/stale",
		P256dh:   "p",
		Auth:     "a",
	}))
	f.notifier.mu.Lock()
	f.notifier.gone["https://push.example.com/stale"] = true
	f.notifier.mu.Unlock()

	f.tweet(c, alice, "hello")

	select {
	case <-f.notifier.pushed:
	case <-time.After(time.Second):
		t.Fatal("no push attempted")
	}

	deadline := time.Now().Add(time.Second)
	for {
		subs, err := memSubs{f.store}.ListByAccounts(c, []string{bob.ID})
		require.NoError(t, err)
		if len(subs) == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("gone subscription was not pruned")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
