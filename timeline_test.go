package retweet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tweetIDs(tweets []*DisplayTweet) []string {
	out := make([]string, len(tweets))
	for i, t := range tweets {
		out[i] = t.ID
	}
	return out
}

func TestTimeline(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")
	carol := f.signup(c, "carol")

	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	t1 := f.tweet(c, alice, "alice first")
	f.advance(time.Minute)
	t2 := f.tweet(c, bob, "bob first")
	f.advance(time.Minute)
	t3 := f.tweet(c, carol, "carol first")
	f.advance(time.Minute)
	t4 := f.tweet(c, bob, "bob second")

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)

	// own and followed tweets, newest first; carol is not followed
	assert.Equal(t, []string{t4.ID, t2.ID, t1.ID}, tweetIDs(timeline))
	for _, d := range timeline {
		assert.NotEqual(t, t3.ID, d.ID)
	}
}

func TestTimelineTieBreak(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")

	// identical timestamps: later insertion wins
	t1 := f.tweet(c, alice, "first")
	t2 := f.tweet(c, alice, "second")
	t3 := f.tweet(c, alice, "third")

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{t3.ID, t2.ID, t1.ID}, tweetIDs(timeline))
}

func TestTimelineReplies(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")
	carol := f.signup(c, "carol")

	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	parent := f.tweet(c, alice, "question")
	carolTweet := f.tweet(c, carol, "unrelated")

	toAlice, err := f.proc.CreateTweet(c, bob, "answer for alice", "", parent.ID)
	require.NoError(t, err)
	_, err = f.proc.CreateTweet(c, bob, "aside for carol", "", carolTweet.ID)
	require.NoError(t, err)

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)

	// replies appear only when addressed to the viewer
	ids := tweetIDs(timeline)
	assert.Contains(t, ids, toAlice.ID)
	assert.Equal(t, []string{toAlice.ID, parent.ID}, ids)
}

func TestTimelineShowsRetweets(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")
	carol := f.signup(c, "carol")

	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	original := f.tweet(c, carol, "worth sharing")
	f.advance(time.Minute)
	_, err := f.proc.Retweet(c, bob, original.ID)
	require.NoError(t, err)

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)
	require.Len(t, timeline, 1)

	// the wrapper renders as the original, annotated with the retweeter
	got := timeline[0]
	assert.Equal(t, original.ID, got.ID)
	assert.Equal(t, "worth sharing", got.Content)
	require.NotNil(t, got.Author)
	assert.Equal(t, carol.ID, got.Author.ID)
	require.NotNil(t, got.RetweetedBy)
	assert.Equal(t, bob.ID, got.RetweetedBy.ID)
	assert.Equal(t, 1, got.RetweetCount)
}

func TestResolverFallsBackToWrapper(t *testing.T) {
	c := context.Background()

	t.Run("original missing", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

		wrapper := &Tweet{
			ID:        "wrapperwrapper01",
			AuthorID:  bob.ID,
			RetweetOf: "missingmissing01",
			CreatedAt: f.now(),
		}
		require.NoError(t, memTweets{f.store}.CreateRetweet(c, wrapper))

		got, err := f.proc.resolveTweet(c, wrapper, alice)
		require.NoError(t, err)
		assert.Equal(t, wrapper.ID, got.ID)
		assert.Nil(t, got.RetweetedBy)
		require.NotNil(t, got.Author)
		assert.Equal(t, bob.ID, got.Author.ID)

		// the fallback never breaks the surrounding list either
		timeline, err := f.proc.Timeline(c, alice)
		require.NoError(t, err)
		assert.Equal(t, []string{wrapper.ID}, tweetIDs(timeline))
	})

	t.Run("original deleted without cascade", func(t *testing.T) {
		f := newFixture()
		alice := f.signup(c, "alice")
		bob := f.signup(c, "bob")
		carol := f.signup(c, "carol")
		require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

		original := f.tweet(c, carol, "short lived")
		wrapper, err := f.proc.Retweet(c, bob, original.ID)
		require.NoError(t, err)
		require.NoError(t, memTweets{f.store}.SoftDelete(c, original.ID))

		got, err := f.proc.resolveTweet(c, wrapper, alice)
		require.NoError(t, err)
		assert.Equal(t, wrapper.ID, got.ID)
		assert.Nil(t, got.RetweetedBy)
	})
}

func TestTimelineHidesDeleted(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	kept := f.tweet(c, bob, "kept")
	deleted := f.tweet(c, bob, "deleted")
	require.NoError(t, f.proc.DeleteTweet(c, deleted.ID, bob))

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{kept.ID}, tweetIDs(timeline))
}

func TestTimelineHidesRetweetsOfDeleted(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")
	carol := f.signup(c, "carol")

	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	original := f.tweet(c, carol, "short lived")
	_, err := f.proc.Retweet(c, bob, original.ID)
	require.NoError(t, err)
	require.NoError(t, f.proc.DeleteTweet(c, original.ID, carol))

	timeline, err := f.proc.Timeline(c, alice)
	require.NoError(t, err)
	assert.Empty(t, timeline)
}

func TestProfileTweets(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	top := f.tweet(c, alice, "top level")
	parent := f.tweet(c, bob, "parent")
	_, err := f.proc.CreateTweet(c, alice, "a reply", "", parent.ID)
	require.NoError(t, err)
	f.advance(time.Minute)
	deleted := f.tweet(c, alice, "gone")
	require.NoError(t, f.proc.DeleteTweet(c, deleted.ID, alice))

	t.Run("replies and deleted excluded", func(t *testing.T) {
		tweets, err := f.proc.ProfileTweets(c, alice.ID, bob, false)
		require.NoError(t, err)
		assert.Equal(t, []string{top.ID}, tweetIDs(tweets))
	})

	t.Run("admins see deleted tweets", func(t *testing.T) {
		admin := f.signup(c, "admin")
		admin.IsAdmin = true
		require.NoError(t, f.store.Update(c, admin))

		tweets, err := f.proc.ProfileTweets(c, alice.ID, admin, true)
		require.NoError(t, err)
		assert.Equal(t, []string{deleted.ID, top.ID}, tweetIDs(tweets))
	})
}

func TestLikedTweetsOrder(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	t1 := f.tweet(c, bob, "one")
	t2 := f.tweet(c, bob, "two")
	t3 := f.tweet(c, bob, "three")

	// liked in creation order: the page lists the most recent like first
	require.NoError(t, f.proc.Like(c, alice, t1.ID))
	require.NoError(t, f.proc.Like(c, alice, t2.ID))
	require.NoError(t, f.proc.Like(c, alice, t3.ID))

	liked, err := f.proc.LikedTweets(c, alice.ID, alice, false)
	require.NoError(t, err)
	assert.Equal(t, []string{t3.ID, t2.ID, t1.ID}, tweetIDs(liked))

	for _, d := range liked {
		assert.True(t, d.Liked)
		assert.Equal(t, 1, d.LikeCount)
	}
}

func TestReplies(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	parent := f.tweet(c, alice, "parent")
	r1, err := f.proc.CreateTweet(c, bob, "first reply", "", parent.ID)
	require.NoError(t, err)
	r2, err := f.proc.CreateTweet(c, alice, "second reply", "", parent.ID)
	require.NoError(t, err)
	require.NoError(t, f.proc.DeleteTweet(c, r2.ID, alice))

	replies, err := f.proc.Replies(c, parent.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{r1.ID}, tweetIDs(replies))

	view, err := f.proc.ViewTweet(c, parent.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, 1, view.ReplyCount)
}

func TestViewTweet(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")

	tweet := f.tweet(c, alice, "hello")
	require.NoError(t, f.proc.Like(c, bob, tweet.ID))

	t.Run("viewer flags", func(t *testing.T) {
		view, err := f.proc.ViewTweet(c, tweet.ID, bob)
		require.NoError(t, err)
		assert.True(t, view.Liked)
		assert.False(t, view.Retweeted)
		assert.Equal(t, 1, view.LikeCount)
	})

	t.Run("deleted hidden from regular viewers", func(t *testing.T) {
		deleted := f.tweet(c, alice, "bye")
		require.NoError(t, f.proc.DeleteTweet(c, deleted.ID, alice))

		_, err := f.proc.ViewTweet(c, deleted.ID, bob)
		assert.ErrorIs(t, err, ErrTweetNotFound)

		admin := f.signup(c, "admin")
		admin.IsAdmin = true
		require.NoError(t, f.store.Update(c, admin))

		view, err := f.proc.ViewTweet(c, deleted.ID, admin)
		require.NoError(t, err)
		assert.True(t, view.IsDeleted)
	})
}
