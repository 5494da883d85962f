package retweet

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// memStore is an in-memory implementation of every store interface, with
// the same uniqueness and atomicity guarantees the sqlite layer gives.
// Lists are kept in insertion order.
type memStore struct {
	mu             sync.Mutex
	accounts       []*Account
	tweets         []*Tweet
	follows        []followRow
	likes          []likeRow
	media          []*Media
	authTokens     []*AuthToken
	recoveryTokens []*RecoveryToken
	subs           []*PushSubscription
}

type followRow struct {
	followerID string
	followeeID string
}

type likeRow struct {
	accountID string
	tweetID   string
}

func newMemStore() *memStore {
	return &memStore{}
}

// account

func (s *memStore) Create(c context.Context, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		switch {
		case a.ID == account.ID:
			return ErrIDExists
		case a.Username == account.Username:
			return ErrUsernameTaken
		case a.Email == account.Email:
			return ErrEmailTaken
		}
	}
	clone := *account
	s.accounts = append(s.accounts, &clone)
	return nil
}

func (s *memStore) Find(c context.Context, id string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) FindByUsername(c context.Context, username string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) FindByEmail(c context.Context, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) Update(c context.Context, account *Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.accounts {
		if a.ID == account.ID {
			clone := *account
			s.accounts[i] = &clone
			return nil
		}
	}
	return ErrNotFound
}

// tweets

type memTweets struct{ *memStore }

func (s memTweets) Create(c context.Context, tweet *Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertTweet(tweet)
}

func (s memTweets) CreateRetweet(c context.Context, wrapper *Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tweets {
		if t.AuthorID == wrapper.AuthorID && t.RetweetOf == wrapper.RetweetOf && !t.IsDeleted {
			return ErrAlreadyRetweeted
		}
	}
	return s.insertTweet(wrapper)
}

func (s memTweets) insertTweet(tweet *Tweet) error {
	for _, t := range s.tweets {
		if t.ID == tweet.ID {
			return ErrIDExists
		}
	}
	clone := *tweet
	s.tweets = append(s.tweets, &clone)
	return nil
}

func (s memTweets) Find(c context.Context, id string) (*Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tweets {
		if t.ID == id {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s memTweets) FindRetweet(c context.Context, authorID, originalID string) (*Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tweets {
		if t.AuthorID == authorID && t.RetweetOf == originalID && !t.IsDeleted {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s memTweets) ListByAuthors(c context.Context, authorIDs []string) ([]*Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Tweet
	for _, t := range s.tweets {
		for _, id := range authorIDs {
			if t.AuthorID == id {
				clone := *t
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

func (s memTweets) ListReplies(c context.Context, tweetID string) ([]*Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Tweet
	for _, t := range s.tweets {
		if t.RepliesTo == tweetID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (s memTweets) ListRetweeters(c context.Context, tweetID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, t := range s.tweets {
		if t.RetweetOf == tweetID && !t.IsDeleted {
			out = append(out, t.AuthorID)
		}
	}
	return out, nil
}

func (s memTweets) CountReplies(c context.Context, tweetID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, t := range s.tweets {
		if t.RepliesTo == tweetID && !t.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (s memTweets) SoftDelete(c context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tweets {
		if t.ID == id {
			t.IsDeleted = true
			return nil
		}
	}
	return ErrNotFound
}

func (s memTweets) SoftDeleteWithRetweets(c context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for _, t := range s.tweets {
		if t.ID == id {
			t.IsDeleted = true
			found = true
		}
	}
	if !found {
		return ErrNotFound
	}
	for _, t := range s.tweets {
		if t.RetweetOf == id {
			t.IsDeleted = true
		}
	}
	return nil
}

// follows

type memFollows struct{ *memStore }

func (s memFollows) Follow(c context.Context, followerID, followeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.follows {
		if f.followerID == followerID && f.followeeID == followeeID {
			return ErrAlreadyFollowing
		}
	}
	s.follows = append(s.follows, followRow{followerID: followerID, followeeID: followeeID})
	return nil
}

func (s memFollows) Unfollow(c context.Context, followerID, followeeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.follows {
		if f.followerID == followerID && f.followeeID == followeeID {
			s.follows = append(s.follows[:i], s.follows[i+1:]...)
			return nil
		}
	}
	return ErrNotFollowing
}

func (s memFollows) IsFollowing(c context.Context, followerID, followeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.follows {
		if f.followerID == followerID && f.followeeID == followeeID {
			return true, nil
		}
	}
	return false, nil
}

func (s memFollows) ListFollows(c context.Context, accountID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, f := range s.follows {
		if f.followerID == accountID {
			out = append(out, f.followeeID)
		}
	}
	return out, nil
}

func (s memFollows) ListFollowers(c context.Context, accountID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, f := range s.follows {
		if f.followeeID == accountID {
			out = append(out, f.followerID)
		}
	}
	return out, nil
}

// likes

type memLikes struct{ *memStore }

func (s memLikes) Like(c context.Context, accountID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.accountID == accountID && l.tweetID == tweetID {
			return ErrAlreadyLiked
		}
	}
	s.likes = append(s.likes, likeRow{accountID: accountID, tweetID: tweetID})
	return nil
}

func (s memLikes) Unlike(c context.Context, accountID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.likes {
		if l.accountID == accountID && l.tweetID == tweetID {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

func (s memLikes) IsLiked(c context.Context, accountID, tweetID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.likes {
		if l.accountID == accountID && l.tweetID == tweetID {
			return true, nil
		}
	}
	return false, nil
}

func (s memLikes) ListLiked(c context.Context, accountID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for i := len(s.likes) - 1; i >= 0; i-- {
		if s.likes[i].accountID == accountID {
			out = append(out, s.likes[i].tweetID)
		}
	}
	return out, nil
}

func (s memLikes) ListLikers(c context.Context, tweetID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, l := range s.likes {
		if l.tweetID == tweetID {
			out = append(out, l.accountID)
		}
	}
	return out, nil
}

// media

type memMedia struct{ *memStore }

func (s memMedia) Create(c context.Context, media *Media) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.media {
		if m.ID == media.ID {
			return ErrIDExists
		}
	}
	clone := *media
	s.media = append(s.media, &clone)
	return nil
}

func (s memMedia) Find(c context.Context, id string) (*Media, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.media {
		if m.ID == id {
			clone := *m
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s memMedia) AttachTweet(c context.Context, mediaID, tweetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.media {
		if m.ID == mediaID {
			m.TweetID = tweetID
			return nil
		}
	}
	return ErrNotFound
}

func (s memMedia) SoftDelete(c context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.media {
		if m.ID == id {
			m.IsDeleted = true
			return nil
		}
	}
	return ErrNotFound
}

// auth tokens

type memAuthTokens struct{ *memStore }

func (s memAuthTokens) Create(c context.Context, token *AuthToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.authTokens {
		if t.Token == token.Token {
			return ErrTokenExists
		}
	}
	clone := *token
	s.authTokens = append(s.authTokens, &clone)
	return nil
}

func (s memAuthTokens) Find(c context.Context, token string) (*AuthToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.authTokens {
		if t.Token == token {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s memAuthTokens) Delete(c context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.authTokens {
		if t.Token == token {
			s.authTokens = append(s.authTokens[:i], s.authTokens[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s memAuthTokens) DeleteByAccount(c context.Context, accountID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.authTokens[:0]
	for _, t := range s.authTokens {
		if t.AccountID != accountID {
			kept = append(kept, t)
		}
	}
	s.authTokens = kept
	return nil
}

// recovery tokens

type memRecoveryTokens struct{ *memStore }

func (s memRecoveryTokens) Replace(c context.Context, token *RecoveryToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.recoveryTokens {
		if t.Token == token.Token && t.AccountID != token.AccountID {
			return ErrTokenExists
		}
	}
	kept := s.recoveryTokens[:0]
	for _, t := range s.recoveryTokens {
		if t.AccountID != token.AccountID {
			kept = append(kept, t)
		}
	}
	clone := *token
	s.recoveryTokens = append(kept, &clone)
	return nil
}

func (s memRecoveryTokens) Find(c context.Context, token string) (*RecoveryToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.recoveryTokens {
		if t.Token == token {
			clone := *t
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s memRecoveryTokens) Delete(c context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.recoveryTokens {
		if t.Token == token {
			s.recoveryTokens = append(s.recoveryTokens[:i], s.recoveryTokens[i+1:]...)
			return nil
		}
	}
	return nil
}

// push subscriptions

type memSubs struct{ *memStore }

func (s memSubs) Save(c context.Context, sub *PushSubscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.subs {
		if existing.Endpoint == sub.Endpoint {
			clone := *sub
			s.subs[i] = &clone
			return nil
		}
	}
	clone := *sub
	s.subs = append(s.subs, &clone)
	return nil
}

func (s memSubs) ListByAccounts(c context.Context, accountIDs []string) ([]*PushSubscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*PushSubscription
	for _, sub := range s.subs {
		for _, id := range accountIDs {
			if sub.AccountID == id {
				clone := *sub
				out = append(out, &clone)
				break
			}
		}
	}
	return out, nil
}

func (s memSubs) Delete(c context.Context, endpoint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.Endpoint == endpoint {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return nil
		}
	}
	return nil
}

// recorders

// recordNotifier records every push; gone endpoints report
// ErrSubscriptionGone so pruning can be exercised.
type recordNotifier struct {
	mu     sync.Mutex
	pushes []*Notification
	gone   map[string]bool
	pushed chan struct{}
}

func newRecordNotifier() *recordNotifier {
	return &recordNotifier{
		gone:   map[string]bool{},
		pushed: make(chan struct{}, 64),
	}
}

func (n *recordNotifier) Push(c context.Context, sub *PushSubscription, notification *Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.gone[sub.Endpoint] {
		n.pushed <- struct{}{}
		return ErrSubscriptionGone
	}
	n.pushes = append(n.pushes, notification)
	n.pushed <- struct{}{}
	return nil
}

type recordMailer struct {
	mu    sync.Mutex
	to    []string
	links []string
}

func (m *recordMailer) SendRecovery(c context.Context, to, username, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = append(m.to, to)
	m.links = append(m.links, link)
	return nil
}

// fixture

type fixture struct {
	store    *memStore
	tokens   *TokenManager
	proc     *Processor
	notifier *recordNotifier
	mailer   *recordMailer
	clock    time.Time
}

func newFixture() *fixture {
	log := zerolog.Nop()
	store := newMemStore()
	notifier := newRecordNotifier()
	mailer := &recordMailer{}
	cfg := &Config{SoftwareName: "retweet", Host: "localhost:8080"}

	tokens := NewTokenManager(&log, store, memAuthTokens{store}, memRecoveryTokens{store})
	proc := NewProcessor(cfg, &log, tokens, store,
		memTweets{store}, memFollows{store}, memLikes{store},
		memMedia{store}, memSubs{store}, notifier, mailer)

	f := &fixture{
		store:    store,
		tokens:   tokens,
		proc:     proc,
		notifier: notifier,
		mailer:   mailer,
		clock:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	tokens.now = f.now
	proc.now = f.now
	return f
}

func (f *fixture) now() time.Time { return f.clock }

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

func (f *fixture) signup(c context.Context, username string) *Account {
	account, _, err := f.proc.Signup(c, username, username+"@example.com", "secret123", "ua", "127.0.0.1")
	if err != nil {
		panic(err)
	}
	return account
}

func (f *fixture) tweet(c context.Context, author *Account, content string) *Tweet {
	tweet, err := f.proc.CreateTweet(c, author, content, "", "")
	if err != nil {
		panic(err)
	}
	return tweet
}
