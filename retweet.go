package retweet

import (
	"crypto/rand"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"
)

type Account struct {
	ID          string
	Username    string
	DisplayName string
	Email       string
	// Password holds the bcrypt hash, never the clear text.
	Password    string
	CreatedAt   time.Time
	AvatarID    string
	BannerID    string
	Bio         string
	Website     string
	Location    string
	IsAdmin     bool
	IsSuspended bool
	IsDeleted   bool
}

// Name returns the string shown for the account in the UI.
func (a *Account) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

type Tweet struct {
	ID       string
	Content  string
	AuthorID string
	MediaID  string
	// RetweetOf holds the id of the original tweet when this tweet is a
	// retweet wrapper. A wrapper carries no content of its own.
	RetweetOf       string
	RepliesTo       string
	RepliesToAuthor string
	CreatedAt       time.Time
	IsDeleted       bool
}

func (t *Tweet) IsRetweet() bool { return t.RetweetOf != "" }

func (t *Tweet) IsReply() bool { return t.RepliesTo != "" }

type MediaType int

const (
	MediaTypeAvatar MediaType = iota
	MediaTypeBanner
	MediaTypeAttachment
)

// Media is an uploaded file owned by exactly one account (avatar, banner)
// or one tweet (attachment).
type Media struct {
	ID        string
	File      string
	Type      MediaType
	AccountID string
	TweetID   string
	CreatedAt time.Time
	IsDeleted bool
}

type AuthToken struct {
	AccountID string
	Token     string
	IssuedAt  time.Time
	UserAgent string
	IP        string
}

type RecoveryToken struct {
	AccountID string
	Token     string
	IssuedAt  time.Time
}

type PushSubscription struct {
	AccountID string
	Endpoint  string
	P256dh    string
	Auth      string
}

// DisplayTweet is a tweet prepared for a viewer: retweet wrappers are
// replaced by their original annotated with RetweetedBy, and the
// denormalized counters are attached.
type DisplayTweet struct {
	*Tweet
	Author       *Account
	RetweetedBy  *Account
	LikeCount    int
	RetweetCount int
	ReplyCount   int
	Liked        bool
	Retweeted    bool
}

const (
	idLength   = 16
	idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_-"

	tokenLength   = 32
	tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ@$!"
)

var usernamePattern = regexp.MustCompile(`^[0-9A-Za-z_]{3,16}$`)

// generateID - entity ID generation. Uniqueness is enforced by the store;
// creation paths retry on ErrIDExists.
func generateID() string {
	return randomString(idLength, idAlphabet)
}

func generateToken() string {
	return randomString(tokenLength, tokenAlphabet)
}

func randomString(n int, alphabet string) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}

// GenerateSortableID returns an id whose lexical order follows creation
// order. Membership rows (follows, likes) use it so insertion order can be
// recovered at query time. The shared monotonic entropy source keeps
// concurrent ids distinct and strictly increasing.
func GenerateSortableID() string {
	return ulid.Make().String()
}

// Persisted wrapper encoding. A retweet is stored compactly as a tweet whose
// content is the sentinel "//RT:<original id>"; the sentinel never leaves
// the storage layer.
var retweetContentPattern = regexp.MustCompile(`^//RT:[0-9A-Za-z_-]{16}$`)

func EncodeRetweetContent(originalID string) string {
	return "//RT:" + originalID
}

// ParseRetweetContent returns the referenced original id and whether the
// content is a wrapper sentinel.
func ParseRetweetContent(content string) (string, bool) {
	if !retweetContentPattern.MatchString(content) {
		return "", false
	}
	return content[len("//RT:"):], true
}
