package retweet

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupValidation(t *testing.T) {
	c := context.Background()

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"username too short", "ab", "ab@example.com", "secret123"},
		{"username too long", strings.Repeat("a", 17), "long@example.com", "secret123"},
		{"username with symbols", "al!ce", "alice@example.com", "secret123"},
		{"email without at sign", "alice", "alice.example.com", "secret123"},
		{"empty password", "alice", "alice@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, _, err := f.proc.Signup(c, tt.username, tt.email, tt.password, "ua", "127.0.0.1")
			assert.True(t, IsKind(err, KindValidation), "want validation error, got %v", err)
		})
	}
}

func TestSignupConflicts(t *testing.T) {
	c := context.Background()
	f := newFixture()
	f.signup(c, "alice")

	_, _, err := f.proc.Signup(c, "alice", "other@example.com", "secret123", "ua", "127.0.0.1")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, _, err = f.proc.Signup(c, "alice2", "alice@example.com", "secret123", "ua", "127.0.0.1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	stored, err := f.store.Find(c, account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestLogin(t *testing.T) {
	c := context.Background()

	t.Run("success issues a token", func(t *testing.T) {
		f := newFixture()
		f.signup(c, "alice")

		account, token, err := f.proc.Login(c, "alice", "secret123", "ua", "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, "alice", account.Username)
		assert.NotEmpty(t, token)

		got, err := f.tokens.ValidateAuthToken(c, token, "ua", "127.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture()
		f.signup(c, "alice")
		_, _, err := f.proc.Login(c, "alice", "wrong", "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		f := newFixture()
		_, _, err := f.proc.Login(c, "nobody", "secret123", "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("deleted account looks like bad credentials", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		require.NoError(t, f.proc.DeleteAccount(c, account.ID))
		_, _, err := f.proc.Login(c, "alice", "secret123", "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("suspended account is told so", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		account.IsSuspended = true
		require.NoError(t, f.store.Update(c, account))
		_, _, err := f.proc.Login(c, "alice", "secret123", "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrAccountSuspended)
	})
}

func TestPasswordRecoveryFlow(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	require.NoError(t, f.proc.RequestRecovery(c, "alice@example.com"))
	require.Len(t, f.mailer.links, 1)
	assert.Equal(t, "alice@example.com", f.mailer.to[0])

	link := f.mailer.links[0]
	require.Contains(t, link, "/recover?ut=")
	token := link[strings.Index(link, "ut=")+len("ut="):]

	require.NoError(t, f.proc.RenewPassword(c, token, "newsecret"))

	_, _, err := f.proc.Login(c, "alice", "secret123", "ua", "127.0.0.1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	got, _, err := f.proc.Login(c, "alice", "newsecret", "ua", "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)

	// the token is single use
	err = f.proc.RenewPassword(c, token, "another")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRequestRecoveryUnknownEmail(t *testing.T) {
	c := context.Background()
	f := newFixture()
	err := f.proc.RequestRecovery(c, "nobody@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Empty(t, f.mailer.links)
}

func TestUpdateProfile(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	name := "Alice Liddell"
	bio := "down the rabbit hole"
	updated, err := f.proc.UpdateProfile(c, account.ID, ProfileUpdate{
		DisplayName: &name,
		Bio:         &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.DisplayName)
	assert.Equal(t, bio, updated.Bio)

	// untouched fields keep their value
	site := "https://example.com"
	updated, err = f.proc.UpdateProfile(c, account.ID, ProfileUpdate{Website: &site})
	require.NoError(t, err)
	assert.Equal(t, name, updated.DisplayName)
	assert.Equal(t, site, updated.Website)

	tooLong := strings.Repeat("x", MaxBioLength+1)
	_, err = f.proc.UpdateProfile(c, account.ID, ProfileUpdate{Bio: &tooLong})
	assert.True(t, IsKind(err, KindValidation))

	// limits count runes, not bytes
	multibyte := strings.Repeat("あ", MaxBioLength)
	_, err = f.proc.UpdateProfile(c, account.ID, ProfileUpdate{Bio: &multibyte})
	assert.NoError(t, err)
}

func TestSetProfileMediaReplacesPrevious(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	first, err := f.proc.SetProfileMedia(c, account.ID, "a.png", MediaTypeAvatar)
	require.NoError(t, err)
	second, err := f.proc.SetProfileMedia(c, account.ID, "b.png", MediaTypeAvatar)
	require.NoError(t, err)

	updated, err := f.store.Find(c, account.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.AvatarID)

	old, err := memMedia{f.store}.Find(c, first.ID)
	require.NoError(t, err)
	assert.True(t, old.IsDeleted)
}

func TestDeleteAccountRevokesSessions(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account, token, err := f.proc.Signup(c, "alice", "alice@example.com", "secret123", "ua", "127.0.0.1")
	require.NoError(t, err)

	require.NoError(t, f.proc.DeleteAccount(c, account.ID))

	_, err = f.tokens.ValidateAuthToken(c, token, "ua", "127.0.0.1")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	err = f.proc.DeleteAccount(c, account.ID)
	assert.ErrorIs(t, err, ErrAlreadyDeleted)
}

func TestViewProfile(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")
	bob := f.signup(c, "bob")
	carol := f.signup(c, "carol")

	require.NoError(t, f.proc.Follow(c, bob.ID, alice.ID))
	require.NoError(t, f.proc.Follow(c, carol.ID, alice.ID))
	require.NoError(t, f.proc.Follow(c, alice.ID, bob.ID))

	view, err := f.proc.ViewProfile(c, bob, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, view.Follows)
	assert.Equal(t, 2, view.Followers)
	assert.True(t, view.Followed)

	view, err = f.proc.ViewProfile(c, carol, "bob")
	require.NoError(t, err)
	assert.False(t, view.Followed)

	_, err = f.proc.ViewProfile(c, bob, "nobody")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRetweetContentCodec(t *testing.T) {
	id := "abcdEFGH1234_-56"
	encoded := EncodeRetweetContent(id)

	got, ok := ParseRetweetContent(encoded)
	require.True(t, ok)
	assert.Equal(t, id, got)

	for _, content := range []string{
		"just a tweet",
		"//RT:short",
		"//RT:" + id + " trailing",
		"prefix //RT:" + id,
		"",
	} {
		_, ok := ParseRetweetContent(content)
		assert.False(t, ok, "content %q must not parse as a wrapper", content)
	}
}

func TestCreateTweetRejectsWrapperShapedContent(t *testing.T) {
	c := context.Background()
	f := newFixture()
	alice := f.signup(c, "alice")

	_, err := f.proc.CreateTweet(c, alice, "//RT:abcdEFGH1234_-56", "", "")
	assert.True(t, IsKind(err, KindValidation))
}
