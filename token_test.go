package retweet

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthTokenValidation(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	token, err := f.tokens.IssueAuthToken(c, account.ID, "firefox", "10.0.0.1")
	require.NoError(t, err)

	t.Run("matching user agent and ip", func(t *testing.T) {
		got, err := f.tokens.ValidateAuthToken(c, token, "firefox", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("ip changed only", func(t *testing.T) {
		got, err := f.tokens.ValidateAuthToken(c, token, "firefox", "10.0.0.99")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("user agent changed only", func(t *testing.T) {
		got, err := f.tokens.ValidateAuthToken(c, token, "chrome", "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, account.ID, got.ID)
	})

	t.Run("both changed revokes the token", func(t *testing.T) {
		_, err := f.tokens.ValidateAuthToken(c, token, "chrome", "10.0.0.99")
		assert.ErrorIs(t, err, ErrTokenInvalid)

		// revoked for good, the original client is locked out too
		_, err = f.tokens.ValidateAuthToken(c, token, "firefox", "10.0.0.1")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestAuthTokenRejectsUnusableAccounts(t *testing.T) {
	c := context.Background()

	t.Run("suspended", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		token, err := f.tokens.IssueAuthToken(c, account.ID, "ua", "127.0.0.1")
		require.NoError(t, err)

		account.IsSuspended = true
		require.NoError(t, f.store.Update(c, account))

		_, err = f.tokens.ValidateAuthToken(c, token, "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		token, err := f.tokens.IssueAuthToken(c, account.ID, "ua", "127.0.0.1")
		require.NoError(t, err)

		require.NoError(t, f.proc.DeleteAccount(c, account.ID))

		_, err = f.tokens.ValidateAuthToken(c, token, "ua", "127.0.0.1")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestRevokeAccountTokens(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	t1, err := f.tokens.IssueAuthToken(c, account.ID, "firefox", "10.0.0.1")
	require.NoError(t, err)
	t2, err := f.tokens.IssueAuthToken(c, account.ID, "chrome", "10.0.0.2")
	require.NoError(t, err)

	require.NoError(t, f.tokens.RevokeAccountTokens(c, account.ID))

	_, err = f.tokens.ValidateAuthToken(c, t1, "firefox", "10.0.0.1")
	assert.ErrorIs(t, err, ErrTokenInvalid)
	_, err = f.tokens.ValidateAuthToken(c, t2, "chrome", "10.0.0.2")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRecoveryTokenLifetime(t *testing.T) {
	c := context.Background()

	t.Run("valid just before the deadline", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		token, err := f.tokens.IssueRecoveryToken(c, account.ID)
		require.NoError(t, err)

		f.advance(RecoveryTokenTTL - time.Second)
		got, err := f.tokens.ValidateRecoveryToken(c, token)
		require.NoError(t, err)
		assert.Equal(t, account.ID, got)
	})

	t.Run("expired just after the deadline", func(t *testing.T) {
		f := newFixture()
		account := f.signup(c, "alice")
		token, err := f.tokens.IssueRecoveryToken(c, account.ID)
		require.NoError(t, err)

		f.advance(RecoveryTokenTTL + time.Second)
		_, err = f.tokens.ValidateRecoveryToken(c, token)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestRecoveryTokenSingleUse(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	token, err := f.tokens.IssueRecoveryToken(c, account.ID)
	require.NoError(t, err)

	_, err = f.tokens.ValidateRecoveryToken(c, token)
	require.NoError(t, err)
	require.NoError(t, f.tokens.ConsumeRecoveryToken(c, token))

	_, err = f.tokens.ValidateRecoveryToken(c, token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRecoveryTokenReplacesPrevious(t *testing.T) {
	c := context.Background()
	f := newFixture()
	account := f.signup(c, "alice")

	first, err := f.tokens.IssueRecoveryToken(c, account.ID)
	require.NoError(t, err)
	second, err := f.tokens.IssueRecoveryToken(c, account.ID)
	require.NoError(t, err)

	_, err = f.tokens.ValidateRecoveryToken(c, first)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	got, err := f.tokens.ValidateRecoveryToken(c, second)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got)
}
