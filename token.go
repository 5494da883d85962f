package retweet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RecoveryTokenTTL is how long a password recovery token stays usable.
const RecoveryTokenTTL = 300 * time.Second

type TokenManager struct {
	log            *zerolog.Logger
	accounts       AccountStore
	authTokens     AuthTokenStore
	recoveryTokens RecoveryTokenStore
	now            func() time.Time
}

func NewTokenManager(
	log *zerolog.Logger,
	accounts AccountStore,
	authTokens AuthTokenStore,
	recoveryTokens RecoveryTokenStore,
) *TokenManager {
	return &TokenManager{
		log:            log,
		accounts:       accounts,
		authTokens:     authTokens,
		recoveryTokens: recoveryTokens,
		now:            time.Now,
	}
}

// IssueAuthToken creates a session token bound to the user agent and ip it
// was issued for. Auth tokens do not expire by time, only by revocation or
// by a user-agent/ip mismatch at validation.
func (m *TokenManager) IssueAuthToken(c context.Context, accountID, userAgent, ip string) (string, error) {
	for {
		token := generateToken()
		err := m.authTokens.Create(c, &AuthToken{
			AccountID: accountID,
			Token:     token,
			IssuedAt:  m.now(),
			UserAgent: userAgent,
			IP:        ip,
		})
		if errors.Is(err, ErrTokenExists) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to save auth token: %w", err)
		}
		m.log.Info().Str("account_id", accountID).Str("user_agent", userAgent).Str("ip", ip).
			Msg("issued auth token")
		return token, nil
	}
}

// ValidateAuthToken resolves a token to its account. The token is revoked
// when both the user agent and the ip differ from the ones recorded at
// issuance; a single mismatch is tolerated.
func (m *TokenManager) ValidateAuthToken(c context.Context, token, userAgent, ip string) (*Account, error) {
	at, err := m.authTokens.Find(c, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to find auth token: %w", err)
	}

	if at.UserAgent != userAgent && at.IP != ip {
		if err := m.authTokens.Delete(c, token); err != nil {
			return nil, fmt.Errorf("failed to revoke auth token: %w", err)
		}
		m.log.Warn().Str("account_id", at.AccountID).Str("user_agent", userAgent).Str("ip", ip).
			Msg("auth token revoked on user-agent/ip mismatch")
		return nil, ErrTokenInvalid
	}

	account, err := m.accounts.Find(c, at.AccountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.IsDeleted || account.IsSuspended {
		if err := m.authTokens.Delete(c, token); err != nil {
			return nil, fmt.Errorf("failed to revoke auth token: %w", err)
		}
		return nil, ErrTokenInvalid
	}
	return account, nil
}

func (m *TokenManager) RevokeAuthToken(c context.Context, token string) error {
	return m.authTokens.Delete(c, token)
}

func (m *TokenManager) RevokeAccountTokens(c context.Context, accountID string) error {
	return m.authTokens.DeleteByAccount(c, accountID)
}

// IssueRecoveryToken replaces any live recovery token of the account, so at
// most one is valid at a time.
func (m *TokenManager) IssueRecoveryToken(c context.Context, accountID string) (string, error) {
	for {
		token := generateToken()
		err := m.recoveryTokens.Replace(c, &RecoveryToken{
			AccountID: accountID,
			Token:     token,
			IssuedAt:  m.now(),
		})
		if errors.Is(err, ErrTokenExists) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to save recovery token: %w", err)
		}
		m.log.Info().Str("account_id", accountID).Msg("issued recovery token")
		return token, nil
	}
}

// ValidateRecoveryToken returns the owning account id. The caller deletes
// the token once the password change went through.
func (m *TokenManager) ValidateRecoveryToken(c context.Context, token string) (string, error) {
	rt, err := m.recoveryTokens.Find(c, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrTokenInvalid
		}
		return "", fmt.Errorf("failed to find recovery token: %w", err)
	}
	if m.now().Sub(rt.IssuedAt) > RecoveryTokenTTL {
		return "", ErrTokenExpired
	}
	return rt.AccountID, nil
}

func (m *TokenManager) ConsumeRecoveryToken(c context.Context, token string) error {
	return m.recoveryTokens.Delete(c, token)
}
