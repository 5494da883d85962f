package retweet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Processor implements every operation the routing layer calls. It holds no
// mutable state of its own; all state lives behind the store interfaces.
type Processor struct {
	log      *zerolog.Logger
	baseURL  string
	tokens   *TokenManager
	accounts AccountStore
	tweets   TweetStore
	follows  FollowStore
	likes    LikeStore
	media    MediaStore
	subs     PushSubscriptionStore
	notifier Notifier
	mailer   Mailer
	now      func() time.Time
}

func NewProcessor(
	cfg *Config,
	log *zerolog.Logger,
	tokens *TokenManager,
	accounts AccountStore,
	tweets TweetStore,
	follows FollowStore,
	likes LikeStore,
	media MediaStore,
	subs PushSubscriptionStore,
	notifier Notifier,
	mailer Mailer,
) *Processor {
	return &Processor{
		log:      log,
		baseURL:  cfg.BaseURL(),
		tokens:   tokens,
		accounts: accounts,
		tweets:   tweets,
		follows:  follows,
		likes:    likes,
		media:    media,
		subs:     subs,
		notifier: notifier,
		mailer:   mailer,
		now:      time.Now,
	}
}

// Signup - creates an account and returns it together with a fresh auth
// token for the new session.
func (p *Processor) Signup(c context.Context, username, email, password, userAgent, ip string) (*Account, string, error) {
	if !usernamePattern.MatchString(username) {
		return nil, "", Validation("username must be 3-16 characters, letters, numbers and underscores only")
	}
	if !strings.Contains(email, "@") {
		return nil, "", Validation("invalid email address")
	}
	if password == "" {
		return nil, "", Validation("password is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	account := &Account{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: p.now(),
	}
	for {
		account.ID = generateID()
		err := p.accounts.Create(c, account)
		if errors.Is(err, ErrIDExists) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		break
	}
	p.log.Info().Str("account_id", account.ID).Str("username", username).Msg("account created")

	token, err := p.tokens.IssueAuthToken(c, account.ID, userAgent, ip)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login - verifies the credentials and returns a fresh auth token.
func (p *Processor) Login(c context.Context, username, password, userAgent, ip string) (*Account, string, error) {
	account, err := p.accounts.FindByUsername(c, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find account: %w", err)
	}
	if account.IsDeleted {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}
	if account.IsSuspended {
		return nil, "", ErrAccountSuspended
	}

	token, err := p.tokens.IssueAuthToken(c, account.ID, userAgent, ip)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (p *Processor) Logout(c context.Context, token string) error {
	return p.tokens.RevokeAuthToken(c, token)
}

// ProfileUpdate carries the profile fields to change; nil fields are left
// untouched.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	Website     *string
	Location    *string
}

func (p *Processor) UpdateProfile(c context.Context, accountID string, update ProfileUpdate) (*Account, error) {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	fields := []struct {
		name  string
		value *string
		max   int
		dst   *string
	}{
		{"display name", update.DisplayName, MaxDisplayNameLength, &account.DisplayName},
		{"bio", update.Bio, MaxBioLength, &account.Bio},
		{"website", update.Website, MaxWebsiteLength, &account.Website},
		{"location", update.Location, MaxLocationLength, &account.Location},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if utf8.RuneCountInString(*f.value) > f.max {
			return nil, Validation(fmt.Sprintf("%s must be %d characters or shorter", f.name, f.max))
		}
		*f.dst = *f.value
	}

	if err := p.accounts.Update(c, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	p.log.Info().Str("account_id", accountID).Msg("profile updated")
	return account, nil
}

// SetProfileMedia attaches a freshly uploaded avatar or banner and
// soft-deletes the one it replaces.
func (p *Processor) SetProfileMedia(c context.Context, accountID, file string, mediaType MediaType) (*Media, error) {
	if mediaType != MediaTypeAvatar && mediaType != MediaTypeBanner {
		return nil, Validation("media type must be avatar or banner")
	}
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	media := &Media{
		File:      file,
		Type:      mediaType,
		AccountID: accountID,
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

	previous := account.AvatarID
	if mediaType == MediaTypeBanner {
		previous = account.BannerID
	}
	if previous != "" {
		if err := p.media.SoftDelete(c, previous); err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("failed to delete previous media: %w", err)
		}
	}

	if mediaType == MediaTypeAvatar {
		account.AvatarID = media.ID
	} else {
		account.BannerID = media.ID
	}
	if err := p.accounts.Update(c, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}
	return media, nil
}

// RequestRecovery issues a recovery token and mails the recovery link.
func (p *Processor) RequestRecovery(c context.Context, email string) error {
	account, err := p.accounts.FindByEmail(c, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to find account: %w", err)
	}
	if account.IsDeleted {
		return ErrAccountNotFound
	}

	token, err := p.tokens.IssueRecoveryToken(c, account.ID)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/recover?ut=%s", p.baseURL, token)
	if err := p.mailer.SendRecovery(c, account.Email, account.Username, link); err != nil {
		return fmt.Errorf("failed to send recovery mail: %w", err)
	}
	return nil
}

// RenewPassword consumes a recovery token and replaces the password.
func (p *Processor) RenewPassword(c context.Context, token, password string) error {
	if password == "" {
		return Validation("password is required")
	}
	accountID, err := p.tokens.ValidateRecoveryToken(c, token)
	if err != nil {
		return err
	}
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.Password = string(hashed)
	if err := p.accounts.Update(c, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if err := p.tokens.ConsumeRecoveryToken(c, token); err != nil {
		return fmt.Errorf("failed to consume recovery token: %w", err)
	}
	p.log.Info().Str("account_id", accountID).Msg("password renewed")
	return nil
}

// DeleteAccount soft-deletes the account and revokes its sessions. The row
// stays for moderation and audit.
func (p *Processor) DeleteAccount(c context.Context, accountID string) error {
	account, err := p.accounts.Find(c, accountID)
	if err != nil {
		return fmt.Errorf("failed to find account: %w", err)
	}
	if account.IsDeleted {
		return ErrAlreadyDeleted
	}
	account.IsDeleted = true
	if err := p.accounts.Update(c, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if err := p.tokens.RevokeAccountTokens(c, accountID); err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}
	p.log.Info().Str("account_id", accountID).Msg("account deleted")
	return nil
}

// ProfileView is an account page as seen by a viewer.
type ProfileView struct {
	Account   *Account
	Follows   int
	Followers int
	// Followed reports whether the viewer follows the account.
	Followed bool
}

func (p *Processor) ViewProfile(c context.Context, viewer *Account, username string) (*ProfileView, error) {
	account, err := p.accounts.FindByUsername(c, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	if account.IsDeleted && (viewer == nil || !viewer.IsAdmin) {
		return nil, ErrAccountNotFound
	}

	follows, err := p.follows.ListFollows(c, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list follows: %w", err)
	}
	followers, err := p.follows.ListFollowers(c, account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	followed := false
	if viewer != nil && viewer.ID != account.ID {
		followed, err = p.follows.IsFollowing(c, viewer.ID, account.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check following: %w", err)
		}
	}

	return &ProfileView{
		Account:   account,
		Follows:   len(follows),
		Followers: len(followers),
		Followed:  followed,
	}, nil
}
