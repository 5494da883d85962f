package retweet

import "errors"

// Kind classifies an error into one of the outcomes the controller layer
// knows how to render. Anything without a kind is a store failure and
// propagates unchanged.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindConflict     Kind = "CONFLICT"
	KindValidation   Kind = "VALIDATION"
	KindTokenInvalid Kind = "TOKEN_INVALID"
	KindTokenExpired Kind = "TOKEN_EXPIRED"
)

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func NotFound(message string) *Error   { return NewError(KindNotFound, message) }
func Forbidden(message string) *Error  { return NewError(KindForbidden, message) }
func Conflict(message string) *Error   { return NewError(KindConflict, message) }
func Validation(message string) *Error { return NewError(KindValidation, message) }

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

var (
	ErrNotFound        = NotFound("not found")
	ErrAccountNotFound = NotFound("account not found")
	ErrTweetNotFound   = NotFound("tweet not found")
	ErrMediaNotFound   = NotFound("media not found")

	ErrForbidden        = Forbidden("operation not allowed")
	ErrAccountSuspended = Forbidden("account is suspended")

	ErrAlreadyFollowing = Conflict("already following this account")
	ErrNotFollowing     = Conflict("not following this account")
	ErrAlreadyLiked     = Conflict("tweet is already liked")
	ErrNotLiked         = Conflict("tweet is not liked")
	ErrAlreadyRetweeted = Conflict("tweet is already retweeted")
	ErrNotRetweeted     = Conflict("tweet is not retweeted")
	ErrAlreadyDeleted   = Conflict("already deleted")
	ErrUsernameTaken    = Conflict("username is already taken")
	ErrEmailTaken       = Conflict("email address is already in use")

	// Duplicate generated identifiers. Creation paths retry on these
	// instead of treating them as fatal.
	ErrIDExists    = Conflict("id already exists")
	ErrTokenExists = Conflict("token already exists")

	ErrSelfFollow         = Validation("an account cannot follow itself")
	ErrInvalidCredentials = Validation("invalid username or password")

	ErrTokenInvalid = NewError(KindTokenInvalid, "token is invalid")
	ErrTokenExpired = NewError(KindTokenExpired, "token has expired")
)
