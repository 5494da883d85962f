package retweet

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

const sessionAuthKey = "auth_token"

// Routes reachable without a session.
var publicPrefixes = []string{
	"/login",
	"/register",
	"/recover",
	"/renew-password",
	"/public",
	"/sw.js",
}

type contextKey int

const accountContextKey contextKey = iota

// AccountFrom returns the authenticated account attached by the
// Authorizer, or nil on public routes.
func AccountFrom(c context.Context) *Account {
	account, _ := c.Value(accountContextKey).(*Account)
	return account
}

// Authorizer resolves the session cookie to an account on every request.
// The scs session carries the auth token; the token itself is validated
// against the user agent and ip recorded at issuance.
type Authorizer struct {
	log    *zerolog.Logger
	sess   Session
	tokens *TokenManager
}

func NewAuthorizer(log *zerolog.Logger, sess Session, tokens *TokenManager) *Authorizer {
	return &Authorizer{log: log, sess: sess, tokens: tokens}
}

func (a *Authorizer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := r.Context()
		token, _ := a.sess.Get(c, sessionAuthKey).(string)

		if isPublicPath(r.URL.Path) {
			if r.URL.Path == "/login" && token != "" {
				http.Redirect(w, r, "/home", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		if token == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		account, err := a.tokens.ValidateAuthToken(c, token, r.UserAgent(), clientIP(r))
		if err != nil {
			if IsKind(err, KindTokenInvalid) {
				a.sess.Clear(c)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			a.log.Error().Err(err).Msg("failed to validate auth token")
			http.Error(w, InternalServerError, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(c, accountContextKey, account)))
	})
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
