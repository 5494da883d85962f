package retweet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/ironstar-io/chizerolog"
	"github.com/rs/zerolog"
)

const InternalServerError = "internal server error"

// interface

type Session interface {
	Close() error
	Set(c context.Context, key string, value any)
	Get(c context.Context, key string) any
	Delete(c context.Context, key string)
	Clear(c context.Context)
	Middleware(next http.Handler) http.Handler
}

// Server

type Server struct {
	handler *Handler
	port    int
}

func NewServer(cfg *Config, handler *Handler) (*Server, error) {
	return &Server{
		handler: handler,
		port:    cfg.Port,
	}, nil
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	return http.ListenAndServe(addr, s.handler)
}

// handler

type Handler struct {
	log       *zerolog.Logger
	sess      Session
	processor *Processor
	mediaDir  string
	templates *template.Template
	router    chi.Router
}

func NewHandler(cfg *Config, log *zerolog.Logger, sess Session, authorizer *Authorizer, processor *Processor) *Handler {
	h := &Handler{
		log:       log,
		sess:      sess,
		processor: processor,
		mediaDir:  cfg.MediaDir,
		templates: template.Must(template.New("").Parse(pageTemplates)),
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer, chizerolog.LoggerMiddleware(log), sess.Middleware, authorizer.Middleware)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})
	router.Get("/login", h.handleWallGet("login"))
	router.Post("/login", h.handleLoginPost)
	router.Get("/register", h.handleWallGet("register"))
	router.Post("/register", h.handleRegisterPost)
	router.Get("/recover", h.handleRecoverGet)
	router.Post("/recover", h.handleRecoverPost)
	router.Post("/renew-password", h.handleRenewPasswordPost)
	router.Get("/logout", h.handleLogoutGet)

	router.Get("/home", h.handleHomeGet)
	router.Get("/@{username}", h.handleProfileGet)
	router.Get("/@{username}/likes", h.handleProfileLikesGet)
	router.Post("/@{username}/follow", h.handleFollowPost)
	router.Post("/@{username}/unfollow", h.handleUnfollowPost)
	router.Get("/t/{tweetID}", h.handleTweetGet)

	router.Post("/api/tweets", h.handleTweetCreatePost)
	router.Post("/api/tweets/{tweetID}/like", h.handleTweetAction(h.likeAction))
	router.Post("/api/tweets/{tweetID}/unlike", h.handleTweetAction(h.unlikeAction))
	router.Post("/api/tweets/{tweetID}/retweet", h.handleTweetAction(h.retweetAction))
	router.Post("/api/tweets/{tweetID}/unretweet", h.handleTweetAction(h.unretweetAction))
	router.Post("/api/tweets/{tweetID}/delete", h.handleTweetAction(h.deleteAction))
	router.Post("/api/profile", h.handleProfilePost)
	router.Post("/api/profile/media", h.handleProfileMediaPost)
	router.Post("/api/push/subscribe", h.handlePushSubscribePost)
	router.Post("/api/account/delete", h.handleAccountDeletePost)

	router.Get("/sw.js", h.handleServiceWorkerGet)

	fileServer := http.StripPrefix("/public/", http.FileServer(http.Dir(cfg.MediaDir)))
	router.Get("/public/*", fileServer.ServeHTTP)

	h.router = router
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// wall

func (h *Handler) handleWallGet(mode string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderWall(w, mode, "", "")
	}
}

// POST /login
func (h *Handler) handleLoginPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	username := r.FormValue("username")
	password := r.FormValue("password")

	_, token, err := h.processor.Login(c, username, password, r.UserAgent(), clientIP(r))
	if err != nil {
		if IsKind(err, KindValidation) || IsKind(err, KindForbidden) {
			h.renderWall(w, "login", err.Error(), "")
			return
		}
		h.catchError(w, err)
		return
	}

	h.sess.Set(c, sessionAuthKey, token)
	http.Redirect(w, r, "/home", http.StatusFound)
}

// POST /register
func (h *Handler) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	_, token, err := h.processor.Signup(c, username, email, password, r.UserAgent(), clientIP(r))
	if err != nil {
		if IsKind(err, KindValidation) || IsKind(err, KindConflict) {
			h.renderWall(w, "register", err.Error(), "")
			return
		}
		h.catchError(w, err)
		return
	}

	h.sess.Set(c, sessionAuthKey, token)
	http.Redirect(w, r, "/home?welcome", http.StatusFound)
}

// GET /recover - without a token shows the request form, with ?ut= shows
// the new-password form when the token is still valid.
func (h *Handler) handleRecoverGet(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("ut")
	if token == "" {
		h.renderWall(w, "recover", "", "")
		return
	}

	_, err := h.processor.tokens.ValidateRecoveryToken(r.Context(), token)
	if err != nil {
		switch {
		case IsKind(err, KindTokenExpired):
			h.renderWall(w, "recover-step2", "This recovery link has expired. Please request a new one.", "")
		case IsKind(err, KindTokenInvalid):
			h.renderWall(w, "recover-step2", "This recovery link is invalid.", "")
		default:
			h.catchError(w, err)
		}
		return
	}
	h.renderWall(w, "recover-step2", "", token)
}

// POST /recover
func (h *Handler) handleRecoverPost(w http.ResponseWriter, r *http.Request) {
	err := h.processor.RequestRecovery(r.Context(), r.FormValue("email"))
	if err != nil {
		if IsKind(err, KindNotFound) {
			h.renderWall(w, "recover", "No account matches this email address.", "")
			return
		}
		h.catchError(w, err)
		return
	}
	h.renderWall(w, "recover-confirm", "", "")
}

// POST /renew-password
func (h *Handler) handleRenewPasswordPost(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("ut")
	err := h.processor.RenewPassword(r.Context(), token, r.FormValue("password"))
	if err != nil {
		switch {
		case IsKind(err, KindTokenExpired):
			h.renderWall(w, "recover-step2", "This recovery link has expired. Please request a new one.", "")
		case IsKind(err, KindTokenInvalid):
			h.renderWall(w, "recover-step2", "This recovery link is invalid.", "")
		case IsKind(err, KindValidation):
			h.renderWall(w, "recover-step2", err.Error(), token)
		default:
			h.catchError(w, err)
		}
		return
	}
	http.Redirect(w, r, "/login?newpwd", http.StatusFound)
}

// GET /logout
func (h *Handler) handleLogoutGet(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	if token, ok := h.sess.Get(c, sessionAuthKey).(string); ok && token != "" {
		if err := h.processor.Logout(c, token); err != nil {
			h.catchError(w, err)
			return
		}
	}
	h.sess.Clear(c)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// timeline

// GET /home
func (h *Handler) handleHomeGet(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	tweets, err := h.processor.Timeline(c, account)
	if err != nil {
		h.catchError(w, err)
		return
	}

	h.render(w, "home", map[string]any{
		"account": account,
		"tweets":  tweets,
	})
}

// GET /@{username}
func (h *Handler) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, false)
}

// GET /@{username}/likes
func (h *Handler) handleProfileLikesGet(w http.ResponseWriter, r *http.Request) {
	h.renderProfile(w, r, true)
}

func (h *Handler) renderProfile(w http.ResponseWriter, r *http.Request, likes bool) {
	c := r.Context()
	viewer := AccountFrom(c)
	username := chi.URLParam(r, "username")

	profile, err := h.processor.ViewProfile(c, viewer, username)
	if err != nil {
		h.catchError(w, err)
		return
	}

	includeDeleted := viewer != nil && viewer.IsAdmin
	var tweets []*DisplayTweet
	if likes {
		tweets, err = h.processor.LikedTweets(c, profile.Account.ID, viewer, includeDeleted)
	} else {
		tweets, err = h.processor.ProfileTweets(c, profile.Account.ID, viewer, includeDeleted)
	}
	if err != nil {
		h.catchError(w, err)
		return
	}

	h.render(w, "profile", map[string]any{
		"viewer":  viewer,
		"profile": profile,
		"tweets":  tweets,
		"likes":   likes,
	})
}

// GET /t/{tweetID}
func (h *Handler) handleTweetGet(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	viewer := AccountFrom(c)
	tweetID := chi.URLParam(r, "tweetID")

	tweet, err := h.processor.ViewTweet(c, tweetID, viewer)
	if err != nil {
		h.catchError(w, err)
		return
	}
	replies, err := h.processor.Replies(c, tweet.ID, viewer)
	if err != nil {
		h.catchError(w, err)
		return
	}

	h.render(w, "tweet", map[string]any{
		"viewer":  viewer,
		"tweet":   tweet,
		"replies": replies,
	})
}

// graph

// POST /@{username}/follow
func (h *Handler) handleFollowPost(w http.ResponseWriter, r *http.Request) {
	h.handleGraphPost(w, r, h.processor.Follow)
}

// POST /@{username}/unfollow
func (h *Handler) handleUnfollowPost(w http.ResponseWriter, r *http.Request) {
	h.handleGraphPost(w, r, h.processor.Unfollow)
}

func (h *Handler) handleGraphPost(w http.ResponseWriter, r *http.Request, op func(context.Context, string, string) error) {
	c := r.Context()
	account := AccountFrom(c)
	username := chi.URLParam(r, "username")

	target, err := h.processor.ViewProfile(c, account, username)
	if err != nil {
		h.catchError(w, err)
		return
	}
	if err := op(c, account.ID, target.Account.ID); err != nil {
		h.catchError(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/@%s", username), http.StatusFound)
}

// tweets

// POST /api/tweets
func (h *Handler) handleTweetCreatePost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	attachment, err := h.saveUpload(r, "media")
	if err != nil {
		h.catchError(w, err)
		return
	}

	tweet, err := h.processor.CreateTweet(c, account, r.FormValue("content"), attachment, r.FormValue("replies_to"))
	if err != nil {
		h.catchError(w, err)
		return
	}

	if r.URL.Query().Has("web") {
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}
	h.renderJSON(w, tweet)
}

type tweetAction func(c context.Context, account *Account, tweetID string) error

func (h *Handler) likeAction(c context.Context, account *Account, tweetID string) error {
	return h.processor.Like(c, account, tweetID)
}

func (h *Handler) unlikeAction(c context.Context, account *Account, tweetID string) error {
	return h.processor.Unlike(c, account, tweetID)
}

func (h *Handler) retweetAction(c context.Context, account *Account, tweetID string) error {
	_, err := h.processor.Retweet(c, account, tweetID)
	return err
}

func (h *Handler) unretweetAction(c context.Context, account *Account, tweetID string) error {
	return h.processor.Unretweet(c, account, tweetID)
}

func (h *Handler) deleteAction(c context.Context, account *Account, tweetID string) error {
	return h.processor.DeleteTweet(c, tweetID, account)
}

func (h *Handler) handleTweetAction(action tweetAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := r.Context()
		account := AccountFrom(c)
		tweetID := chi.URLParam(r, "tweetID")

		if err := action(c, account, tweetID); err != nil {
			h.catchError(w, err)
			return
		}
		h.renderJSON(w, map[string]any{"ok": true})
	}
}

// profile edits

// POST /api/profile
func (h *Handler) handleProfilePost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	if err := r.ParseForm(); err != nil {
		h.catchError(w, Validation("invalid form"))
		return
	}
	update := ProfileUpdate{}
	for name, dst := range map[string]**string{
		"display_name": &update.DisplayName,
		"bio":          &update.Bio,
		"website":      &update.Website,
		"location":     &update.Location,
	} {
		if r.Form.Has(name) {
			value := r.FormValue(name)
			*dst = &value
		}
	}

	updated, err := h.processor.UpdateProfile(c, account.ID, update)
	if err != nil {
		h.catchError(w, err)
		return
	}
	h.renderJSON(w, map[string]any{
		"display_name": updated.DisplayName,
		"bio":          updated.Bio,
		"website":      updated.Website,
		"location":     updated.Location,
	})
}

// POST /api/profile/media?type=avatar|banner
func (h *Handler) handleProfileMediaPost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	mediaType := MediaTypeAvatar
	if r.URL.Query().Get("type") == "banner" {
		mediaType = MediaTypeBanner
	}

	file, err := h.saveUpload(r, "media")
	if err != nil {
		h.catchError(w, err)
		return
	}
	if file == "" {
		h.catchError(w, Validation("media file is required"))
		return
	}

	media, err := h.processor.SetProfileMedia(c, account.ID, file, mediaType)
	if err != nil {
		h.catchError(w, err)
		return
	}
	h.renderJSON(w, map[string]any{"id": media.ID, "file": media.File})
}

// POST /api/account/delete
func (h *Handler) handleAccountDeletePost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	if err := h.processor.DeleteAccount(c, account.ID); err != nil {
		h.catchError(w, err)
		return
	}
	h.sess.Clear(c)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// push

// POST /api/push/subscribe
func (h *Handler) handlePushSubscribePost(w http.ResponseWriter, r *http.Request) {
	c := r.Context()
	account := AccountFrom(c)

	var body struct {
		Endpoint string `json:"endpoint"`
		Keys     struct {
			P256dh string `json:"p256dh"`
			Auth   string `json:"auth"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.catchError(w, Validation("invalid subscription payload"))
		return
	}

	err := h.processor.SubscribePush(c, account.ID, &PushSubscription{
		Endpoint: body.Endpoint,
		P256dh:   body.Keys.P256dh,
		Auth:     body.Keys.Auth,
	})
	if err != nil {
		h.catchError(w, err)
		return
	}
	h.renderJSON(w, map[string]any{"ok": true})
}

// GET /sw.js - the service worker that renders incoming push messages.
func (h *Handler) handleServiceWorkerGet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	io.WriteString(w, serviceWorkerJS)
}

const serviceWorkerJS = `self.addEventListener('push', (event) => {
	const data = event.data.json();
	event.waitUntil(self.registration.showNotification(data.title, {
		body: data.body,
		icon: data.icon,
		data: { url: data.url },
	}));
});
self.addEventListener('notificationclick', (event) => {
	event.notification.close();
	event.waitUntil(clients.openWindow(event.notification.data.url));
});
`

// helpers

// saveUpload stores a multipart upload under a fresh name inside the media
// directory and returns the stored file name, or "" when the field is
// absent.
func (h *Handler) saveUpload(r *http.Request, field string) (string, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", Validation("invalid upload")
	}
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	defer file.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.mediaDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return name, nil
}

func (h *Handler) renderWall(w http.ResponseWriter, mode, errMsg, token string) {
	h.render(w, "wall", map[string]any{
		"mode":  mode,
		"error": errMsg,
		"token": token,
	})
}

func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.log.Error().Err(err).Str("template", name).Msg("failed to render template")
	}
}

func (h *Handler) renderJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// catchError maps error kinds onto user facing statuses; anything without
// a kind is a store failure and renders as a 500.
func (h *Handler) catchError(w http.ResponseWriter, err error) {
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindNotFound:
			http.Error(w, e.Message, http.StatusNotFound)
		case KindForbidden:
			http.Error(w, e.Message, http.StatusForbidden)
		case KindConflict:
			http.Error(w, e.Message, http.StatusConflict)
		case KindValidation:
			http.Error(w, e.Message, http.StatusBadRequest)
		case KindTokenInvalid, KindTokenExpired:
			http.Error(w, e.Message, http.StatusUnauthorized)
		default:
			h.log.Error().Err(err).Send()
			http.Error(w, InternalServerError, http.StatusInternalServerError)
		}
		return
	}
	h.log.Error().Err(err).Send()
	http.Error(w, InternalServerError, http.StatusInternalServerError)
}

const pageTemplates = `
{{define "tweetItem"}}
	<article>
		{{if .RetweetedBy}}<p class="retweeted">🔁 {{.RetweetedBy.Name}} retweeted</p>{{end}}
		<header>
			{{if .Author}}<a href="/@{{.Author.Username}}"><b>{{.Author.Name}}</b> @{{.Author.Username}}</a>{{end}}
			<time>{{.CreatedAt.Format "2006-01-02 15:04"}}</time>
		</header>
		<p><a href="/t/{{.ID}}">{{.Content}}</a></p>
		<footer>💬 {{.ReplyCount}} 🔁 {{.RetweetCount}} ❤️ {{.LikeCount}}</footer>
	</article>
{{end}}

{{define "wall"}}
	<h1>Retweet</h1>
	{{if .error}}<p class="error">{{.error}}</p>{{end}}
	{{if eq .mode "login"}}
	<form method="POST" action="/login">
		<input type="text" name="username" placeholder="username" />
		<input type="password" name="password" placeholder="password" />
		<input type="submit" value="Log in" />
	</form>
	<p><a href="/register">Sign up</a> · <a href="/recover">Forgot your password?</a></p>
	{{else if eq .mode "register"}}
	<form method="POST" action="/register">
		<input type="text" name="username" placeholder="username" />
		<input type="email" name="email" placeholder="email" />
		<input type="password" name="password" placeholder="password" />
		<input type="submit" value="Sign up" />
	</form>
	{{else if eq .mode "recover"}}
	<form method="POST" action="/recover">
		<input type="email" name="email" placeholder="email" />
		<input type="submit" value="Recover my password" />
	</form>
	{{else if eq .mode "recover-step2"}}
	{{if .token}}
	<form method="POST" action="/renew-password?ut={{.token}}">
		<input type="password" name="password" placeholder="new password" />
		<input type="submit" value="Change my password" />
	</form>
	{{end}}
	{{else if eq .mode "recover-confirm"}}
	<p>A recovery link has been sent to your email address.</p>
	{{end}}
{{end}}

{{define "home"}}
	<h1>Home</h1>
	<form method="POST" action="/api/tweets?web" enctype="multipart/form-data">
		<textarea name="content" maxlength="280"></textarea>
		<input type="file" name="media" />
		<input type="submit" value="Tweet" />
	</form>
	{{range .tweets}}{{template "tweetItem" .}}{{end}}
	<p><a href="/logout">Log out</a></p>
{{end}}

{{define "profile"}}
	<h1>{{.profile.Account.Name}} <small>@{{.profile.Account.Username}}</small></h1>
	{{if .profile.Account.Bio}}<p>{{.profile.Account.Bio}}</p>{{end}}
	<p>{{.profile.Follows}} following · {{.profile.Followers}} followers</p>
	{{if and .viewer (ne .viewer.ID .profile.Account.ID)}}
	{{if .profile.Followed}}
	<form method="POST" action="/@{{.profile.Account.Username}}/unfollow"><button>Unfollow</button></form>
	{{else}}
	<form method="POST" action="/@{{.profile.Account.Username}}/follow"><button>Follow</button></form>
	{{end}}
	{{end}}
	<nav>
		<a href="/@{{.profile.Account.Username}}">Tweets</a>
		<a href="/@{{.profile.Account.Username}}/likes">Likes</a>
	</nav>
	{{range .tweets}}{{template "tweetItem" .}}{{end}}
{{end}}

{{define "tweet"}}
	{{template "tweetItem" .tweet}}
	<form method="POST" action="/api/tweets?web" enctype="multipart/form-data">
		<input type="hidden" name="replies_to" value="{{.tweet.ID}}" />
		<textarea name="content" maxlength="280"></textarea>
		<input type="submit" value="Reply" />
	</form>
	{{range .replies}}{{template "tweetItem" .}}{{end}}
{{end}}
`
