package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/Mushus/retweet"
	"github.com/Mushus/retweet/sqlite/ent"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	cli *ent.Client
}

func NewSQLite(cfg *retweet.Config) (*SQLite, error) {
	cli, err := ent.Open("sqlite3", cfg.DatabasePath+"?_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open ent client: %w", errors.WithStack(err))
	}

	ctx := context.Background()
	if err := cli.Schema.Create(ctx); err != nil {
		return nil, fmt.Errorf("failed creating schema resources: %w", errors.WithStack(err))
	}

	return &SQLite{cli: cli}, nil
}

// uniqueViolation maps a sqlite unique constraint failure onto the domain
// error for the violated column, or nil when err is something else.
func uniqueViolation(err error, columns map[string]error) error {
	if !ent.IsConstraintError(err) {
		return nil
	}
	msg := err.Error()
	for column, domainErr := range columns {
		if strings.Contains(msg, column) {
			return domainErr
		}
	}
	return nil
}

// session

type Sqlite3Session struct {
	sess *scs.SessionManager
	db   *sql.DB
}

func NewSession(cfg *retweet.Config) (retweet.Session, error) {
	db, err := sql.Open("sqlite3", cfg.SessionDatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session db: %w", errors.WithStack(err))
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		);

		CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session table: %w", errors.WithStack(err))
	}

	sess := scs.New()
	sess.Store = sqlite3store.New(db)
	sess.Lifetime = 30 * 24 * time.Hour
	sess.Cookie.Name = "session_id"
	sess.Cookie.HttpOnly = true
	sess.Cookie.Persist = true
	sess.Cookie.SameSite = http.SameSiteStrictMode
	sess.Cookie.Secure = cfg.Https

	return &Sqlite3Session{
		sess: sess,
		db:   db,
	}, nil
}

func (s *Sqlite3Session) Close() error {
	return s.db.Close()
}

func (s *Sqlite3Session) Set(c context.Context, key string, value any) {
	s.sess.Put(c, key, value)
}

func (s *Sqlite3Session) Get(c context.Context, key string) any {
	return s.sess.Get(c, key)
}

func (s *Sqlite3Session) Delete(c context.Context, key string) {
	s.sess.Remove(c, key)
}

func (s *Sqlite3Session) Clear(c context.Context) {
	s.sess.Clear(c)
}

func (s *Sqlite3Session) Middleware(next http.Handler) http.Handler {
	return s.sess.LoadAndSave(next)
}
