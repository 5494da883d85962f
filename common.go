package retweet

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SoftwareName        string `envconfig:"SOFTWARE_NAME" default:"retweet"`
	Host                string `envconfig:"HOST" default:"localhost:8080"`
	Port                int    `envconfig:"PORT" default:"8080"`
	Https               bool   `envconfig:"HTTPS" default:"false"`
	DatabasePath        string `envconfig:"DATABASE_PATH" default:"./database.db"`
	SessionDatabasePath string `envconfig:"SESSION_DATABASE_PATH" default:"./session.db"`
	MediaDir            string `envconfig:"MEDIA_DIR" default:"./uploads"`
	SMTPAddr            string `envconfig:"SMTP_ADDR" default:"localhost:25"`
	SMTPUsername        string `envconfig:"SMTP_USERNAME"`
	SMTPPassword        string `envconfig:"SMTP_PASSWORD"`
	MailFrom            string `envconfig:"MAIL_FROM" default:"retweet@localhost"`
	VAPIDPublicKey      string `envconfig:"VAPID_PUBLIC_KEY"`
	VAPIDPrivateKey     string `envconfig:"VAPID_PRIVATE_KEY"`
	VAPIDEmail          string `envconfig:"VAPID_EMAIL"`
}

func ParseConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("retweet", &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) BaseURL() string {
	scheme := "http"
	if c.Https {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Host)
}

// Max lengths of tweet content and text based profile fields.
const (
	MaxTweetLength       = 280
	MaxDisplayNameLength = 50
	MaxBioLength         = 160
	MaxWebsiteLength     = 100
	MaxLocationLength    = 30
)
