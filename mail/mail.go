package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Mushus/retweet"
)

// Mailer sends transactional mail over plain SMTP.
type Mailer struct {
	addr     string
	username string
	password string
	from     string
	software string
}

func NewMailer(cfg *retweet.Config) retweet.Mailer {
	return &Mailer{
		addr:     cfg.SMTPAddr,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.MailFrom,
		software: cfg.SoftwareName,
	}
}

func (m *Mailer) SendRecovery(c context.Context, to, username, link string) error {
	subject := fmt.Sprintf("%s password recovery", m.software)
	body := strings.Join([]string{
		fmt.Sprintf("Hi @%s,", username),
		"",
		"Someone asked to reset the password for your account.",
		"Open the link below to choose a new password. It stops working after five minutes.",
		"",
		link,
		"",
		"If this wasn't you, you can ignore this mail.",
	}, "\r\n")

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		host := m.addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.username, m.password, host)
	}
	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
