package email

import (
	"fmt"
	"net/smtp"

	"github.com/avasseur/portfolio-builder/internal/config"
)

// Sender delivers outbound mail. Delivery is best-effort: callers log and
// discard failures rather than failing the triggering request.
type Sender interface {
	SendVerificationEmail(to, fullName, token string) error
	SendPasswordResetEmail(to, fullName, token string) error
}

type SMTPSender struct {
	host     string
	port     string
	user     string
	password string
	from     string
	baseURL  string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		baseURL:  cfg.BaseURL,
	}
}

func (s *SMTPSender) SendVerificationEmail(to, fullName, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify/%s", s.baseURL, token)
	subject := "Verify your Portfolio Builder account"
	body := fmt.Sprintf(`Hello %s,

Welcome to Portfolio Builder!

Your account has been created. To verify your email, open the link below:

%s

If you did not create an account, ignore this email.
`, fullName, link)

	return s.send(to, subject, body)
}

func (s *SMTPSender) SendPasswordResetEmail(to, fullName, token string) error {
	link := fmt.Sprintf("%s/api/auth/reset-password/%s", s.baseURL, token)
	subject := "Reset your Portfolio Builder password"
	body := fmt.Sprintf(`Hello %s,

You asked to reset your password. Open the link below to choose a new one:

%s

The link expires in 1 hour. If you did not ask for a reset, ignore this email.
`, fullName, link)

	return s.send(to, subject, body)
}

func (s *SMTPSender) send(to, subject, body string) error {
	if s.host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", s.from, to, subject, body)

	auth := smtp.PlainAuth("", s.user, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
