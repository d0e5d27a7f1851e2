package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
	"strings"
)

// Message is what the site owner gets told about a new contact submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type ItfSmtp interface {
	SendContactNotification(msg Message) error
}

type sendFunc func(addr string, a smtpPkg.Auth, from string, to []string, msg []byte) error

type smtp struct {
	auth smtpPkg.Auth
	addr string
	from string
	to   string
	send sendFunc
}

// New returns nil when SMTP_USER or CONTACT_NOTIFY_EMAIL is unset; notifications
// are then skipped by the caller.
func New() ItfSmtp {
	user := os.Getenv("SMTP_USER")
	to := os.Getenv("CONTACT_NOTIFY_EMAIL")
	if user == "" || to == "" {
		return nil
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	return &smtp{
		auth: smtpPkg.PlainAuth("", user, os.Getenv("SMTP_PASSWORD"), host),
		addr: host + ":" + port,
		from: user,
		to:   to,
		send: smtpPkg.SendMail,
	}
}

func (s *smtp) SendContactNotification(msg Message) error {
	return s.send(s.addr, s.auth, s.from, []string{s.to}, compose(s.from, s.to, msg))
}

func compose(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio contact: %s", oneLine(msg.Subject))

	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "Reply-To: %s\r\n", oneLine(msg.Email))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&b, "New message from %s <%s>\r\n\r\n%s\r\n", oneLine(msg.Name), oneLine(msg.Email), msg.Body)

	return []byte(b.String())
}

// oneLine keeps user input from injecting extra headers.
func oneLine(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
