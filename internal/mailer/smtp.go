package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-smtp"
)

// SMTPSender delivers email through an SMTP relay. It is the real
// implementation behind the outbound seam; the relay is expected to accept
// submission from this host.
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender creates an SMTPSender targeting the given relay address
// (host:port) with the given envelope sender.
func NewSMTPSender(addr, from string) *SMTPSender {
	return &SMTPSender{addr: addr, from: from}
}

// Send delivers the email through the relay. The thread token is embedded in
// the subject so the recipient's reply can be matched back by the webhook
// ingestor.
func (s *SMTPSender) Send(ctx context.Context, email Email) error {
	msg := buildMessage(s.from, email)

	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(s.addr, nil, s.from, []string{email.To}, strings.NewReader(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s failed: %w", email.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send to %s canceled: %w", email.To, ctx.Err())
	}
}

// buildMessage assembles a minimal RFC 5322 message.
func buildMessage(from string, email Email) string {
	subject := SubjectWithThread(email.Subject, email.ThreadID)

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", email.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	if email.ThreadID != "" {
		fmt.Fprintf(&b, "X-Thread-ID: %s\r\n", email.ThreadID)
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(email.Body)
	b.WriteString("\r\n")
	return b.String()
}
