// Package mail provides the Mailgun-backed implementation of
// ports.Mailer. The core never touches the Mailgun SDK directly.
package mail

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/ports"
)

const defaultSendTimeout = 10 * time.Second

// Mailgun sends rendered notification emails through the Mailgun API.
type Mailgun struct {
	client  *mg.MailgunImpl
	sender  string
	timeout time.Duration
}

// NewMailgun builds a Mailgun mailer. A non-positive timeout falls
// back to defaultSendTimeout.
func NewMailgun(domain, apiKey, sender string, timeout time.Duration) *Mailgun {
	if timeout <= 0 {
		timeout = defaultSendTimeout
	}
	return &Mailgun{
		client:  mg.NewMailgun(domain, apiKey),
		sender:  sender,
		timeout: timeout,
	}
}

// Send delivers a single message. The per-send timeout bounds a slow
// or hung transport so one recipient cannot stall the fan-out workers.
func (m *Mailgun) Send(ctx context.Context, msg ports.OutboundEmail) error {
	message := m.client.NewMessage(m.sender, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}

	sendCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if _, _, err := m.client.Send(sendCtx, message); err != nil {
		return fmt.Errorf("mailgun send to %s: %w", msg.To, err)
	}
	return nil
}
