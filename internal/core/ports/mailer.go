package ports

import "context"

// OutboundEmail is a fully rendered message ready for the transport.
type OutboundEmail struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers a single rendered message. Implementations are
// expected to honour the context deadline; the caller never retries.
type Mailer interface {
	Send(ctx context.Context, msg OutboundEmail) error
}
