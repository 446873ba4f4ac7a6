package model

import "context"

// Mailer delivers outbound notification mail.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
