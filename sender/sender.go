package sender

import (
	"context"
	"time"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// EmailSender is the mail transport boundary. Verify checks the transport is
// reachable and authenticated; SendEmail delivers one HTML message.
type EmailSender interface {
	Verify(ctx context.Context) error
	SendEmail(ctx context.Context, to, subject, body string) (SendResult, error)
}
