package ports

import (
	"context"
)

// Message is one outgoing notification.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string // optional, empty means no attachment
}

// Notifier delivers messages to users, typically by email.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}
