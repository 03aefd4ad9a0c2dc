// Package notify delivers formatted study summaries to an outbound channel.
package notify

import (
	"context"
	"log"
)

// Notifier sends one text message. Implementations split long text as the
// channel requires.
type Notifier interface {
	Notify(ctx context.Context, text string) error
	// Enabled is false for notifiers that drop messages.
	Enabled() bool
}

// New returns a Telegram notifier when both token and chat id are set,
// otherwise a Noop.
func New(token, chatID string) Notifier {
	if token == "" || chatID == "" {
		log.Printf("[notify] telegram not configured, notifications disabled")
		return Noop{}
	}
	return NewTelegram(token, chatID)
}

// Noop discards every message.
type Noop struct{}

func (Noop) Notify(ctx context.Context, text string) error { return nil }

func (Noop) Enabled() bool { return false }
