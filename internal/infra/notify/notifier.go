// Package notify delivers guest-facing confirmation messages. The log
// notifier stands in for a real SMS/email gateway; swapping providers only
// means another Notifier implementation.
package notify

import (
	"context"
	"log/slog"
)

type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Send(ctx context.Context, channel, destination, message string) error {
	slog.InfoContext(ctx, "notification sent",
		"channel", channel,
		"destination", destination,
		"message", message,
	)
	return nil
}
