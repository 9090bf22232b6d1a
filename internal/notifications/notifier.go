package notifications

import (
	"context"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
)

// Notifier receives cart outcomes. Implementations must not block the command that emitted them.
type Notifier interface {
	Notify(ctx context.Context, sessionID string, n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, sessionID string, n Notification)

func (f NotifierFunc) Notify(ctx context.Context, sessionID string, n Notification) {
	f(ctx, sessionID, n)
}

type multiNotifier []Notifier

// Multi fans a notification out to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	out := make(multiNotifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multiNotifier) Notify(ctx context.Context, sessionID string, n Notification) {
	for _, notifier := range m {
		notifier.Notify(ctx, sessionID, n)
	}
}

// LogNotifier writes every notification as a structured log entry.
type LogNotifier struct {
	logg *logger.Logger
}

func NewLogNotifier(logg *logger.Logger) *LogNotifier {
	return &LogNotifier{logg: logg}
}

func (l *LogNotifier) Notify(ctx context.Context, sessionID string, n Notification) {
	if l == nil || l.logg == nil {
		return
	}
	fields := map[string]any{
		"cart_session":      sessionID,
		"notification_kind": n.Kind.String(),
	}
	if n.ProductID != "" {
		fields["product_id"] = n.ProductID
	}
	if n.Reason != "" {
		fields["reason"] = string(n.Reason)
	}
	ctx = l.logg.WithFields(ctx, fields)
	if n.Variant == VariantDestructive {
		l.logg.Warn(ctx, "cart.notification")
		return
	}
	l.logg.Info(ctx, "cart.notification")
}
