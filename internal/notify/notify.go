// Package notify is the port through which the household core reports
// transient, user-facing messages (the toasts of a UI). The core never renders
// anything itself; presentation layers decide how to surface a Notification.
package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is one message for the user.
type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier receives notifications raised while handling a user action.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Func adapts an ordinary function to Notifier.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Discard drops every notification.
var Discard Notifier = Func(func(context.Context, Notification) {})

// Success, Error and Info build notifications of the matching level.
func Success(title, message string) Notification {
	return Notification{Level: LevelSuccess, Title: title, Message: message}
}

func Error(title, message string) Notification {
	return Notification{Level: LevelError, Title: title, Message: message}
}

func Info(title, message string) Notification {
	return Notification{Level: LevelInfo, Title: title, Message: message}
}

// Logger writes notifications to slog. Error notifications are logged at WARN.
func Logger(logger *slog.Logger) Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return Func(func(ctx context.Context, n Notification) {
		level := slog.LevelInfo
		if n.Level == LevelError {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "Notification", "level", n.Level, "title", n.Title, "message", n.Message)
	})
}

// Multi fans a notification out to every non-nil notifier in order.
func Multi(notifiers ...Notifier) Notifier {
	return Func(func(ctx context.Context, n Notification) {
		for _, nf := range notifiers {
			if nf != nil {
				nf.Notify(ctx, n)
			}
		}
	})
}

// Recorder keeps every notification it receives. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification, if any.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

type ctxKey struct{}

// WithNotifier attaches a request-scoped notifier to ctx.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, ctxKey{}, n)
}

// FromContext returns the request-scoped notifier, or nil.
func FromContext(ctx context.Context) Notifier {
	n, _ := ctx.Value(ctxKey{}).(Notifier)
	return n
}

// Contextual returns a notifier that forwards to base and to whatever notifier
// is attached to the call's context.
func Contextual(base Notifier) Notifier {
	return Func(func(ctx context.Context, n Notification) {
		if base != nil {
			base.Notify(ctx, n)
		}
		if scoped := FromContext(ctx); scoped != nil {
			scoped.Notify(ctx, n)
		}
	})
}
