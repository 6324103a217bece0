// Package views binds record sequences to the reducers, dialogs and
// notifications of each screen: the category task list, the shopping list,
// the car list and the dashboard.
//
// A view reads the current sequence from the session store, derives the next
// one with package records and writes it back. Read-modify-write cycles are
// serialised per view, so a view can be shared by concurrent request handlers.
package views

import (
	"math/rand/v2"
	"time"

	"github.com/mmynk/homekeeper/internal/notify"
	"github.com/mmynk/homekeeper/internal/records"
)

// Option configures a view.
type Option func(*env)

type env struct {
	notifier notify.Notifier
	newID    records.IDFunc
	now      func() time.Time
	intn     func(n int) int
}

func newEnv(opts []Option) env {
	e := env{
		notifier: notify.Discard,
		newID:    records.NewID,
		now:      time.Now,
		intn:     rand.IntN,
	}
	for _, opt := range opts {
		opt(&e)
	}
	// Request-scoped notifiers attached to the context see every notification.
	e.notifier = notify.Contextual(e.notifier)
	return e
}

// WithNotifier sets the session notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(e *env) {
		if n != nil {
			e.notifier = n
		}
	}
}

// WithIDs replaces the id generator.
func WithIDs(gen records.IDFunc) Option {
	return func(e *env) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// WithClock sets the source of "today" for date statuses.
func WithClock(now func() time.Time) Option {
	return func(e *env) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRand sets the source of random picks; intn(n) must return a value in [0, n).
func WithRand(intn func(n int) int) Option {
	return func(e *env) {
		if intn != nil {
			e.intn = intn
		}
	}
}
