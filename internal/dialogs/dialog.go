// Package dialogs implements entry dialogs: transient forms that hold a draft
// record, validate it on submit and hand it to the owning view's mutation
// handler exactly once.
package dialogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/homekeeper/internal/notify"
)

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid draft")
	// ErrClosed is returned when submitting a dialog that is not open.
	ErrClosed = errors.New("dialog is not open")
)

// ValidationError names the draft field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Draft is the form state of a dialog.
type Draft interface {
	Validate() error
}

// CommitFunc is the parent view's mutation handler.
type CommitFunc[D Draft] func(ctx context.Context, draft D) error

// Dialog holds a draft independent of the parent sequence until submission.
type Dialog[D Draft] struct {
	open     bool
	draft    D
	defaults func() D
	commit   CommitFunc[D]

	notifier     notify.Notifier
	success      *notify.Notification
	invalidTitle string
}

// Option configures a Dialog.
type Option func(*settings)

type settings struct {
	notifier     notify.Notifier
	success      *notify.Notification
	invalidTitle string
}

// WithNotifier sets where validation errors and success messages go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *settings) { s.notifier = n }
}

// WithSuccess makes a successful submit raise the given notification.
func WithSuccess(title, message string) Option {
	return func(s *settings) {
		n := notify.Success(title, message)
		s.success = &n
	}
}

// WithInvalidTitle sets the title of validation error notifications.
func WithInvalidTitle(title string) Option {
	return func(s *settings) { s.invalidTitle = title }
}

// New creates a closed dialog whose draft starts at defaults().
func New[D Draft](defaults func() D, commit CommitFunc[D], opts ...Option) *Dialog[D] {
	s := settings{notifier: notify.Discard, invalidTitle: "Error"}
	for _, opt := range opts {
		opt(&s)
	}
	if s.notifier == nil {
		s.notifier = notify.Discard
	}
	return &Dialog[D]{
		draft:        defaults(),
		defaults:     defaults,
		commit:       commit,
		notifier:     s.notifier,
		success:      s.success,
		invalidTitle: s.invalidTitle,
	}
}

// Open shows the dialog with its current draft.
func (d *Dialog[D]) Open() { d.open = true }

// OpenWith shows the dialog seeded with draft, as edit dialogs do.
func (d *Dialog[D]) OpenWith(draft D) {
	d.draft = draft
	d.open = true
}

// Close hides the dialog without submitting. The draft is kept.
func (d *Dialog[D]) Close() { d.open = false }

func (d *Dialog[D]) IsOpen() bool { return d.open }

func (d *Dialog[D]) Draft() D { return d.draft }

func (d *Dialog[D]) SetDraft(draft D) { d.draft = draft }

// Edit mutates the draft in place.
func (d *Dialog[D]) Edit(fn func(*D)) { fn(&d.draft) }

// Reset restores the default draft.
func (d *Dialog[D]) Reset() { d.draft = d.defaults() }

// Submit validates the draft and commits it.
//
// On a validation or commit failure an error notification is raised, the
// dialog stays open and the draft is left untouched. On success the commit
// function has run exactly once, the draft is reset and the dialog is closed.
func (d *Dialog[D]) Submit(ctx context.Context) error {
	if !d.open {
		return ErrClosed
	}
	if err := d.draft.Validate(); err != nil {
		d.notifier.Notify(ctx, notify.Error(d.invalidTitle, validationMessage(err)))
		return err
	}
	if err := d.commit(ctx, d.draft); err != nil {
		d.notifier.Notify(ctx, notify.Error(d.invalidTitle, err.Error()))
		return fmt.Errorf("commit draft: %w", err)
	}
	if d.success != nil {
		d.notifier.Notify(ctx, *d.success)
	}
	d.draft = d.defaults()
	d.open = false
	return nil
}

func validationMessage(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason
	}
	return err.Error()
}
