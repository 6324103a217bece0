// Package records implements copy-on-write reducers over ordered record
// sequences. Every function returns a new slice and leaves its input untouched,
// so a sequence handed out to a reader stays valid after later mutations.
package records

import (
	"errors"
	"slices"
)

// ErrNotFound is returned by lookups for an id that is not in the sequence.
var ErrNotFound = errors.New("record not found")

// Record is implemented by every domain record held in a sequence.
type Record[T any] interface {
	RecordID() string
	WithID(id string) T
}

// Field names a boolean flag that Toggle can flip.
type Field string

const (
	FieldCompleted      Field = "completed"
	FieldBought         Field = "bought"
	FieldNeedsAttention Field = "needsAttention"
)

// Toggler is a record that knows how to flip its own boolean fields.
// Toggle returns false when the record has no such field.
type Toggler[T any] interface {
	Record[T]
	Toggle(field Field) (T, bool)
}

// Add appends rec under the given id.
// An id already present in seq is a programming error and leaves seq unchanged.
func Add[T Record[T]](seq []T, rec T, id string) []T {
	if Contains(seq, id) {
		return seq
	}
	out := make([]T, len(seq), len(seq)+1)
	copy(out, seq)
	return append(out, rec.WithID(id))
}

// Edit replaces the entry whose id matches rec. Absent ids are a no-op.
func Edit[T Record[T]](seq []T, rec T) []T {
	i := Index(seq, rec.RecordID())
	if i < 0 {
		return seq
	}
	out := slices.Clone(seq)
	out[i] = rec
	return out
}

// Remove drops the entry with the given id. Absent ids are ignored.
func Remove[T Record[T]](seq []T, id string) []T {
	i := Index(seq, id)
	if i < 0 {
		return seq
	}
	out := make([]T, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	return append(out, seq[i+1:]...)
}

// Toggle flips field on the entry with the given id.
// Absent ids and fields the record does not have are no-ops.
func Toggle[T Toggler[T]](seq []T, id string, field Field) []T {
	i := Index(seq, id)
	if i < 0 {
		return seq
	}
	next, ok := seq[i].Toggle(field)
	if !ok {
		return seq
	}
	out := slices.Clone(seq)
	out[i] = next
	return out
}

// Update replaces the entry with the given id by fn applied to a copy of it.
// fn must not change the id.
func Update[T Record[T]](seq []T, id string, fn func(T) T) []T {
	i := Index(seq, id)
	if i < 0 {
		return seq
	}
	out := slices.Clone(seq)
	out[i] = fn(out[i]).WithID(id)
	return out
}

// UpdateWhere applies fn to every entry matching pred.
func UpdateWhere[T Record[T]](seq []T, pred func(T) bool, fn func(T) T) []T {
	out := slices.Clone(seq)
	for i, rec := range out {
		if pred(rec) {
			out[i] = fn(rec).WithID(rec.RecordID())
		}
	}
	return out
}

// Filter returns the entries matching pred, in order.
func Filter[T any](seq []T, pred func(T) bool) []T {
	out := make([]T, 0, len(seq))
	for _, rec := range seq {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Index returns the position of id in seq, or -1.
func Index[T Record[T]](seq []T, id string) int {
	return slices.IndexFunc(seq, func(rec T) bool { return rec.RecordID() == id })
}

func Contains[T Record[T]](seq []T, id string) bool {
	return Index(seq, id) >= 0
}

// Find returns the entry with the given id or ErrNotFound.
func Find[T Record[T]](seq []T, id string) (T, error) {
	i := Index(seq, id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	return seq[i], nil
}
