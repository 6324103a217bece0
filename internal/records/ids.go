package records

import "github.com/google/uuid"

// IDFunc produces a new record identifier.
type IDFunc func() string

// NewID returns a time-ordered UUIDv7 string, so identifiers carry their
// creation timestamp the same way the record sequences carry insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// FreshID draws ids from gen until it finds one not used in seq.
func FreshID[T Record[T]](seq []T, gen IDFunc) string {
	if gen == nil {
		gen = NewID
	}
	for {
		id := gen()
		if id != "" && !Contains(seq, id) {
			return id
		}
	}
}
