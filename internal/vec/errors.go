package vec

import (
	"github.com/cockroachdb/errors"
)

// ErrBorrowed is returned when a container is mutated while a cursor derived
// from it is still alive.
var ErrBorrowed = errors.New("vec: container is borrowed by a live cursor")

// borrowedError builds the aliasing violation for op. It is marked as an
// assertion failure since it can only come from a programming error.
func borrowedError(op string, l *leaseSet) error {
	err := errors.Wrapf(ErrBorrowed, "%s rejected: %d live cursor(s), oldest %s",
		op, l.count(), l.oldest())
	return errors.WithAssertionFailure(err)
}

// IsBorrowed reports whether err is an aliasing violation.
func IsBorrowed(err error) bool {
	return errors.Is(err, ErrBorrowed)
}
