package vec

import (
	"slices"

	"github.com/google/uuid"
)

// leaseSet tracks the shared leases held by live cursors, oldest first.
type leaseSet struct {
	ids []uuid.UUID
}

// acquire registers a new lease and returns its ID
func (l *leaseSet) acquire() uuid.UUID {
	id := uuid.New()
	l.ids = append(l.ids, id)
	return id
}

// release drops the lease. Returns false if it was not held.
func (l *leaseSet) release(id uuid.UUID) bool {
	i := slices.Index(l.ids, id)
	if i < 0 {
		return false
	}
	l.ids = slices.Delete(l.ids, i, i+1)
	return true
}

func (l *leaseSet) count() int {
	return len(l.ids)
}

func (l *leaseSet) oldest() string {
	if len(l.ids) == 0 {
		return "none"
	}
	return l.ids[0].String()
}
