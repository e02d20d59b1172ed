// internal/vec/doc.go
// Package vec provides a growable, indexable sequence container that owns its
// elements, together with a read-only forward cursor over it.
//
// # Storage
//
// A Vec keeps a fixed-length backing slice plus a logical length. Slots past
// the length hold the element type's zero value and are never visible to
// callers. When a push finds the backing slice full, the container grows:
// capacity 0 becomes 1, anything else doubles. Growth moves every element to
// the same index of a fresh slice and clears the old one.
//
//	v := vec.New[string]()
//	_ = v.Push("Java Finch")
//	_ = v.Push("Budgerigar")
//	s, ok := v.Get(1) // "Budgerigar", true
//	_, ok = v.Get(2)  // "", false
//
// # Cursors and leases
//
// Iter returns a Cursor holding a shared lease on the container. While any
// lease is live, Push is rejected with an error matching ErrBorrowed. A lease
// ends when the cursor is released or exhausted:
//
//	c := v.Iter()
//	first, _ := c.Next()
//	err := v.Push("Hill Myna") // errors.Is(err, vec.ErrBorrowed)
//	c.Release()
//	err = v.Push("Canary")     // nil
//
// Range loops over Seq or All release their lease when the loop ends,
// including on break.
//
// # Thread Safety
//
// Vec and Cursor are not safe for concurrent use.
package vec
