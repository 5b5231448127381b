// Package oneshot implements a single-delivery container for a value shared
// by multiple concurrent owners.
package oneshot

import "sync"

// A Handoff is a shareable handle to a single value of type T, created by
// [New], which delivers that value to at most one of its holders. All handles
// cloned from the same origin refer to one shared slot; among any number of
// concurrent [Handoff.Take] calls on those handles, exactly one receives the
// value and the rest report absence.
//
// A Handoff is a small value and is safe to copy; copying it is equivalent to
// [Handoff.Clone]. All its methods are safe for concurrent use by multiple
// goroutines. The zero Handoff is valid and permanently empty.
//
// The slot and its value (if never taken) are reclaimed by the garbage
// collector once no handle refers to them; there is no teardown method.
type Handoff[T any] struct {
	s *slot[T]
}

// A slot is the storage cell shared by all handles cloned from one New call.
// The mutex guards val and ok, and is held only for the check-and-clear in
// Take; no user code runs while it is held.
type slot[T any] struct {
	μ   sync.Mutex
	val T
	ok  bool
}

// New constructs a Handoff holding value. The value is stored, not copied
// again afterward: the handle that wins the race in Take receives it as
// given here.
func New[T any](value T) Handoff[T] {
	return Handoff[T]{s: &slot[T]{val: value, ok: true}}
}

// Clone returns a new handle referring to the same slot as h. Cloning does
// not affect the stored value. Plain assignment of a Handoff is equivalent;
// Clone makes the sharing explicit when a handle crosses a goroutine
// boundary.
func (h Handoff[T]) Clone() Handoff[T] { return h }

// Take removes and returns the value held by the slot h refers to. It
// reports true on the one call, across all handles to that slot, that
// observes the value; every other call, concurrent or later, reports false
// with the zero value of T.
//
// Take blocks only to acquire the slot's mutex, which is held for the
// duration of the check-and-clear. It never panics: a caller that cannot
// obtain the value, for any reason, sees absence. Calling Take again on the
// same handle behaves like any other losing race participant and reports
// false.
func (h Handoff[T]) Take() (T, bool) {
	var zero T
	if h.s == nil {
		return zero, false
	}
	h.s.μ.Lock()
	defer h.s.μ.Unlock()
	v, ok := h.s.val, h.s.ok

	// Clear the value as well as the flag, so the slot does not pin the
	// delivered value while losing handles remain alive.
	h.s.val, h.s.ok = zero, false
	return v, ok
}
