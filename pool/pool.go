// Package pool implements a node-stack allocator: a fixed-capacity,
// single-size free list that performs O(1) pop/push against a backing
// store allocated exactly once.
//
// A classic C implementation of this threads the free list through a
// caller-supplied byte buffer, storing the next-free address in the first
// machine word of each free block. That buys zero extra bookkeeping bytes
// and the ability to rebind a raw buffer to different element types, at the
// cost of being impossible to do safely in Go: the precise garbage
// collector cannot scan a byte buffer for the live pointers a generic
// element type might contain, so nodes holding pointer-shaped keys could
// never safely live inside raw bytes. This package keeps the invariant that
// actually matters for a realtime caller — one allocation up front, zero
// thereafter, O(1) steady state — and drops the byte-level union instead:
// Arena owns a single []slot[T] allocated at construction, threads its free
// list through an explicit next field, and hands out addresses as opaque
// Addr values rather than raw pointers.
package pool

import (
	"github.com/cznic/mathutil"
	"github.com/facebookgo/stackerr"

	"github.com/skipor/rtset/internal/tag"
	"github.com/skipor/rtset/log"
)

// Addr is a node-stack slot address. It is opaque and pool-relative:
// comparing two Addr values for equality only makes sense when both came
// from the same Arena. The zero Addr is never a live slot — Pop returns it
// on exhaustion, the same way a null pointer would signal exhaustion.
type Addr[T any] struct {
	s *slot[T]
}

// Valid reports whether a references a live slot. An invalid Addr is what
// Pop returns when the arena is exhausted.
func (a Addr[T]) Valid() bool { return a.s != nil }

// Value returns the payload at a. Calling Value on an invalid Addr panics,
// the same way dereferencing a null pointer would — callers are expected to
// check Valid (or rely on the set package, which never does).
func (a Addr[T]) Value() *T { return &a.s.value }

// Equal reports whether a and b address the same slot.
func (a Addr[T]) Equal(b Addr[T]) bool { return a.s == b.s }

type slot[T any] struct {
	value T
	next  *slot[T]
}

// Arena is the node-stack allocator: a fixed number of equal-size slots,
// backed by one slice allocated at construction, threaded into a LIFO free
// list. Pop and Push are O(1) regardless of arena size, independent of heap
// state — the realtime guarantee this package exists to provide.
type Arena[T any] struct {
	storage []slot[T]
	top     *slot[T]
	free    int
	links   int
	log     log.Logger
}

// tracedErr keeps the call-site trace recorded by stackerr.Wrap while
// unwrapping to the sentinel, so errors.Is finds it whether or not the
// stackerr wrapper itself unwraps.
type tracedErr struct {
	error
	sentinel error
}

func (e tracedErr) Unwrap() error { return e.sentinel }

// New allocates an Arena with room for exactly capacity slots. This is the
// Arena's only allocation; Pop and Push never grow or shrink storage.
//
// New fails if capacity is too small to hold even a head sentinel plus one
// real node. A mismatched rebind of one arena's storage as a different
// element type, a classic footgun in a byte-buffer-backed allocator, simply
// cannot happen here: Arena[T] and Arena[U] are distinct types for T != U,
// so Go's type system rejects the mismatch at compile time instead of at
// runtime. See DESIGN.md.
func New[T any](capacity int, logger log.Logger) (*Arena[T], error) {
	if capacity < 2 {
		return nil, tracedErr{stackerr.Wrap(ErrCapacityTooSmall), ErrCapacityTooSmall}
	}
	if logger == nil {
		logger = log.Nop()
	}
	a := &Arena[T]{
		storage: make([]slot[T], capacity),
		log:     logger,
		links:   1,
	}
	for i := range a.storage {
		a.storage[i].next = a.top
		a.top = &a.storage[i]
	}
	a.free = capacity
	logger.Debugf("pool: linked arena, capacity=%d", capacity)
	return a, nil
}

// Pop removes one slot from the free list and returns its address, or an
// invalid Addr if the arena is exhausted. Pop never allocates.
func (a *Arena[T]) Pop() Addr[T] {
	if a.top == nil {
		a.log.Warnf("pool: exhausted, capacity=%d", len(a.storage))
		return Addr[T]{}
	}
	s := a.top
	a.top = s.next
	a.free--
	if tag.Debug {
		s.next = nil
	}
	return Addr[T]{s: s}
}

// Push returns a slot to the free list. Pushing an invalid Addr is a no-op.
func (a *Arena[T]) Push(addr Addr[T]) {
	if !addr.Valid() {
		return
	}
	if tag.Debug {
		var zero T
		addr.s.value = zero
	}
	addr.s.next = a.top
	a.top = addr.s
	a.free++
}

// Cap returns the arena's fixed capacity.
func (a *Arena[T]) Cap() int { return len(a.storage) }

// Free returns the number of slots currently on the free list. O(1): the
// count is maintained incrementally by Pop/Push, not walked.
func (a *Arena[T]) Free() int { return a.free }

// Live returns the number of slots currently allocated (Cap - Free).
func (a *Arena[T]) Live() int { return len(a.storage) - a.free }

// RefCount returns the number of Handles currently bound to this arena.
func (a *Arena[T]) RefCount() int { return a.links }

// Stats is a read-only snapshot of arena occupancy, grounded on
// lldb.AllocStats (TotalAtoms/AllocAtoms/FreeAtoms): an observability
// affordance for the invariant that every slot is either free or live, and
// the two counts always sum to capacity.
type Stats struct {
	Cap  int
	Free int
	Live int
}

// Stats returns a snapshot of a's current occupancy.
func (a *Arena[T]) Stats() Stats {
	return Stats{Cap: a.Cap(), Free: a.Free(), Live: a.Live()}
}
