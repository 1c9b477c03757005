// Package set implements an ordered-set container: unique keys, inorder
// iteration, O(height) find/insert/count, composed from a pool.Handle and
// the tree package's threaded-link primitives.
package set

import (
	"iter"

	"github.com/skipor/rtset/log"
	"github.com/skipor/rtset/pool"
	"github.com/skipor/rtset/tree"
)

// Comparator is a strict weak ordering over K: comp(a, b) reports whether a
// sorts strictly before b. Equivalence is !comp(a,b) && !comp(b,a) — keys
// for which neither holds are treated as duplicates and rejected by Insert.
type Comparator[K any] func(a, b K) bool

// Option configures an OrderedSet at construction.
type Option[K any] func(*OrderedSet[K])

// WithLogger attaches a log.Logger for diagnostic tracing: the set logs pool
// exhaustion during Insert at Warn. The arena's own records are not routed
// to it. A nil logger, or no WithLogger option at all, means no-op logging.
func WithLogger[K any](l log.Logger) Option[K] {
	if l == nil {
		l = log.Nop()
	}
	return func(s *OrderedSet[K]) { s.log = l }
}

// OrderedSet owns one head sentinel, one allocator handle, and a
// comparator; its tree shape is mutated only by Insert and Clear.
//
// OrderedSet is not safe for concurrent use: callers must synchronize
// access themselves if a set is shared across goroutines.
type OrderedSet[K any] struct {
	alloc pool.Handle[tree.Node[K]]
	head  pool.Addr[tree.Node[K]]
	less  Comparator[K]
	log   log.Logger
}

func newEmpty[K any](alloc pool.Handle[tree.Node[K]], less Comparator[K], opts []Option[K]) (*OrderedSet[K], error) {
	head := alloc.Pop()
	if !head.Valid() {
		return nil, pool.ErrCapacityTooSmall
	}
	tree.InitHead(head)
	s := &OrderedSet[K]{alloc: alloc, head: head, less: less, log: log.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// New constructs an empty set backed by a freshly allocated arena with room
// for capacity keys, plus one slot permanently reserved for the head
// sentinel — itself a node drawn from the arena rather than a field bolted
// on beside it.
func New[K any](capacity int, less Comparator[K], opts ...Option[K]) (*OrderedSet[K], error) {
	arena, err := pool.New[tree.Node[K]](capacity+1, nil)
	if err != nil {
		return nil, err
	}
	return newEmpty(pool.NewHandle(arena), less, opts)
}

// NewWithArena constructs an empty set over an already-bound allocator
// handle. Multiple sets (of the same K) may share one arena this way, each
// drawing its own head sentinel and nodes from the common free list.
func NewWithArena[K any](alloc pool.Handle[tree.Node[K]], less Comparator[K], opts ...Option[K]) (*OrderedSet[K], error) {
	return newEmpty(alloc, less, opts)
}

// NewFromSeq constructs a set containing every distinct element of seq,
// inserted in traversal order; duplicates are silently skipped. iter.Seq is
// Go's range-over-func iterator type, the natural way to accept "a sequence
// of keys" without committing to a slice or channel.
func NewFromSeq[K any](seq iter.Seq[K], capacity int, less Comparator[K], opts ...Option[K]) (*OrderedSet[K], error) {
	s, err := New(capacity, less, opts...)
	if err != nil {
		return nil, err
	}
	s.InsertSeq(seq)
	return s, nil
}

// Insert inserts key if no equivalent key is already present. It returns a
// cursor to the (possibly pre-existing) node and whether a new node was
// inserted. A false result with a cursor equal to End() means the pool was
// exhausted; a false result with a cursor to a real node means key was
// already present.
func (s *OrderedSet[K]) Insert(key K) (Cursor[K], bool) {
	if tree.HasNullLeft(s.head) {
		q := s.alloc.Pop()
		if !q.Valid() {
			s.log.Warnf("set: pool exhausted inserting first key %v", key)
			return s.End(), false
		}
		tree.AttachLeft(s.head, q)
		q.Value().Key = key
		return Cursor[K]{addr: q}, true
	}

	p, _ := tree.Root(s.head)
	for {
		switch pk := p.Value().Key; {
		case s.less(key, pk):
			if tree.HasRealLeft(p) {
				p = tree.LeftChild(p)
				continue
			}
			q := s.alloc.Pop()
			if !q.Valid() {
				s.log.Warnf("set: pool exhausted inserting %v", key)
				return s.End(), false
			}
			tree.AttachLeft(p, q)
			q.Value().Key = key
			return Cursor[K]{addr: q}, true
		case s.less(pk, key):
			if tree.HasRealRight(p) {
				p = tree.RightChild(p)
				continue
			}
			q := s.alloc.Pop()
			if !q.Valid() {
				s.log.Warnf("set: pool exhausted inserting %v", key)
				return s.End(), false
			}
			tree.AttachRight(p, q)
			q.Value().Key = key
			return Cursor[K]{addr: q}, true
		default:
			return Cursor[K]{addr: p}, false
		}
	}
}

// InsertSeq inserts every element of seq, ignoring duplicates and silently
// stopping early on pool exhaustion, consistent with Insert's own in-band
// failure signaling. A duplicate always returns a cursor to the real
// existing node, never End(), so "not inserted and at End()" unambiguously
// means the pool ran out rather than a repeat key.
func (s *OrderedSet[K]) InsertSeq(seq iter.Seq[K]) {
	for k := range seq {
		if c, inserted := s.Insert(k); !inserted && c.Equal(s.End()) {
			return
		}
	}
}

// Find returns a cursor to the node equivalent to key, or End() if absent.
func (s *OrderedSet[K]) Find(key K) Cursor[K] {
	addr, _ := s.findNode(key)
	return Cursor[K]{addr: addr}
}

func (s *OrderedSet[K]) findNode(key K) (pool.Addr[tree.Node[K]], bool) {
	p, ok := tree.Root(s.head)
	if !ok {
		return s.head, false
	}
	for {
		switch pk := p.Value().Key; {
		case s.less(key, pk):
			if !tree.HasRealLeft(p) {
				return s.head, false
			}
			p = tree.LeftChild(p)
		case s.less(pk, key):
			if !tree.HasRealRight(p) {
				return s.head, false
			}
			p = tree.RightChild(p)
		default:
			return p, true
		}
	}
}

// Count returns 1 if key is present, 0 otherwise (set semantics: never more
// than one).
func (s *OrderedSet[K]) Count(key K) int {
	if _, ok := s.findNode(key); ok {
		return 1
	}
	return 0
}

// Begin returns a cursor to the leftmost (smallest) key, or End() if empty.
// Unlike RBegin, which is InorderPredecessor(head), Begin cannot be taken
// from the head sentinel's successor link, which is a thread to the head
// itself — it descends from the root to the leftmost real node instead.
func (s *OrderedSet[K]) Begin() Cursor[K] {
	root, ok := tree.Root(s.head)
	if !ok {
		return s.End()
	}
	for tree.HasRealLeft(root) {
		root = tree.LeftChild(root)
	}
	return Cursor[K]{addr: root}
}

// End returns the end-of-iteration cursor: the head sentinel itself.
func (s *OrderedSet[K]) End() Cursor[K] { return Cursor[K]{addr: s.head} }

// RBegin returns a cursor to the rightmost (largest) key, or REnd() if
// empty. This one *is* a direct, O(height)-but-no-extra-state read off head:
// it is exactly InorderPredecessor(head), since the head's left link is the
// real root pointer when non-empty.
func (s *OrderedSet[K]) RBegin() Cursor[K] {
	if tree.HasNullLeft(s.head) {
		return s.REnd()
	}
	return Cursor[K]{addr: tree.InorderPredecessor(s.head)}
}

// REnd returns the reverse end-of-iteration cursor: the head sentinel.
func (s *OrderedSet[K]) REnd() Cursor[K] { return Cursor[K]{addr: s.head} }

// Len returns the number of elements, by walking Begin()..End(). The tree
// stores no running count, so this is O(n).
func (s *OrderedSet[K]) Len() int {
	n := 0
	for c := s.Begin(); !c.Equal(s.End()); c = c.Next() {
		n++
	}
	return n
}

// IsEmpty reports emptiness in O(1): a single head-tag test, no walk.
func (s *OrderedSet[K]) IsEmpty() bool { return tree.HasNullLeft(s.head) }

// Clear destroys every key and returns every node to the pool, leaving the
// set empty with the same free-list state it had immediately after
// construction.
func (s *OrderedSet[K]) Clear() {
	cur := s.Begin().addr
	for !cur.Equal(s.head) {
		next := tree.InorderSuccessor(cur)
		var zero K
		cur.Value().Key = zero
		s.alloc.Push(cur)
		cur = next
	}
	tree.InitHead(s.head)
}

// Swap exchanges the contents of s and other in O(1): only valid when both
// sets share the same pool, since otherwise a node from one arena would end
// up owned by a set built over a different arena.
func (s *OrderedSet[K]) Swap(other *OrderedSet[K]) bool {
	if !s.alloc.Equal(other.alloc) {
		return false
	}
	s.head, other.head = other.head, s.head
	s.less, other.less = other.less, s.less
	return true
}

// All returns an iter.Seq walking the set inorder — the idiomatic Go
// rewrite of "inorder iteration forward" for range-over-func.
func (s *OrderedSet[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := s.Begin(); !c.Equal(s.End()); c = c.Next() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// Backward returns an iter.Seq walking the set in reverse inorder.
func (s *OrderedSet[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for c := s.RBegin(); !c.Equal(s.REnd()); c = c.Prev() {
			if !yield(c.Key()) {
				return
			}
		}
	}
}

// Equal reports whether s and other contain the same elements in the same
// order under a's comparator: !comp(a,b) && !comp(b,a) for every paired
// element. The size check is strictly redundant with the
// element-wise walk below, but it is a cheap O(1) rejection for
// differently-sized sets, so it stays.
func Equal[K any](a, b *OrderedSet[K]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.Begin(), b.Begin()
	for !ca.Equal(a.End()) {
		ak, bk := ca.Key(), cb.Key()
		if a.less(ak, bk) || a.less(bk, ak) {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}
	return true
}

// Swap is the package-level form of (*OrderedSet[K]).Swap, for callers that
// prefer a free function over a method call.
func Swap[K any](a, b *OrderedSet[K]) bool { return a.Swap(b) }
