// Package tree implements a threaded binary search tree's node layout and
// link primitives: a node whose nominally-null child links are repurposed
// as threads to the inorder predecessor/successor, tagged by two bits per
// node, so forward/backward traversal needs neither a parent pointer nor
// recursion nor an auxiliary stack.
//
// Nodes are addressed through pool.Addr rather than raw pointers — an
// opaque, comparable handle into the Arena a set's nodes live in, rather
// than a Go pointer a caller could dereference or compare across arenas.
package tree

import "github.com/skipor/rtset/pool"

const (
	// lbit set means left is a thread to the inorder predecessor, not a
	// real child.
	lbit uint8 = 1 << 0
	// rbit set means right is a thread to the inorder successor, not a
	// real child.
	rbit uint8 = 1 << 1
)

// Node is the fixed-layout record stored in one arena slot: a key, two
// links, and a 2-bit tag. Key is exported because, unlike left/right/tag,
// plain key access needs no invariant protection — only the links do.
type Node[K any] struct {
	Key         K
	left, right pool.Addr[Node[K]]
	tag         uint8
}

// HasNullLeft reports whether p's left link is a thread rather than a real
// child.
func HasNullLeft[K any](p pool.Addr[Node[K]]) bool { return p.Value().tag&lbit != 0 }

// HasNullRight reports whether p's right link is a thread rather than a
// real child.
func HasNullRight[K any](p pool.Addr[Node[K]]) bool { return p.Value().tag&rbit != 0 }

// HasRealLeft is the negation of HasNullLeft, spelled out at call sites that
// read more naturally phrased positively (descend-while-real-child loops).
func HasRealLeft[K any](p pool.Addr[Node[K]]) bool { return !HasNullLeft(p) }

// HasRealRight is the negation of HasNullRight.
func HasRealRight[K any](p pool.Addr[Node[K]]) bool { return !HasNullRight(p) }

// LeftChild returns p's left link. Callers must have already established
// HasRealLeft(p); like the rest of this package, there is no bounds check —
// these are bare pointer-manipulation primitives.
func LeftChild[K any](p pool.Addr[Node[K]]) pool.Addr[Node[K]] { return p.Value().left }

// RightChild returns p's right link. Callers must have already established
// HasRealRight(p).
func RightChild[K any](p pool.Addr[Node[K]]) pool.Addr[Node[K]] { return p.Value().right }

// InitHead resets h to the empty-tree sentinel state: both links threaded
// to itself, tag fully set. Used both at construction and by
// Clear to reset the head after destroying every node.
func InitHead[K any](h pool.Addr[Node[K]]) {
	n := h.Value()
	n.tag = lbit | rbit
	n.left = h
	n.right = h
}

// Root returns the tree's root and true, or a zero Addr and false if the
// tree rooted at head is empty.
func Root[K any](head pool.Addr[Node[K]]) (pool.Addr[Node[K]], bool) {
	if HasNullLeft(head) {
		var zero pool.Addr[Node[K]]
		return zero, false
	}
	return head.Value().left, true
}
