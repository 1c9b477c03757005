package set

import (
	"github.com/cznic/mathutil"

	"github.com/skipor/rtset/tree"
)

// Clone deep-copies s into a freshly allocated arena of the given capacity
// (plus the head sentinel slot, as New also reserves), reproducing the
// source's tree *shape* — not just its key order — via a lockstep preorder
// walk. Tree shape matters because it embodies s's insertion history; a
// naive "reinsert every key" clone would produce a differently-shaped
// (though equally valid) tree.
//
// Clone returns (copy, complete, err): complete is false if the destination
// arena was exhausted partway through, leaving the copy holding only part of
// s's keys (still a valid set), rather than leaving the caller to discover that by noticing
// the clone is shorter than the original.
func (s *OrderedSet[K]) Clone(capacity int, opts ...Option[K]) (dst *OrderedSet[K], complete bool, err error) {
	dst, err = New[K](capacity, s.less, opts...)
	if err != nil {
		return nil, false, err
	}
	complete = copyInto(dst, s)
	return dst, complete, nil
}

// Assign clears s and deep-copies other's contents into it, reusing s's
// existing arena. It returns whether the copy completed; a false result
// leaves s holding only part of other's keys, same as a partially
// exhausted Clone.
func (s *OrderedSet[K]) Assign(other *OrderedSet[K]) bool {
	s.Clear()
	return copyInto(s, other)
}

// CloneSameCapacity clones s into a freshly allocated arena sized to exactly
// fit s's current contents, rounding up to 1 so that cloning an empty set
// still produces a constructible (if immediately-exhaustible) arena.
func (s *OrderedSet[K]) CloneSameCapacity(opts ...Option[K]) (*OrderedSet[K], bool, error) {
	return s.Clone(mathutil.Max(1, s.Len()), opts...)
}

// copyInto performs the lockstep preorder walk: at each step, if the
// current source node has a real left child, allocate and attach it in the
// destination; advance both trees' preorder cursors; if the newly reached
// source node has a real right child, allocate and attach that too. Because
// the destination only ever gains a node exactly when the source does,
// PreorderSuccessor on the two trees stays in lockstep throughout.
func copyInto[K any](dst, src *OrderedSet[K]) bool {
	srcRoot, ok := tree.Root(src.head)
	if !ok {
		return true
	}

	dstRoot := dst.alloc.Pop()
	if !dstRoot.Valid() {
		return false
	}
	tree.AttachLeft(dst.head, dstRoot)
	dstRoot.Value().Key = srcRoot.Value().Key

	// The root is never "newly reached" by the loop, so its right child is
	// attached here.
	if tree.HasRealRight(srcRoot) {
		dq := dst.alloc.Pop()
		if !dq.Valid() {
			return false
		}
		tree.AttachRight(dstRoot, dq)
		dq.Value().Key = tree.RightChild(srcRoot).Value().Key
	}

	sp, dp := srcRoot, dstRoot
	for {
		if tree.HasRealLeft(sp) {
			dq := dst.alloc.Pop()
			if !dq.Valid() {
				return false
			}
			tree.AttachLeft(dp, dq)
			dq.Value().Key = tree.LeftChild(sp).Value().Key
		}

		nsp := tree.PreorderSuccessor(sp, src.head)
		if nsp.Equal(src.head) {
			return true
		}
		ndp := tree.PreorderSuccessor(dp, dst.head)
		sp, dp = nsp, ndp

		if tree.HasRealRight(sp) {
			dq := dst.alloc.Pop()
			if !dq.Valid() {
				return false
			}
			tree.AttachRight(dp, dq)
			dq.Value().Key = tree.RightChild(sp).Value().Key
		}
	}
}
