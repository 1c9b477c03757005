package tree

import "github.com/skipor/rtset/pool"

// InorderSuccessor returns the inorder successor of p: p.right directly if
// it is already a thread, otherwise the leftmost node of p's right subtree.
// O(1) amortized, no recursion, no stack — the thread does the work a
// parent pointer would otherwise need to do.
func InorderSuccessor[K any](p pool.Addr[Node[K]]) pool.Addr[Node[K]] {
	n := p.Value()
	if n.tag&rbit != 0 {
		return n.right
	}
	cur := n.right
	for HasRealLeft(cur) {
		cur = LeftChild(cur)
	}
	return cur
}

// InorderPredecessor returns the inorder predecessor of p: the mirror image
// of InorderSuccessor.
func InorderPredecessor[K any](p pool.Addr[Node[K]]) pool.Addr[Node[K]] {
	n := p.Value()
	if n.tag&lbit != 0 {
		return n.left
	}
	cur := n.left
	for HasRealRight(cur) {
		cur = RightChild(cur)
	}
	return cur
}

// PreorderSuccessor returns the next node in a preorder walk: p's left child
// if it has one, otherwise the first real right child found by climbing
// successor threads. Used only by the set package's Clone/Assign, which
// needs to reproduce tree *shape* rather than just key order, so inorder
// traversal alone would not suffice.
//
// head bounds the walk: PreorderSuccessor returns head once the climb would
// otherwise escape the tree (the rightmost node's successor thread always
// points at head).
func PreorderSuccessor[K any](p, head pool.Addr[Node[K]]) pool.Addr[Node[K]] {
	if HasRealLeft(p) {
		return LeftChild(p)
	}
	cur := p
	for HasNullRight(cur) {
		cur = RightChild(cur)
		if cur.Equal(head) {
			return head
		}
	}
	return RightChild(cur)
}

// AttachLeft splices new in as the left child of parent. parent must
// currently have no real left child (HasNullLeft(parent) == true).
//
// Before: parent.left is a thread to parent's inorder predecessor (or head).
// After: new.left inherits that same thread (new is now the predecessor's
// successor); new.right threads to parent (new's inorder successor is now
// parent, since new sits immediately before it); parent.left becomes a real
// link to new. No other node's thread target changes — attaching a node
// only ever rewrites links reachable from new and parent themselves.
func AttachLeft[K any](parent, newNode pool.Addr[Node[K]]) {
	p, q := parent.Value(), newNode.Value()
	q.left = p.left
	if p.tag&lbit != 0 {
		q.tag |= lbit
	} else {
		q.tag &^= lbit
	}
	q.right = parent
	q.tag |= rbit
	p.left = newNode
	p.tag &^= lbit
}

// AttachRight splices new in as the right child of parent, mirroring
// AttachLeft. parent must currently have no real right child.
func AttachRight[K any](parent, newNode pool.Addr[Node[K]]) {
	p, q := parent.Value(), newNode.Value()
	q.right = p.right
	if p.tag&rbit != 0 {
		q.tag |= rbit
	} else {
		q.tag &^= rbit
	}
	q.left = parent
	q.tag |= lbit
	p.right = newNode
	p.tag &^= rbit
}
