package set

import (
	"github.com/skipor/rtset/pool"
	"github.com/skipor/rtset/tree"
)

// Cursor is a bidirectional sequence position over an OrderedSet, advancing
// node-to-node through the threaded tree with no allocation and no
// auxiliary state beyond the node it currently points at. The zero Cursor
// is not meaningful on its own — obtain one from an OrderedSet's
// Begin/End/RBegin/REnd/Find/Insert.
type Cursor[K any] struct {
	addr pool.Addr[tree.Node[K]]
}

// Key dereferences the cursor. Calling Key on an end/rend cursor does not
// panic: it returns the head sentinel's key field, which holds no user key.
func (c Cursor[K]) Key() K { return c.addr.Value().Key }

// Next advances c to its inorder successor. Calling Next on End() leaves c
// at End(): the head sentinel's successor thread always points at itself,
// so repeated Next past the end is safe and idempotent rather than
// undefined behavior.
func (c Cursor[K]) Next() Cursor[K] { return Cursor[K]{addr: tree.InorderSuccessor(c.addr)} }

// Prev moves c to its inorder predecessor. Prev(End()) lands on RBegin(),
// and Prev(Begin()) lands on REnd() — both fall out of the head sentinel's
// own link values, with no special-casing needed here.
func (c Cursor[K]) Prev() Cursor[K] { return Cursor[K]{addr: tree.InorderPredecessor(c.addr)} }

// Equal reports whether c and other address the same node.
func (c Cursor[K]) Equal(other Cursor[K]) bool { return c.addr.Equal(other.addr) }
