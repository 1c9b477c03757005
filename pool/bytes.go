package pool

import "github.com/cznic/mathutil"

// assumedWordSize is the machine word size CapacityForBytes assumes when
// translating a byte budget into a slot count, for callers who only know
// how many bytes they want an arena to occupy rather than how many slots.
const assumedWordSize = 8

// CapacityForBytes estimates how many blockSize-sized slots fit in a
// byteLen-byte budget, after subtracting a notional three-word header. It
// never returns a negative capacity: a byte budget too small for even the
// header clamps to zero, which New will then reject with
// ErrCapacityTooSmall.
//
// The arithmetic mirrors lldb.Allocator's block-count derivation from a
// byte budget and a fixed per-block overhead.
func CapacityForBytes(byteLen, blockSize int) int {
	header := 3 * assumedWordSize
	usable := byteLen - header
	if usable <= 0 {
		return 0
	}
	return mathutil.Max(0, usable/mathutil.Max(1, blockSize))
}
