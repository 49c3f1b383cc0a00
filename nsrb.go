// Package nsrb provides fixed-capacity circular buffer data structures
// designed for stack residency: no growth, no locking, no allocation after
// construction.
//
// Two families are provided. Ring buffers are FIFO: Push writes at the head
// cursor, Pop consumes at the tail cursor, and pushing into a full buffer
// silently overwrites the oldest unread element. Manx buffers have no tail
// at all: they only accumulate, keeping the most recent Cap() pushes in ring
// order.
//
// Each family comes in a checked and an unchecked variant. Checked buffers
// (Ring, Manx) take an arbitrary capacity and wrap their cursors with an
// explicit comparison. Unchecked buffers (URing, UManx) fix the capacity to
// the full range of an 8- or 16-bit index type and let the cursors wrap by
// native integer overflow, so the hot path carries no capacity branch.
//
// All types assume exactly one goroutine mutating and reading a given
// instance. Callers needing concurrent access must serialize it externally.
package nsrb

// Index is the cursor type of the unchecked buffer variants. The buffer
// capacity is the full range of the chosen type: 256 for uint8, 65536 for
// uint16. uint32 compiles but is rejected at construction unless the package
// is built with the nsrb_nolimit tag.
type Index interface {
	~uint8 | ~uint16 | ~uint32
}

// LowerLimit is the smallest capacity a checked buffer accepts.
const LowerLimit = 2

// UpperLimit is the largest capacity any buffer accepts.
const UpperLimit = 1<<16 - 1

// checkCapacity validates an explicit capacity for the checked variants.
// Compiled out under the nsrb_nolimit build tag.
func checkCapacity(capacity int) {
	if limitsEnforced && (capacity < LowerLimit || capacity > UpperLimit) {
		panic("capacity must be between LowerLimit and UpperLimit")
	}
}

// checkIndexWidth validates the index type of the unchecked variants.
// Compiled out under the nsrb_nolimit build tag.
func checkIndexWidth[I Index]() {
	if limitsEnforced && uint64(^I(0)) > UpperLimit {
		panic("index type wider than 16 bits needs the nsrb_nolimit build tag")
	}
}
