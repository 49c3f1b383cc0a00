package nsrb

// URing is an unchecked FIFO circular buffer whose capacity is the full
// range of its index type: 256 elements for uint8, 65536 for uint16. The
// cursors wrap by native integer overflow, so neither Push nor Pop compares
// against a capacity.
//
// Because head == tail is the only emptiness test and no slot is reserved,
// cursor states that a checked buffer would disambiguate are ambiguous here.
// That is the accepted price of the branch-free hot path; see Pop.
type URing[I Index, T any] struct {
	head   I
	tail   I
	buffer []T
}

// NewURing creates an empty unchecked ring buffer. The index type must fit
// in 16 bits unless the package is built with the nsrb_nolimit tag;
// violations panic.
func NewURing[I Index, T any]() *URing[I, T] {
	checkIndexWidth[I]()
	return &URing[I, T]{buffer: make([]T, uint64(^I(0))+1)}
}

// Push stores item at the head cursor and increments it, wrapping to 0 on
// overflow. If that lands the head on the tail, the tail is incremented too,
// dropping the oldest unread element silently.
func (r *URing[I, T]) Push(item T) {
	r.buffer[r.head] = item
	r.head++
	if r.head == r.tail {
		r.tail++
	}
}

// Pop returns a pointer to the oldest unread element and increments the
// tail, or nil if head == tail. The pointer aliases buffer storage and is
// only valid until a later Push reaches that slot.
func (r *URing[I, T]) Pop() *T {
	if r.tail == r.head {
		return nil
	}
	tail := r.tail
	r.tail++
	return &r.buffer[tail]
}

// Clear drops all unread elements in O(1) without zeroing storage.
func (r *URing[I, T]) Clear() {
	r.tail = r.head
}

// Len returns the number of unread elements. The wrapping subtraction is
// exact for fixed-width cursors.
func (r *URing[I, T]) Len() int {
	return int(r.head - r.tail)
}

// Cap returns the fixed buffer capacity, 2^bitwidth of the index type.
func (r *URing[I, T]) Cap() int {
	return len(r.buffer)
}

// Head returns the index of the next slot to be written.
func (r *URing[I, T]) Head() I {
	return r.head
}

// Tail returns the index of the next slot to be read.
func (r *URing[I, T]) Tail() I {
	return r.tail
}
