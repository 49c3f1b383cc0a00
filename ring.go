package nsrb

// Ring is a checked FIFO circular buffer with a fixed, arbitrary capacity.
//
// Push always succeeds: once the buffer is full, each push discards the
// oldest unread element to make room. One slot is structurally reserved to
// tell empty from full with only two cursors, so at most Cap()-1 elements
// are readable at any time.
type Ring[T any] struct {
	head   int
	tail   int
	buffer []T
}

// NewRing creates an empty ring buffer backed by a zero-filled array of the
// given capacity. Capacity must be between LowerLimit and UpperLimit unless
// the package is built with the nsrb_nolimit tag; violations panic.
func NewRing[T any](capacity int) *Ring[T] {
	checkCapacity(capacity)
	return &Ring[T]{buffer: make([]T, capacity)}
}

// Push stores item at the head cursor and advances it. If that lands the
// head on the tail, the tail is advanced too, dropping the oldest unread
// element. No signal is given when that happens.
func (r *Ring[T]) Push(item T) {
	r.buffer[r.head] = item
	r.head = r.advance(r.head)
	if r.head == r.tail {
		r.tail = r.advance(r.tail)
	}
}

// Pop returns a pointer to the oldest unread element and advances the tail,
// or nil if the buffer is empty. The pointer aliases buffer storage: it is
// only valid until a later Push reaches that slot.
func (r *Ring[T]) Pop() *T {
	if r.tail == r.head {
		return nil
	}
	tail := r.tail
	r.tail = r.advance(r.tail)
	return &r.buffer[tail]
}

// advance moves a cursor one slot forward. Capacity is not necessarily a
// power of two, so this is an explicit compare-and-wrap, not a mask or mod.
func (r *Ring[T]) advance(i int) int {
	if i >= len(r.buffer)-1 {
		return 0
	}
	return i + 1
}

// Clear drops all unread elements in O(1). Storage is not zeroed; stale
// values remain in their slots until overwritten.
func (r *Ring[T]) Clear() {
	r.tail = r.head
}

// Len returns the number of unread elements, at most Cap()-1.
func (r *Ring[T]) Len() int {
	if r.tail > r.head {
		return len(r.buffer) + r.head - r.tail
	}
	return r.head - r.tail
}

// Cap returns the fixed buffer capacity.
func (r *Ring[T]) Cap() int {
	return len(r.buffer)
}

// Head returns the index of the next slot to be written.
func (r *Ring[T]) Head() int {
	return r.head
}

// Tail returns the index of the next slot to be read.
func (r *Ring[T]) Tail() int {
	return r.tail
}
