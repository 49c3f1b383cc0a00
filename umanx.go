package nsrb

// UManx is the unchecked manx buffer: tailless like Manx, capacity fixed to
// the full range of the index type like URing. Push is a write plus one
// wrapping increment, nothing else.
type UManx[I Index, T any] struct {
	head   I
	buffer []T
}

// NewUManx creates an unchecked manx buffer. Same index-width bounds and
// panic behavior as NewURing.
func NewUManx[I Index, T any]() *UManx[I, T] {
	checkIndexWidth[I]()
	return &UManx[I, T]{buffer: make([]T, uint64(^I(0))+1)}
}

// Push stores item at the head cursor and increments it, wrapping to 0 on
// overflow.
func (m *UManx[I, T]) Push(item T) {
	m.buffer[m.head] = item
	m.head++
}

// Items returns the backing storage in slot order, not chronological order.
// The slice aliases the buffer and reflects later pushes.
func (m *UManx[I, T]) Items() []T {
	return m.buffer
}

// Head returns the index of the next slot to be written.
func (m *UManx[I, T]) Head() I {
	return m.head
}

// Cap returns the fixed buffer capacity, 2^bitwidth of the index type.
func (m *UManx[I, T]) Cap() int {
	return len(m.buffer)
}
