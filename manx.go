package nsrb

// Manx is a checked tailless accumulator buffer: a ring buffer with no read
// cursor. Push overwrites the oldest slot once the buffer has wrapped, so it
// always holds the most recent Cap() pushes. There is no Pop; Items exposes
// the storage as a read-only snapshot.
type Manx[T any] struct {
	head   int
	buffer []T
}

// NewManx creates a manx buffer backed by a zero-filled array of the given
// capacity. Same capacity bounds and panic behavior as NewRing.
func NewManx[T any](capacity int) *Manx[T] {
	checkCapacity(capacity)
	return &Manx[T]{buffer: make([]T, capacity)}
}

// Push stores item at the head cursor and advances it with wraparound.
// Every Cap()-th push begins overwriting from slot 0 again.
func (m *Manx[T]) Push(item T) {
	m.buffer[m.head] = item
	if m.head >= len(m.buffer)-1 {
		m.head = 0
	} else {
		m.head++
	}
}

// Items returns the backing storage in slot order, not chronological order.
// The slice aliases the buffer and reflects later pushes; callers wanting
// chronological order must rotate it around Head themselves.
func (m *Manx[T]) Items() []T {
	return m.buffer
}

// Head returns the index of the next slot to be written.
func (m *Manx[T]) Head() int {
	return m.head
}

// Cap returns the fixed buffer capacity.
func (m *Manx[T]) Cap() int {
	return len(m.buffer)
}
