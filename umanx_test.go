package nsrb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUManxIndexWidthLimit(t *testing.T) {
	require.Panics(t, func() { NewUManx[uint32, int]() })
	require.NotPanics(t, func() { NewUManx[uint8, int]() })
	require.NotPanics(t, func() { NewUManx[uint16, int]() })
}

// Push 332 values through an 8-bit buffer: the head wraps once and lands on
// 332 mod 256 = 76.
func TestUManxPushWraps(t *testing.T) {
	m := NewUManx[uint8, int]()
	require.Equal(t, 256, m.Cap())

	for i := 1; i <= 332; i++ {
		m.Push(i)
	}
	require.Equal(t, uint8(76), m.Head())

	items := m.Items()
	for i, v := range items {
		if v == 0 {
			t.Fatalf("slot %d was never written", i)
		}
	}

	// Second lap overwrote slots 0..75; slot 76 onward still holds lap one.
	require.Equal(t, 257, items[0])
	require.Equal(t, 332, items[75])
	require.Equal(t, 77, items[76])
	require.Equal(t, 256, items[255])
}

func TestUManx16Head(t *testing.T) {
	m := NewUManx[uint16, byte]()
	require.Equal(t, 65536, m.Cap())

	for i := 0; i < 65540; i++ {
		m.Push(byte(i))
	}
	require.Equal(t, uint16(4), m.Head())
}

func BenchmarkUManxPush(b *testing.B) {
	m := NewUManx[uint8, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Push(i)
	}
}
