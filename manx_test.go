package nsrb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewManxLimits(t *testing.T) {
	require.Panics(t, func() { NewManx[int](LowerLimit - 1) })
	require.Panics(t, func() { NewManx[int](UpperLimit + 1) })
	require.NotPanics(t, func() { NewManx[int](LowerLimit) })
}

// Push 14 values into a capacity-10 buffer: the head ends up at slot 4 and
// every slot has been written at least once.
func TestManxPushItems(t *testing.T) {
	m := NewManx[int](10)
	require.Zero(t, m.Head())

	for i := 1; i < 15; i++ {
		m.Push(i)
	}
	require.Equal(t, 4, m.Head())

	for i, v := range m.Items() {
		if v == 0 {
			t.Fatalf("slot %d was never written", i)
		}
	}

	// Storage order: the second lap overwrote slots 0..3.
	require.Equal(t, []int{11, 12, 13, 14, 5, 6, 7, 8, 9, 10}, m.Items())
	require.Equal(t, 4, m.Head())
}

// Items is a live view of the backing storage, not a copy.
func TestManxItemsAliasStorage(t *testing.T) {
	m := NewManx[int](5)
	items := m.Items()

	m.Push(7)
	require.Equal(t, 7, items[0])

	m.Push(8)
	require.Equal(t, 8, items[1])
	require.Len(t, items, 5)
}

func BenchmarkManxPush(b *testing.B) {
	m := NewManx[int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Push(i)
	}
}
