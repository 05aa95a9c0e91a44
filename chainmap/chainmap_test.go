package chainmap_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/chainmap"
)

// collide sends every key to bucket 0 so that chain handling is exercised.
func collide(int) uint64 { return 0 }

func TestNew_Defaults(t *testing.T) {
	m := chainmap.New[string, int]()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, chainmap.DefaultCapacity, m.Capacity())
	assert.False(t, m.ContainsKey("missing"))

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestWithCapacity_Panics(t *testing.T) {
	assert.PanicsWithValue(t, chainmap.ErrBadCapacity.Error(), func() {
		chainmap.New[string, int](chainmap.WithCapacity[string](0))
	})
}

func TestPut_InsertAndOverwrite(t *testing.T) {
	m := chainmap.New[string, int]()

	prev, existed := m.Put("a", 1)
	assert.False(t, existed)
	assert.Equal(t, 0, prev)

	prev, existed = m.Put("a", 2)
	assert.True(t, existed)
	assert.Equal(t, 1, prev)

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, m.Len(), "overwrite must not change Len")
}

func TestRemove_ChainPositions(t *testing.T) {
	// All keys share one chain: 1 -> 2 -> 3 -> 4.
	m := chainmap.New[int, string](
		chainmap.WithCapacity[int](64),
		chainmap.WithHasher[int](collide),
	)
	for i := 1; i <= 4; i++ {
		m.Put(i, fmt.Sprint(i))
	}

	// middle
	v, ok := m.Remove(2)
	require.True(t, ok)
	assert.Equal(t, "2", v)
	// head
	v, ok = m.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "1", v)
	// tail
	v, ok = m.Remove(4)
	require.True(t, ok)
	assert.Equal(t, "4", v)
	// absent
	_, ok = m.Remove(42)
	assert.False(t, ok)

	assert.Equal(t, 1, m.Len())
	assert.True(t, m.ContainsKey(3))
	assert.False(t, m.ContainsKey(2))
}

func TestRemove_NeverShrinks(t *testing.T) {
	m := chainmap.New[int, int](chainmap.WithCapacity[int](4))
	for i := 0; i < 20; i++ {
		m.Put(i, i)
	}
	grown := m.Capacity()
	for i := 0; i < 20; i++ {
		m.Remove(i)
	}
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, grown, m.Capacity())
}

func TestGrowth_Threshold(t *testing.T) {
	m := chainmap.New[int, int]()

	// 13/17 ≈ 0.76 stays put.
	for i := 0; i < 13; i++ {
		m.Put(i, i*i)
	}
	assert.Equal(t, chainmap.DefaultCapacity, m.Capacity())

	// 14/17 ≈ 0.82 crosses 0.8 and doubles.
	m.Put(13, 169)
	assert.Equal(t, 2*chainmap.DefaultCapacity, m.Capacity())
	assert.LessOrEqual(t, m.LoadFactor(), chainmap.MaxLoadFactor)

	// Overwrites never grow.
	before := m.Capacity()
	m.Put(0, -1)
	assert.Equal(t, before, m.Capacity())
}

func TestGrowth_KeepsEveryKey(t *testing.T) {
	m := chainmap.New[string, int](chainmap.WithCapacity[string](2))
	const n = 5000
	for i := 0; i < n; i++ {
		m.Put(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, n, m.Len())
	assert.LessOrEqual(t, m.LoadFactor(), chainmap.MaxLoadFactor)

	for i := 0; i < n; i++ {
		v, ok := m.Get(fmt.Sprintf("k%d", i))
		require.True(t, ok, "key k%d lost after growth", i)
		require.Equal(t, i, v)
	}
}

func TestGrowth_CollidingKeys(t *testing.T) {
	m := chainmap.New[int, int](chainmap.WithHasher[int](collide))
	for i := 0; i < 100; i++ {
		m.Put(i, -i)
	}
	for i := 0; i < 100; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, -i, v)
	}
}

func TestKeysRangeClear(t *testing.T) {
	m := chainmap.New[int, bool]()
	want := map[int]bool{}
	for i := 0; i < 30; i++ {
		m.Put(i, true)
		want[i] = true
	}

	got := map[int]bool{}
	for _, k := range m.Keys() {
		got[k] = true
	}
	assert.Equal(t, want, got)

	// Range stops early on false.
	visits := 0
	m.Range(func(int, bool) bool {
		visits++
		return visits < 5
	})
	assert.Equal(t, 5, visits)

	capBefore := m.Capacity()
	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, capBefore, m.Capacity())
	assert.Empty(t, m.Keys())
}

func TestPointerKeys(t *testing.T) {
	type node struct{ id string }
	a, b := &node{"a"}, &node{"a"}

	m := chainmap.New[*node, int]()
	m.Put(a, 1)
	assert.True(t, m.ContainsKey(a))
	assert.False(t, m.ContainsKey(b), "distinct pointers are distinct keys")
}
