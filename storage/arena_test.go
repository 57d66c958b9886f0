package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaBumpAllocation(t *testing.T) {
	a := NewArena[int](64)

	var handles []Handle
	for n := 0; n < 4; n++ {
		h, err := a.Reserve(8)
		require.NoError(t, err)
		handles = append(handles, h)
	}

	for i := 1; i < len(handles); i++ {
		assert.Greater(t, handles[i], handles[i-1], "handles should be monotonically increasing offsets")
	}
	assert.Equal(t, 32, a.Len())

	// Regions must not alias.
	for i, h := range handles {
		region := a.Resolve(h, 8)
		for j := range region {
			region[j] = i
		}
	}
	for i, h := range handles {
		assert.Equal(t, i, a.Resolve(h, 8)[0], "reservation %d should keep its own contents", i)
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena[byte](16)

	_, err := a.Reserve(17)
	assert.ErrorIs(t, err, ErrNoSpace)

	h, err := a.Reserve(16)
	require.NoError(t, err)

	_, err = a.Reserve(1)
	assert.ErrorIs(t, err, ErrNoSpace, "a full slab rejects further reservations")

	a.Release(h, 16)
	_, err = a.Reserve(1)
	assert.NoError(t, err, "releasing the tail reservation rewinds the bump pointer")
}

func TestArenaGrowTailInPlace(t *testing.T) {
	a := NewArena[int](32)

	h, err := a.Reserve(4)
	require.NoError(t, err)
	copy(a.Resolve(h, 4), []int{1, 2, 3, 4})

	h2, err := a.Grow(h, 4, 12)
	require.NoError(t, err)
	assert.Equal(t, h, h2, "the tail reservation grows in place")
	assert.Equal(t, 12, a.Len())
	assert.Equal(t, []int{1, 2, 3, 4}, a.Resolve(h2, 12)[:4])

	stats := a.Stats()
	assert.Equal(t, 1, stats.GrowInPlace)
	assert.Zero(t, stats.GrowMoved)
}

func TestArenaGrowMovesOlderReservation(t *testing.T) {
	a := NewArena[int](64)

	h1, err := a.Reserve(4)
	require.NoError(t, err)
	copy(a.Resolve(h1, 4), []int{1, 2, 3, 4})

	h2, err := a.Reserve(4)
	require.NoError(t, err)
	copy(a.Resolve(h2, 4), []int{5, 6, 7, 8})

	// h1 is no longer the tail, so growing it must bump-allocate and copy.
	moved, err := a.Grow(h1, 4, 8)
	require.NoError(t, err)
	assert.NotEqual(t, h1, moved, "growing a non-tail reservation moves it")
	assert.Equal(t, []int{1, 2, 3, 4}, a.Resolve(moved, 8)[:4], "prefix must survive the move")
	assert.Equal(t, []int{5, 6, 7, 8}, a.Resolve(h2, 4), "other reservations are untouched")

	stats := a.Stats()
	assert.Equal(t, 1, stats.GrowMoved)
	assert.Equal(t, int64(4), stats.DeadElems, "the abandoned region is dead space")
}

func TestArenaGrowFailureLeavesReservationValid(t *testing.T) {
	a := NewArena[int](16)

	h1, err := a.Reserve(4)
	require.NoError(t, err)
	copy(a.Resolve(h1, 4), []int{1, 2, 3, 4})

	_, err = a.Reserve(8)
	require.NoError(t, err)

	// Moving h1 would need 16 fresh elements but only 4 remain.
	got, err := a.Grow(h1, 4, 16)
	assert.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, h1, got, "the original handle is returned on failure")
	assert.Equal(t, []int{1, 2, 3, 4}, a.Resolve(h1, 4), "the original region is untouched")
}

func TestArenaShrinkTailReclaims(t *testing.T) {
	a := NewArena[int](16)

	h, err := a.Reserve(10)
	require.NoError(t, err)

	h, err = a.Shrink(h, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len(), "tail shrink rewinds the bump pointer")

	_, err = a.Reserve(14)
	assert.NoError(t, err, "the reclaimed space is reusable")
	_ = h
}

func TestArenaReset(t *testing.T) {
	a := NewArena[byte](8)
	_, err := a.Reserve(8)
	require.NoError(t, err)

	a.Reset()
	assert.Zero(t, a.Len())

	_, err = a.Reserve(8)
	assert.NoError(t, err)
}

func TestArenaResolveOutOfRange(t *testing.T) {
	a := NewArena[int](8)

	h, err := a.Reserve(4)
	require.NoError(t, err)
	require.Len(t, a.Resolve(h, 4), 4)

	assert.Nil(t, a.Resolve(h, 100), "a span past the slab resolves to nil")
	assert.Nil(t, a.Resolve(h, -1), "a negative count resolves to nil")
}
