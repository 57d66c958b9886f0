package container

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/storekit/storage"
)

func TestDequePushPopBothEnds(t *testing.T) {
	d := NewDeque[int](storage.NewHeap[int]())
	defer d.Close()

	require.NoError(t, d.PushBack(2))
	require.NoError(t, d.PushBack(3))
	require.NoError(t, d.PushFront(1))
	require.NoError(t, d.PushFront(0))
	assert.Equal(t, 4, d.Len())

	front, ok := d.Front()
	require.True(t, ok)
	assert.Equal(t, 0, front)
	back, ok := d.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	for want := 0; want < 4; want++ {
		got, ok := d.PopFront()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok = d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
}

func TestDequeWrapAround(t *testing.T) {
	d, err := NewDequeCapacity[int](storage.NewInline[int](4), 4)
	require.NoError(t, err)
	defer d.Close()

	// Rotate the ring so the head sits mid-region, then wrap.
	require.NoError(t, d.PushBack(1))
	require.NoError(t, d.PushBack(2))
	_, _ = d.PopFront()
	require.NoError(t, d.PushBack(3))
	require.NoError(t, d.PushBack(4))
	require.NoError(t, d.PushBack(5)) // physically wraps to slot 0

	assert.False(t, d.IsContiguous())
	a, b := d.Slices()
	assert.Equal(t, []int{2, 3, 4}, a)
	assert.Equal(t, []int{5}, b)

	got := d.MakeContiguous()
	assert.Equal(t, []int{2, 3, 4, 5}, got)
	assert.True(t, d.IsContiguous())
}

func TestDequeGrowWhileWrapped(t *testing.T) {
	d := NewDeque[int](storage.NewHeap[int]())
	defer d.Close()

	// Fill to capacity, rotate so the ring wraps, then force growth.
	for i := 0; i < 4; i++ {
		require.NoError(t, d.PushBack(i))
	}
	require.Equal(t, 4, d.Cap())
	_, _ = d.PopFront()
	_, _ = d.PopFront()
	require.NoError(t, d.PushBack(4))
	require.NoError(t, d.PushBack(5)) // wrapped now
	require.False(t, d.IsContiguous())

	require.NoError(t, d.PushBack(6)) // grows: must linearize first
	assert.Equal(t, []int{2, 3, 4, 5, 6}, d.MakeContiguous(), "order must survive growth of a wrapped ring")
}

func TestDequeInlineBoundaryNoPartialMutation(t *testing.T) {
	d := NewDeque[int](storage.NewInline[int](4))
	defer d.Close()

	for i := 0; i < 4; i++ {
		require.NoError(t, d.PushBack(i))
	}

	err := d.PushBack(4)
	assert.ErrorIs(t, err, storage.ErrNoSpace)
	err = d.PushFront(-1)
	assert.ErrorIs(t, err, storage.ErrNoSpace)

	assert.Equal(t, 4, d.Len(), "length unchanged after failed pushes")
	assert.Equal(t, []int{0, 1, 2, 3}, d.MakeContiguous(), "contents unchanged after failed pushes")
}

// TestDequeRingModel drives a deque and a plain-slice reference model with
// the same random interleaving of operations and checks they never diverge.
func TestDequeRingModel(t *testing.T) {
	const capacity = 8

	d, err := NewDequeCapacity[int](storage.NewInline[int](capacity), capacity)
	require.NoError(t, err)
	defer d.Close()

	rng := rand.New(rand.NewSource(42))
	var model []int
	next := 0

	for step := 0; step < 2000; step++ {
		switch rng.Intn(4) {
		case 0: // push-front
			if len(model) < capacity {
				require.NoError(t, d.PushFront(next))
				model = append([]int{next}, model...)
				next++
			}
		case 1: // push-back
			if len(model) < capacity {
				require.NoError(t, d.PushBack(next))
				model = append(model, next)
				next++
			}
		case 2: // pop-front
			got, ok := d.PopFront()
			if len(model) == 0 {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				require.Equal(t, model[0], got, "step %d: pop-front diverged", step)
				model = model[1:]
			}
		case 3: // pop-back
			got, ok := d.PopBack()
			if len(model) == 0 {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				require.Equal(t, model[len(model)-1], got, "step %d: pop-back diverged", step)
				model = model[:len(model)-1]
			}
		}

		require.Equal(t, len(model), d.Len(), "step %d: length diverged", step)
		for i, want := range model {
			got, ok := d.At(i)
			require.True(t, ok)
			require.Equal(t, want, got, "step %d: element %d diverged", step, i)
		}
	}

	// Linearized contents must match the model exactly.
	if len(model) == 0 {
		assert.Zero(t, d.Len())
	} else {
		assert.Equal(t, model, d.MakeContiguous())
	}
}

func TestDequeCapacityMonotonicUnderPops(t *testing.T) {
	d := NewDeque[int](storage.NewHeap[int]())
	defer d.Close()

	for i := 0; i < 20; i++ {
		require.NoError(t, d.PushBack(i))
	}
	for d.Len() > 0 {
		capBefore := d.Cap()
		d.PopFront()
		assert.GreaterOrEqual(t, d.Cap(), capBefore)
	}
}

func TestDequeShrinkToFit(t *testing.T) {
	d := NewDeque[int](storage.NewHeap[int]())

	for i := 0; i < 5; i++ {
		require.NoError(t, d.PushBack(i))
	}
	_, _ = d.PopFront() // head is now non-zero
	require.Greater(t, d.Cap(), d.Len())

	require.NoError(t, d.ShrinkToFit())
	assert.Equal(t, d.Len(), d.Cap())
	assert.Equal(t, []int{1, 2, 3, 4}, d.MakeContiguous())

	d.Clear()
	require.NoError(t, d.ShrinkToFit())
	assert.Zero(t, d.Cap(), "an empty deque releases its reservation")
	d.Close()
}

func TestDequeSetAndAt(t *testing.T) {
	d := NewDeque[string](storage.NewHeap[string]())
	defer d.Close()

	require.NoError(t, d.PushBack("a"))
	require.NoError(t, d.PushFront("z"))

	assert.True(t, d.Set(0, "y"))
	got, ok := d.At(0)
	require.True(t, ok)
	assert.Equal(t, "y", got)

	assert.False(t, d.Set(2, "w"))
	_, ok = d.At(-1)
	assert.False(t, ok)
}
