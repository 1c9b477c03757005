package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skipor/rtset/pool"
)

func TestNew_CapacityTooSmall(t *testing.T) {
	_, err := pool.New[int](1, nil)
	require.ErrorIs(t, err, pool.ErrCapacityTooSmall)

	_, err = pool.New[int](0, nil)
	require.ErrorIs(t, err, pool.ErrCapacityTooSmall)
}

func TestArena_PopPushRoundTrip(t *testing.T) {
	a, err := pool.New[int](4, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, a.Cap())
	assert.Equal(t, 4, a.Free())
	assert.Equal(t, 0, a.Live())

	addrs := make([]pool.Addr[int], 4)
	for i := range addrs {
		addrs[i] = a.Pop()
		require.True(t, addrs[i].Valid())
		*addrs[i].Value() = i
	}
	assert.Equal(t, 0, a.Free())
	assert.Equal(t, 4, a.Live())

	// Exhausted.
	exhausted := a.Pop()
	assert.False(t, exhausted.Valid())

	for _, v := range []int{0, 1, 2} {
		*addrs[v].Value() = v * 100
	}

	a.Push(addrs[2])
	a.Push(addrs[0])
	assert.Equal(t, 2, a.Free())
	assert.Equal(t, 2, a.Live())

	// Pushing an invalid Addr is a no-op.
	a.Push(pool.Addr[int]{})
	assert.Equal(t, 2, a.Free())
}

func TestArena_EveryBlockFreeOrLive(t *testing.T) {
	const capacity = 8
	a, err := pool.New[int](capacity, nil)
	require.NoError(t, err)

	var live []pool.Addr[int]
	for i := 0; i < capacity; i++ {
		addr := a.Pop()
		require.True(t, addr.Valid())
		live = append(live, addr)
	}
	require.False(t, a.Pop().Valid())

	for i, addr := range live {
		if i%2 == 0 {
			a.Push(addr)
		}
	}
	stats := a.Stats()
	assert.Equal(t, capacity, stats.Cap)
	assert.Equal(t, capacity/2, stats.Free)
	assert.Equal(t, capacity/2, stats.Live)
	assert.Equal(t, stats.Free+stats.Live, stats.Cap)
}

func TestHandle_UnboundIsSafe(t *testing.T) {
	var h pool.Handle[int]
	assert.False(t, h.Poolable())
	assert.False(t, h.Pop().Valid())
	h.Push(pool.Addr[int]{}) // must not panic

	a, err := pool.New[int](2, nil)
	require.NoError(t, err)
	bound := pool.NewHandle(a)
	assert.True(t, bound.Poolable())
	assert.False(t, bound.Equal(h))
}

func TestCapacityForBytes(t *testing.T) {
	assert.Equal(t, 0, pool.CapacityForBytes(0, 16))
	assert.Equal(t, 0, pool.CapacityForBytes(24, 16)) // no room beyond the header
	assert.Equal(t, 4, pool.CapacityForBytes(24+4*16, 16))
}

func TestHandle_EqualSharesArena(t *testing.T) {
	a, err := pool.New[int](2, nil)
	require.NoError(t, err)
	h1 := pool.NewHandle(a)
	h2 := pool.NewHandle(a)
	assert.True(t, h1.Equal(h2))
	assert.Equal(t, 3, a.RefCount()) // New(1) + two NewHandle calls

	other, err := pool.New[int](2, nil)
	require.NoError(t, err)
	h3 := pool.NewHandle(other)
	assert.False(t, h1.Equal(h3))
}
