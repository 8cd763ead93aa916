package timer

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Record(t *testing.T) {
	r := NewRegistry()

	r.Record("x", 500*time.Millisecond)
	r.Record("x", 1500*time.Millisecond)

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "x", snap[0].Tag)
	assert.Equal(t, int64(2), snap[0].Calls)
	assert.Equal(t, 2*time.Second, snap[0].Total)
}

func TestRegistry_SnapshotOrder(t *testing.T) {
	r := NewRegistry()

	r.Record("third", time.Millisecond)
	r.Record("first", time.Millisecond)
	r.Record("second", time.Millisecond)
	r.Record("first", time.Millisecond) // repeat must not reorder

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "third", snap[0].Tag)
	assert.Equal(t, "first", snap[1].Tag)
	assert.Equal(t, "second", snap[2].Tag)
}

func TestRegistry_EmptySnapshot(t *testing.T) {
	r := NewRegistry()

	// Entries only exist after a report, never pre-allocated.
	assert.Empty(t, r.Snapshot())
}

func TestRegistry_NegativeElapsedClamped(t *testing.T) {
	r := NewRegistry()

	r.Record("x", -time.Second)

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, time.Duration(0), snap[0].Total)
	assert.Equal(t, int64(1), snap[0].Calls)
}

func TestRegistry_ElapsedSinceStart(t *testing.T) {
	r := NewRegistry()
	r.start = time.Now().Add(-4 * time.Second)

	assert.InDelta(t, 4.0, r.ElapsedSinceStart().Seconds(), 0.5)
}

func TestRegistry_Reset(t *testing.T) {
	r := NewRegistry()
	r.start = time.Now().Add(-4 * time.Second)
	r.Record("x", time.Second)

	r.Reset()

	assert.Empty(t, r.Snapshot())
	// Baseline is re-captured, not carried over.
	assert.Less(t, r.ElapsedSinceStart(), time.Second)
}

func TestRegistry_ConcurrentRecord(t *testing.T) {
	r := NewRegistry()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				r.Record("shared", time.Millisecond)
			}
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, int64(workers*perWorker), snap[0].Calls)
	assert.Equal(t, workers*perWorker*time.Millisecond, snap[0].Total)
}

func TestDefaultRegistry(t *testing.T) {
	Reset()
	defer Reset()

	Record("pkg-level", 10*time.Millisecond)

	snap := Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "pkg-level", snap[0].Tag)
	assert.Same(t, std, Default())
}
