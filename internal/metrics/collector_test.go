package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordRequest(t *testing.T) {
	c := NewCollector()

	c.RecordRequest(OpPokemonDetail, 10*time.Millisecond, false)
	c.RecordRequest(OpPokemonDetail, 30*time.Millisecond, true)
	c.RecordRequest(OpEvolutionChain, 5*time.Millisecond, false)

	snap := c.Snapshot()
	require.Len(t, snap.Operations, 2)
	assert.Equal(t, int64(3), snap.Total())

	// sorted by name
	assert.Equal(t, OpEvolutionChain, snap.Operations[0].Name)
	detail := snap.Operations[1]
	assert.Equal(t, OpPokemonDetail, detail.Name)
	assert.Equal(t, int64(2), detail.Count)
	assert.Equal(t, int64(1), detail.Failures)
	assert.Equal(t, int64(40), detail.TotalTimeMs)
	assert.InDelta(t, 20.0, detail.AvgTimeMs, 0.001)
	assert.Equal(t, int64(10), detail.MinTimeMs)
	assert.Equal(t, int64(30), detail.MaxTimeMs)
}

func TestCollectorEmptySnapshot(t *testing.T) {
	snap := NewCollector().Snapshot()
	assert.Empty(t, snap.Operations)
	assert.Zero(t, snap.Total())
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordRequest(OpTypeDetail, time.Millisecond, false)
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	require.Len(t, snap.Operations, 1)
	assert.Equal(t, int64(50), snap.Operations[0].Count)
}
