package demo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikitaCOEUR/timekeep/internal/logger"
	"github.com/NikitaCOEUR/timekeep/pkg/timer"
)

func testLogger() *logger.Logger {
	return logger.New("error", &bytes.Buffer{})
}

func tagsOf(entries []timer.Entry) map[string]int64 {
	tags := make(map[string]int64, len(entries))
	for _, e := range entries {
		tags[e.Tag] = e.Calls
	}
	return tags
}

func TestRun_AllWorkloads(t *testing.T) {
	timer.Reset()
	defer timer.Reset()

	cfg := DefaultConfig()
	cfg.Iterations = 10

	require.NoError(t, Run(cfg, testLogger()))

	tags := tagsOf(timer.Snapshot())

	// Wrapped free function, auto tag, plus the manual tag nested inside it.
	assert.Equal(t, int64(10), tags["sumTo"])
	assert.Equal(t, int64(10), tags["sum"])
	// Explicit tag used verbatim.
	assert.Equal(t, int64(10), tags["squares"])
	assert.NotContains(t, tags, "sumSquares")
	// Wrapped method, auto tag.
	assert.Equal(t, int64(1), tags["Thing.DoStuff"])
	// Plain scoped block.
	assert.Equal(t, int64(1), tags["block"])
	// Each workload is also timed as a whole.
	for _, name := range KnownWorkloads {
		assert.Equal(t, int64(1), tags["demo."+name])
	}
}

func TestRun_SubsetInOrder(t *testing.T) {
	timer.Reset()
	defer timer.Reset()

	cfg := &Config{Iterations: 5, Workloads: []string{WorkloadBlock, WorkloadThing}}

	require.NoError(t, Run(cfg, testLogger()))

	snap := timer.Snapshot()
	require.NotEmpty(t, snap)
	// First-seen order: the block's own tag reports before the workload
	// envelope, and block ran before thing.
	assert.Equal(t, "block", snap[0].Tag)
	assert.Equal(t, "demo.block", snap[1].Tag)
	tags := tagsOf(snap)
	assert.NotContains(t, tags, "sumTo")
	assert.NotContains(t, tags, "squares")
}

func TestRun_UnknownWorkload(t *testing.T) {
	timer.Reset()
	defer timer.Reset()

	cfg := &Config{Iterations: 1, Workloads: []string{"fibonacci"}}

	err := Run(cfg, testLogger())
	assert.ErrorContains(t, err, "unknown workload")
}
