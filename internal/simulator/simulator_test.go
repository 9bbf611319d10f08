package simulator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerenv/internal/engine"
	"github.com/lox/pokerenv/internal/env"
)

func holdemEnvConfig() env.Config {
	return env.Config{
		Streets: []engine.Street{
			{Label: "preflop", DownDeals: 2},
			{Label: "flop", BoardDeals: 3},
			{Label: "turn", BoardDeals: 1},
			{Label: "river", BoardDeals: 1},
		},
		Betting:        engine.NoLimit,
		Blinds:         []int{1, 2},
		StartingStacks: []int{200},
		Seats:          2,
		SizingMenu:     []int{4, 8, 16, 200},
	}
}

func testConfig(policies ...Policy) Config {
	return Config{
		Env:      holdemEnvConfig(),
		Policies: policies,
		Episodes: 50,
		Seed:     1,
		Workers:  2,
		Logger:   log.New(io.Discard),
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(CallPolicy{}, CallPolicy{})
	cfg.Episodes = 0
	_, err := New(cfg)
	assert.Error(t, err)

	cfg = testConfig(CallPolicy{})
	_, err = New(cfg)
	assert.Error(t, err, "policy count must match seats")
}

func TestRunChecksChipConservation(t *testing.T) {
	sim, err := New(testConfig(CallPolicy{}, CallPolicy{}))
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, result.Episodes)
	require.Len(t, result.Seats, 2)
	assert.Equal(t, 0, result.Seats[0].NetChips+result.Seats[1].NetChips,
		"call-only play transfers chips without creating them")
	assert.Zero(t, result.Seats[0].Penalties)
	assert.Zero(t, result.Seats[1].Penalties)
}

func TestFoldPolicyLosesItsBlinds(t *testing.T) {
	// Seat 0 folds every hand it cannot check, so it bleeds the small blind
	// while seat 1 collects it.
	sim, err := New(testConfig(FoldPolicy{}, CallPolicy{}))
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Negative(t, result.Seats[0].NetChips)
	assert.Positive(t, result.Seats[1].NetChips)
}

func TestRandomPolicyPlaysLegally(t *testing.T) {
	sim, err := New(testConfig(RandomPolicy{}, RandomPolicy{}))
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Seats[0].Penalties, "legal-action sampling never draws a penalty")
	assert.Zero(t, result.Seats[1].Penalties)
}

func TestRunIsDeterministicAcrossWorkerCounts(t *testing.T) {
	run := func(workers int) *Result {
		cfg := testConfig(RandomPolicy{}, CallPolicy{})
		cfg.Workers = workers
		sim, err := New(cfg)
		require.NoError(t, err)
		result, err := sim.Run(context.Background())
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(4)
	assert.Equal(t, serial.Seats, parallel.Seats)
}

func TestRunHonoursContextCancellation(t *testing.T) {
	cfg := testConfig(RandomPolicy{}, RandomPolicy{})
	cfg.Episodes = 1_000_000
	sim, err := New(cfg)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunReportsElapsedFromClock(t *testing.T) {
	clk := quartz.NewMock(t)
	cfg := testConfig(CallPolicy{}, CallPolicy{})
	cfg.Episodes = 1
	cfg.Workers = 1
	cfg.Clock = clk
	sim, err := New(cfg)
	require.NoError(t, err)

	result, err := sim.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), result.Elapsed, "mock clock does not advance on its own")
}
