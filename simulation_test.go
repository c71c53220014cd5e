package main

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"waveviz/internal/wave"
)

func smallSolverSettings(budget int) SolverSettings {
	s := defaultSettings().Solver
	s.Mx, s.My = 10, 10
	s.StepBudget = budget
	return s
}

func TestBoundaryFor(t *testing.T) {
	for _, name := range []string{"", boundaryZero, boundaryPulse} {
		b, err := boundaryFor(name)
		require.NoError(t, err, name)
		assert.Zero(t, b(0.3, 0.7, 0), name)
	}

	pulse, err := boundaryFor(boundaryPulse)
	require.NoError(t, err)
	assert.InDelta(t, pulseAmplitude, pulse(0, 0, 0.25), 1e-12)

	_, err = boundaryFor("reflective")
	assert.Error(t, err)
}

func TestBuildSolverPropagatesConfigErrors(t *testing.T) {
	s := smallSolverSettings(0)
	s.D = -1
	_, err := buildSolver(s, boundaryZero, zaptest.NewLogger(t))
	assert.True(t, errors.Is(err, wave.ErrInvalidParams), "got %v", err)

	_, err = buildSolver(smallSolverSettings(0), "bogus", zaptest.NewLogger(t))
	assert.Error(t, err)
}

func TestStepClockFixedInterval(t *testing.T) {
	c := newStepClock(10 * time.Millisecond)
	assert.Equal(t, 2, c.advance(20*time.Millisecond))
	assert.Equal(t, 0, c.advance(0))

	assert.Equal(t, 0, c.advance(5*time.Millisecond))
	assert.Equal(t, 1, c.advance(5*time.Millisecond))

	c.adjustMultiplier(2)
	assert.Equal(t, 3, c.multiplier)
	assert.Equal(t, 6, c.advance(20*time.Millisecond))
	assert.InDelta(t, 300.0, c.ticksPerSecond(), 1e-9)
}

func TestStepClockCarriesRemainder(t *testing.T) {
	c := newStepClock(10 * time.Millisecond)
	total := 0
	for i := 0; i < 60; i++ {
		total += c.advance(time.Second / 60)
	}
	assert.InDelta(t, 100, total, 1)
}

func TestStepClockLimits(t *testing.T) {
	c := newStepClock(0)
	assert.Equal(t, defaultTickInterval, c.interval)
	assert.Equal(t, maxStepsPerFrame, c.advance(time.Hour))

	c.adjustMultiplier(-100)
	assert.Equal(t, minSimMultiplier, c.multiplier)
	c.adjustMultiplier(1000)
	assert.Equal(t, maxSimMultiplier, c.multiplier)
}

func TestStepBatchStopsAtBudget(t *testing.T) {
	solver, err := buildSolver(smallSolverSettings(2), boundaryZero, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 3, stepBatch(solver, 3))
	assert.Equal(t, 1, stepBatch(solver, 10))
	assert.True(t, solver.Done())
	assert.Equal(t, 0, stepBatch(solver, 10))
}

func TestStepBatchEmitsTerminalLogOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	solver, err := buildSolver(smallSolverSettings(3), boundaryZero, zap.New(core))
	require.NoError(t, err)

	for frame := 0; frame < 5; frame++ {
		stepBatch(solver, 4)
	}

	assert.True(t, solver.Done())
	assert.Equal(t, 6, solver.Steps())
	entries := logs.FilterMessage("wave solver reached step budget").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(6), entries[0].ContextMap()["steps"])
}

func TestRunHeadlessCompletes(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	solver, err := buildSolver(smallSolverSettings(25), boundaryPulse, logger)
	require.NoError(t, err)

	runHeadless(solver, logger, 7)

	assert.True(t, solver.Done())
	assert.Equal(t, 50, solver.Steps())
	entries := logs.FilterMessage("headless run complete").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(50), entries[0].ContextMap()["steps"])
	assert.Equal(t, 1, logs.FilterMessage("wave solver reached step budget").Len())
}
