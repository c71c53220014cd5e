package main

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"waveviz/internal/wave"
)

const (
	boundaryZero  = "zero"
	boundaryPulse = "pulse"
)

// boundaryFor maps a -boundary flag value to a boundary function.
func boundaryFor(name string) (wave.BoundaryFunc, error) {
	switch name {
	case "", boundaryZero:
		return wave.FixedBoundary, nil
	case boundaryPulse:
		return wave.PulseBoundary(pulseAmplitude, pulseOmega), nil
	default:
		return nil, errors.Errorf("unknown boundary %q (want %s or %s)", name, boundaryZero, boundaryPulse)
	}
}

// buildSolver constructs the solver described by the settings.
func buildSolver(s SolverSettings, boundary string, logger *zap.Logger) (*wave.Solver, error) {
	b, err := boundaryFor(boundary)
	if err != nil {
		return nil, err
	}
	return wave.New(s.params(), wave.WithBoundary(b), wave.WithLogger(logger))
}

// stepClock converts elapsed frame time into a whole number of solver ticks
// at a fixed interval, carrying the fractional remainder between frames.
type stepClock struct {
	interval    time.Duration
	multiplier  int
	accumulator float64
}

func newStepClock(interval time.Duration) *stepClock {
	if interval <= 0 {
		interval = defaultTickInterval
	}
	return &stepClock{interval: interval, multiplier: defaultSimMultiplier}
}

// advance returns how many ticks are due after frame has elapsed.
func (c *stepClock) advance(frame time.Duration) int {
	if frame <= 0 {
		return 0
	}
	c.accumulator += float64(frame) / float64(c.interval) * float64(c.multiplier)
	steps := int(c.accumulator)
	c.accumulator -= float64(steps)
	if steps > maxStepsPerFrame {
		steps = maxStepsPerFrame
	}
	return steps
}

// adjustMultiplier clamps the tick multiplier delta within bounds.
func (c *stepClock) adjustMultiplier(delta int) {
	c.multiplier += delta
	if c.multiplier < minSimMultiplier {
		c.multiplier = minSimMultiplier
	} else if c.multiplier > maxSimMultiplier {
		c.multiplier = maxSimMultiplier
	}
}

// ticksPerSecond returns the nominal solver ticks executed each second.
func (c *stepClock) ticksPerSecond() float64 {
	return float64(time.Second) / float64(c.interval) * float64(c.multiplier)
}

// stepBatch runs up to steps solver ticks, stopping early once the solver
// is done. It returns the number of ticks that advanced the field.
func stepBatch(solver *wave.Solver, steps int) int {
	ran := 0
	for i := 0; i < steps && !solver.Done(); i++ {
		solver.Step()
		ran++
	}
	return ran
}

// runHeadless advances solver to its step budget, logging progress every
// logEvery ticks.
func runHeadless(solver *wave.Solver, logger *zap.Logger, logEvery int) {
	if logEvery < 1 {
		logEvery = 1
	}
	start := time.Now()
	for !solver.Done() {
		stepBatch(solver, logEvery)
		logger.Debug("headless progress",
			zap.Int("steps", solver.Steps()),
			zap.Float64("k", solver.K()),
			zap.Float64("t", solver.Time()),
			zap.Float64("max_abs", solver.MaxAbs()),
		)
	}
	logger.Info("headless run complete",
		zap.Int("steps", solver.Steps()),
		zap.Float64("t", solver.Time()),
		zap.Float64("max_abs", solver.MaxAbs()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
