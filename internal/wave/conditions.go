package wave

import (
	"math"

	"go.uber.org/zap"
)

// InitialFunc samples an initial field (displacement or velocity) at (x, y).
type InitialFunc func(x, y float64) float64

// BoundaryFunc returns the Dirichlet value at edge coordinate (x, y) and
// simulated time t.
type BoundaryFunc func(x, y, t float64) float64

// DefaultDisplacement is the half-sine bump 0.1·sin(πx)·sin(πy/2).
func DefaultDisplacement(x, y float64) float64 {
	return 0.1 * math.Sin(math.Pi*x) * math.Sin(math.Pi*y/2)
}

// Zero is an InitialFunc that is identically zero.
func Zero(_, _ float64) float64 { return 0 }

// FixedBoundary holds every edge at zero.
func FixedBoundary(_, _, _ float64) float64 { return 0 }

// ConstantBoundary holds every edge at v.
func ConstantBoundary(v float64) BoundaryFunc {
	return func(_, _, _ float64) float64 { return v }
}

// PulseBoundary drives every edge with amplitude·sin(omega·t).
func PulseBoundary(amplitude, omega float64) BoundaryFunc {
	return func(_, _, t float64) float64 {
		return amplitude * math.Sin(omega*t)
	}
}

// Option customizes a Solver at construction.
type Option func(*Solver)

// WithInitialDisplacement replaces the default displacement u0.
func WithInitialDisplacement(fn InitialFunc) Option {
	return func(s *Solver) {
		if fn != nil {
			s.u0 = fn
		}
	}
}

// WithInitialVelocity replaces the default (zero) initial velocity.
func WithInitialVelocity(fn InitialFunc) Option {
	return func(s *Solver) {
		if fn != nil {
			s.v0 = fn
		}
	}
}

// WithBoundary replaces the default fixed boundary.
func WithBoundary(fn BoundaryFunc) Option {
	return func(s *Solver) {
		if fn != nil {
			s.boundary = fn
		}
	}
}

// WithLogger attaches a logger; the solver is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Solver) {
		if logger != nil {
			s.logger = logger
		}
	}
}
