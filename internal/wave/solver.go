// Package wave implements an explicit finite-difference solver for the 2D
// scalar wave equation u_tt = D·(u_xx + u_yy) on a rectangular grid with
// Dirichlet edges.
package wave

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// tickIncrement is how far the step counter k advances per Step call. Two
// calls move k by one whole step; only the very first call sees k == 0.
const tickIncrement = 0.5

// budgetPerStep scales N into the default step budget.
const budgetPerStep = 10

// Params describes the domain, grid and time discretization.
type Params struct {
	XMin, XMax float64
	YMin, YMax float64
	Mx, My     int
	D          float64
	TEnd       float64
	N          int
	// StepBudget bounds the step counter k. Zero selects 10·N.
	StepBudget int
}

// DefaultParams returns a 51×51 grid over [0,2]×[0,2] with D=0.25 simulated
// for 6 time units in 2000 steps.
func DefaultParams() Params {
	return Params{
		XMin: 0, XMax: 2,
		YMin: 0, YMax: 2,
		Mx: 50, My: 50,
		D:    0.25,
		TEnd: 6,
		N:    2000,
	}
}

// Validate reports the first parameter outside its valid range, if any.
func (p Params) Validate() error {
	bounds := []struct {
		name  string
		value float64
	}{
		{"xmin", p.XMin}, {"xmax", p.XMax},
		{"ymin", p.YMin}, {"ymax", p.YMax},
		{"d", p.D}, {"tend", p.TEnd},
	}
	for _, b := range bounds {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
			return errors.Wrapf(ErrInvalidParams, "%s must be finite, got %v", b.name, b.value)
		}
	}
	switch {
	case p.Mx < 2 || p.My < 2:
		return errors.Wrapf(ErrInvalidParams, "grid resolution must be at least 2 per axis, got %dx%d", p.Mx, p.My)
	case p.XMax <= p.XMin:
		return errors.Wrapf(ErrInvalidParams, "xmax %v must exceed xmin %v", p.XMax, p.XMin)
	case p.YMax <= p.YMin:
		return errors.Wrapf(ErrInvalidParams, "ymax %v must exceed ymin %v", p.YMax, p.YMin)
	case p.D <= 0:
		return errors.Wrapf(ErrInvalidParams, "coefficient d must be positive, got %v", p.D)
	case p.TEnd <= 0:
		return errors.Wrapf(ErrInvalidParams, "tend must be positive, got %v", p.TEnd)
	case p.N <= 0:
		return errors.Wrapf(ErrInvalidParams, "step count n must be positive, got %d", p.N)
	case p.StepBudget < 0:
		return errors.Wrapf(ErrInvalidParams, "step budget must not be negative, got %d", p.StepBudget)
	case p.StepBudget == 0 && p.N > math.MaxInt/budgetPerStep:
		return errors.Wrapf(ErrInvalidParams, "step count n %d overflows the default step budget", p.N)
	}
	return nil
}

// Solver owns the grid, the three field generations and the step counter.
// It is not safe for concurrent use; Field must not be read while Step runs.
type Solver struct {
	params Params

	dx, dy, dt float64
	rx, ry     float64
	x, y       []float64

	field    *field
	velocity [][]float64

	u0, v0   InitialFunc
	boundary BoundaryFunc
	logger   *zap.Logger

	k      float64
	nSteps float64
	t      float64
	steps  int
	done   bool
}

// New validates p, derives the grid spacing and Courant numbers, and seeds
// the field with the initial conditions.
func New(p Params, opts ...Option) (*Solver, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Solver{
		params:   p,
		u0:       DefaultDisplacement,
		v0:       Zero,
		boundary: FixedBoundary,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dx = (p.XMax - p.XMin) / float64(p.Mx)
	s.dy = (p.YMax - p.YMin) / float64(p.My)
	s.dt = p.TEnd / float64(p.N)
	if math.IsInf(s.dx, 0) || math.IsInf(s.dy, 0) {
		return nil, errors.Wrapf(ErrInvalidParams, "domain span overflows: dx %v, dy %v", s.dx, s.dy)
	}
	s.rx = p.D * s.dt * s.dt / (s.dx * s.dx)
	s.ry = p.D * s.dt * s.dt / (s.dy * s.dy)
	if s.rx+s.ry > 1 {
		return nil, errors.Wrapf(ErrUnstable, "rx+ry = %.6g (rx %.6g, ry %.6g, dt %.6g, dx %.6g, dy %.6g)",
			s.rx+s.ry, s.rx, s.ry, s.dt, s.dx, s.dy)
	}

	budget := p.StepBudget
	if budget == 0 {
		budget = budgetPerStep * p.N
	}
	s.nSteps = float64(budget)

	s.x = axis(p.XMin, s.dx, p.Mx)
	s.y = axis(p.YMin, s.dy, p.My)
	s.initialize()

	s.logger.Debug("wave solver initialized",
		zap.Int("mx", p.Mx),
		zap.Int("my", p.My),
		zap.Float64("dx", s.dx),
		zap.Float64("dy", s.dy),
		zap.Float64("dt", s.dt),
		zap.Float64("rx", s.rx),
		zap.Float64("ry", s.ry),
		zap.Int("step_budget", budget),
	)
	return s, nil
}

// axis returns n+1 ascending coordinates starting at origin.
func axis(origin, step float64, n int) []float64 {
	coords := make([]float64, n+1)
	for i := range coords {
		coords[i] = origin + float64(i)*step
	}
	return coords
}

// initialize writes u0 into the generation under construction and the
// previous generation, and v0 into the velocity field. Edges stay zero.
func (s *Solver) initialize() {
	rows, cols := s.params.Mx+1, s.params.My+1
	s.field = newField(rows, cols)
	_, s.velocity = newBuffer(rows, cols)
	for i := 1; i < rows-1; i++ {
		for j := 1; j < cols-1; j++ {
			u := s.u0(s.x[i], s.y[j])
			s.field.nextRows[i][j] = u
			s.field.currRows[i][j] = u
			s.velocity[i][j] = s.v0(s.x[i], s.y[j])
		}
	}
}

// Step advances the field by one tick. Once the step budget is exhausted it
// does nothing.
func (s *Solver) Step() {
	if s.k >= s.nSteps {
		return
	}
	s.t = s.k * s.dt
	s.field.applyBoundary(s.boundary, s.x, s.y, s.t)
	if s.k == 0 {
		s.field.starterStep(s.rx, s.ry, s.dt, s.velocity)
	} else {
		s.field.leapfrogStep(s.rx, s.ry)
	}
	s.field.swap()
	s.k += tickIncrement
	s.steps++

	if s.k >= s.nSteps && !s.done {
		s.done = true
		s.logger.Info("wave solver reached step budget",
			zap.Int("steps", s.steps),
			zap.Float64("t", s.t),
			zap.Float64("max_abs", s.MaxAbs()),
		)
	}
}

// Field returns the most recent generation as row slices indexed [i][j].
// The view aliases solver memory and is overwritten by later steps.
func (s *Solver) Field() [][]float64 { return s.field.currRows }

// Snapshot returns a deep copy of the current generation.
func (s *Solver) Snapshot() [][]float64 {
	flat := make([]float64, len(s.field.curr))
	copy(flat, s.field.curr)
	return rowViews(flat, s.field.rows, s.field.cols)
}

// At returns sample (i, j) of the current generation; it panics when out of range.
func (s *Solver) At(i, j int) float64 { return s.field.currRows[i][j] }

// MaxAbs returns the largest absolute sample of the current generation, or
// NaN if any sample is NaN.
func (s *Solver) MaxAbs() float64 { return maxAbs(s.field.curr) }

// Dims returns the grid size (Mx+1, My+1).
func (s *Solver) Dims() (rows, cols int) { return s.field.rows, s.field.cols }

// X returns a copy of the x coordinates.
func (s *Solver) X() []float64 { return append([]float64(nil), s.x...) }

// Y returns a copy of the y coordinates.
func (s *Solver) Y() []float64 { return append([]float64(nil), s.y...) }

// Params returns the parameters the solver was built from.
func (s *Solver) Params() Params { return s.params }

// Dt returns the time step tend/N.
func (s *Solver) Dt() float64 { return s.dt }

// Courant returns rx and ry.
func (s *Solver) Courant() (rx, ry float64) { return s.rx, s.ry }

// K returns the step counter.
func (s *Solver) K() float64 { return s.k }

// NSteps returns the bound on K.
func (s *Solver) NSteps() float64 { return s.nSteps }

// Steps returns how many Step calls advanced the field.
func (s *Solver) Steps() int { return s.steps }

// Time returns the simulated time the most recent step evaluated its
// boundary at.
func (s *Solver) Time() float64 { return s.t }

// Done reports whether the step budget is exhausted.
func (s *Solver) Done() bool { return s.k >= s.nSteps }
