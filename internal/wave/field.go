package wave

import "math"

// field stores the three generations required by the explicit solver. Each
// buffer is a flat (rows*cols) slice with matching row views, so roles can be
// rotated without copying samples.
type field struct {
	rows, cols int
	next       []float64
	curr       []float64
	prev       []float64

	nextRows [][]float64
	currRows [][]float64
	prevRows [][]float64
}

// newField allocates a field with properly sized buffers.
func newField(rows, cols int) *field {
	f := &field{rows: rows, cols: cols}
	f.next, f.nextRows = newBuffer(rows, cols)
	f.curr, f.currRows = newBuffer(rows, cols)
	f.prev, f.prevRows = newBuffer(rows, cols)
	return f
}

func newBuffer(rows, cols int) ([]float64, [][]float64) {
	flat := make([]float64, rows*cols)
	return flat, rowViews(flat, rows, cols)
}

// rowViews slices flat into rows with capped capacity so appends never spill
// into the following row.
func rowViews(flat []float64, rows, cols int) [][]float64 {
	views := make([][]float64, rows)
	for i := range views {
		views[i] = flat[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return views
}

// swap rotates the triple buffers so that next becomes current and current
// becomes previous. The old previous buffer is reused as scratch.
func (f *field) swap() {
	f.prev, f.curr, f.next = f.curr, f.next, f.prev
	f.prevRows, f.currRows, f.nextRows = f.currRows, f.nextRows, f.prevRows
}

// applyBoundary writes Dirichlet values onto the four edges of next.
func (f *field) applyBoundary(b BoundaryFunc, x, y []float64, t float64) {
	lastRow := f.rows - 1
	lastCol := f.cols - 1
	for i := 0; i < f.rows; i++ {
		row := f.nextRows[i]
		row[0] = b(x[i], y[0], t)
		row[lastCol] = b(x[i], y[lastCol], t)
	}
	first := f.nextRows[0]
	last := f.nextRows[lastRow]
	for j := 0; j < f.cols; j++ {
		first[j] = b(x[0], y[j], t)
		last[j] = b(x[lastRow], y[j], t)
	}
}

// starterStep fills the interior of next with the Taylor starter stencil.
// next must still hold the initial displacement.
func (f *field) starterStep(rx, ry, dt float64, velocity [][]float64) {
	hx := 0.5 * rx
	hy := 0.5 * ry
	center := 1 - rx - ry
	for i := 1; i < f.rows-1; i++ {
		up := f.currRows[i-1]
		mid := f.currRows[i]
		down := f.currRows[i+1]
		out := f.nextRows[i]
		vel := velocity[i]
		for j := 1; j < f.cols-1; j++ {
			out[j] = hx*(up[j]+down[j]) + center*out[j] + hy*(mid[j-1]+mid[j+1]) + dt*vel[j]
		}
	}
}

// leapfrogStep fills the interior of next with the central-difference stencil.
func (f *field) leapfrogStep(rx, ry float64) {
	center := 2 * (1 - rx - ry)
	for i := 1; i < f.rows-1; i++ {
		up := f.currRows[i-1]
		mid := f.currRows[i]
		down := f.currRows[i+1]
		old := f.prevRows[i]
		out := f.nextRows[i]
		for j := 1; j < f.cols-1; j++ {
			out[j] = rx*(up[j]+down[j]) + center*mid[j] + ry*(mid[j-1]+mid[j+1]) - old[j]
		}
	}
}

// maxAbs returns the largest |v|; a NaN sample poisons the result.
func maxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		if math.IsNaN(v) {
			return v
		}
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}
