package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwapRotatesRoles(t *testing.T) {
	f := newField(3, 4)
	f.next[0], f.curr[0], f.prev[0] = 1, 2, 3

	f.swap()

	assert.Equal(t, 1.0, f.curr[0])
	assert.Equal(t, 2.0, f.prev[0])
	assert.Equal(t, 3.0, f.next[0])
	assert.Equal(t, 1.0, f.currRows[0][0])
	assert.Equal(t, 2.0, f.prevRows[0][0])
	assert.Equal(t, 3.0, f.nextRows[0][0])
}

func TestRowViewsShareStorage(t *testing.T) {
	flat := make([]float64, 6)
	rows := rowViews(flat, 2, 3)
	require.Len(t, rows, 2)

	rows[1][2] = 7
	assert.Equal(t, 7.0, flat[5])
	assert.Equal(t, 3, cap(rows[0]))

	grown := append(rows[0], 9)
	grown[0] = 5
	assert.Zero(t, flat[0], "append must not alias the next row")
	assert.Zero(t, flat[3])
}

func TestMaxAbs(t *testing.T) {
	assert.Zero(t, maxAbs(nil))
	assert.Equal(t, 4.0, maxAbs([]float64{1, -4, 3}))
	assert.True(t, math.IsNaN(maxAbs([]float64{1, math.NaN(), 5})))
	assert.True(t, math.IsNaN(maxAbs([]float64{9, -9, math.NaN()})))
}
