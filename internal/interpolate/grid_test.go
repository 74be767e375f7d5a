package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darksky-data/darkness.report/internal/sky"
)

func TestGridMinMax(t *testing.T) {
	g := sky.DefaultGrids()
	p := New(g)

	grid, err := p.Run(testMeasurement(g))
	require.NoError(t, err)

	min, max := grid.MinMax()
	assert.InDelta(t, 19.0, min, 1e-9) // first value of the test measurement

	// The largest sample sits in the 360-degree block, whose row is pinned
	// to azimuth 0, so the grid peaks just short of it at azimuth 359.
	nz := len(g.SampledZeniths)
	v330 := 19 + 0.05*float64(g.ExpectedValueCount()-nz-1)
	v360 := 19 + 0.05*float64(g.ExpectedValueCount()-1)
	assert.InDelta(t, v330+(v360-v330)*29.0/30.0, max, 1e-9)
	assert.LessOrEqual(t, min, max)
}

func TestApplyColorSentinels(t *testing.T) {
	g := sky.DefaultGrids()
	p := New(g)

	grid, err := p.Run(testMeasurement(g))
	require.NoError(t, err)

	grid.ApplyColorSentinels(19.0, 22.0)

	na, nz := grid.Shape()
	assert.Equal(t, 19.0, grid.At(0, 0))
	assert.Equal(t, 22.0, grid.At(na-1, nz-1))

	min, max := grid.MinMax()
	assert.Equal(t, 19.0, min)
	// The test measurement blends past 22 near the 360-degree block, so the
	// sentinel pins the corner without capping the range.
	assert.Greater(t, max, 22.0)
}
