package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darksky-data/darkness.report/internal/interpolate"
	"github.com/darksky-data/darkness.report/internal/sky"
)

func testGrid(t *testing.T, g *sky.Grids) *interpolate.Grid {
	t.Helper()
	values := make([]float64, g.ExpectedValueCount())
	for i := range values {
		values[i] = 19 + 0.05*float64(i)
	}
	grid, err := interpolate.New(g).Run(sky.Measurement{Title: "render test", Values: values})
	require.NoError(t, err)
	return grid
}

func TestSkyPalette(t *testing.T) {
	p := SkyPalette(10)
	colors := p.Colors()
	require.Len(t, colors, 10)

	// Lightest first: a strong yellow fading to near black.
	r, g, b, _ := colors[0].RGBA()
	assert.Greater(t, r, g)
	assert.Greater(t, g, b)

	r, g, b, _ = colors[9].RGBA()
	assert.Less(t, int(r>>8), 8)
	assert.Less(t, int(g>>8), 8)
	assert.Less(t, int(b>>8), 8)
}

func TestSkyPaletteHex(t *testing.T) {
	hex := SkyPaletteHex(10)
	require.Len(t, hex, 10)
	assert.Equal(t, "#cc9902", hex[0])
	assert.Equal(t, "#000007", hex[9])
}

func TestPolarFieldMapping(t *testing.T) {
	g := sky.DefaultGrids()
	grid := testGrid(t, g)
	field := newPolarField(g, grid)

	c, r := field.Dims()
	assert.Equal(t, pixelsPerAxis, c)
	assert.Equal(t, pixelsPerAxis, r)

	// Pixels inside the horizon hole and outside the rim are undefined.
	center := pixelsPerAxis / 2
	assert.True(t, math.IsNaN(field.Z(center, center)), "center pixel")
	assert.True(t, math.IsNaN(field.Z(0, 0)), "corner pixel")

	// Every pixel is either NaN or a value from the grid's range.
	min, max := grid.MinMax()
	seen := 0
	for i := 0; i < c; i++ {
		for j := 0; j < r; j++ {
			v := field.Z(i, j)
			if math.IsNaN(v) {
				continue
			}
			seen++
			require.GreaterOrEqual(t, v, min)
			require.LessOrEqual(t, v, max)
		}
	}
	assert.Greater(t, seen, c*r/4, "annulus should cover a good share of the figure")

	assert.Equal(t, min, field.Min())
	assert.Equal(t, max, field.Max())
}

func TestSavePNG(t *testing.T) {
	g := sky.DefaultGrids()
	grid := testGrid(t, g)
	path := filepath.Join(t.TempDir(), "figure.png")

	err := SavePNG("Test Site\t2015-06-12", g, grid, Options{}, path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// Default options pin the corner sentinels.
	na, nz := grid.Shape()
	assert.Equal(t, LightestValue, grid.At(0, 0))
	assert.Equal(t, DarkestValue, grid.At(na-1, nz-1))
}

func TestSavePNGDataRangeKeepsCorners(t *testing.T) {
	g := sky.DefaultGrids()
	grid := testGrid(t, g)
	before := grid.At(0, 0)

	path := filepath.Join(t.TempDir(), "figure.png")
	require.NoError(t, SavePNG("t", g, grid, Options{UseDataRange: true}, path))

	assert.Equal(t, before, grid.At(0, 0))
}

func TestSaveHTML(t *testing.T) {
	g := sky.DefaultGrids()
	grid := testGrid(t, g)
	path := filepath.Join(t.TempDir(), "figure.html")

	require.NoError(t, SaveHTML("Test Site", g, grid, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "echarts")
}
