package interpolate

import "math"

// Grid is the dense interpolated sky map, indexed by (azimuth, zenith): row a
// holds the zenith profile at dense azimuth a degrees, column z the azimuth
// sweep at dense zenith SampledZeniths[0]+z degrees. Rows 0 and 360 are
// always element-for-element equal.
type Grid struct {
	values [][]float64
}

// Shape returns the grid dimensions as (azimuths, zeniths).
func (g *Grid) Shape() (azimuths, zeniths int) {
	if len(g.values) == 0 {
		return 0, 0
	}
	return len(g.values), len(g.values[0])
}

// At returns the value at dense azimuth index a and dense zenith index z.
func (g *Grid) At(a, z int) float64 {
	return g.values[a][z]
}

// MinMax returns the smallest and largest grid values.
func (g *Grid) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range g.values {
		for _, v := range row {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return min, max
}

// ApplyColorSentinels overwrites the grid's two addressable corner cells,
// (0,0) and (last,last), with fixed brightness values. The renderer uses this
// to pin the colour scale so every figure shares the same range; it alters
// the plotted data at those two cells, matching the reference behaviour.
// This is the only mutation a Grid supports after assembly.
func (g *Grid) ApplyColorSentinels(lightest, darkest float64) {
	na, nz := g.Shape()
	if na == 0 || nz == 0 {
		return
	}
	g.values[0][0] = lightest
	g.values[na-1][nz-1] = darkest
}
