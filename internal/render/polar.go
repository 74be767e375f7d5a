// Package render draws interpolated sky-darkness grids as polar maps: PNG
// figures via gonum/plot and optional HTML charts via go-echarts.
package render

import (
	"image/color"
	"math"
	"regexp"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/darksky-data/darkness.report/internal/interpolate"
	"github.com/darksky-data/darkness.report/internal/sky"
)

// Fixed brightness sentinels (mag/arcsec^2). Unless the caller asks for the
// data's own range, these are written into the grid's corner cells so every
// figure shares one color scale.
const (
	LightestValue = 19.0
	DarkestValue  = 22.0
)

const (
	paletteColors = 255
	figureSize    = 8 * vg.Inch
	// pixelsPerAxis is the resolution of the Cartesian resampling of the
	// polar grid used by the heatmap.
	pixelsPerAxis = 512
	// ringSegments is the number of line segments per zenith grid circle.
	ringSegments = 180
)

var titleWhitespace = regexp.MustCompile(`[\t\n]`)

// Options control figure generation for one measurement.
type Options struct {
	// UseDataRange colors the figure by the grid's own min and max instead
	// of the fixed sentinel range.
	UseDataRange bool
}

// SavePNG renders the grid as a polar sky map and writes it to path. When
// opts.UseDataRange is false the grid's corner cells are overwritten with the
// fixed sentinels first; the mutation is visible to the caller.
func SavePNG(title string, g *sky.Grids, grid *interpolate.Grid, opts Options, path string) error {
	if !opts.UseDataRange {
		grid.ApplyColorSentinels(LightestValue, DarkestValue)
	}

	p := plot.New()
	p.Title.Text = titleWhitespace.ReplaceAllString(title, " ")
	p.X.Label.Text = "W to E (deg)"
	p.Y.Label.Text = "S to N (deg)"

	heat := plotter.NewHeatMap(newPolarField(g, grid), SkyPalette(paletteColors))
	p.Add(heat)

	if err := addZenithRings(p, g); err != nil {
		return err
	}

	return p.Save(figureSize, figureSize, path)
}

// addZenithRings overlays a faint grid circle at each sampled zenith's plot
// radius, standing in for a polar axis.
func addZenithRings(p *plot.Plot, g *sky.Grids) error {
	maxR := g.DenseZenithsDesc[0]
	minR := g.DenseZenithsDesc[len(g.DenseZenithsDesc)-1]
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 153}

	for _, z := range g.SampledZeniths {
		radius := maxR + minR - z // descending radial axis
		pts := make(plotter.XYs, ringSegments+1)
		for i := 0; i <= ringSegments; i++ {
			theta := 2 * math.Pi * float64(i) / ringSegments
			pts[i] = plotter.XY{X: radius * math.Cos(theta), Y: radius * math.Sin(theta)}
		}
		ring, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		ring.Color = gray
		ring.Width = vg.Points(0.5)
		ring.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(ring)
	}
	return nil
}

// polarField adapts the (azimuth, zenith) grid to plotter.GridXYZ by
// resampling it onto a Cartesian pixel grid. Zero azimuth points north (up)
// and azimuths increase counterclockwise; zenith maps to radius through the
// descending zenith axis, so low zenith angles sit at the rim. Pixels outside
// the sampled annulus are NaN and left undrawn.
type polarField struct {
	grids    *sky.Grids
	grid     *interpolate.Grid
	axis     []float64
	min, max float64
}

func newPolarField(g *sky.Grids, grid *interpolate.Grid) polarField {
	maxR := g.DenseZenithsDesc[0]
	axis := make([]float64, pixelsPerAxis)
	for i := range axis {
		axis[i] = -maxR + 2*maxR*float64(i)/float64(pixelsPerAxis-1)
	}
	min, max := grid.MinMax()
	return polarField{grids: g, grid: grid, axis: axis, min: min, max: max}
}

func (f polarField) Dims() (c, r int) { return len(f.axis), len(f.axis) }
func (f polarField) X(c int) float64  { return f.axis[c] }
func (f polarField) Y(r int) float64  { return f.axis[r] }

// Min and Max bound the color scale to the grid values, keeping the NaN
// pixels outside the annulus out of the range calculation.
func (f polarField) Min() float64 { return f.min }
func (f polarField) Max() float64 { return f.max }

func (f polarField) Z(c, r int) float64 {
	x, y := f.axis[c], f.axis[r]
	radius := math.Hypot(x, y)

	maxR := f.grids.DenseZenithsDesc[0]
	minR := f.grids.DenseZenithsDesc[len(f.grids.DenseZenithsDesc)-1]
	if radius < minR || radius > maxR {
		return math.NaN()
	}

	// The radial axis is inverted: grid column z is plotted at radius
	// maxR - z, so the column index is the distance in from the rim.
	z := int(math.Round(maxR - radius))

	theta := math.Atan2(-x, y) // counterclockwise from north
	if theta < 0 {
		theta += 2 * math.Pi
	}
	a := int(math.Round(theta*180/math.Pi)) % 360

	return f.grid.At(a, z)
}
