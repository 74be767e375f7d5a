package render

import (
	"fmt"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/darksky-data/darkness.report/internal/interpolate"
	"github.com/darksky-data/darkness.report/internal/sky"
)

// Cap on scatter points per chart; the dense grid is downsampled by azimuth
// stride to stay under it.
const maxChartPoints = 10000

// SaveHTML writes an interactive polar scatter of the grid as a standalone
// HTML page. Each dense grid cell becomes one point, projected from
// (azimuth, zenith) to XY with north up, colored by brightness.
func SaveHTML(title string, g *sky.Grids, grid *interpolate.Grid, path string) error {
	na, nz := grid.Shape()
	sweep := na - 1 // row 360 duplicates row 0

	stride := 1
	for (sweep/stride)*nz > maxChartPoints {
		stride++
	}

	maxR := g.DenseZenithsDesc[0]
	min, max := grid.MinMax()

	data := make([]opts.ScatterData, 0, (sweep/stride)*nz)
	for a := 0; a < sweep; a += stride {
		theta := g.DenseAzimuthsRad[a]
		for z := 0; z < nz; z++ {
			radius := maxR - float64(z)
			x := -radius * math.Sin(theta)
			y := radius * math.Cos(theta)
			data = append(data, opts.ScatterData{Value: []interface{}{x, y, grid.At(a, z)}})
		}
	}

	pad := float32(maxR * 1.05)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("points=%d stride=%d", len(data), stride)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "W to E (deg)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "S to N (deg)", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(min),
			Max:        float32(max),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: SkyPaletteHex(10)},
		}),
	)

	scatter.AddSeries("sky darkness", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return scatter.Render(f)
}
