// Package sky defines the angular sampling geometry of a sky-darkness survey
// and the measurement record consumed by the interpolation pipeline.
package sky

import (
	"fmt"
	"math"
)

// Grids holds the angular sampling geometry: the zenith and azimuth angles at
// which measurements are taken, and the dense one-degree grids the pipeline
// interpolates onto. A Grids value is built once at startup and never mutated;
// every component receives it by reference.
type Grids struct {
	// SampledZeniths are the zenith angles (degrees from overhead) at which
	// measurements exist, strictly increasing.
	SampledZeniths []float64

	// DenseZeniths is every integer zenith degree from SampledZeniths[0] to
	// the last sampled zenith, inclusive.
	DenseZeniths []float64

	// DenseZenithsDesc is DenseZeniths reversed. It is the radial axis of the
	// polar plot, which places low zenith angles at the rim.
	DenseZenithsDesc []float64

	// SampledAzimuths are the azimuth angles (degrees) at which measurements
	// exist, strictly increasing and closed: the first is 0 and the last is
	// 360, which denote the same physical direction.
	SampledAzimuths []float64

	// DenseAzimuths is every integer azimuth degree from 0 to 360 inclusive.
	DenseAzimuths []float64

	// DenseAzimuthsRad is DenseAzimuths converted to radians, for the polar
	// renderer.
	DenseAzimuthsRad []float64
}

// Default sampling geometry of the survey instrument.
var (
	defaultZeniths  = []float64{20, 40, 60, 80, 90}
	defaultAzimuths = []float64{0, 30, 60, 90, 120, 150, 180, 210, 240, 270, 300, 330, 360}
)

// DefaultGrids returns the grids for the reference survey geometry: zeniths
// sampled at 20, 40, 60, 80 and 90 degrees, azimuths every 30 degrees.
func DefaultGrids() *Grids {
	g, err := NewGrids(defaultZeniths, defaultAzimuths)
	if err != nil {
		panic(err) // the reference geometry is valid
	}
	return g
}

// NewGrids builds the dense grids from the sampled angles. The sampled
// zeniths must be strictly increasing; the sampled azimuths must be strictly
// increasing and closed (first 0, last 360).
func NewGrids(sampledZeniths, sampledAzimuths []float64) (*Grids, error) {
	if len(sampledZeniths) < 2 {
		return nil, fmt.Errorf("need at least two sampled zeniths, got %d", len(sampledZeniths))
	}
	if err := checkIncreasing("zenith", sampledZeniths); err != nil {
		return nil, err
	}
	if len(sampledAzimuths) < 3 {
		return nil, fmt.Errorf("need at least three sampled azimuths, got %d", len(sampledAzimuths))
	}
	if err := checkIncreasing("azimuth", sampledAzimuths); err != nil {
		return nil, err
	}
	if sampledAzimuths[0] != 0 || sampledAzimuths[len(sampledAzimuths)-1] != 360 {
		return nil, fmt.Errorf("sampled azimuths must close the circle (first 0, last 360), got first %g last %g",
			sampledAzimuths[0], sampledAzimuths[len(sampledAzimuths)-1])
	}

	g := &Grids{
		SampledZeniths:  append([]float64(nil), sampledZeniths...),
		SampledAzimuths: append([]float64(nil), sampledAzimuths...),
	}

	g.DenseZeniths = degreeRange(sampledZeniths[0], sampledZeniths[len(sampledZeniths)-1])
	g.DenseZenithsDesc = make([]float64, len(g.DenseZeniths))
	for i, z := range g.DenseZeniths {
		g.DenseZenithsDesc[len(g.DenseZeniths)-1-i] = z
	}

	g.DenseAzimuths = degreeRange(0, 360)
	g.DenseAzimuthsRad = make([]float64, len(g.DenseAzimuths))
	for i, a := range g.DenseAzimuths {
		g.DenseAzimuthsRad[i] = a * math.Pi / 180
	}

	return g, nil
}

// ExpectedValueCount is the number of scalars a valid measurement carries:
// one per (sampled azimuth, sampled zenith) pair. The 360-degree azimuth is
// measured in its own right even though it points the same way as azimuth 0,
// so the default geometry expects 13*5 = 65 values.
func (g *Grids) ExpectedValueCount() int {
	return len(g.SampledAzimuths) * len(g.SampledZeniths)
}

func checkIncreasing(name string, vals []float64) error {
	for i := 1; i < len(vals); i++ {
		if vals[i] <= vals[i-1] {
			return fmt.Errorf("sampled %s angles must be strictly increasing: %g after %g",
				name, vals[i], vals[i-1])
		}
	}
	return nil
}

// degreeRange returns every integer degree from lo to hi inclusive.
func degreeRange(lo, hi float64) []float64 {
	out := make([]float64, 0, int(hi-lo)+1)
	for d := lo; d <= hi; d++ {
		out = append(out, d)
	}
	return out
}
