package interpolate

import (
	"github.com/darksky-data/darkness.report/internal/sky"
)

// Pipeline interpolates validated measurements onto the dense grids. It is
// stateless apart from the immutable geometry, so one Pipeline may be shared
// across goroutines processing independent measurements.
type Pipeline struct {
	grids *sky.Grids
}

// New returns a pipeline over the given sampling geometry.
func New(g *sky.Grids) *Pipeline {
	return &Pipeline{grids: g}
}

// Run validates the measurement and applies both interpolation passes and
// the assembler. The only error is sky.ErrInvalidRecordShape; a validated
// record cannot fail.
func (p *Pipeline) Run(m sky.Measurement) (*Grid, error) {
	if err := m.Validate(p.grids); err != nil {
		return nil, err
	}
	zeniths := p.InterpolateZeniths(m.Values)
	azimuths := p.InterpolateAzimuths(zeniths)
	return p.Assemble(azimuths), nil
}

// InterpolateZeniths resamples each sampled azimuth's zenith knots onto the
// dense zenith grid. values is the flat azimuth-major measurement list; the
// caller guarantees one block of zenith knots per sampled azimuth, the
// 360-degree azimuth included. The result has one dense zenith profile per
// sampled azimuth.
func (p *Pipeline) InterpolateZeniths(values []float64) AzimuthMajor {
	g := p.grids
	nz := len(g.SampledZeniths)
	blocks := len(g.SampledAzimuths)

	out := make(AzimuthMajor, 0, blocks*len(g.DenseZeniths))
	for b := 0; b < blocks; b++ {
		knots := values[b*nz : (b+1)*nz]
		out = append(out, resample(g.SampledZeniths, knots, g.DenseZeniths)...)
	}
	return out
}

// InterpolateAzimuths produces one dense azimuth sweep per dense zenith. For
// each dense zenith it gathers the value at that zenith from every sampled
// azimuth's profile (a stride gather across the azimuth-major blocks) and
// resamples onto the dense azimuths. The 360-degree block is a measured knot
// like any other, so the last sector blends toward it. The 360-degree output
// is dropped from each sweep; the assembler restores it from the azimuth-0
// row.
func (p *Pipeline) InterpolateAzimuths(seq AzimuthMajor) ZenithMajor {
	g := p.grids
	ndz := len(g.DenseZeniths)
	blocks := len(g.SampledAzimuths)
	sweepLen := len(g.DenseAzimuths) - 1

	profile := make([]float64, blocks)
	out := make(ZenithMajor, 0, ndz*sweepLen)
	for z := 0; z < ndz; z++ {
		for b := 0; b < blocks; b++ {
			profile[b] = seq[b*ndz+z]
		}

		sweep := resample(g.SampledAzimuths, profile, g.DenseAzimuths)
		out = append(out, sweep[:sweepLen]...)
	}
	return out
}

// Assemble reshapes the zenith-major sequence into the final grid, indexed
// (azimuth, zenith) with the first axis varying fastest in the input, and
// restores the azimuth-360 row as an exact copy of the azimuth-0 row. It is a
// pure function of its input.
func (p *Pipeline) Assemble(seq ZenithMajor) *Grid {
	g := p.grids
	ndz := len(g.DenseZeniths)
	nda := len(g.DenseAzimuths)
	sweepLen := nda - 1

	values := make([][]float64, nda)
	for a := range values {
		values[a] = make([]float64, ndz)
	}
	for z := 0; z < ndz; z++ {
		row := seq[z*sweepLen : (z+1)*sweepLen]
		for a := 0; a < sweepLen; a++ {
			values[a][z] = row[a]
		}
	}

	// Seam closure: azimuth 360 is the same physical direction as azimuth 0
	// and must carry bit-identical values to avoid a visible discontinuity,
	// even though it was measured separately.
	copy(values[nda-1], values[0])

	return &Grid{values: values}
}
