package sky

import (
	"errors"
	"fmt"
)

// ErrInvalidRecordShape reports a measurement whose value count does not
// match the sampling geometry. It is an ingestion failure, distinct from any
// numeric computation error.
var ErrInvalidRecordShape = errors.New("measurement value count does not match sampling geometry")

// Measurement is one parsed record: a title and the flat list of brightness
// values, ordered azimuth-major (all zenith samples for the first sampled
// azimuth, then all for the second, and so on). The closing 360-degree
// azimuth carries its own samples, taken at the end of the sweep; they need
// not equal the azimuth-0 samples.
type Measurement struct {
	Title  string
	Values []float64
}

// Validate checks the record shape against the sampling geometry. The
// interpolation pipeline assumes a validated record and performs no internal
// checks of its own.
func (m Measurement) Validate(g *Grids) error {
	if want := g.ExpectedValueCount(); len(m.Values) != want {
		return fmt.Errorf("measurement %q has %d values, want %d: %w",
			m.Title, len(m.Values), want, ErrInvalidRecordShape)
	}
	return nil
}
