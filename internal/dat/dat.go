// Package dat reads sky-darkness measurement files.
//
// A .dat file carries a title line followed by a comma-separated line of
// brightness values, one per (sampled azimuth, sampled zenith) pair. Files
// that do not match the sampling geometry are rejected here; the
// interpolation pipeline never sees them.
package dat

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/darksky-data/darkness.report/internal/monitoring"
	"github.com/darksky-data/darkness.report/internal/sky"
)

// Extension identifies measurement files.
const Extension = ".dat"

// minLines is the number of lines a file must have: the title and the data
// line. Extra lines are ignored.
const minLines = 2

// Record pairs a parsed measurement with the file it came from.
type Record struct {
	Path        string
	Measurement sky.Measurement
}

// ReadFile parses a single measurement file and validates it against the
// sampling geometry. Shape mismatches wrap sky.ErrInvalidRecordShape.
func ReadFile(path string, g *sky.Grids) (sky.Measurement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sky.Measurement{}, err
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) < minLines {
		return sky.Measurement{}, fmt.Errorf("%s: want at least %d lines, got %d", path, minLines, len(lines))
	}

	fields := strings.Split(lines[1], ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return sky.Measurement{}, fmt.Errorf("%s: value %q is not a real number: %w", path, f, err)
		}
		values = append(values, v)
	}

	m := sky.Measurement{Title: strings.TrimSpace(lines[0]), Values: values}
	if err := m.Validate(g); err != nil {
		return sky.Measurement{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadDir parses every measurement file directly under dir. Malformed files
// are logged and skipped, matching the survey tooling's tolerance for stray
// files in the data directory. The returned records keep directory order.
func ReadDir(dir string, g *sky.Grids) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+Extension))
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(paths))
	for _, path := range paths {
		monitoring.Verbosef("reading file: %s", path)

		m, err := ReadFile(path, g)
		if err != nil {
			monitoring.Logf("skipping invalid data file: %v", err)
			continue
		}
		records = append(records, Record{Path: path, Measurement: m})
	}
	return records, nil
}
