// Command darkplot converts sky-darkness measurement files into dense polar
// sky maps. It discovers .dat files under a directory, interpolates each
// record onto a one-degree (azimuth, zenith) grid, and writes one PNG figure
// per record, with optional HTML charts and a sqlite archive of the runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/darksky-data/darkness.report/internal/dat"
	"github.com/darksky-data/darkness.report/internal/interpolate"
	"github.com/darksky-data/darkness.report/internal/monitoring"
	"github.com/darksky-data/darkness.report/internal/render"
	"github.com/darksky-data/darkness.report/internal/sky"
	"github.com/darksky-data/darkness.report/internal/store"
	"github.com/darksky-data/darkness.report/internal/version"
)

var (
	dataPath     = flag.String("p", ".", "Path of the data files")
	outDir       = flag.String("o", ".", "Directory to write figures to")
	useDataRange = flag.Bool("r", false, "Use the data's own range for the color scale")
	htmlCharts   = flag.Bool("html", false, "Also write an interactive HTML chart per figure")
	dbPath       = flag.String("db", "", "Archive runs to this sqlite database")
	logFile      = flag.String("l", "", "File to save the log messages")
	verbose      = flag.Bool("v", false, "Log verbose messages")
	showVersion  = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	var logCloser io.Closer
	if *logFile != "" {
		closer, err := monitoring.RedirectToFile(*logFile)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		logCloser = closer
	}
	monitoring.SetVerbose(*verbose)

	// log.Fatal would skip deferred closes, so log the failure first and
	// close the log file before exiting.
	err := run(context.Background())
	if err != nil {
		log.Printf("darkplot: %v", err)
	}
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	grids := sky.DefaultGrids()

	records, err := dat.ReadDir(*dataPath, grids)
	if err != nil {
		return fmt.Errorf("failed to read data files: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no valid %s files found in %s", dat.Extension, *dataPath)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var archive *store.Store
	if *dbPath != "" {
		archive, err = store.Open(*dbPath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer archive.Close()
	}

	pipeline := interpolate.New(grids)
	opts := render.Options{UseDataRange: *useDataRange}

	for _, rec := range records {
		m := rec.Measurement
		monitoring.Verbosef("plotting figure for: %s", m.Title)

		grid, err := pipeline.Run(m)
		if err != nil {
			// ReadDir already validated the record; this is defensive.
			monitoring.Logf("skipping %s: %v", rec.Path, err)
			continue
		}
		gridMin, gridMax := grid.MinMax()

		pngPath := filepath.Join(*outDir, figureName(rec.Path, ".png"))
		if err := render.SavePNG(m.Title, grids, grid, opts, pngPath); err != nil {
			return fmt.Errorf("failed to render %s: %w", pngPath, err)
		}
		log.Printf("wrote %s", pngPath)

		if *htmlCharts {
			htmlPath := filepath.Join(*outDir, figureName(rec.Path, ".html"))
			if err := render.SaveHTML(m.Title, grids, grid, htmlPath); err != nil {
				return fmt.Errorf("failed to render %s: %w", htmlPath, err)
			}
			log.Printf("wrote %s", htmlPath)
		}

		if archive != nil {
			archived, err := archive.RecordRun(ctx, store.Run{
				SourceFile: rec.Path,
				Title:      m.Title,
				ValueCount: len(m.Values),
				GridMin:    gridMin,
				GridMax:    gridMax,
			})
			if err != nil {
				return err
			}
			monitoring.Verbosef("archived run %s", archived.ID)
		}
	}

	monitoring.Verbosef("program finished")
	return nil
}

// figureName derives an output file name from a data file path by swapping
// its extension.
func figureName(dataPath, ext string) string {
	base := filepath.Base(dataPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}
