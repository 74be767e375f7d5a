// Package monitoring carries the process-wide diagnostic logger.
package monitoring

import (
	"io"
	"log"
	"os"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger. Tests or production code can redirect or mute
// it.
var Logf func(format string, v ...interface{}) = log.Printf

var verbose bool

// SetLogger replaces the package logger. Passing nil will set a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// SetVerbose enables or disables Verbosef output.
func SetVerbose(v bool) {
	verbose = v
}

// Verbosef logs through Logf only when verbose logging is enabled.
func Verbosef(format string, v ...interface{}) {
	if verbose {
		Logf(format, v...)
	}
}

// RedirectToFile sends the standard logger's output to the named file,
// appending if it exists. The caller closes the returned file when the
// process is done logging.
func RedirectToFile(name string) (io.Closer, error) {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return f, nil
}
