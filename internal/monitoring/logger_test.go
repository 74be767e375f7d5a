package monitoring

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	original := Logf
	defer func() { Logf = original }()

	called := false
	SetLogger(func(format string, v ...interface{}) {
		called = true
	})
	Logf("test message")
	if !called {
		t.Error("custom logger was not called")
	}

	// A nil logger becomes a no-op, not a panic.
	called = false
	SetLogger(nil)
	Logf("test message")
	if called {
		t.Error("no-op logger should not have triggered callback")
	}
}

func TestVerbosef(t *testing.T) {
	original := Logf
	defer func() {
		Logf = original
		SetVerbose(false)
	}()

	var got []string
	SetLogger(func(format string, v ...interface{}) {
		got = append(got, format)
	})

	SetVerbose(false)
	Verbosef("quiet")
	if len(got) != 0 {
		t.Fatalf("Verbosef logged while verbose disabled: %v", got)
	}

	SetVerbose(true)
	Verbosef("loud")
	if len(got) != 1 || got[0] != "loud" {
		t.Fatalf("Verbosef did not log while verbose enabled: %v", got)
	}
}

func TestRedirectToFile(t *testing.T) {
	orig := log.Writer()
	t.Cleanup(func() { log.SetOutput(orig) })

	name := filepath.Join(t.TempDir(), "log.txt")
	c, err := RedirectToFile(name)
	if err != nil {
		t.Fatalf("RedirectToFile: %v", err)
	}
	Logf("redirected %d", 42)
	if err := c.Close(); err != nil {
		t.Fatalf("close log file: %v", err)
	}

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "redirected 42") {
		t.Errorf("log file missing entry, got %q", string(data))
	}
}
