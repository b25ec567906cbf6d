package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterPlainWhenColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, false)
	p.Warn("No project files were changed in %s.", "demo")

	if got := buf.String(); got != "No project files were changed in demo.\n" {
		t.Errorf("got %q", got)
	}
}

func TestPrinterColors(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)
	p.Error("boom")

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("expected ANSI escape in %q", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("expected message in %q", out)
	}
}

func TestNilPrinter(t *testing.T) {
	var p *Printer
	p.Info("ignored") // must not panic
}
