// Package console prints colored, user-facing status lines.
package console

import (
	"fmt"
	"io"

	"github.com/mgutz/ansi"
)

// Printer writes themed lines to w. Color can be turned off for pipes and tests.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Info prints a green line.
func (p *Printer) Info(format string, args ...any) { p.write("green", format, args...) }

// Help prints a cyan line, used for next-step instructions.
func (p *Printer) Help(format string, args ...any) { p.write("cyan", format, args...) }

// Warn prints a yellow line.
func (p *Printer) Warn(format string, args ...any) { p.write("yellow", format, args...) }

// Error prints a red line.
func (p *Printer) Error(format string, args ...any) { p.write("red", format, args...) }

// Plain prints an uncolored line.
func (p *Printer) Plain(format string, args ...any) { p.write("", format, args...) }

func (p *Printer) write(style, format string, args ...any) {
	if p == nil || p.w == nil {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if p.color && style != "" {
		msg = ansi.Color(msg, style)
	}
	_, _ = fmt.Fprintln(p.w, msg)
}
