package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// printer writes command results to out and diagnostics to errOut. Secrets
// printed with plain go to out uncolored so they can be piped.
type printer struct {
	out    io.Writer
	errOut io.Writer
}

func (p printer) plain(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p printer) success(format string, args ...any) {
	successColor.Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p printer) warn(format string, args ...any) {
	warnColor.Fprintf(p.errOut, "! "+format+"\n", args...)
}

func (p printer) error(format string, args ...any) {
	errorColor.Fprintf(p.errOut, "✗ "+format+"\n", args...)
}
