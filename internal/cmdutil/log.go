// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnPrefix = color.New(color.FgYellow, color.Bold)
	errPrefix  = color.New(color.FgRed, color.Bold)
)

// DisableColor turns off ANSI colouring for all prefixes (--no-color).
// color already disables itself when stdout is not a terminal.
func DisableColor() { color.NoColor = true }

// Warnf prints a "WARN:" line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = warnPrefix.Fprint(dst, "WARN:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}

// Errorf prints an "error:" line to dst. Errors are never silenced.
func Errorf(dst io.Writer, format string, a ...any) {
	_, _ = errPrefix.Fprint(dst, "error:")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}
