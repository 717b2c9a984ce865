package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"svgtok/internal/diag"
	"svgtok/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() first for a stable order) and prints for each one
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line and a ^~~~ underline of the primary span.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)

		sev := d.Severity.String()
		if opts.Color {
			sev = severityColor(d.Severity).Sprint(sev)
		}
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

		line := f.GetLine(start.Line)
		if line == "" {
			continue
		}
		if opts.Width > 0 && runewidth.StringWidth(line) > int(opts.Width) {
			line = runewidth.Truncate(line, int(opts.Width)-3, "...")
		}
		fmt.Fprintf(w, "  %s\n", line)

		col := int(start.Col)
		if col > len(line)+1 {
			// The span sits past the truncation point.
			continue
		}
		width := int(d.Primary.Len())
		if width < 1 {
			width = 1
		}
		if rest := len(line) - col + 1; width > rest && rest > 0 {
			width = rest
		}
		underline := "^" + strings.Repeat("~", width-1)
		if opts.Color {
			underline = caretColor.Sprint(underline)
		}
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", col-1), underline)
	}
}
