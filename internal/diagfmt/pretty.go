package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"jackal/internal/diag"
)

// PrettyOpts controls diagnostic rendering.
type PrettyOpts struct {
	Color bool
}

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	posColor  = color.New(color.Bold)
)

// Pretty renders diagnostics one per line:
//
//	<path>:<line>: <sev> <CODE>: <message>
//
// Callers wanting deterministic order should bag.Sort() first.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	for _, d := range bag.Items() {
		pos := d.Path
		if d.Line > 0 {
			pos = fmt.Sprintf("%s:%d", d.Path, d.Line)
		}
		sev := d.Severity.String()
		if opts.Color {
			pos = posColor.Sprint(pos)
			switch d.Severity {
			case diag.SevError:
				sev = errColor.Sprint(sev)
			case diag.SevWarning:
				sev = warnColor.Sprint(sev)
			default:
				sev = infoColor.Sprint(sev)
			}
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", pos, sev, d.Code.ID(), d.Message)
	}
}
