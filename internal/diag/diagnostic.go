package diag

import "fmt"

// Diagnostic is one reported problem. Line is the 1-based physical source
// line (0 when the position is unknown, e.g. end of input).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Path     string
	Line     uint32
	Message  string
}

// String renders the canonical one-line form: path:line: SEV CODE: message.
func (d Diagnostic) String() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s %s: %s", d.Path, d.Severity, d.Code.ID(), d.Message)
	}
	return fmt.Sprintf("%s:%d: %s %s: %s", d.Path, d.Line, d.Severity, d.Code.ID(), d.Message)
}
