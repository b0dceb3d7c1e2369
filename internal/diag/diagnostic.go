package diag

import (
	"tcad/internal/source"
)

// Note attaches secondary context to a diagnostic (e.g. "first defined here").
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reportable finding with a machine-readable code and the
// primary span it points at.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// WithNote returns a copy of the diagnostic with an extra note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
