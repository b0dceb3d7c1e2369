package diag

import (
	"fmt"

	"tcad/internal/source"
)

// Reporter is the minimal sink contract the analysis phases emit into.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores every reported diagnostic in a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// Errorf reports a SevError diagnostic with a formatted message.
func Errorf(r Reporter, code Code, primary source.Span, format string, args ...any) {
	report(r, SevError, code, primary, format, args...)
}

// Warningf reports a SevWarning diagnostic with a formatted message.
func Warningf(r Reporter, code Code, primary source.Span, format string, args ...any) {
	report(r, SevWarning, code, primary, format, args...)
}

func report(r Reporter, sev Severity, code Code, primary source.Span, format string, args ...any) {
	if r == nil {
		return
	}
	r.Report(Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Primary:  primary,
	})
}
