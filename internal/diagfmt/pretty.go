package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"tcad/internal/diag"
	"tcad/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
)

// Pretty renders a bag in the classic compiler format. Call bag.Sort()
// first for stable output:
//
//	path:line:col: ERROR[T4001]: type mismatch: expected Length, found Angle
//	    x = y;
//	    ^~~~~
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	count := 0
	for _, d := range bag.Items() {
		if opts.MaxMessages > 0 && count >= opts.MaxMessages {
			fmt.Fprintf(w, "... and %d more\n", bag.Len()-count)
			return
		}
		count++
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	writeHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts)
	if opts.ShowSource {
		writeSourceLine(w, d.Primary, fs)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			writeHeader(w, diag.SevInfo, diag.UnknownCode, n.Msg, n.Span, fs, opts)
			if opts.ShowSource {
				writeSourceLine(w, n.Span, fs)
			}
		}
	}
}

func writeHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(span.File)
	start, _ := fs.Resolve(span)

	pos := fmt.Sprintf("%s:%d:%d:", f.Path, start.Line, start.Col)
	label := sev.String()
	if code != diag.UnknownCode {
		label = fmt.Sprintf("%s[%s]", label, code)
	}
	if opts.Color {
		pos = posColor.Sprint(pos)
		label = sevColor(sev).Sprint(label)
	}
	fmt.Fprintf(w, "%s %s: %s\n", pos, label, msg)
}

// writeSourceLine prints the first line the span covers with a caret
// underline. Widths are computed per rune so wide characters stay aligned.
func writeSourceLine(w io.Writer, span source.Span, fs *source.FileSet) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	raw := f.Line(start.Line)
	if raw == "" {
		return
	}
	// Tabs are expanded so the caret lines up with the printed text.
	line := strings.ReplaceAll(raw, "\t", "    ")
	fmt.Fprintf(w, "    %s\n", line)

	prefix := raw
	if int(start.Col-1) <= len(raw) {
		prefix = raw[:start.Col-1]
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		covered := raw
		if int(end.Col-1) <= len(raw) {
			covered = raw[start.Col-1 : end.Col-1]
		}
		if cw := runewidth.StringWidth(covered); cw > 1 {
			width = cw
		}
	}
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errColor
	case diag.SevWarning:
		return warnColor
	default:
		return infoColor
	}
}
