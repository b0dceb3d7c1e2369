package diagfmt

// PrettyOpts configures human-readable diagnostic output.
type PrettyOpts struct {
	Color       bool
	ShowSource  bool // print the offending line with a caret underline
	ShowNotes   bool
	MaxMessages int // 0 means unlimited
}

// JSONOpts configures machine-readable diagnostic output.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	MaxMessages      int
}
