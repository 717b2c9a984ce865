package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// Width is the maximum output line width, 0 means unlimited.
	Width uint16
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col pairs next to the byte offsets.
	IncludePositions bool
	// Max trims the output, not the Bag.
	Max int
}
