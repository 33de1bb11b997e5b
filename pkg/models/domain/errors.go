package domain

import "fmt"

// RetrievalError reports a failure to enumerate or download a single remote
// archive item. Batch operations collect these per item and keep going.
type RetrievalError struct {
	Category string
	Ref      string
	Err      error
}

func (e *RetrievalError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("retrieval failed for category %q: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("retrieval failed for %s/%s: %v", e.Category, e.Ref, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// ParseError reports malformed tabular input. Line is 1-based and refers to
// the physical line in the source file; 0 means the file as a whole.
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse %s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SelectionError reports a selection (ticker filter, date range) that matched
// no rows. Callers must surface it instead of rendering an empty chart.
type SelectionError struct {
	Ticker string
	Reason string
}

func (e *SelectionError) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("selection %q: %s", e.Ticker, e.Reason)
	}
	return fmt.Sprintf("selection: %s", e.Reason)
}
