package core

import "fmt"

// MalformedCommentError indicates the comment delimiters are absent or
// unbalanced. It is structural: parsing aborts without a document.
type MalformedCommentError struct {
	Reason string
}

func (e *MalformedCommentError) Error() string {
	return fmt.Sprintf("malformed comment: %s", e.Reason)
}

// UnbalancedBraceError indicates a {type} expression whose braces never
// close. Tag is the raw tag word and Index its 0-based position among the
// comment's tags.
type UnbalancedBraceError struct {
	Tag   string
	Index int
}

func (e *UnbalancedBraceError) Error() string {
	return fmt.Sprintf("unbalanced braces in type expression of @%s (tag %d)", e.Tag, e.Index)
}

// MissingNameError indicates a param or property tag with no parseable
// name. Tag is the raw tag word and Index its 0-based position among the
// comment's tags.
type MissingNameError struct {
	Tag   string
	Index int
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("missing name in @%s (tag %d)", e.Tag, e.Index)
}

// ParseError records a recoverable per-tag failure. In the default
// collect-all mode the parser accumulates these and keeps going; the tag
// that failed is omitted from the document.
type ParseError struct {
	Index int    // 0-based tag position in source order
	Tag   string // raw tag word
	Err   error  // *UnbalancedBraceError or *MissingNameError
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tag %d (@%s): %v", e.Index, e.Tag, e.Err)
}

// Unwrap returns the underlying error so errors.As sees the specific kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}
