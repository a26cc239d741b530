// Package jsdoc provides a bidirectional grammar for JSDoc-style block
// comments: parsing comment text into a structured, freely editable
// document, and composing such a document back into canonically formatted
// comment text.
//
// Basic usage:
//
//	doc, errs, err := jsdoc.Parse(commentText)
//	if err != nil {
//	    // handle error
//	}
//	if len(errs) > 0 {
//	    log.Println("Recovered:", jsdoc.FormatParseErrors(errs))
//	}
//
// Edit and recompose:
//
//	if p := doc.FindParam("limit"); p != nil {
//	    p.Description = "Maximum number of results"
//	}
//	fmt.Println(jsdoc.Compose(doc))
//
// With options:
//
//	text := jsdoc.NewComposer().WrapAt(80).Compose(doc)
//
// For advanced use cases, the lower-level core and compose packages are
// also available.
package jsdoc

import (
	"fmt"
	"strings"

	"github.com/Penify-dev/jsdoc-parser/compose"
	"github.com/Penify-dev/jsdoc-parser/core"
	"github.com/Penify-dev/jsdoc-parser/model"
)

// ParseError is a recoverable per-tag parse failure. See core.ParseError.
type ParseError = core.ParseError

// Parse parses comment text into a document using default options: per-tag
// failures are collected and returned alongside the best-effort document,
// and multi-line tag descriptions collapse to single spaces. The error is
// non-nil only for structural failures, in which case the document is nil.
//
// Example:
//
//	doc, errs, err := jsdoc.Parse(text)
func Parse(text string) (*model.Document, []ParseError, error) {
	return core.NewParser().Parse(text)
}

// ParseWithOptions parses comment text with custom options.
func ParseWithOptions(text string, opts ParseOptions) (*model.Document, []ParseError, error) {
	return core.NewParserWithOptions(opts).Parse(text)
}

// Compose renders a document as canonical comment text using default
// options. It never fails for any document value.
//
// Example:
//
//	text := jsdoc.Compose(doc)
func Compose(doc *model.Document) string {
	return compose.Compose(doc)
}

// ComposeWithOptions renders a document with custom options.
func ComposeWithOptions(doc *model.Document, opts ComposeOptions) string {
	return compose.ComposeWithOptions(doc, opts)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustParse is a helper that parses comment text and panics on structural
// failure, discarding recoverable errors. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := jsdoc.MustParse("/** @param {number} a */")
func MustParse(text string) *model.Document {
	doc, _, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return doc
}

// FormatParseErrors returns a human-readable one-line-per-error summary of
// recovered parse errors.
func FormatParseErrors(errs []ParseError) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = fmt.Sprintf("[%d] %v", i+1, e.Err)
	}
	return strings.Join(parts, "; ")
}
