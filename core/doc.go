// Package core provides low-level parsing primitives for JSDoc-style block
// comments.
//
// This package implements the parsing pipeline that turns raw comment text
// into a [model.Document]: delimiter and asterisk normalization, splitting
// into a description block plus tag blocks, and the per-tag grammars.
//
// # Pipeline
//
// Parsing runs in three stages, each usable on its own:
//
//   - [NormalizeComment] - strips the /** ... */ framing and per-line
//     leading asterisks, yielding ordered logical lines
//   - [SplitBlocks] - groups logical lines into one description block and
//     zero or more tag blocks, tracking brace depth across lines so that
//     @-words inside a multi-line {type} never start a new block
//   - [Parser] - dispatches each tag block to its grammar (param/property
//     names with [name=default] syntax, brace-balanced type expressions,
//     free-text descriptions) and assembles the document
//
// # Errors
//
// A structural problem ([MalformedCommentError]) aborts parsing. Per-tag
// problems ([UnbalancedBraceError], [MissingNameError]) are collected as
// [ParseError] values by default while parsing continues, so one malformed
// tag never discards an otherwise valid comment. Unrecognized tag names are
// not errors at all; they parse into [model.GenericTag] values verbatim.
package core
