// Package model provides the intermediate representation (IR) for parsed
// JSDoc comments.
//
// This package defines the user-facing data structures that represent the
// semantic structure of a doc comment. Parsing produces these types, and
// composing consumes them, making them the primary API for inspecting and
// editing comment content.
//
// # Document Structure
//
// The [Document] type represents a complete parsed comment: a free-text
// description followed by an ordered list of tags:
//
//	doc := model.NewDocument()
//	doc.Description = "Adds two numbers"
//	doc.AddTag(&model.ParamTag{Name: "a", TypeExpr: "number"})
//
// Tag order is semantically meaningful and is preserved exactly as tags
// appeared in the source; nothing in this package ever re-sorts it.
//
// # Tags
//
// All tag variants implement the [Tag] interface. The concrete types are:
//
//   - [ParamTag] - @param (and @arg/@argument) with name, optionality, default
//   - [PropertyTag] - @property (and @prop), same grammar as @param
//   - [ReturnsTag] - @returns (and @return)
//   - [ThrowsTag] - @throws (and @exception)
//   - [TypeTag] - @type
//   - [ExampleTag] - @example, line breaks preserved verbatim
//   - [DeprecatedTag] - @deprecated
//   - [GenericTag] - any unrecognized tag, body kept verbatim
//
// Tags carrying a brace-delimited type expression additionally implement
// [TypedTag]. A type expression is stored without its outer braces; the
// empty string means the tag had no type expression at all, and composing
// such a tag emits no braces.
//
// All fields are plain public fields with no hidden state: the intended
// workflow is parse, edit fields freely, recompose.
package model
