package jsdoc

import (
	"github.com/Penify-dev/jsdoc-parser/core"
	"github.com/Penify-dev/jsdoc-parser/model"
)

// Parser provides fluent configuration for parsing. Each chain method
// returns a new instance, so a configured Parser may be stored and shared.
//
// Example:
//
//	doc, errs, err := jsdoc.NewParser().PreserveLineBreaks().Parse(text)
type Parser struct {
	options ParseOptions
}

// NewParser creates a Parser with default options.
func NewParser() *Parser {
	return &Parser{options: core.DefaultParseOptions()}
}

// clone creates a copy of the Parser so chain methods stay immutable.
func (p *Parser) clone() *Parser {
	return &Parser{options: p.options}
}

// PreserveLineBreaks keeps interior newlines in multi-line tag descriptions
// instead of collapsing them to single spaces.
func (p *Parser) PreserveLineBreaks() *Parser {
	np := p.clone()
	np.options.PreserveLineBreaks = true
	return np
}

// FailFast makes parsing stop at the first recoverable per-tag failure
// instead of collecting errors into a list.
func (p *Parser) FailFast() *Parser {
	np := p.clone()
	np.options.CollectErrors = false
	return np
}

// Parse parses comment text with the configured options.
func (p *Parser) Parse(text string) (*model.Document, []ParseError, error) {
	return core.NewParserWithOptions(p.options).Parse(text)
}

// Composer provides fluent configuration for composing. Each chain method
// returns a new instance.
//
// Example:
//
//	text := jsdoc.NewComposer().WrapAt(80).Compose(doc)
type Composer struct {
	options ComposeOptions
}

// NewComposer creates a Composer with default options.
func NewComposer() *Composer {
	return &Composer{options: DefaultComposeOptions()}
}

// clone creates a copy of the Composer so chain methods stay immutable.
func (c *Composer) clone() *Composer {
	return &Composer{options: c.options}
}

// WrapAt wraps tag descriptions so rendered lines stay within the given
// column. Zero or negative disables wrapping.
func (c *Composer) WrapAt(column int) *Composer {
	nc := c.clone()
	if column < 0 {
		column = 0
	}
	nc.options.WrapColumn = column
	return nc
}

// Indent sets the leading marker for interior comment lines.
func (c *Composer) Indent(indent string) *Composer {
	nc := c.clone()
	nc.options.Indent = indent
	return nc
}

// Compose renders a document with the configured options.
func (c *Composer) Compose(doc *model.Document) string {
	return ComposeWithOptions(doc, c.options)
}
