package core

import (
	"strings"

	"github.com/Penify-dev/jsdoc-parser/model"
)

// ParseOptions holds configuration for parsing.
type ParseOptions struct {
	// CollectErrors keeps parsing after a recoverable per-tag failure and
	// returns the collected errors alongside the best-effort document.
	// When false, parsing stops at the first per-tag failure.
	CollectErrors bool

	// PreserveLineBreaks keeps interior newlines in multi-line tag
	// descriptions instead of collapsing them to single spaces.
	// Example bodies always keep their line breaks regardless.
	PreserveLineBreaks bool
}

// DefaultParseOptions returns the default parsing options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		CollectErrors:      true,
		PreserveLineBreaks: false,
	}
}

// tagKinds maps normalized tag words, including aliases, to tag kinds.
// Lookup is case-insensitive; anything absent here parses as a generic tag.
var tagKinds = map[string]model.TagKind{
	"param":      model.KindParam,
	"arg":        model.KindParam,
	"argument":   model.KindParam,
	"property":   model.KindProperty,
	"prop":       model.KindProperty,
	"returns":    model.KindReturns,
	"return":     model.KindReturns,
	"throws":     model.KindThrows,
	"exception":  model.KindThrows,
	"type":       model.KindType,
	"example":    model.KindExample,
	"deprecated": model.KindDeprecated,
}

// Parser parses comment text into a document. A Parser is stateless between
// calls and safe to reuse; the zero value behaves like NewParser.
type Parser struct {
	opts ParseOptions
}

// NewParser creates a parser with default options.
func NewParser() *Parser {
	return &Parser{opts: DefaultParseOptions()}
}

// NewParserWithOptions creates a parser with the given options.
func NewParserWithOptions(opts ParseOptions) *Parser {
	return &Parser{opts: opts}
}

// Parse runs the full pipeline: normalize, split into blocks, parse each
// tag block, and assemble the document. The returned error is non-nil only
// for structural failures (malformed delimiters) or, in fail-fast mode, the
// first per-tag failure; recoverable per-tag failures are otherwise
// returned in the slice while the document carries every tag that parsed.
func (p *Parser) Parse(text string) (*model.Document, []ParseError, error) {
	lines, err := NormalizeComment(text)
	if err != nil {
		return nil, nil, err
	}
	descRaw, blocks := SplitBlocks(lines)

	doc := model.NewDocument()
	doc.Description = descRaw

	var errs []ParseError
	for _, block := range blocks {
		if err := p.parseBlock(doc, block); err != nil {
			pe := &ParseError{Index: block.Index, Tag: block.Name, Err: err}
			if !p.opts.CollectErrors {
				return nil, nil, pe
			}
			errs = append(errs, *pe)
		}
	}
	return doc, errs, nil
}

// parseBlock dispatches one tag block to its grammar and adds the result to
// the document. Recoverable grammar failures are returned; the block is
// then dropped from the document.
func (p *Parser) parseBlock(doc *model.Document, block Block) error {
	kind, known := tagKinds[strings.ToLower(block.Name)]
	if !known {
		if strings.EqualFold(block.Name, "description") {
			p.mergeDescription(doc, block)
			return nil
		}
		// Unknown tag: keep the body verbatim so nothing is lost.
		doc.AddTag(&model.GenericTag{
			Raw:  block.Name,
			Body: strings.TrimSpace(block.Body),
		})
		return nil
	}

	switch kind {
	case model.KindParam, model.KindProperty:
		return p.parseNamed(doc, block, kind)
	case model.KindReturns, model.KindThrows, model.KindType:
		return p.parseTyped(doc, block, kind)
	case model.KindExample:
		doc.AddTag(&model.ExampleTag{
			Raw:  block.Name,
			Text: strings.TrimSpace(block.Body),
		})
		return nil
	case model.KindDeprecated:
		doc.AddTag(&model.DeprecatedTag{
			Raw:         block.Name,
			Description: p.joinBody(block.Body),
		})
		return nil
	}
	return nil
}

// mergeDescription folds an @description body into the document's
// top-level description, newline-separated when both are present.
func (p *Parser) mergeDescription(doc *model.Document, block Block) {
	body := p.joinBody(block.Body)
	if body == "" {
		return
	}
	if doc.Description == "" {
		doc.Description = body
	} else {
		doc.Description += "\n" + body
	}
}

// parseTyped handles the tags whose grammar is an optional {type} followed
// by a description: returns, throws and type.
func (p *Parser) parseTyped(doc *model.Document, block Block, kind model.TagKind) error {
	typeExpr, rest, err := p.extractType(block)
	if err != nil {
		return err
	}
	desc := stripSeparator(rest)

	switch kind {
	case model.KindReturns:
		doc.AddTag(&model.ReturnsTag{Raw: block.Name, TypeExpr: typeExpr, Description: desc})
	case model.KindThrows:
		doc.AddTag(&model.ThrowsTag{Raw: block.Name, TypeExpr: typeExpr, Description: desc})
	case model.KindType:
		doc.AddTag(&model.TypeTag{Raw: block.Name, TypeExpr: typeExpr, Description: desc})
	}
	return nil
}

// parseNamed handles param and property tags: optional {type}, then a name
// token which may be wrapped in brackets with a default value, then a
// description after an optional - or : separator.
func (p *Parser) parseNamed(doc *model.Document, block Block, kind model.TagKind) error {
	typeExpr, rest, err := p.extractType(block)
	if err != nil {
		return err
	}

	token, remainder := takeNameToken(rest)
	name, defaultValue, optional := unwrapName(token)
	if !isValidName(name) {
		return &MissingNameError{Tag: block.Name, Index: block.Index}
	}
	desc := stripSeparator(remainder)

	if kind == model.KindProperty {
		doc.AddTag(&model.PropertyTag{
			Raw:         block.Name,
			TypeExpr:    typeExpr,
			Name:        name,
			Description: desc,
			Optional:    optional,
			Default:     defaultValue,
		})
		return nil
	}

	param := &model.ParamTag{
		Raw:         block.Name,
		TypeExpr:    typeExpr,
		Name:        name,
		Description: desc,
		Optional:    optional,
		Default:     defaultValue,
	}

	// A dotted name like options.retries is a sub-parameter: it attaches to
	// the parent param's Properties instead of the top-level tag list. One
	// level only; deeper dots stay in the property name.
	if parent, child, nested := strings.Cut(name, "."); nested && child != "" {
		parentParam := doc.FindParam(parent)
		if parentParam == nil {
			// Child documented before (or without) its parent: synthesize
			// the parent as a plain Object param.
			parentParam = &model.ParamTag{Raw: block.Name, TypeExpr: "Object", Name: parent}
			doc.AddTag(parentParam)
		}
		param.Name = child
		parentParam.Properties = append(parentParam.Properties, param)
		return nil
	}

	doc.AddTag(param)
	return nil
}

// extractType pulls an optional leading {type} off the block body. The body
// is joined per options first so a type spanning source lines is handled.
// Nested braces are matched by counting, and the outer braces are stripped.
// Empty braces count as no type at all.
func (p *Parser) extractType(block Block) (typeExpr, rest string, err error) {
	body := p.joinBody(block.Body)
	if !strings.HasPrefix(body, "{") {
		return "", body, nil
	}
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return body[1:i], strings.TrimSpace(body[i+1:]), nil
			}
		}
	}
	return "", "", &UnbalancedBraceError{Tag: block.Name, Index: block.Index}
}

// joinBody flattens a multi-line tag body into one string. By default
// interior newlines collapse to single spaces with blank lines dropped;
// with PreserveLineBreaks each line is trimmed and kept on its own line.
func (p *Parser) joinBody(body string) string {
	lines := strings.Split(body, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	if p.opts.PreserveLineBreaks {
		return strings.Join(kept, "\n")
	}
	return strings.Join(kept, " ")
}

// takeNameToken extracts the name token from the front of a tag body. A
// token starting with [ runs to its matching ] (bracket-counted, so
// defaults may contain spaces or brackets); otherwise it runs to the first
// whitespace.
func takeNameToken(s string) (token, remainder string) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", ""
	}
	if s[0] == '[' {
		depth := 0
		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					return s[:i+1], strings.TrimLeft(s[i+1:], " \t")
				}
			}
		}
		// Unterminated bracket: treat the rest as the token and let name
		// validation reject it.
		return s, ""
	}
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimLeft(s[i:], " \t")
	}
	return s, ""
}

// unwrapName splits a [name=default] token into its parts. The split is on
// the first = only, so default values may themselves contain =.
func unwrapName(token string) (name, defaultValue string, optional bool) {
	if len(token) >= 2 && token[0] == '[' && token[len(token)-1] == ']' {
		inner := token[1 : len(token)-1]
		name, defaultValue, _ = strings.Cut(inner, "=")
		return name, defaultValue, true
	}
	return token, "", false
}

// isValidName reports whether a param/property name is parseable: a
// letter, _ or $ followed by word characters, $ or dots.
func isValidName(name string) bool {
	if name == "" {
		return false
	}
	if !isAlpha(name[0]) && name[0] != '_' && name[0] != '$' {
		return false
	}
	for i := 1; i < len(name); i++ {
		b := name[i]
		if !isAlpha(b) && !isDigit(b) && b != '_' && b != '$' && b != '.' {
			return false
		}
	}
	return true
}

// stripSeparator removes the conventional - or : separator between a tag's
// name/type clause and its description.
func stripSeparator(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, ":") {
		return strings.TrimSpace(s[1:])
	}
	return s
}
