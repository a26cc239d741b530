// Package compose renders a [model.Document] back into canonical JSDoc
// block comment text. It is the structural inverse of parsing: formatting
// is normalized (consistent indentation, leading asterisks, optional column
// wrapping), but every field of the document round-trips.
package compose

import (
	"strings"

	"github.com/Penify-dev/jsdoc-parser/model"
	"github.com/mitchellh/go-wordwrap"
)

// DefaultIndent is the leading marker used for interior comment lines.
const DefaultIndent = " * "

// Options holds configuration for composing.
type Options struct {
	// WrapColumn wraps tag descriptions so rendered lines stay within the
	// given column. 0 disables wrapping: text is emitted as given, with
	// caller-supplied line breaks preserved.
	WrapColumn int

	// Indent is the leading marker for interior lines. Empty means
	// DefaultIndent.
	Indent string
}

// DefaultOptions returns the default composing options.
func DefaultOptions() Options {
	return Options{
		WrapColumn: 0,
		Indent:     DefaultIndent,
	}
}

// Compose renders a document as canonical comment text using default
// options. It never fails for any document value.
func Compose(doc *model.Document) string {
	return ComposeWithOptions(doc, DefaultOptions())
}

// ComposeWithOptions renders a document with custom options.
func ComposeWithOptions(doc *model.Document, opts Options) string {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	c := &composer{opts: opts}
	return c.compose(doc)
}

type composer struct {
	sb   strings.Builder
	opts Options
}

func (c *composer) compose(doc *model.Document) string {
	c.sb.WriteString("/**\n")
	if doc != nil {
		hasDesc := doc.Description != ""
		if hasDesc {
			for _, line := range strings.Split(doc.Description, "\n") {
				c.line(line)
			}
		}
		if hasDesc && len(doc.Tags) > 0 {
			c.line("")
		}
		for _, tag := range doc.Tags {
			c.tag(tag)
		}
	}
	c.sb.WriteString(c.closer())
	return c.sb.String()
}

// line writes one interior line with the leading marker. Trailing
// whitespace is trimmed so blank lines render as a bare asterisk.
func (c *composer) line(s string) {
	c.sb.WriteString(strings.TrimRight(c.opts.Indent+s, " \t"))
	c.sb.WriteByte('\n')
}

// closer derives the closing delimiter line from the indent so that */
// aligns under the interior asterisks.
func (c *composer) closer() string {
	if i := strings.IndexByte(c.opts.Indent, '*'); i >= 0 {
		return c.opts.Indent[:i] + "*/"
	}
	return "*/"
}

func (c *composer) tag(t model.Tag) {
	switch tag := t.(type) {
	case *model.ParamTag:
		c.named(tag.RawKind(), tag.TypeExpr, nameClause(tag.Name, tag.Default, tag.Optional), tag.Description)
		for _, prop := range tag.Properties {
			dotted := tag.Name + "." + prop.Name
			c.named(prop.RawKind(), prop.TypeExpr, nameClause(dotted, prop.Default, prop.Optional), prop.Description)
		}
	case *model.PropertyTag:
		c.named(tag.RawKind(), tag.TypeExpr, nameClause(tag.Name, tag.Default, tag.Optional), tag.Description)
	case *model.ReturnsTag:
		c.typed(tag.RawKind(), tag.TypeExpr, tag.Description)
	case *model.ThrowsTag:
		c.typed(tag.RawKind(), tag.TypeExpr, tag.Description)
	case *model.TypeTag:
		c.typed(tag.RawKind(), tag.TypeExpr, tag.Description)
	case *model.ExampleTag:
		// Example bodies go on the lines after the tag, verbatim and never
		// wrapped.
		c.line("@" + tag.RawKind())
		if tag.Text != "" {
			for _, ln := range strings.Split(tag.Text, "\n") {
				c.line(ln)
			}
		}
	case *model.DeprecatedTag:
		c.tagLine("@"+tag.RawKind(), tag.Description, false)
	case *model.GenericTag:
		c.tagLine("@"+tag.RawKind(), tag.Body, false)
	default:
		// Caller-defined Tag implementation: render the common fields.
		c.tagLine("@"+t.RawKind(), t.GetDescription(), false)
	}
}

// named renders a tag that carries a name clause (param, property):
// @<raw> {<type>} <name-clause> - <description>.
func (c *composer) named(raw, typeExpr, clause, desc string) {
	head := "@" + raw
	if typeExpr != "" {
		head += " {" + typeExpr + "}"
	}
	head += " " + clause
	c.tagLine(head, desc, true)
}

// typed renders a tag with only a type and description (returns, throws,
// type): @<raw> {<type>} <description>. Braces are omitted entirely when
// there is no type expression.
func (c *composer) typed(raw, typeExpr, desc string) {
	head := "@" + raw
	if typeExpr != "" {
		head += " {" + typeExpr + "}"
	}
	c.tagLine(head, desc, false)
}

// tagLine writes the tag header with its description, honoring embedded
// line breaks and the wrap column. With dash set, the description is
// joined to the header with the conventional " - " separator.
func (c *composer) tagLine(head, desc string, dash bool) {
	if desc == "" {
		c.line(head)
		return
	}
	sep := " "
	if dash {
		sep = " - "
	}
	lines := strings.Split(desc, "\n")
	rendered := append([]string{head + sep + lines[0]}, lines[1:]...)

	if c.opts.WrapColumn > 0 {
		width := c.wrapWidth()
		var wrapped []string
		for _, ln := range rendered {
			wrapped = append(wrapped, strings.Split(wordwrap.WrapString(ln, width), "\n")...)
		}
		rendered = wrapped
	}
	for _, ln := range rendered {
		c.line(ln)
	}
}

// wrapWidth converts the wrap column into a text width, accounting for the
// indent and clamped so pathological columns still emit usable lines.
func (c *composer) wrapWidth() uint {
	width := c.opts.WrapColumn - len(c.opts.Indent)
	if width < 16 {
		width = 16
	}
	return uint(width)
}

// nameClause reconstructs the name token: [name=default] or [name] for
// optional parameters, the bare name otherwise. A present default always
// renders the bracketed form, even if the optional flag was left unset.
func nameClause(name, defaultValue string, optional bool) string {
	if defaultValue != "" {
		return "[" + name + "=" + defaultValue + "]"
	}
	if optional {
		return "[" + name + "]"
	}
	return name
}
