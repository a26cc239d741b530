package model

// TagKind represents the kind of a parsed tag
type TagKind int

const (
	KindGeneric TagKind = iota
	KindParam
	KindProperty
	KindReturns
	KindThrows
	KindType
	KindExample
	KindDeprecated
)

// String returns the canonical tag word for the kind (without the @).
func (k TagKind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindProperty:
		return "property"
	case KindReturns:
		return "returns"
	case KindThrows:
		return "throws"
	case KindType:
		return "type"
	case KindExample:
		return "example"
	case KindDeprecated:
		return "deprecated"
	default:
		return "generic"
	}
}

// Tag is the interface for all tag variants
type Tag interface {
	Kind() TagKind
	// RawKind returns the tag word as it appeared in the source (e.g. "arg"
	// for a @param alias), or the canonical word when constructed fresh.
	RawKind() string
	GetDescription() string
}

// TypedTag is an interface for tags that may carry a {type} expression
type TypedTag interface {
	Tag
	GetTypeExpr() string
}

// ParamTag represents an @param tag (or its @arg/@argument aliases)
type ParamTag struct {
	Raw         string // literal tag word from source; "" means canonical
	TypeExpr    string // type expression without braces; "" means absent
	Name        string
	Description string
	Optional    bool
	Default     string // "" means no default; non-empty implies optional
	// Properties holds dotted sub-parameters (e.g. options.retries is
	// stored under the options param with Name "retries").
	Properties []*ParamTag
}

func (p *ParamTag) Kind() TagKind          { return KindParam }
func (p *ParamTag) RawKind() string        { return rawOr(p.Raw, KindParam) }
func (p *ParamTag) GetDescription() string { return p.Description }
func (p *ParamTag) GetTypeExpr() string    { return p.TypeExpr }

// FindProperty returns the sub-parameter with the given name, or nil.
func (p *ParamTag) FindProperty(name string) *ParamTag {
	for _, prop := range p.Properties {
		if prop.Name == name {
			return prop
		}
	}
	return nil
}

// PropertyTag represents a @property tag (or its @prop alias).
// It follows the same grammar as @param.
type PropertyTag struct {
	Raw         string
	TypeExpr    string
	Name        string
	Description string
	Optional    bool
	Default     string
}

func (p *PropertyTag) Kind() TagKind          { return KindProperty }
func (p *PropertyTag) RawKind() string        { return rawOr(p.Raw, KindProperty) }
func (p *PropertyTag) GetDescription() string { return p.Description }
func (p *PropertyTag) GetTypeExpr() string    { return p.TypeExpr }

// ReturnsTag represents a @returns tag (or its @return alias)
type ReturnsTag struct {
	Raw         string
	TypeExpr    string
	Description string
}

func (r *ReturnsTag) Kind() TagKind          { return KindReturns }
func (r *ReturnsTag) RawKind() string        { return rawOr(r.Raw, KindReturns) }
func (r *ReturnsTag) GetDescription() string { return r.Description }
func (r *ReturnsTag) GetTypeExpr() string    { return r.TypeExpr }

// ThrowsTag represents a @throws tag (or its @exception alias)
type ThrowsTag struct {
	Raw         string
	TypeExpr    string
	Description string
}

func (t *ThrowsTag) Kind() TagKind          { return KindThrows }
func (t *ThrowsTag) RawKind() string        { return rawOr(t.Raw, KindThrows) }
func (t *ThrowsTag) GetDescription() string { return t.Description }
func (t *ThrowsTag) GetTypeExpr() string    { return t.TypeExpr }

// TypeTag represents a @type tag
type TypeTag struct {
	Raw         string
	TypeExpr    string
	Description string
}

func (t *TypeTag) Kind() TagKind          { return KindType }
func (t *TypeTag) RawKind() string        { return rawOr(t.Raw, KindType) }
func (t *TypeTag) GetDescription() string { return t.Description }
func (t *TypeTag) GetTypeExpr() string    { return t.TypeExpr }

// ExampleTag represents an @example tag. Text keeps its source line breaks.
type ExampleTag struct {
	Raw  string
	Text string
}

func (e *ExampleTag) Kind() TagKind          { return KindExample }
func (e *ExampleTag) RawKind() string        { return rawOr(e.Raw, KindExample) }
func (e *ExampleTag) GetDescription() string { return e.Text }

// DeprecatedTag represents a @deprecated tag
type DeprecatedTag struct {
	Raw         string
	Description string
}

func (d *DeprecatedTag) Kind() TagKind          { return KindDeprecated }
func (d *DeprecatedTag) RawKind() string        { return rawOr(d.Raw, KindDeprecated) }
func (d *DeprecatedTag) GetDescription() string { return d.Description }

// GenericTag represents any tag outside the supported set. The body is the
// raw tag text, kept verbatim so unknown tags round-trip without loss.
type GenericTag struct {
	Raw  string
	Body string
}

func (g *GenericTag) Kind() TagKind          { return KindGeneric }
func (g *GenericTag) RawKind() string        { return g.Raw }
func (g *GenericTag) GetDescription() string { return g.Body }

func rawOr(raw string, kind TagKind) string {
	if raw != "" {
		return raw
	}
	return kind.String()
}
