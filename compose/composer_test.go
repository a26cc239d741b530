package compose

import (
	"strings"
	"testing"

	"github.com/Penify-dev/jsdoc-parser/model"
)

// TestComposeEmpty tests degenerate documents
func TestComposeEmpty(t *testing.T) {
	if got := Compose(model.NewDocument()); got != "/**\n */" {
		t.Errorf("unexpected output for empty document: %q", got)
	}
	if got := Compose(nil); got != "/**\n */" {
		t.Errorf("unexpected output for nil document: %q", got)
	}
}

// TestComposeDescriptionOnly tests plain description rendering
func TestComposeDescriptionOnly(t *testing.T) {
	doc := model.NewDocument()
	doc.Description = "First line\nSecond line"
	want := "/**\n * First line\n * Second line\n */"
	if got := Compose(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestComposeBlankSeparator tests the blank line between description and
// the first tag
func TestComposeBlankSeparator(t *testing.T) {
	doc := model.NewDocument()
	doc.Description = "Adds numbers"
	doc.AddTag(&model.ParamTag{Name: "a", TypeExpr: "number", Description: "First"})
	want := "/**\n * Adds numbers\n *\n * @param {number} a - First\n */"
	if got := Compose(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestComposeTagLines tests per-tag rendering
func TestComposeTagLines(t *testing.T) {
	tests := []struct {
		name string
		tag  model.Tag
		want string
	}{
		{"param full", &model.ParamTag{TypeExpr: "number", Name: "a", Description: "First"}, " * @param {number} a - First"},
		{"param no type", &model.ParamTag{Name: "a", Description: "First"}, " * @param a - First"},
		{"param no description", &model.ParamTag{TypeExpr: "number", Name: "a"}, " * @param {number} a"},
		{"param optional", &model.ParamTag{TypeExpr: "string", Name: "s", Optional: true, Description: "d"}, " * @param {string} [s] - d"},
		{"param default", &model.ParamTag{TypeExpr: "number", Name: "x", Optional: true, Default: "5", Description: "d"}, " * @param {number} [x=5] - d"},
		{"default implies optional", &model.ParamTag{TypeExpr: "number", Name: "x", Default: "5"}, " * @param {number} [x=5]"},
		{"param alias raw", &model.ParamTag{Raw: "arg", Name: "a", Description: "d"}, " * @arg a - d"},
		{"nested braces verbatim", &model.ParamTag{TypeExpr: "Array<{a: number, b: string}>", Name: "rows"}, " * @param {Array<{a: number, b: string}>} rows"},
		{"property", &model.PropertyTag{TypeExpr: "string", Name: "title", Description: "d"}, " * @property {string} title - d"},
		{"returns no dash", &model.ReturnsTag{TypeExpr: "number", Description: "The sum"}, " * @returns {number} The sum"},
		{"returns no type", &model.ReturnsTag{Description: "The sum"}, " * @returns The sum"},
		{"throws", &model.ThrowsTag{TypeExpr: "TypeError", Description: "bad input"}, " * @throws {TypeError} bad input"},
		{"type tag", &model.TypeTag{TypeExpr: "Array<number>"}, " * @type {Array<number>}"},
		{"deprecated bare", &model.DeprecatedTag{}, " * @deprecated"},
		{"deprecated with text", &model.DeprecatedTag{Description: "use add2"}, " * @deprecated use add2"},
		{"generic", &model.GenericTag{Raw: "since", Body: "v1.0.0"}, " * @since v1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.NewDocument()
			doc.AddTag(tt.tag)
			got := Compose(doc)
			want := "/**\n" + tt.want + "\n */"
			if got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})
	}
}

// TestComposeNestedProperties tests dotted rendering of sub-parameters
func TestComposeNestedProperties(t *testing.T) {
	doc := model.NewDocument()
	doc.AddTag(&model.ParamTag{
		TypeExpr:    "Object",
		Name:        "options",
		Description: "Options object",
		Properties: []*model.ParamTag{
			{TypeExpr: "string", Name: "name", Description: "The name"},
			{TypeExpr: "number", Name: "age", Optional: true, Default: "30", Description: "The age"},
		},
	})
	got := Compose(doc)
	want := strings.Join([]string{
		"/**",
		" * @param {Object} options - Options object",
		" * @param {string} options.name - The name",
		" * @param {number} [options.age=30] - The age",
		" */",
	}, "\n")
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

// TestComposeExample tests that example bodies render on their own lines
func TestComposeExample(t *testing.T) {
	doc := model.NewDocument()
	doc.AddTag(&model.ExampleTag{Text: "const x = add(1, 2);\nconsole.log(x);"})
	got := Compose(doc)
	want := strings.Join([]string{
		"/**",
		" * @example",
		" * const x = add(1, 2);",
		" * console.log(x);",
		" */",
	}, "\n")
	if got != want {
		t.Errorf("expected:\n%s\ngot:\n%s", want, got)
	}
}

// TestComposeMultilineGeneric tests verbatim multi-line generic bodies
func TestComposeMultilineGeneric(t *testing.T) {
	doc := model.NewDocument()
	doc.AddTag(&model.GenericTag{Raw: "todo", Body: "first line\nsecond line"})
	got := Compose(doc)
	want := "/**\n * @todo first line\n * second line\n */"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestComposeCustomIndent tests the indent option and closer alignment
func TestComposeCustomIndent(t *testing.T) {
	doc := model.NewDocument()
	doc.Description = "text"
	opts := Options{Indent: "   * "}
	want := "/**\n   * text\n   */"
	if got := ComposeWithOptions(doc, opts); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestComposeEmptyIndentDefaults tests that a zero Options value behaves
// like the defaults
func TestComposeEmptyIndentDefaults(t *testing.T) {
	doc := model.NewDocument()
	doc.Description = "text"
	if got, want := ComposeWithOptions(doc, Options{}), Compose(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestComposeWrapColumn tests description wrapping
func TestComposeWrapColumn(t *testing.T) {
	doc := model.NewDocument()
	doc.AddTag(&model.ParamTag{
		TypeExpr:    "number",
		Name:        "a",
		Description: "a rather long description that will certainly not fit on a single rendered line at this width",
	})
	got := ComposeWithOptions(doc, Options{WrapColumn: 40})

	lines := strings.Split(got, "\n")
	if len(lines) <= 3 {
		t.Fatalf("expected wrapped continuation lines, got %q", got)
	}
	for _, line := range lines {
		if len(line) > 40 {
			t.Errorf("line exceeds wrap column: %q", line)
		}
	}
	// The text must survive wrapping intact.
	joined := strings.Join(lines, " ")
	for _, word := range strings.Fields(doc.Params()[0].Description) {
		if !strings.Contains(joined, word) {
			t.Errorf("word %q lost in wrapping", word)
		}
	}
}

// TestComposeWrapOffPreservesLineBreaks tests the default no-wrap policy
func TestComposeWrapOffPreservesLineBreaks(t *testing.T) {
	doc := model.NewDocument()
	doc.AddTag(&model.ParamTag{Name: "s", Description: "first line\nsecond line"})
	got := Compose(doc)
	want := "/**\n * @param s - first line\n * second line\n */"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
