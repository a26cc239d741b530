package model

// Document represents a complete parsed doc comment: a description followed
// by an ordered list of tags
type Document struct {
	Description string
	Tags        []Tag
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Tags: make([]Tag, 0),
	}
}

// AddTag appends a tag, preserving encounter order
func (d *Document) AddTag(tag Tag) {
	d.Tags = append(d.Tags, tag)
}

// InsertTag inserts a tag at the given index. Out-of-range indexes clamp to
// the nearest end.
func (d *Document) InsertTag(index int, tag Tag) {
	if index < 0 {
		index = 0
	}
	if index > len(d.Tags) {
		index = len(d.Tags)
	}
	d.Tags = append(d.Tags[:index], append([]Tag{tag}, d.Tags[index:]...)...)
}

// RemoveTag removes the tag at the given index and returns it.
// Returns nil if the index is out of range.
func (d *Document) RemoveTag(index int) Tag {
	if index < 0 || index >= len(d.Tags) {
		return nil
	}
	tag := d.Tags[index]
	d.Tags = append(d.Tags[:index], d.Tags[index+1:]...)
	return tag
}

// TagCount returns the total number of tags
func (d *Document) TagCount() int {
	return len(d.Tags)
}

// IsEmpty returns true if the document has no description and no tags
func (d *Document) IsEmpty() bool {
	return d.Description == "" && len(d.Tags) == 0
}

// Params returns all parameter tags in source order
func (d *Document) Params() []*ParamTag {
	var params []*ParamTag
	for _, tag := range d.Tags {
		if p, ok := tag.(*ParamTag); ok {
			params = append(params, p)
		}
	}
	return params
}

// FindParam returns the parameter with the given name, or nil
func (d *Document) FindParam(name string) *ParamTag {
	for _, p := range d.Params() {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Properties returns all property tags in source order
func (d *Document) Properties() []*PropertyTag {
	var props []*PropertyTag
	for _, tag := range d.Tags {
		if p, ok := tag.(*PropertyTag); ok {
			props = append(props, p)
		}
	}
	return props
}

// Returns returns the first returns tag, or nil if there is none
func (d *Document) Returns() *ReturnsTag {
	for _, tag := range d.Tags {
		if r, ok := tag.(*ReturnsTag); ok {
			return r
		}
	}
	return nil
}

// Throws returns all throws tags in source order
func (d *Document) Throws() []*ThrowsTag {
	var throws []*ThrowsTag
	for _, tag := range d.Tags {
		if t, ok := tag.(*ThrowsTag); ok {
			throws = append(throws, t)
		}
	}
	return throws
}

// Examples returns the text of all example tags in source order
func (d *Document) Examples() []string {
	var examples []string
	for _, tag := range d.Tags {
		if e, ok := tag.(*ExampleTag); ok {
			examples = append(examples, e.Text)
		}
	}
	return examples
}

// GenericTags returns all generic tags with the given raw name.
// Matching is exact (the raw word as written in source).
func (d *Document) GenericTags(name string) []*GenericTag {
	var tags []*GenericTag
	for _, tag := range d.Tags {
		if g, ok := tag.(*GenericTag); ok && g.Raw == name {
			tags = append(tags, g)
		}
	}
	return tags
}
