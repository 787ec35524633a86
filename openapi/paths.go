package openapi

// Paths holds the relative paths to the individual endpoints and their
// operations, keyed by template path ("/users/{id}") in first-appearance
// order.
type Paths struct {
	*OrderedMap[*PathItem]
}

// NewPaths returns an empty Paths.
func NewPaths() *Paths {
	return &Paths{OrderedMap: NewOrderedMap[*PathItem]()}
}

// MarshalJSON delegates to the embedded OrderedMap so Paths itself marshals
// as a bare JSON object rather than one with an extra layer of nesting.
func (p Paths) MarshalJSON() ([]byte, error) {
	if p.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return p.OrderedMap.MarshalJSON()
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (p Paths) MarshalYAML() (interface{}, error) {
	if p.OrderedMap == nil {
		return NewOrderedMap[*PathItem]().MarshalYAML()
	}
	return p.OrderedMap.MarshalYAML()
}

// GetOrCreate returns the PathItem at templatePath, creating and
// registering an empty one in insertion order if this is the first request
// that maps to templatePath.
func (p *Paths) GetOrCreate(templatePath string) *PathItem {
	if item, ok := p.Get(templatePath); ok {
		return item
	}
	item := &PathItem{Operations: NewOrderedMap[*Operation]()}
	p.Set(templatePath, item)
	return item
}
