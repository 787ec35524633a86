package openapi

// Components holds reusable objects referenced from elsewhere in the
// document. The transpiler populates SecuritySchemes; Schemas exists for
// completeness (the Schema Object model) but the current synthesis always
// inlines inferred schemas rather than promoting them to named components —
// see DESIGN.md.
type Components struct {
	Schemas *SchemaMap `json:"schemas,omitempty" yaml:"schemas,omitempty"`

	SecuritySchemes *SecuritySchemeMap `json:"securitySchemes,omitempty" yaml:"securitySchemes,omitempty"`
}

// IsEmpty reports whether c has nothing to emit, so the caller can omit
// "components" entirely rather than emit "components: {}".
func (c *Components) IsEmpty() bool {
	if c == nil {
		return true
	}
	return (c.Schemas == nil || c.Schemas.Len() == 0) && (c.SecuritySchemes == nil || c.SecuritySchemes.Len() == 0)
}

// SchemaMap is a schema-name-keyed map of reusable Schema objects, in
// first-registration order.
type SchemaMap struct {
	*OrderedMap[*Schema]
}

func NewSchemaMap() *SchemaMap {
	return &SchemaMap{OrderedMap: NewOrderedMap[*Schema]()}
}

func (s SchemaMap) MarshalJSON() ([]byte, error) {
	if s.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return s.OrderedMap.MarshalJSON()
}

func (s SchemaMap) MarshalYAML() (interface{}, error) {
	if s.OrderedMap == nil {
		return NewOrderedMap[*Schema]().MarshalYAML()
	}
	return s.OrderedMap.MarshalYAML()
}

// SecuritySchemeMap is a scheme-name-keyed map, in first-registration order.
type SecuritySchemeMap struct {
	*OrderedMap[*SecurityScheme]
}

func NewSecuritySchemeMap() *SecuritySchemeMap {
	return &SecuritySchemeMap{OrderedMap: NewOrderedMap[*SecurityScheme]()}
}

func (s SecuritySchemeMap) MarshalJSON() ([]byte, error) {
	if s.OrderedMap == nil {
		return []byte("{}"), nil
	}
	return s.OrderedMap.MarshalJSON()
}

func (s SecuritySchemeMap) MarshalYAML() (interface{}, error) {
	if s.OrderedMap == nil {
		return NewOrderedMap[*SecurityScheme]().MarshalYAML()
	}
	return s.OrderedMap.MarshalYAML()
}
