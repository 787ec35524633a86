package openapi

// PathItem describes the operations available on a single path. A Postman
// request item contributes one operation, keyed by its lowercased HTTP
// method; two request items that normalize to the same (path, method) pair
// share one PathItem and one Operation, into which the later item's example
// responses are merged.
type PathItem struct {
	Summary     string `json:"-" yaml:"-"`
	Description string `json:"-" yaml:"-"`

	// Parameters are shared across every operation on this path item. The
	// transpiler does not currently promote per-operation parameters up to
	// this level (every Parameter lives on its Operation instead), but the
	// field exists because the OpenAPI object allows it and a hand-built
	// Document may want it.
	Parameters []*Parameter `json:"-" yaml:"-"`

	// Operations holds the method -> Operation entries in first-insertion
	// order: "get", "post", "put", "delete", "patch", "head", "options",
	// "trace".
	Operations *OrderedMap[*Operation]
}

// MarshalJSON flattens Operations into the same JSON object as the fixed
// PathItem fields, since per the OpenAPI spec each HTTP method is a sibling
// key of "summary"/"description"/"parameters", not nested under a
// sub-object.
func (p PathItem) MarshalJSON() ([]byte, error) {
	return p.orderedFields().MarshalJSON()
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (p PathItem) MarshalYAML() (interface{}, error) {
	return p.orderedFields().MarshalYAML()
}

func (p PathItem) orderedFields() orderedFields {
	var of orderedFields
	if p.Summary != "" {
		of.add("summary", p.Summary)
	}
	if p.Description != "" {
		of.add("description", p.Description)
	}
	if len(p.Parameters) > 0 {
		of.add("parameters", p.Parameters)
	}
	if p.Operations != nil {
		for _, method := range p.Operations.Keys() {
			op, _ := p.Operations.Get(method)
			of.add(method, op)
		}
	}
	return of
}

// Methods allowed on a PathItem, used as keys into Operations.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)
