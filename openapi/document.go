package openapi

// Document is the root OpenAPI 3.0.3 object produced by the transpiler.
//
// Field order here is the order the fields are emitted in, for both JSON and
// YAML: encoding/json and yaml.v3 both marshal struct fields in declaration
// order, so no custom marshaling is needed for Document itself — only for
// the map-shaped fields beneath it (Paths, Components.Schemas, …) where Go's
// map type would otherwise scramble the order.
type Document struct {
	// OpenAPI is the version of the OpenAPI Specification the document
	// uses. Always "3.0.3" for documents produced by this transpiler.
	OpenAPI string `json:"openapi" yaml:"openapi"`

	Info *Info `json:"info" yaml:"info"`

	// Servers lists connectivity information for target hosts. Unlike a
	// hand-authored OpenAPI document, an absent or empty Servers is never
	// backfilled with a bare "/" server.
	Servers []*Server `json:"servers,omitempty" yaml:"servers,omitempty"`

	Paths *Paths `json:"paths" yaml:"paths"`

	Components *Components `json:"components,omitempty" yaml:"components,omitempty"`

	Tags []*Tag `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	// Title of the API.
	Title string `json:"title" yaml:"title"`

	// Description of the API. CommonMark syntax MAY be used for rich text
	// representation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version of the document, distinct from the OpenAPI Specification
	// version.
	Version string `json:"version" yaml:"version"`
}

// Contact information for the exposed API. Unused by the transpiler today —
// Postman collections carry no contact metadata — but kept on the model
// since a caller populating a Document by hand (outside the transpile path)
// may want it.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License information for the exposed API.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}
