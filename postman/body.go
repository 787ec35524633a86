package postman

// Body modes a Postman request body may declare.
const (
	BodyModeRaw        = "raw"
	BodyModeURLEncoded = "urlencoded"
	BodyModeFormData   = "formdata"
	BodyModeFile       = "file"
	BodyModeGraphQL    = "graphql"
)

// Body is a request or example-response body. Only the fields matching
// Mode are populated by a well-formed Postman export, but nothing here
// enforces that — an engine reading the wrong field for Mode just sees a
// zero value.
type Body struct {
	Mode string `json:"mode"`

	Raw     string       `json:"raw,omitempty"`
	Options *BodyOptions `json:"options,omitempty"`

	URLEncoded []FormParameter `json:"urlencoded,omitempty"`
	FormData   []FormParameter `json:"formdata,omitempty"`

	GraphQL *GraphQLBody `json:"graphql,omitempty"`
	File    *FileBody    `json:"file,omitempty"`
}

// BodyOptions carries body-format hints, currently just the raw language.
type BodyOptions struct {
	Raw *RawOptions `json:"raw,omitempty"`
}

// RawOptions declares the raw body's preview language: "json", "xml",
// "text", "html", or "javascript".
type RawOptions struct {
	Language string `json:"language,omitempty"`
}

// FormParameter is one urlencoded or formdata field.
type FormParameter struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Type        string `json:"type,omitempty"` // formdata: "text" or "file"
	Description Text   `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// GraphQLBody is a graphql-mode body.
type GraphQLBody struct {
	Query     string `json:"query,omitempty"`
	Variables string `json:"variables,omitempty"`
}

// FileBody is a file-mode body.
type FileBody struct {
	Src string `json:"src,omitempty"`
}

// Language returns the raw body's preview language hint, defaulting to
// "text" when absent, matching request assembly's (§4.3.d) "text or
// unspecified -> text/plain" rule.
func (b *Body) Language() string {
	if b == nil || b.Options == nil || b.Options.Raw == nil || b.Options.Raw.Language == "" {
		return "text"
	}
	return b.Options.Raw.Language
}
