package postman2openapi

import "fmt"

// Error kinds, per spec.md §6/§7.
const (
	// KindParse means the input could not be decoded: it was not valid JSON,
	// or a field other than the top-level info/item had the wrong JSON type.
	KindParse = "parse"

	// KindSchemaMismatch means the top-level info or item field was present
	// but of the wrong JSON shape.
	KindSchemaMismatch = "schema-mismatch"

	// KindSerialize means the host serializer (YAML or JSON encoding of the
	// output document) failed.
	KindSerialize = "serialize"
)

// Error is the error type returned by TranspileBytes/TranspileBytesWithOptions
// and by EncodeJSON/EncodeYAML. Kind distinguishes the three caller-visible failure
// modes described in spec.md §7; every other anomaly this module
// encounters is a per-request recovery (see transpile.Diagnostics), not an
// Error.
type Error struct {
	Kind    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("postman2openapi: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("postman2openapi: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
