package postman2openapi

import (
	"encoding/json"
	"errors"

	"github.com/oastools/postman2openapi/openapi"
	"github.com/oastools/postman2openapi/postman"
	"github.com/oastools/postman2openapi/transpile"
)

// Transpile converts an already-decoded Postman collection into an OpenAPI
// document, using default options.
func Transpile(c *postman.Collection) *openapi.Document {
	return transpile.New(transpile.DefaultOptions()).Transpile(c)
}

// TranspileWithOptions is Transpile with caller-supplied transpile.Options
// (defaults, logger, diagnostics sink).
func TranspileWithOptions(c *postman.Collection, opts transpile.Options) *openapi.Document {
	return transpile.New(opts).Transpile(c)
}

// TranspileBytes parses raw JSON into a Postman collection and transpiles
// it, using default options. The returned error is always an *Error: kind
// "parse" for malformed JSON, kind "schema-mismatch" when the top-level
// "info" or "item" field is present but of the wrong JSON shape.
func TranspileBytes(data []byte) (*openapi.Document, error) {
	return TranspileBytesWithOptions(data, transpile.DefaultOptions())
}

// TranspileBytesWithOptions is TranspileBytes with caller-supplied
// transpile.Options.
func TranspileBytesWithOptions(data []byte, opts transpile.Options) (*openapi.Document, error) {
	c, err := postman.Parse(data)
	if err != nil {
		return nil, classifyParseError(err)
	}
	return TranspileWithOptions(c, opts), nil
}

// classifyParseError distinguishes a genuine JSON syntax error (kind
// "parse") from a top-level info/item field that decoded to the wrong Go
// type (kind "schema-mismatch"), per spec.md §6. A missing info or item is
// not an error at all — postman.Collection simply zero-values it, and the
// engine substitutes defaults (spec.md §4.3 "Failure semantics").
func classifyParseError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && (typeErr.Field == "info" || typeErr.Field == "item") {
		return newError(KindSchemaMismatch, "top-level \""+typeErr.Field+"\" field has the wrong shape", err)
	}
	return newError(KindParse, "input could not be decoded", err)
}
