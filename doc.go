// Package postman2openapi transpiles a Postman Collection (schema v2.1.0)
// into an OpenAPI 3.0.3 document.
//
// Transpile and TranspileBytes (and their ...WithOptions variants) are the
// library's entry points; JSON parsing of the input and YAML/JSON
// serialization of the output are kept here as thin wrappers (postman.Parse,
// EncodeYAML/EncodeJSON over Document.EncodeYAML/EncodeJSON) —
// the transpile package itself never touches bytes, only the decoded
// postman.Collection and openapi.Document trees.
package postman2openapi
