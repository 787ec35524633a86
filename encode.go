package postman2openapi

import "github.com/oastools/postman2openapi/openapi"

// EncodeJSON serializes doc as indented JSON, wrapping any encoder failure
// as an *Error of kind "serialize" (spec.md §6).
func EncodeJSON(doc *openapi.Document) ([]byte, error) {
	b, err := doc.EncodeJSON()
	if err != nil {
		return nil, newError(KindSerialize, "failed to encode document as JSON", err)
	}
	return b, nil
}

// EncodeYAML serializes doc as block-style YAML, wrapping any encoder
// failure as an *Error of kind "serialize" (spec.md §6).
func EncodeYAML(doc *openapi.Document) ([]byte, error) {
	b, err := doc.EncodeYAML()
	if err != nil {
		return nil, newError(KindSerialize, "failed to encode document as YAML", err)
	}
	return b, nil
}
