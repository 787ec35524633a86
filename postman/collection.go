package postman

import "encoding/json"

// Collection is the root of a Postman Collection v2.1.0 document
// (https://schema.getpostman.com/json/collection/v2.1.0/collection.json).
//
// Decode never fails for a structurally-present-but-quirky collection: the
// transpiler substitutes defaults for a missing Info.Name or an absent
// Item (spec.md §4.3 "Failure semantics"). What Parse does reject is input
// that is not valid JSON at all, or in which a field decodes to the wrong
// JSON type — for example top-level "info"/"item" fields that are present
// but of the wrong shape (spec.md §6, kind "schema-mismatch" is raised one
// layer up, by the caller inspecting the decode error).
type Collection struct {
	Info     Info       `json:"info"`
	Item     []Item     `json:"item"`
	Variable []Variable `json:"variable,omitempty"`
	Auth     *Auth      `json:"auth,omitempty"`
}

// Info carries collection-level metadata.
type Info struct {
	Name        string `json:"name"`
	Description Text   `json:"description,omitempty"`
	Version     string `json:"version,omitempty"`
	Schema      string `json:"schema,omitempty"`
}

// Variable is a collection- or folder-scoped {{name}} substitution.
type Variable struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Description Text   `json:"description,omitempty"`
}

// Parse decodes raw JSON into a Collection. It fails on malformed JSON and
// on a field whose JSON type does not fit the model. The string-or-object
// fields (Text, URL) accept either shape, and everything else about a
// loosely structured collection is left to the transpiler's per-request
// recovery.
func Parse(data []byte) (*Collection, error) {
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
