// Package openapi is a structural representation of an OpenAPI 3.0.3
// document: Info, Servers, Paths, Components, and the operation graph
// beneath them.
//
// The types here are a synthesis target, not a general-purpose OpenAPI
// toolkit: there is no $ref resolution, no JSON Schema validation, and no
// decoding of existing OpenAPI documents. A transpiler populates a Document
// field by field and the result is marshaled straight to JSON or YAML.
//
// Several OpenAPI objects (paths, components.schemas, responses, media-type
// content, …) are maps whose key order is meaningful to a human reading the
// output even though OpenAPI itself treats them as unordered. Those fields
// use OrderedMap so first-insertion order survives marshaling; see
// ordered_map.go.
package openapi
