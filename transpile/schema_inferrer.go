package transpile

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/oastools/postman2openapi/openapi"
	"github.com/oastools/postman2openapi/postman"
)

// InferSchema derives an OpenAPI schema from a textual example payload,
// per spec.md §4.2. languageHint is a Postman raw-body preview language
// ("json", "xml", "text", "html", "javascript") or "" when unknown; it is
// consulted only to decide whether the payload should be treated as JSON —
// an explicit non-JSON hint always wins, and the empty hint falls back to
// sniffing whether raw happens to be valid JSON.
//
// InferSchema is pure: the same (raw, languageHint) pair always yields an
// equal *openapi.Schema tree.
func InferSchema(raw, languageHint string) *openapi.Schema {
	hint := strings.ToLower(languageHint)
	if raw != "" && (hint == "json" || hint == "") && json.Valid([]byte(raw)) {
		parsed := gjson.ParseBytes([]byte(raw))
		schema := inferJSON(parsed)
		if schema.Example == nil {
			schema.Example = parsed.Value()
		}
		return schema
	}
	return &openapi.Schema{Type: openapi.TypeString, Example: raw}
}

// inferJSON recursively maps a gjson.Result to a schema. Object key order is
// read directly off the source bytes via gjson.Result.ForEach, which visits
// keys in document order — unlike encoding/json's map[string]interface{},
// which would scramble it.
func inferJSON(r gjson.Result) *openapi.Schema {
	switch r.Type {
	case gjson.Null:
		return &openapi.Schema{Nullable: true}
	case gjson.True, gjson.False:
		return &openapi.Schema{Type: openapi.TypeBoolean}
	case gjson.Number:
		if isIntegerLiteral(r.Raw) {
			return &openapi.Schema{Type: openapi.TypeInteger}
		}
		return &openapi.Schema{Type: openapi.TypeNumber}
	case gjson.String:
		return &openapi.Schema{Type: openapi.TypeString}
	case gjson.JSON:
		if r.IsArray() {
			return inferArray(r)
		}
		return inferObject(r)
	default:
		return &openapi.Schema{Type: openapi.TypeString}
	}
}

func inferArray(r gjson.Result) *openapi.Schema {
	items := r.Array()
	itemSchema := &openapi.Schema{}
	if len(items) > 0 {
		itemSchema = inferJSON(items[0])
	}
	return &openapi.Schema{
		Type:    openapi.TypeArray,
		Items:   itemSchema,
		Example: r.Value(),
	}
}

func inferObject(r gjson.Result) *openapi.Schema {
	props := openapi.NewPropertyMap()
	r.ForEach(func(key, value gjson.Result) bool {
		props.Set(key.String(), inferJSON(value))
		return true
	})
	return &openapi.Schema{
		Type:       openapi.TypeObject,
		Properties: props,
		Example:    r.Value(),
	}
}

func isIntegerLiteral(raw string) bool {
	return !strings.ContainsAny(raw, ".eE")
}

// InferFormSchema builds the object schema for a urlencoded or formdata body
// (spec.md §4.2): one string property per non-disabled field, in source
// order. formdata entries of type "file" become {type: string, format:
// binary} instead.
func InferFormSchema(fields []postman.FormParameter) *openapi.Schema {
	props := openapi.NewPropertyMap()
	for _, f := range fields {
		if f.Disabled {
			continue
		}
		if f.Type == "file" {
			props.Set(f.Key, &openapi.Schema{Type: openapi.TypeString, Format: "binary"})
			continue
		}
		props.Set(f.Key, &openapi.Schema{Type: openapi.TypeString})
	}
	falseVal := false
	return &openapi.Schema{
		Type:                 openapi.TypeObject,
		Properties:           props,
		AdditionalProperties: &falseVal,
	}
}

// InferGraphQLSchema builds the fixed {query, variables} schema for a
// graphql body (spec.md §4.2), carrying the literal query string as the
// query property's example.
func InferGraphQLSchema(body *postman.GraphQLBody) *openapi.Schema {
	props := openapi.NewPropertyMap()
	querySchema := &openapi.Schema{Type: openapi.TypeString}
	if body != nil && body.Query != "" {
		querySchema.Example = body.Query
	}
	props.Set("query", querySchema)
	props.Set("variables", &openapi.Schema{Type: openapi.TypeObject})
	return &openapi.Schema{Type: openapi.TypeObject, Properties: props}
}
