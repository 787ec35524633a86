package openapi_test

import (
	"testing"

	"github.com/chanced/cmpjson"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oastools/postman2openapi/openapi"
)

func exampleDocument() *openapi.Document {
	paths := openapi.NewPaths()
	pathItem := paths.GetOrCreate("/users/{id}")
	responses := openapi.NewResponses()
	responses.Set("200", &openapi.Response{Description: "Successful response"})
	pathItem.Operations.Set(openapi.MethodGet, &openapi.Operation{
		OperationID: "get-user",
		Parameters: []*openapi.Parameter{
			{Name: "id", In: openapi.InPath, Required: true, Schema: &openapi.Schema{Type: openapi.TypeString}},
		},
		Responses: responses,
	})
	return &openapi.Document{
		OpenAPI: "3.0.3",
		Info:    &openapi.Info{Title: "API", Version: "1.0.0"},
		Paths:   paths,
	}
}

func TestDocumentEncodeJSON(t *testing.T) {
	assert := require.New(t)
	doc := exampleDocument()
	b, err := doc.EncodeJSON()
	assert.NoError(err)

	expected := []byte(`{
		"openapi": "3.0.3",
		"info": {"title": "API", "version": "1.0.0"},
		"paths": {
			"/users/{id}": {
				"get": {
					"operationId": "get-user",
					"parameters": [
						{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}
					],
					"responses": {"200": {"description": "Successful response"}}
				}
			}
		}
	}`)
	assert.True(jsonpatch.Equal(expected, b), cmpjson.Diff(expected, b))
}

func TestDocumentEncodeYAMLPreservesOrder(t *testing.T) {
	assert := require.New(t)
	doc := exampleDocument()
	b, err := doc.EncodeYAML()
	assert.NoError(err)

	var node yaml.Node
	assert.NoError(yaml.Unmarshal(b, &node))
	top := node.Content[0]
	assert.Equal("openapi", top.Content[0].Value)
	assert.Equal("info", top.Content[2].Value)
	assert.Equal("paths", top.Content[4].Value)

	jb, err := doc.EncodeJSON()
	assert.NoError(err)
	var fromJSON map[string]interface{}
	assert.NoError(yaml.Unmarshal(jb, &fromJSON))

	var fromYAML map[string]interface{}
	assert.NoError(yaml.Unmarshal(b, &fromYAML))
	assert.Equal(fromJSON, fromYAML)
}
