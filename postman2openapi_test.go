package postman2openapi_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	postman2openapi "github.com/oastools/postman2openapi"
)

// TestS1MinimalCollection is spec.md §8 scenario S1.
func TestS1MinimalCollection(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Minimal"},
		"item": [
			{"name": "List Users", "request": {"method": "GET", "url": "https://example.com/users"}}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)
	assert.Len(doc.Servers, 1)
	assert.Equal("https://example.com", doc.Servers[0].URL)

	pathItem, ok := doc.Paths.Get("/users")
	assert.True(ok)
	op, ok := pathItem.Operations.Get("get")
	assert.True(ok)
	resp, ok := op.Responses.Get("200")
	assert.True(ok)
	assert.Equal("Successful response", resp.Description)
}

// TestS2ResponseMerging is spec.md §8 scenario S2.
func TestS2ResponseMerging(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Users"},
		"item": [
			{
				"name": "User",
				"item": [
					{
						"name": "Get User (found)",
						"request": {"method": "GET", "url": {"raw": "https://example.com/u/:id", "host": ["example", "com"], "path": ["u", ":id"]}},
						"response": [{"name": "Found", "code": 200, "body": "{\"id\":1}", "_postman_previewlanguage": "json"}]
					},
					{
						"name": "Get User (missing)",
						"request": {"method": "GET", "url": {"raw": "https://example.com/u/:id", "host": ["example", "com"], "path": ["u", ":id"]}},
						"response": [{"name": "Not Found", "code": 404, "body": "{\"error\":\"missing\"}", "_postman_previewlanguage": "json"}]
					}
				]
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	pathItem, ok := doc.Paths.Get("/u/{id}")
	assert.True(ok)
	assert.Equal(1, pathItem.Operations.Len())

	op, ok := pathItem.Operations.Get("get")
	assert.True(ok)
	assert.Len(op.Parameters, 1)
	assert.Equal("id", op.Parameters[0].Name)
	assert.Equal("path", op.Parameters[0].In)

	_, ok = op.Responses.Get("200")
	assert.True(ok)
	_, ok = op.Responses.Get("404")
	assert.True(ok)
}

// TestS3RawJSONRequestBody is spec.md §8 scenario S3.
func TestS3RawJSONRequestBody(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Login"},
		"item": [
			{
				"name": "Login",
				"request": {
					"method": "POST",
					"url": "https://example.com/login",
					"body": {"mode": "raw", "raw": "{\"user\":\"a\",\"pwd\":\"b\"}", "options": {"raw": {"language": "json"}}}
				}
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	pathItem, _ := doc.Paths.Get("/login")
	op, _ := pathItem.Operations.Get("post")
	assert.NotNil(op.RequestBody)
	mt, ok := op.RequestBody.Content.Get("application/json")
	assert.True(ok)
	assert.Equal("object", mt.Schema.Type)
	assert.Equal([]string{"user", "pwd"}, mt.Schema.Properties.Keys())
}

// TestS4AuthFallback is spec.md §8 scenario S4.
func TestS4AuthFallback(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Auth"},
		"item": [
			{
				"name": "Protected",
				"auth": {"type": "basic", "basic": [{"key": "username", "value": "u"}, {"key": "password", "value": "p"}]},
				"item": [
					{
						"name": "Get Secret",
						"request": {
							"method": "GET",
							"url": "https://example.com/secret",
							"auth": {"type": "bearer", "bearer": [{"key": "token", "value": "tok"}]}
						}
					}
				]
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	assert.NotNil(doc.Components)
	assert.True(doc.Components.SecuritySchemes.Has("basicAuth"))
	assert.True(doc.Components.SecuritySchemes.Has("bearerAuth"))

	pathItem, _ := doc.Paths.Get("/secret")
	op, _ := pathItem.Operations.Get("get")
	assert.Len(op.Security, 1)
	_, hasBearer := op.Security[0]["bearerAuth"]
	assert.True(hasBearer)
	_, hasBasic := op.Security[0]["basicAuth"]
	assert.False(hasBasic)
}

// TestS5HeaderIgnoreSet is spec.md §8 scenario S5.
func TestS5HeaderIgnoreSet(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Headers"},
		"item": [
			{
				"name": "Whoami",
				"request": {
					"method": "GET",
					"url": "https://example.com/whoami",
					"header": [
						{"key": "Authorization", "value": "Bearer x"},
						{"key": "Content-Type", "value": "application/json"},
						{"key": "X-Trace-Id", "value": "abc"}
					]
				}
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	pathItem, _ := doc.Paths.Get("/whoami")
	op, _ := pathItem.Operations.Get("get")
	assert.Len(op.Parameters, 1)
	assert.Equal("X-Trace-Id", op.Parameters[0].Name)
	assert.Equal("header", op.Parameters[0].In)
}

// TestS6OperationIDCollision is spec.md §8 scenario S6.
func TestS6OperationIDCollision(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Collide"},
		"item": [
			{"name": "Get User", "request": {"method": "GET", "url": "https://example.com/a"}},
			{"name": "Get User", "request": {"method": "GET", "url": "https://example.com/b"}}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	a, _ := doc.Paths.Get("/a")
	opA, _ := a.Operations.Get("get")
	b, _ := doc.Paths.Get("/b")
	opB, _ := b.Operations.Get("get")

	assert.Equal("get-user", opA.OperationID)
	assert.Equal("get-user-2", opB.OperationID)
}

// TestFolderTagAggregation checks that nested folder names join with " / "
// into one tag that carries the innermost folder's description.
func TestFolderTagAggregation(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Nested Tags"},
		"item": [
			{
				"name": "Admin",
				"item": [
					{
						"name": "Users",
						"description": "user management",
						"item": [
							{"name": "List", "request": {"method": "GET", "url": "https://example.com/admin/users"}}
						]
					}
				]
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	assert.Len(doc.Tags, 1)
	assert.Equal("Admin / Users", doc.Tags[0].Name)
	assert.Equal("user management", doc.Tags[0].Description)

	pathItem, _ := doc.Paths.Get("/admin/users")
	op, _ := pathItem.Operations.Get("get")
	assert.Equal([]string{"Admin / Users"}, op.Tags)
}

// TestS8OAuth2ScopesPopulated exercises SPEC_FULL.md's oauth2 flow
// population expansion.
func TestS8OAuth2ScopesPopulated(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "OAuth"},
		"item": [
			{
				"name": "Get Profile",
				"request": {
					"method": "GET",
					"url": "https://example.com/profile",
					"auth": {
						"type": "oauth2",
						"oauth2": [
							{"key": "grantType", "value": "authorization_code"},
							{"key": "authUrl", "value": "https://auth.example.com/authorize"},
							{"key": "accessTokenUrl", "value": "https://auth.example.com/token"},
							{"key": "scope", "value": "read write"}
						]
					}
				}
			}
		]
	}`)
	doc, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	scheme, ok := doc.Components.SecuritySchemes.Get("oauth2")
	assert.True(ok)
	assert.NotNil(scheme.Flows.AuthorizationCode)
	assert.Equal("https://auth.example.com/authorize", scheme.Flows.AuthorizationCode.AuthorizationURL)
	assert.Contains(scheme.Flows.AuthorizationCode.Scopes, "read")
	assert.Contains(scheme.Flows.AuthorizationCode.Scopes, "write")
}

func TestTranspileBytesMalformedJSON(t *testing.T) {
	assert := require.New(t)
	_, err := postman2openapi.TranspileBytes([]byte(`{"info":`))
	assert.Error(err)
	pErr, ok := err.(*postman2openapi.Error)
	assert.True(ok)
	assert.Equal(postman2openapi.KindParse, pErr.Kind)
}

func TestTranspileBytesSchemaMismatch(t *testing.T) {
	assert := require.New(t)
	_, err := postman2openapi.TranspileBytes([]byte(`{"info": "not an object", "item": []}`))
	assert.Error(err)
	pErr, ok := err.(*postman2openapi.Error)
	assert.True(ok)
	assert.Equal(postman2openapi.KindSchemaMismatch, pErr.Kind)
}

func TestTranspileDeterministic(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"info": {"name": "Det"},
		"item": [{"name": "A", "request": {"method": "GET", "url": "https://example.com/a"}}]
	}`)
	doc1, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)
	doc2, err := postman2openapi.TranspileBytes(data)
	assert.NoError(err)

	b1, err := postman2openapi.EncodeJSON(doc1)
	assert.NoError(err)
	b2, err := postman2openapi.EncodeJSON(doc2)
	assert.NoError(err)
	assert.Equal(string(b1), string(b2))
}
