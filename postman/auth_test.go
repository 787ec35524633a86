package postman_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oastools/postman2openapi/postman"
)

func TestAuthBasicParam(t *testing.T) {
	assert := require.New(t)
	data := []byte(`{
		"type": "basic",
		"basic": [
			{"key": "username", "value": "alice", "type": "string"},
			{"key": "password", "value": "secret", "type": "string"}
		]
	}`)
	var auth postman.Auth
	assert.NoError(json.Unmarshal(data, &auth))
	assert.True(auth.IsRecognized())
	assert.False(auth.IsNoAuth())

	username, ok := auth.Param("username")
	assert.True(ok)
	assert.Equal("alice", username)

	_, ok = auth.Param("missing")
	assert.False(ok)
}

func TestAuthNoAuth(t *testing.T) {
	assert := require.New(t)
	var auth postman.Auth
	assert.NoError(json.Unmarshal([]byte(`{"type": "noauth"}`), &auth))
	assert.True(auth.IsNoAuth())
}

func TestAuthUnrecognizedType(t *testing.T) {
	assert := require.New(t)
	var auth postman.Auth
	assert.NoError(json.Unmarshal([]byte(`{"type": "digest"}`), &auth))
	assert.False(auth.IsRecognized())
	assert.False(auth.IsNoAuth())
}
