package openapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oastools/postman2openapi/openapi"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	assert := require.New(t)
	m := openapi.NewPropertyMap()
	m.Set("zebra", &openapi.Schema{Type: openapi.TypeString})
	m.Set("apple", &openapi.Schema{Type: openapi.TypeInteger})
	m.Set("mango", &openapi.Schema{Type: openapi.TypeBoolean})

	assert.Equal([]string{"zebra", "apple", "mango"}, m.Keys())

	b, err := json.Marshal(m)
	assert.NoError(err)
	assert.JSONEq(`{"zebra":{"type":"string"},"apple":{"type":"integer"},"mango":{"type":"boolean"}}`, string(b))

	// Key order in the raw bytes, not just JSONEq's unordered comparison.
	assert.True(indexOf(string(b), "zebra") < indexOf(string(b), "apple"))
	assert.True(indexOf(string(b), "apple") < indexOf(string(b), "mango"))
}

func TestOrderedMapSetOverwritesInPlace(t *testing.T) {
	assert := require.New(t)
	m := openapi.NewPropertyMap()
	m.Set("name", &openapi.Schema{Type: openapi.TypeString})
	m.Set("age", &openapi.Schema{Type: openapi.TypeInteger})
	m.Set("name", &openapi.Schema{Type: openapi.TypeString, Description: "full name"})

	assert.Equal([]string{"name", "age"}, m.Keys())
	schema, ok := m.Get("name")
	assert.True(ok)
	assert.Equal("full name", schema.Description)
}

func indexOf(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}
