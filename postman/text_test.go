package postman_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oastools/postman2openapi/postman"
)

func TestTextBareString(t *testing.T) {
	assert := require.New(t)
	var text postman.Text
	assert.NoError(json.Unmarshal([]byte(`"hello"`), &text))
	assert.Equal("hello", text.String())
}

func TestTextStructuredObject(t *testing.T) {
	assert := require.New(t)
	var text postman.Text
	data := []byte(`{"content": "hello <b>world</b>", "type": "text/html"}`)
	assert.NoError(json.Unmarshal(data, &text))
	assert.Equal("hello <b>world</b>", text.String())
}

func TestTextNull(t *testing.T) {
	assert := require.New(t)
	var text postman.Text
	assert.NoError(json.Unmarshal([]byte(`null`), &text))
	assert.Equal("", text.String())
}

func TestTextMalformedRecoversToEmpty(t *testing.T) {
	assert := require.New(t)
	var text postman.Text
	assert.NoError(json.Unmarshal([]byte(`42`), &text))
	assert.Equal("", text.String())
}
