package postman

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Text decodes a Postman field that is documented to be either a bare
// string or a structured {content, type} description object, collapsing
// both into the plain string a description ultimately is. gjson is used to
// peek the raw JSON's type before choosing a decode branch. A value that is
// neither a string, null, nor a {content, ...} object decodes to the empty
// string without an error.
type Text string

// UnmarshalJSON implements the string-or-object fallback described on Text.
func (t *Text) UnmarshalJSON(data []byte) error {
	result := gjson.ParseBytes(data)
	switch result.Type {
	case gjson.String:
		*t = Text(result.String())
		return nil
	case gjson.Null:
		*t = ""
		return nil
	}
	var obj struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		// Not a string and not a {content,...} object: recover per the
		// package-wide "never abort on a request-level quirk" policy.
		*t = ""
		return nil
	}
	*t = Text(obj.Content)
	return nil
}

func (t Text) String() string { return string(t) }
