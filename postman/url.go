package postman

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// URL is a Postman request URL, accepted either as a raw string or as the
// structured {protocol, host[], path[], query[], variable[]} record. Both
// forms decode into this one type; URL Normalizer (transpile.NormalizeURL)
// is what actually reconciles Raw against the structured fields.
type URL struct {
	Raw      string       `json:"raw"`
	Protocol string       `json:"protocol,omitempty"`
	Host     []string     `json:"host,omitempty"`
	Path     []string     `json:"path,omitempty"`
	Query    []QueryParam `json:"query,omitempty"`
	Variable []URLVariable `json:"variable,omitempty"`
}

// UnmarshalJSON tries the bare-string form first (gjson-typed, avoiding a
// wasted struct decode attempt for the common case), falling back to the
// structured object.
func (u *URL) UnmarshalJSON(data []byte) error {
	if gjson.ParseBytes(data).Type == gjson.String {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*u = URL{Raw: raw}
		return nil
	}
	type urlAlias URL
	var alias urlAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*u = URL(alias)
	return nil
}

// QueryParam is one url.query[] entry.
type QueryParam struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description Text   `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// URLVariable is one url.variable[] entry — a path parameter's metadata,
// distinct from collection/folder-scoped Variable even though the wire
// shape is identical.
type URLVariable struct {
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Description Text   `json:"description,omitempty"`
}
