package postman

import "fmt"

// Auth kinds recognized by request assembly (spec.md §4.3.e). Any other
// Type value is skipped silently by the engine, not by this package.
const (
	AuthTypeNone   = "noauth"
	AuthTypeBasic  = "basic"
	AuthTypeBearer = "bearer"
	AuthTypeAPIKey = "apikey"
	AuthTypeOAuth2 = "oauth2"
)

// Auth is a Postman auth declaration. Each kind's parameters arrive as a
// "parameter bag" — a list of {key, value, type} triples — rather than
// fixed struct fields, since that is the wire shape Postman actually emits
// (the same AuthParam shape is reused by basic/bearer/apikey/oauth2, only
// the bag that's populated differs).
type Auth struct {
	Type string `json:"type"`

	Basic  []AuthParam `json:"basic,omitempty"`
	Bearer []AuthParam `json:"bearer,omitempty"`
	APIKey []AuthParam `json:"apikey,omitempty"`
	OAuth2 []AuthParam `json:"oauth2,omitempty"`
}

// AuthParam is one entry of a parameter bag. Value is untyped because
// Postman exports are inconsistent about quoting: an apikey's "in" value is
// always a string but some exports encode boolean-ish or numeric auth
// parameters unquoted.
type AuthParam struct {
	Key   string `json:"key"`
	Value any    `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
}

// bag returns the parameter list matching a.Type.
func (a *Auth) bag() []AuthParam {
	if a == nil {
		return nil
	}
	switch a.Type {
	case AuthTypeBasic:
		return a.Basic
	case AuthTypeBearer:
		return a.Bearer
	case AuthTypeAPIKey:
		return a.APIKey
	case AuthTypeOAuth2:
		return a.OAuth2
	default:
		return nil
	}
}

// Param looks up a named parameter within the bag matching a.Type, coercing
// its value to a string.
func (a *Auth) Param(key string) (string, bool) {
	for _, p := range a.bag() {
		if p.Key == key {
			return stringifyAuthValue(p.Value), true
		}
	}
	return "", false
}

func stringifyAuthValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// IsNoAuth reports whether a explicitly opts out of an inherited auth
// scope — Postman's convention for "this request/folder uses no auth even
// though an ancestor scope declares one" (spec.md §4 [EXPANSION]).
func (a *Auth) IsNoAuth() bool {
	return a != nil && a.Type == AuthTypeNone
}

// IsRecognized reports whether a.Type is one request assembly knows how to
// translate into a SecurityScheme.
func (a *Auth) IsRecognized() bool {
	if a == nil {
		return false
	}
	switch a.Type {
	case AuthTypeBasic, AuthTypeBearer, AuthTypeAPIKey, AuthTypeOAuth2:
		return true
	default:
		return false
	}
}
