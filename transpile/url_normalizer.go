package transpile

import (
	"regexp"
	"strings"

	"github.com/oastools/postman2openapi/postman"
)

// intLikeValue matches a Postman variable value that looks like a bare
// integer, per SPEC_FULL.md's path-parameter example carry-over expansion.
var intLikeValue = regexp.MustCompile(`^-?\d+$`)

// braceVariable matches a path segment that is, in its entirety, a
// {{variable}} token.
var braceVariable = regexp.MustCompile(`^\{\{(\w+)\}\}$`)

// PathParam is a path parameter discovered while building a template path.
type PathParam struct {
	Name        string
	Description string
	Example     string
}

// QueryParam is a query parameter discovered from url.query[].
type QueryParam struct {
	Name        string
	Description string
	Example     string

	// Enum is set once a later entry under the same name carries a
	// distinct value: it then holds the first value followed by each
	// distinct later value, per spec.md §4.1 step 5 ("appended as an
	// enum-like hint").
	Enum []string
}

// NormalizedURL is the URL Normalizer's output (spec.md §4.1).
type NormalizedURL struct {
	// ServerURL is empty when the URL carries no host, per §4.1's "no
	// server" sentinel.
	ServerURL    string
	TemplatePath string
	PathParams   []PathParam
	QueryParams  []QueryParam
}

// NormalizeURL resolves a Postman URL (raw string or structured record) into
// a canonical template path, the server authority to register, and its path
// and query parameters.
func NormalizeURL(u postman.URL) NormalizedURL {
	protocol, host, path, query := u.Protocol, u.Host, u.Path, u.Query
	structured := protocol != "" || len(host) > 0 || len(path) > 0
	if !structured {
		protocol, host, path, query = parseRawURL(u.Raw)
	}

	templatePath, paramNames := buildPathTemplate(path)
	return NormalizedURL{
		ServerURL:    buildServerURL(protocol, host),
		TemplatePath: templatePath,
		PathParams:   buildPathParams(paramNames, u.Variable),
		QueryParams:  buildQueryParams(query),
	}
}

// parseRawURL splits a raw URL string on "://", then "/", then "?", then "#",
// in that order, mirroring spec.md §4.1 step 1. {{…}} substitutions are left
// untouched in whatever segment they land in.
func parseRawURL(raw string) (protocol string, host, path []string, query []postman.QueryParam) {
	rest := raw
	if idx := strings.Index(rest, "://"); idx >= 0 {
		protocol = rest[:idx]
		rest = rest[idx+3:]
	}

	hostPart, pathPart := rest, ""
	if idx := strings.Index(rest, "/"); idx >= 0 {
		hostPart, pathPart = rest[:idx], rest[idx+1:]
	}
	if hostPart != "" {
		host = strings.Split(hostPart, ".")
	}

	queryPart := ""
	if idx := strings.Index(pathPart, "?"); idx >= 0 {
		queryPart, pathPart = pathPart[idx+1:], pathPart[:idx]
	}
	if idx := strings.Index(queryPart, "#"); idx >= 0 {
		queryPart = queryPart[:idx]
	} else if idx := strings.Index(pathPart, "#"); idx >= 0 {
		pathPart = pathPart[:idx]
	}

	if pathPart != "" {
		path = strings.Split(pathPart, "/")
	}
	if queryPart != "" {
		for _, kv := range strings.Split(queryPart, "&") {
			k, v, _ := strings.Cut(kv, "=")
			query = append(query, postman.QueryParam{Key: k, Value: v})
		}
	}
	return protocol, host, path, query
}

// buildServerURL joins host[] with "." and prefixes "protocol://" when set.
// Returns "" (the §4.1 "no server" sentinel) when host is empty.
func buildServerURL(protocol string, host []string) string {
	if len(host) == 0 {
		return ""
	}
	authority := strings.Join(host, ".")
	if protocol == "" {
		return authority
	}
	return protocol + "://" + authority
}

// buildPathTemplate collapses ":name" and "{{name}}" segments to "{name}",
// returning the template path and the path parameter names in discovery
// (first-occurrence) order — the same order tie-broken segments collapse to
// one entry (spec.md §4.1 step 6).
func buildPathTemplate(segments []string) (string, []string) {
	out := make([]string, 0, len(segments))
	var names []string
	seen := map[string]bool{}
	for _, seg := range segments {
		name := ""
		switch {
		case strings.HasPrefix(seg, ":"):
			name = seg[1:]
		case braceVariable.MatchString(seg):
			name = braceVariable.FindStringSubmatch(seg)[1]
		}
		if name == "" {
			out = append(out, seg)
			continue
		}
		out = append(out, "{"+name+"}")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return "/" + strings.Join(out, "/"), names
}

func buildPathParams(names []string, variables []postman.URLVariable) []PathParam {
	params := make([]PathParam, 0, len(names))
	for _, name := range names {
		p := PathParam{Name: name}
		for _, v := range variables {
			if v.Key != name {
				continue
			}
			p.Description = v.Description.String()
			if intLikeValue.MatchString(v.Value) {
				p.Example = v.Value
			}
			break
		}
		params = append(params, p)
	}
	return params
}

// buildQueryParams collects non-disabled url.query[] entries, coalescing
// duplicate names: a later occurrence with a distinct value is folded into
// Enum rather than opening a second Parameter.
func buildQueryParams(params []postman.QueryParam) []QueryParam {
	var out []QueryParam
	index := map[string]int{}
	for _, p := range params {
		if p.Disabled {
			continue
		}
		if i, ok := index[p.Key]; ok {
			existing := &out[i]
			if p.Value != "" && p.Value != existing.Example {
				if len(existing.Enum) == 0 {
					existing.Enum = append(existing.Enum, existing.Example)
				}
				if !containsString(existing.Enum, p.Value) {
					existing.Enum = append(existing.Enum, p.Value)
				}
			}
			continue
		}
		index[p.Key] = len(out)
		out = append(out, QueryParam{
			Name:        p.Key,
			Description: p.Description.String(),
			Example:     p.Value,
		})
	}
	return out
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
