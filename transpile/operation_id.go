package transpile

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// slug lowercases s and collapses runs of non-alphanumeric characters to a
// single "-", trimming leading/trailing "-" (spec.md §4.3.g).
func slug(s string) string {
	s = nonAlnumRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}

// operationIDSeed computes the default operationId seed for a request item:
// its slugified name, or "<method>-<templatePath>" slugified when the name
// is empty.
func operationIDSeed(name, method, templatePath string) string {
	if seed := slug(name); seed != "" {
		return seed
	}
	seed := slug(method + "-" + templatePath)
	if seed == "" {
		return "operation"
	}
	return seed
}

// operationIDRegistry enforces document-wide operationId uniqueness by
// appending "-2", "-3", … to a colliding seed (spec.md §4.3.g).
type operationIDRegistry struct {
	seen map[string]bool
}

func newOperationIDRegistry() *operationIDRegistry {
	return &operationIDRegistry{seen: map[string]bool{}}
}

func (r *operationIDRegistry) reserve(seed string) string {
	if !r.seen[seed] {
		r.seen[seed] = true
		return seed
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", seed, n)
		if !r.seen[candidate] {
			r.seen[candidate] = true
			return candidate
		}
	}
}
