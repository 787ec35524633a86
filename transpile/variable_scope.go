package transpile

import (
	"regexp"

	"github.com/oastools/postman2openapi/postman"
)

// variableScope is one frame of the variable_stack described in spec.md
// §4.3: collection scope at the bottom, each entered folder pushing its own
// frame on top. Only resolve is used for {{var}} substitution in operation
// metadata — path templating never consults this type (spec.md §4.3,
// "variable_stack ... used to resolve {{var}} only for operation metadata,
// not for path templating").
type variableScope struct {
	parent *variableScope
	vars   map[string]string
}

func pushVariableScope(parent *variableScope, vars []postman.Variable) *variableScope {
	m := make(map[string]string, len(vars))
	for _, v := range vars {
		m[v.Key] = v.Value
	}
	return &variableScope{parent: parent, vars: m}
}

func (s *variableScope) resolve(name string) (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return "", false
}

var variableToken = regexp.MustCompile(`\{\{(\w+)\}\}`)

// substituteVariables replaces every {{name}} token in text whose name
// resolves in scope with that variable's value; unresolved tokens are left
// untouched.
func substituteVariables(text string, scope *variableScope) string {
	if text == "" || scope == nil {
		return text
	}
	return variableToken.ReplaceAllStringFunc(text, func(tok string) string {
		name := tok[2 : len(tok)-2]
		if v, ok := scope.resolve(name); ok {
			return v
		}
		return tok
	})
}
