package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes environ as the `env` variable. environ uses the
// KEY=VALUE layout of os.Environ.
func newEvalContext(environ []string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envValue(environ),
		},
		Functions: map[string]function.Function{
			"lower":  stdlib.LowerFunc,
			"upper":  stdlib.UpperFunc,
			"join":   stdlib.JoinFunc,
			"format": stdlib.FormatFunc,
			"concat": stdlib.ConcatFunc,
		},
	}
}

func envValue(environ []string) cty.Value {
	vars := make(map[string]cty.Value, len(environ))
	for _, e := range environ {
		key, value, ok := strings.Cut(e, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = cty.StringVal(value)
	}
	if len(vars) == 0 {
		return cty.MapValEmpty(cty.String)
	}
	return cty.MapVal(vars)
}

func processEnviron() []string {
	return os.Environ()
}
