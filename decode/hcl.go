package decode

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/stdinarg"
	"github.com/zclconf/go-cty/cty"
)

// Variables are made available to HCL expressions by name.
type Variables map[string]cty.Value

// EnvVariables exposes the process environment as the "env" object, so a
// body can say `token = env.API_TOKEN`.
func EnvVariables() Variables {
	envMap := make(map[string]cty.Value)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && pair[0] != "" {
			envMap[pair[0]] = cty.StringVal(pair[1])
		}
	}
	return Variables{"env": cty.ObjectVal(envMap)}
}

// HCL decodes the content as an HCL body into T, which must be a struct
// using `hcl:"..."` field tags. filename only labels diagnostics; a ".json"
// suffix selects HCL's JSON syntax.
func HCL[T any](filename string, vars ...Variables) stdinarg.ParseFunc[T] {
	evalCtx := newEvalContext(vars)
	return func(s string) (T, error) {
		var v T

		parser := hclparse.NewParser()
		var (
			file  *hcl.File
			diags hcl.Diagnostics
		)
		if strings.HasSuffix(filename, ".json") {
			file, diags = parser.ParseJSON([]byte(s), filename)
		} else {
			file, diags = parser.ParseHCL([]byte(s), filename)
		}
		if diags.HasErrors() {
			return v, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
		}

		diags = gohcl.DecodeBody(file.Body, evalCtx, &v)
		if diags.HasErrors() {
			return v, fmt.Errorf("failed to decode HCL %s: %w", filename, diags)
		}
		return v, nil
	}
}

func newEvalContext(vars []Variables) *hcl.EvalContext {
	if len(vars) == 0 {
		return nil
	}
	merged := make(map[string]cty.Value)
	for _, set := range vars {
		for name, val := range set {
			merged[name] = val
		}
	}
	return &hcl.EvalContext{Variables: merged}
}
