package hcl

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// newEvalContext returns an evaluation context exposing the given locals
// as the `local.*` variable namespace.
func newEvalContext(locals map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"local": cty.ObjectVal(locals),
		},
	}
}

// mergeLocals evaluates the attributes of a locals block into the
// accumulated locals map. Attributes are processed in source order, so a
// local may reference any local defined earlier in the plan.
func mergeLocals(block *localsBlock, locals map[string]cty.Value) error {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode locals block: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(newEvalContext(locals))
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate local %q: %w", attr.Name, diags)
		}
		locals[attr.Name] = val
	}
	return nil
}
