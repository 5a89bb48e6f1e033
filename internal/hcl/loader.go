package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
	"github.com/vk/stagegridgo/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL plan loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the HCL plan loading process. It discovers every .hcl
// file under the given path in lexical order, resolves all locals, and
// translates every item block into the format-agnostic model. Declaration
// order is preserved so the analysis stays deterministic.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl plan files found under %s", path)
	}
	logger.Debug("Discovered HCL plan files.", "count", len(files))

	parser := hclparse.NewParser()
	roots := make([]*fileRoot, 0, len(files))
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
		roots = append(roots, &root)
	}

	// First pass: collect locals across all files, in discovery order.
	locals := make(map[string]cty.Value)
	for _, root := range roots {
		for _, block := range root.Locals {
			if err := mergeLocals(block, locals); err != nil {
				return nil, err
			}
		}
	}
	evalCtx := newEvalContext(locals)

	// Second pass: translate items against the resolved locals.
	plan := &config.Plan{}
	for _, root := range roots {
		for _, block := range root.Items {
			item, err := l.translateItem(block, evalCtx)
			if err != nil {
				return nil, err
			}
			plan.Items = append(plan.Items, item)
		}
	}

	logger.Debug("HCL loading complete.", "items", len(plan.Items), "locals", len(locals))
	return plan, nil
}

// translateItem converts an HCL item block into the agnostic model,
// evaluating its expressions against the plan's locals.
func (l *Loader) translateItem(block *itemBlock, evalCtx *hcl.EvalContext) (config.WorkItem, error) {
	item := config.WorkItem{ID: block.ID, Kind: block.Kind}

	description, err := evalString(block.Description, evalCtx)
	if err != nil {
		return item, fmt.Errorf("item %q: invalid description: %w", block.ID, err)
	}
	item.Description = description

	dependsOn, err := evalStringList(block.DependsOn, evalCtx)
	if err != nil {
		return item, fmt.Errorf("item %q: invalid depends_on: %w", block.ID, err)
	}
	item.DependsOn = dependsOn

	files, err := evalStringList(block.Files, evalCtx)
	if err != nil {
		return item, fmt.Errorf("item %q: invalid files: %w", block.ID, err)
	}
	item.Files = files

	return item, nil
}

// evalString evaluates an optional expression to a string. A nil or null
// expression yields the empty string.
func evalString(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}
	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}
	return converted.AsString(), nil
}

// evalStringList evaluates an optional expression to a list of strings,
// preserving element order. A nil or null expression yields nil.
func evalStringList(expr hcl.Expression, evalCtx *hcl.EvalContext) ([]string, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, err
	}

	var out []string
	for it := converted.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() {
			return nil, fmt.Errorf("list contains a null element")
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
