package dag

import (
	"context"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
)

// Analyze validates the plan and computes its staged execution order.
//
// On success it returns the ordered stage sequence with per-stage conflict
// reports. On failure it returns exactly one of *DuplicateIDError,
// *UnknownDependencyError or *CycleError, checked in that priority order,
// and no partial result.
//
// For a fixed item order the output is fully deterministic: items are
// traversed in plan input order and each item's dependencies in declared
// order, so repeated calls report the same stages and the same first-found
// cycle.
func Analyze(ctx context.Context, plan *config.Plan) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Analyze: starting plan analysis.", "item_count", len(plan.Items))

	g, err := buildGraph(plan.Items)
	if err != nil {
		return nil, err
	}
	logger.Debug("Analyze: graph validation passed.")

	if path := g.findCycle(); path != nil {
		logger.Debug("Analyze: cycle found.", "path", path)
		return nil, &CycleError{Path: path}
	}
	logger.Debug("Analyze: cycle detection passed.")

	stages := g.assignStages()
	for i := range stages {
		stages[i].Conflicts = g.detectConflicts(stages[i].Items)
	}
	logger.Debug("Analyze: stage assignment complete.", "stage_count", len(stages))

	return &Result{Stages: stages}, nil
}

// buildGraph constructs the working graph, failing on duplicate IDs first
// and unknown dependency references second. All IDs are checked for
// duplication before any reference is resolved, so a dependency on a
// duplicated ID always reports the duplicate.
func buildGraph(items []config.WorkItem) (*graph, error) {
	g := &graph{
		order: make([]string, 0, len(items)),
		deps:  make(map[string][]string, len(items)),
		files: make(map[string][]string, len(items)),
	}

	for _, it := range items {
		if _, exists := g.deps[it.ID]; exists {
			return nil, &DuplicateIDError{ID: it.ID}
		}
		g.order = append(g.order, it.ID)
		g.deps[it.ID] = it.DependsOn
		g.files[it.ID] = it.Files
	}

	for _, it := range items {
		for _, dep := range it.DependsOn {
			if _, known := g.deps[dep]; !known {
				return nil, &UnknownDependencyError{ItemID: it.ID, DependencyID: dep}
			}
		}
	}

	return g, nil
}
