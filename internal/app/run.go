package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
	"github.com/vk/stagegridgo/internal/dag"
	"github.com/vk/stagegridgo/internal/executor"
	"github.com/vk/stagegridgo/internal/report"
)

// Run executes one full invocation: load the plan, analyze it into
// parallel stages, render the result, and optionally simulate the run.
// The returned error signals a non-zero exit; the failure has already
// been rendered to the output stream by the time Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := a.logger

	loader, err := a.selectLoader(ctx)
	if err != nil {
		return fmt.Errorf("selecting plan loader: %w", err)
	}

	plan, err := loader.Load(ctx, a.config.PlanPath)
	if err != nil {
		a.renderError(err)
		return fmt.Errorf("loading plan from %q: %w", a.config.PlanPath, err)
	}
	logger.Info("Plan loaded.", "path", a.config.PlanPath, "items", len(plan.Items))

	result, err := dag.Analyze(ctx, plan)
	if err != nil {
		a.renderError(err)
		return err
	}

	if err := a.renderResult(result); err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	if a.config.Simulate {
		return a.simulate(ctx, plan, result)
	}
	return nil
}

func (a *App) renderResult(result *dag.Result) error {
	if a.config.Output == "json" {
		return report.RenderJSON(a.outW, result)
	}
	return report.RenderText(a.outW, result)
}

func (a *App) renderError(analysisErr error) {
	var renderErr error
	if a.config.Output == "json" {
		renderErr = report.RenderErrorJSON(a.outW, analysisErr)
	} else {
		renderErr = report.RenderErrorText(a.outW, analysisErr)
	}
	if renderErr != nil {
		a.logger.Error("Failed to render error report.", "error", renderErr)
	}
}

// simulate walks the stage plan with a no-op handler so the scheduling
// behavior (stage barriers, worker fan-out, failure skipping) can be
// observed from the logs without running any real work.
func (a *App) simulate(ctx context.Context, plan *config.Plan, result *dag.Result) error {
	logger := ctxlog.FromContext(ctx)
	start := time.Now()

	exec := executor.New(plan, result, a.config.WorkerCount, func(ctx context.Context, item config.WorkItem) error {
		ctxlog.FromContext(ctx).Info("Simulating work item.", "id", item.ID, "kind", item.Kind)
		return nil
	})
	logger.Info("Starting simulated run.", "run_id", exec.State().RunID(), "workers", a.config.WorkerCount)

	if err := exec.Run(ctx); err != nil {
		return fmt.Errorf("simulated run failed: %w", err)
	}
	logger.Info("Simulated run finished.", "duration", time.Since(start))
	return nil
}
