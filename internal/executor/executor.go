// Package executor dispatches an analyzed plan stage by stage. All items
// of stage k must finish before stage k+1 starts; items inside one stage
// run concurrently on a bounded worker pool.
//
// The executor knows nothing about what an item does: the caller supplies
// an ItemFunc and the executor only sequences, dispatches, and records
// outcomes in a runstate.Store.
package executor

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
	"github.com/vk/stagegridgo/internal/dag"
	"github.com/vk/stagegridgo/internal/runstate"
)

// ItemFunc executes a single work item. It is called from worker
// goroutines and must be safe for concurrent use.
type ItemFunc func(ctx context.Context, item config.WorkItem) error

// Executor runs an analyzed plan against a caller-supplied item handler.
type Executor struct {
	result  *dag.Result
	items   map[string]config.WorkItem
	workers int
	fn      ItemFunc
	state   *runstate.Store
}

// New creates an executor for the given plan and its analysis result.
// A workers value below 1 is treated as 1.
func New(plan *config.Plan, result *dag.Result, workers int, fn ItemFunc) *Executor {
	items := make(map[string]config.WorkItem, len(plan.Items))
	for _, it := range plan.Items {
		items[it.ID] = it
	}
	if workers < 1 {
		workers = 1
	}
	return &Executor{
		result:  result,
		items:   items,
		workers: workers,
		fn:      fn,
		state:   runstate.New(),
	}
}

// State returns the run state store for inspection during and after Run.
func (e *Executor) State() *runstate.Store {
	return e.state
}

// Run executes the plan stage by stage and returns an error if any item
// fails or the context is canceled. Conflict warnings are surfaced before
// each stage is dispatched; they never block execution. When a stage
// fails, every item of the later stages is marked skipped and never
// dispatched.
func (e *Executor) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Run started.",
		"run_id", e.state.RunID(),
		"stages", len(e.result.Stages),
		"items", e.result.ItemCount(),
		"workers", e.workers)

	for i, stage := range e.result.Stages {
		for path, ids := range stage.Conflicts {
			logger.Warn("Items in the same stage intend to modify the same file; resolve before relying on the result.",
				"stage", stage.Index, "file", path, "items", ids)
		}

		logger.Debug("Dispatching stage.", "stage", stage.Index, "item_count", len(stage.Items))
		if err := e.runStage(ctx, stage); err != nil {
			e.skipStagesAfter(ctx, i)
			return fmt.Errorf("stage %d failed: %w", stage.Index, err)
		}
		logger.Debug("Stage completed.", "stage", stage.Index)
	}

	logger.Info("Run finished.", "run_id", e.state.RunID())
	return nil
}

// runStage runs all items of one stage on the worker pool and waits for
// them. The first failure cancels the stage's context so queued items are
// skipped instead of dispatched.
func (e *Executor) runStage(ctx context.Context, stage dag.Stage) error {
	stageCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := e.workers
	if workers > len(stage.Items) {
		workers = len(stage.Items)
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.worker(stageCtx, cancel, jobs)
		}()
	}

	for _, id := range stage.Items {
		jobs <- id
	}
	close(jobs)
	wg.Wait()

	// Deterministic root cause: the first failed item in stage order.
	var failed []string
	var rootCause error
	for _, id := range stage.Items {
		if e.state.Status(id) != runstate.StatusFailed {
			continue
		}
		failed = append(failed, id)
		if rootCause == nil {
			rootCause = e.state.Err(id)
		}
	}
	if rootCause != nil {
		return fmt.Errorf("execution failed for %s: %w", strings.Join(failed, ", "), rootCause)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// worker is the processing loop for a single concurrent worker.
func (e *Executor) worker(ctx context.Context, cancel context.CancelFunc, jobs <-chan string) {
	logger := ctxlog.FromContext(ctx)
	for id := range jobs {
		if ctx.Err() != nil {
			logger.Warn("Context canceled, skipping item.", "item", id)
			e.state.SetStatus(id, runstate.StatusSkipped)
			e.state.SetError(id, ctx.Err())
			continue
		}

		logger.Debug("Worker picked up item.", "item", id)
		e.state.SetStatus(id, runstate.StatusRunning)
		if err := e.fn(ctx, e.items[id]); err != nil {
			logger.Error("Item execution failed.", "item", id, "error", err)
			e.state.SetStatus(id, runstate.StatusFailed)
			e.state.SetError(id, err)
			cancel()
			continue
		}
		e.state.SetStatus(id, runstate.StatusCompleted)
	}
}

// skipStagesAfter marks every item of the stages after index i as skipped.
func (e *Executor) skipStagesAfter(ctx context.Context, i int) {
	logger := ctxlog.FromContext(ctx)
	for _, stage := range e.result.Stages[i+1:] {
		for _, id := range stage.Items {
			logger.Warn("Skipping item due to upstream stage failure.", "item", id, "stage", stage.Index)
			e.state.SetStatus(id, runstate.StatusSkipped)
			e.state.SetError(id, fmt.Errorf("skipped due to failure in an earlier stage"))
		}
	}
}
