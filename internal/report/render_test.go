package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/dag"
)

func diamond(t *testing.T) *dag.Result {
	t.Helper()
	res, err := dag.Analyze(context.Background(), &config.Plan{Items: []config.WorkItem{
		{ID: "A", Files: []string{"f.py"}},
		{ID: "B", DependsOn: []string{"A"}, Files: []string{"x.go"}},
		{ID: "C", DependsOn: []string{"A"}, Files: []string{"x.go"}},
		{ID: "D", DependsOn: []string{"B", "C"}},
	}})
	require.NoError(t, err)
	return res
}

func TestRenderText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, diamond(t)))
	out := buf.String()

	assert.Contains(t, out, "Execution plan: 3 stages, 4 items")
	assert.Contains(t, out, "Stage 0:")
	assert.Contains(t, out, "B, C")
	assert.Contains(t, out, "conflict: x.go touched by B, C")
	assert.NotContains(t, out, "f.py")
}

func TestRenderTextEmptyPlan(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, &dag.Result{}))
	assert.Contains(t, buf.String(), "no work items")
}

func TestRenderJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, diamond(t)))

	var doc struct {
		Stages []struct {
			Index     int                 `json:"index"`
			Items     []string            `json:"items"`
			Conflicts map[string][]string `json:"conflicts"`
		} `json:"stages"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Stages, 3)
	assert.Equal(t, []string{"A"}, doc.Stages[0].Items)
	assert.Equal(t, map[string][]string{"x.go": {"B", "C"}}, doc.Stages[1].Conflicts)
	assert.Empty(t, doc.Stages[2].Conflicts)
}

func TestRenderErrorJSON(t *testing.T) {
	t.Parallel()

	decode := func(t *testing.T, buf *bytes.Buffer) map[string]any {
		t.Helper()
		var doc map[string]map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		require.Contains(t, doc, "error")
		return doc["error"]
	}

	t.Run("duplicate id", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, RenderErrorJSON(&buf, &dag.DuplicateIDError{ID: "A"}))
		got := decode(t, &buf)
		assert.Equal(t, "duplicate_id", got["kind"])
		assert.Equal(t, "A", got["id"])
	})

	t.Run("unknown dependency", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, RenderErrorJSON(&buf, &dag.UnknownDependencyError{ItemID: "A", DependencyID: "Z"}))
		got := decode(t, &buf)
		assert.Equal(t, "unknown_dependency", got["kind"])
		assert.Equal(t, "A", got["item"])
		assert.Equal(t, "Z", got["dependency"])
	})

	t.Run("cycle", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, RenderErrorJSON(&buf, &dag.CycleError{Path: []string{"A", "B", "A"}}))
		got := decode(t, &buf)
		assert.Equal(t, "cycle", got["kind"])
		assert.Equal(t, []any{"A", "B", "A"}, got["path"])
	})

	t.Run("other errors fall back to load kind", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, RenderErrorJSON(&buf, errors.New("file missing")))
		got := decode(t, &buf)
		assert.Equal(t, "load", got["kind"])
		assert.Equal(t, "file missing", got["message"])
	})
}

func TestRenderErrorText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, RenderErrorText(&buf, &dag.CycleError{Path: []string{"A", "A"}}))
	assert.Contains(t, buf.String(), "dependency cycle detected: A -> A")
}
