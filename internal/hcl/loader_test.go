package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/stagegridgo/internal/config"
)

func writePlan(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	t.Run("translates items with locals interpolation", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePlan(t, dir, "plan.hcl", `
locals {
  docs = "docs/agents"
  root = "src"
  deep = "${local.root}/core"
}

item "PRP-43" {
  kind        = "prp"
  description = "Move subagent templates"
  files       = ["${local.docs}/templates.md"]
}

item "PRP-44" {
  depends_on = ["PRP-43"]
  files      = ["${local.deep}/orchestrator.py", "${local.docs}/templates.md"]
}
`)

		plan, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, plan.Items, 2)

		assert.Equal(t, config.WorkItem{
			ID:          "PRP-43",
			Kind:        "prp",
			Description: "Move subagent templates",
			Files:       []string{"docs/agents/templates.md"},
		}, plan.Items[0])
		assert.Equal(t, config.WorkItem{
			ID:        "PRP-44",
			DependsOn: []string{"PRP-43"},
			Files:     []string{"src/core/orchestrator.py", "docs/agents/templates.md"},
		}, plan.Items[1])
	})

	t.Run("merges multiple files in lexical order", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePlan(t, dir, "b_second.hcl", `item "second" {}`)
		writePlan(t, dir, "a_first.hcl", `item "first" {}`)

		plan, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, plan.Items, 2)
		assert.Equal(t, "first", plan.Items[0].ID)
		assert.Equal(t, "second", plan.Items[1].ID)
	})

	t.Run("accepts a single plan file path", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := writePlan(t, dir, "plan.hcl", `item "solo" {}`)

		plan, err := NewLoader().Load(context.Background(), path)
		require.NoError(t, err)
		require.Len(t, plan.Items, 1)
		assert.Equal(t, "solo", plan.Items[0].ID)
	})

	t.Run("keeps duplicate item labels for the analyzer", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePlan(t, dir, "plan.hcl", `
item "twin" {}
item "twin" {}
`)

		plan, err := NewLoader().Load(context.Background(), dir)
		require.NoError(t, err)
		require.Len(t, plan.Items, 2)
		assert.Equal(t, plan.Items[0].ID, plan.Items[1].ID)
	})

	t.Run("fails on malformed HCL", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePlan(t, dir, "broken.hcl", `item "A" {`)

		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("fails on reference to an undefined local", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writePlan(t, dir, "plan.hcl", `
item "A" {
  files = ["${local.nope}/a.md"]
}
`)

		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.ErrorContains(t, err, `item "A"`)
	})

	t.Run("fails when no plan files exist", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader().Load(context.Background(), t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, "no .hcl plan files")
	})
}
