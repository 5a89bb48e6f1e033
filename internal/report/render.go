// Package report renders an analysis result, or its failure, for humans
// and machines. It consumes the dag package's public surface only;
// formatting is deliberately kept out of the analysis core.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vk/stagegridgo/internal/dag"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	stageStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// RenderText writes a human-readable stage listing with per-stage
// conflict warnings. Conflict paths are sorted so output is stable.
func RenderText(w io.Writer, res *dag.Result) error {
	if len(res.Stages) == 0 {
		_, err := fmt.Fprintln(w, headerStyle.Render("Execution plan: no work items."))
		return err
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Execution plan: %d stages, %d items", len(res.Stages), res.ItemCount())))
	b.WriteString("\n\n")

	for _, stage := range res.Stages {
		b.WriteString(stageStyle.Render(fmt.Sprintf("Stage %d:", stage.Index)))
		b.WriteString(" ")
		b.WriteString(strings.Join(stage.Items, ", "))
		b.WriteString("\n")

		for _, path := range sortedPaths(stage.Conflicts) {
			warning := fmt.Sprintf("  conflict: %s touched by %s", path, strings.Join(stage.Conflicts[path], ", "))
			b.WriteString(conflictStyle.Render(warning))
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderErrorText writes a human-readable diagnostic for an analysis or
// load failure.
func RenderErrorText(w io.Writer, analysisErr error) error {
	_, err := fmt.Fprintln(w, errorStyle.Render(analysisErr.Error()))
	return err
}

// jsonStage mirrors dag.Stage with stable JSON field names.
type jsonStage struct {
	Index     int                 `json:"index"`
	Items     []string            `json:"items"`
	Conflicts map[string][]string `json:"conflicts,omitempty"`
}

// jsonError is the tagged machine-readable form of a failure.
type jsonError struct {
	Kind       string   `json:"kind"`
	Message    string   `json:"message"`
	ID         string   `json:"id,omitempty"`
	Item       string   `json:"item,omitempty"`
	Dependency string   `json:"dependency,omitempty"`
	Path       []string `json:"path,omitempty"`
}

// RenderJSON writes the stage plan as a stable machine-readable document.
func RenderJSON(w io.Writer, res *dag.Result) error {
	stages := make([]jsonStage, 0, len(res.Stages))
	for _, stage := range res.Stages {
		stages = append(stages, jsonStage{
			Index:     stage.Index,
			Items:     stage.Items,
			Conflicts: stage.Conflicts,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"stages": stages})
}

// RenderErrorJSON writes a failure as a tagged JSON object so machine
// consumers can distinguish the three analysis error kinds from plain
// load failures.
func RenderErrorJSON(w io.Writer, analysisErr error) error {
	out := jsonError{Kind: "load", Message: analysisErr.Error()}

	var dup *dag.DuplicateIDError
	var unknown *dag.UnknownDependencyError
	var cycle *dag.CycleError
	switch {
	case errors.As(analysisErr, &dup):
		out.Kind = "duplicate_id"
		out.ID = dup.ID
	case errors.As(analysisErr, &unknown):
		out.Kind = "unknown_dependency"
		out.Item = unknown.ItemID
		out.Dependency = unknown.DependencyID
	case errors.As(analysisErr, &cycle):
		out.Kind = "cycle"
		out.Path = cycle.Path
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"error": out})
}

// sortedPaths returns the conflict map's keys in ascending order.
func sortedPaths(conflicts map[string][]string) []string {
	if len(conflicts) == 0 {
		return nil
	}
	paths := make([]string, 0, len(conflicts))
	for path := range conflicts {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
