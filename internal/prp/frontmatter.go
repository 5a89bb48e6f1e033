package prp

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
	"github.com/vk/stagegridgo/internal/fsutil"
)

// delimiter marks the start and end of a front-matter block.
const delimiter = "---"

// frontMatter is the YAML schema of a PRP document header.
type frontMatter struct {
	ID          string   `yaml:"id"`
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	DependsOn   []string `yaml:"depends_on"`
	Files       []string `yaml:"files"`
}

// Loader is the PRP markdown implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new PRP front-matter loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .md file under the given path in lexical order and
// translates each document's front-matter into a work item. Files without
// a front-matter block or without an id are skipped with a warning;
// malformed YAML is a load error naming the offending file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("PRP loader started.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".md")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .md documents found under %s", path)
	}
	logger.Debug("Discovered markdown documents.", "count", len(files))

	plan := &config.Plan{}
	for _, file := range files {
		raw, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}

		block, ok := extractFrontMatter(string(raw))
		if !ok {
			logger.Warn("Document has no front-matter block, skipping.", "file", file)
			continue
		}

		var fm frontMatter
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, fmt.Errorf("failed to parse front-matter of %s: %w", file, err)
		}
		if fm.ID == "" {
			logger.Warn("Document front-matter has no id, skipping.", "file", file)
			continue
		}

		kind := fm.Kind
		if kind == "" {
			kind = "prp"
		}
		plan.Items = append(plan.Items, config.WorkItem{
			ID:          fm.ID,
			Kind:        kind,
			Description: fm.Description,
			DependsOn:   fm.DependsOn,
			Files:       fm.Files,
		})
	}

	logger.Debug("PRP loading complete.", "items", len(plan.Items))
	return plan, nil
}

// extractFrontMatter returns the YAML block delimited by the first pair of
// `---` lines, which must open the document. The boolean reports whether a
// complete block was found.
func extractFrontMatter(content string) (string, bool) {
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	rest, ok := strings.CutPrefix(normalized, delimiter+"\n")
	if !ok {
		return "", false
	}

	end := strings.Index(rest, "\n"+delimiter)
	if end == -1 {
		return "", false
	}
	after := rest[end+len("\n"+delimiter):]
	if after != "" && !strings.HasPrefix(after, "\n") {
		// The closing delimiter must sit on its own line.
		return "", false
	}
	return rest[:end], true
}
