package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/stagegridgo/internal/config"
	"github.com/vk/stagegridgo/internal/ctxlog"
	"github.com/vk/stagegridgo/internal/fsutil"
	"github.com/vk/stagegridgo/internal/hcl"
	"github.com/vk/stagegridgo/internal/prp"
)

// App ties together the configuration, the logger, and the output stream
// for one invocation.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp constructs the application. Reports go to outW; logs go to errW
// so machine-readable output stays clean.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// selectLoader picks the plan loader based on configuration, probing the
// plan path when set to auto: any .hcl file under the path selects the
// HCL loader, otherwise the PRP markdown loader is used.
func (a *App) selectLoader(ctx context.Context) (config.Loader, error) {
	logger := ctxlog.FromContext(ctx)

	switch a.config.Loader {
	case "hcl":
		return hcl.NewLoader(), nil
	case "prp":
		return prp.NewLoader(), nil
	}

	hclFiles, err := fsutil.FindFilesByExtension(a.config.PlanPath, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(hclFiles) > 0 {
		logger.Debug("Auto-detected HCL plan format.", "hcl_files", len(hclFiles))
		return hcl.NewLoader(), nil
	}
	logger.Debug("No .hcl files found, falling back to PRP markdown format.")
	return prp.NewLoader(), nil
}
