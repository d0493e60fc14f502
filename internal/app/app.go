package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashicorp/errwrap"

	"github.com/katalvlaran/lvpath/internal/config"
)

// App holds the configuration, logger and output stream of one session.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp returns an App that prints its summary to outW and logs to logW.
// cfg must already be validated.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// RunFile loads the run file at path and executes it.
func RunFile(ctx context.Context, outW, logW io.Writer, path string) (*Report, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errwrap.Wrapf("Failed to read run file: {{err}}", err)
	}

	return NewApp(outW, logW, cfg).Run(ctx)
}
