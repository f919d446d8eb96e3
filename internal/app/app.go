package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/stdinarg"
	"github.com/specialistvlad/stdinarg/internal/ctxlog"
)

// ErrUsage marks errors caused by invalid command arguments rather than by
// a failure while running the command.
var ErrUsage = errors.New("usage error")

// App encapsulates the program's standard streams, logger and stdin guard.
type App struct {
	stdout  io.Writer
	stderr  io.Writer
	logger  *slog.Logger
	logFile io.Closer
	guard   *stdinarg.Guard
	config  *Config
}

// NewApp is the constructor for the application. Every argument wrapper the
// commands create resolves "-" through the App's own guard over stdin and
// stdout, so one App allows one stdin read.
func NewApp(stdin io.Reader, stdout, stderr io.Writer, cfg *Config) *App {
	logger, logFile := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, stderr)
	logger.Debug("Logger configured successfully.")

	return &App{
		stdout:  stdout,
		stderr:  stderr,
		logger:  logger,
		logFile: logFile,
		guard:   stdinarg.NewGuard(stdin, stdout, stdinarg.WithLogger(logger)),
		config:  cfg,
	}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	defer a.logFile.Close()

	cmd, ok := lookupCommand(a.config.Command)
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, a.config.Command)
	}

	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "command", cmd.Name)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Command started.", "args", a.config.Args)

	if err := cmd.Run(ctx, a, a.config.Args); err != nil {
		logger.Debug("Command failed.", "error", err)
		return err
	}

	logger.Debug("Command finished successfully.")
	return nil
}

// Guard returns the App's stdin guard.
func (a *App) Guard() *stdinarg.Guard {
	return a.guard
}

func (a *App) argOpts() []stdinarg.Option {
	return []stdinarg.Option{stdinarg.WithGuard(a.guard)}
}
