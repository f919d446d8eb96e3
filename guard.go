package stdinarg

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

// Guard owns the process standard streams and makes sure standard input is
// handed out at most once. Every wrapper resolves "-" through a Guard; unless
// one is injected with WithGuard, that is the process-wide Default guard.
type Guard struct {
	stdin   io.Reader
	stdout  io.Writer
	claimed atomic.Bool
	logger  *slog.Logger
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithLogger makes the guard trace claims at debug level.
func WithLogger(logger *slog.Logger) GuardOption {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGuard creates a guard over the given streams. Tests use it to get a
// fresh, isolated claim flag and in-memory stdio.
func NewGuard(stdin io.Reader, stdout io.Writer, opts ...GuardOption) *Guard {
	g := &Guard{
		stdin:  stdin,
		stdout: stdout,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var (
	defaultGuard     *Guard
	defaultGuardOnce sync.Once
)

// Default returns the guard bound to os.Stdin and os.Stdout.
func Default() *Guard {
	defaultGuardOnce.Do(func() {
		defaultGuard = NewGuard(os.Stdin, os.Stdout)
	})
	return defaultGuard
}

// Claim hands out standard input to the first caller only. Every later call,
// from any goroutine, gets ErrRepeatedStdinUse and no reader. A claim is
// permanent even if the caller never reads.
func (g *Guard) Claim() (io.Reader, error) {
	if !g.claimed.CompareAndSwap(false, true) {
		g.logger.Debug("Rejected repeated stdin claim.")
		return nil, ErrRepeatedStdinUse
	}
	g.logger.Debug("Stdin claimed.")
	return g.stdin, nil
}

// Claimed reports whether standard input has been handed out.
func (g *Guard) Claimed() bool {
	return g.claimed.Load()
}

// Stdout returns the standard output stream. Output is not single-use.
func (g *Guard) Stdout() io.Writer {
	return g.stdout
}

func guardOrDefault(g *Guard) *Guard {
	if g == nil {
		return Default()
	}
	return g
}
