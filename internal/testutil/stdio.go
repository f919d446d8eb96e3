package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/specialistvlad/stdinarg"
	"github.com/stretchr/testify/require"
)

// ReadCounter wraps a reader and counts Read calls, so tests can prove that
// a rejected stdin claim never touched the stream.
type ReadCounter struct {
	r     io.Reader
	reads atomic.Int64
}

func NewReadCounter(r io.Reader) *ReadCounter {
	return &ReadCounter{r: r}
}

func (c *ReadCounter) Read(p []byte) (int, error) {
	c.reads.Add(1)
	return c.r.Read(p)
}

// Reads returns the number of Read calls so far.
func (c *ReadCounter) Reads() int64 {
	return c.reads.Load()
}

// Stdio is an isolated set of standard streams with its own guard.
type Stdio struct {
	Stdin  *ReadCounter
	Stdout *SafeBuffer
	Guard  *stdinarg.Guard
}

// NewStdio returns streams whose stdin yields the given content.
func NewStdio(stdin string) *Stdio {
	in := NewReadCounter(strings.NewReader(stdin))
	out := &SafeBuffer{}
	return &Stdio{
		Stdin:  in,
		Stdout: out,
		Guard:  stdinarg.NewGuard(in, out),
	}
}

// Opts returns the wrapper options binding a wrapper to this Stdio's guard.
func (s *Stdio) Opts() []stdinarg.Option {
	return []stdinarg.Option{stdinarg.WithGuard(s.Guard)}
}

// WriteFile writes content to name inside a fresh temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the content of path, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}
