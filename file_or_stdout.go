package stdinarg

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteMode controls how FileOrStdout opens a file.
type WriteMode int

const (
	// Truncate discards existing file content before writing.
	Truncate WriteMode = iota
	// Append starts writing at the end of existing file content.
	Append
)

func (m WriteMode) String() string {
	switch m {
	case Truncate:
		return "truncate"
	case Append:
		return "append"
	default:
		return fmt.Sprintf("WriteMode(%d)", int(m))
	}
}

// ParseWriteMode parses "truncate" or "append", case-insensitively.
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(s) {
	case "truncate":
		return Truncate, nil
	case "append":
		return Append, nil
	default:
		return Truncate, fmt.Errorf("invalid write mode %q: must be 'truncate' or 'append'", s)
	}
}

func (m WriteMode) openFlags() int {
	flags := os.O_CREATE | os.O_WRONLY
	if m == Append {
		return flags | os.O_APPEND
	}
	return flags | os.O_TRUNC
}

// FileOrStdout is an output argument naming a file, or "-" for standard
// output. The file is opened only when Writer is called.
type FileOrStdout struct {
	guard *Guard
	dest  Dest
	mode  WriteMode
}

// NewFileOrStdout returns an unset wrapper that opens files with mode.
func NewFileOrStdout(mode WriteMode, opts ...Option) *FileOrStdout {
	o := newOptions(opts)
	return &FileOrStdout{guard: o.guard, mode: mode}
}

// ParseFileOrStdout wraps token. It never touches the file system.
func ParseFileOrStdout(token string, mode WriteMode, opts ...Option) (*FileOrStdout, error) {
	f := NewFileOrStdout(mode, opts...)
	if err := f.Set(token); err != nil {
		return nil, err
	}
	return f, nil
}

// Set implements flag.Value.
func (f *FileOrStdout) Set(token string) error {
	f.dest = ParseDest(token)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FileOrStdout) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

func (f *FileOrStdout) String() string {
	if f == nil {
		return ""
	}
	return f.Filename()
}

// Filename returns "-" for standard output, else the file path.
func (f *FileOrStdout) Filename() string {
	return f.dest.Value()
}

// IsStdout reports whether output goes to standard output.
func (f *FileOrStdout) IsStdout() bool {
	return f.dest.IsStdout()
}

// IsFile reports whether output goes to a file.
func (f *FileOrStdout) IsFile() bool {
	return f.dest.IsNamed()
}

// Mode returns the write mode used for files.
func (f *FileOrStdout) Mode() WriteMode {
	return f.mode
}

// Dest returns the parsed argument.
func (f *FileOrStdout) Dest() Dest {
	return f.dest
}

// Writer opens the destination. Files are created if missing and opened per
// the write mode. The caller must close the writer; closing standard output
// is a no-op.
func (f *FileOrStdout) Writer() (io.WriteCloser, error) {
	if f.dest.IsStdout() {
		return nopWriteCloser{guardOrDefault(f.guard).Stdout()}, nil
	}
	return os.OpenFile(f.dest.Value(), f.mode.openFlags(), 0o666)
}

// WriterContext is Writer with every Write gated on ctx.
func (f *FileOrStdout) WriterContext(ctx context.Context) (io.WriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	w, err := f.Writer()
	if err != nil {
		return nil, err
	}
	return newContextWriter(ctx, w), nil
}
