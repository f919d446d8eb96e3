package stdinarg

import (
	"context"
	"io"
	"os"
)

// FileOrStdin is an argument naming a file, or "-" for standard input. It
// only remembers the name; nothing is opened or read until Contents or
// Reader is called, and standard input is claimed at that point.
//
//	user := stdinarg.NewFileOrStdin(decode.JSON[User]())
//	_ = user.Set(stdinarg.Sentinel) // default to stdin
//	fs.Var(user, "user", `user JSON file ("-" for stdin)`)
//	...
//	u, err := user.Contents()
type FileOrStdin[T any] struct {
	parse  ParseFunc[T]
	guard  *Guard
	source Source
}

// NewFileOrStdin returns an unset wrapper, ready to be registered with a flag
// set.
func NewFileOrStdin[T any](parse ParseFunc[T], opts ...Option) *FileOrStdin[T] {
	o := newOptions(opts)
	return &FileOrStdin[T]{parse: mustParser(parse), guard: o.guard}
}

// ParseFileOrStdin wraps token. It never touches the file system or stdin.
func ParseFileOrStdin[T any](token string, parse ParseFunc[T], opts ...Option) (*FileOrStdin[T], error) {
	f := NewFileOrStdin(parse, opts...)
	if err := f.Set(token); err != nil {
		return nil, err
	}
	return f, nil
}

// Set implements flag.Value.
func (f *FileOrStdin[T]) Set(token string) error {
	f.source = ParseSource(token)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FileOrStdin[T]) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

func (f *FileOrStdin[T]) String() string {
	if f == nil {
		return ""
	}
	return f.Filename()
}

// Filename returns "-" for standard input, else the file path.
func (f *FileOrStdin[T]) Filename() string {
	return f.source.Value()
}

// IsStdin reports whether the content will be read from standard input.
func (f *FileOrStdin[T]) IsStdin() bool {
	return f.source.IsStdin()
}

// IsFile reports whether the content will be read from a file.
func (f *FileOrStdin[T]) IsFile() bool {
	return f.source.IsNamed()
}

// Source returns the parsed argument.
func (f *FileOrStdin[T]) Source() Source {
	return f.source
}

// Contents reads everything from the source, trims trailing white space and
// converts the result.
func (f *FileOrStdin[T]) Contents() (T, error) {
	r, err := f.Reader()
	if err != nil {
		var zero T
		return zero, err
	}
	return readContents(r, f.parse)
}

// ContentsContext is Contents with every underlying read gated on ctx.
func (f *FileOrStdin[T]) ContentsContext(ctx context.Context) (T, error) {
	r, err := f.ReaderContext(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return readContents(r, f.parse)
}

// Reader opens the source for manual consumption. The caller must close it;
// closing a standard input reader leaves the process stream open.
func (f *FileOrStdin[T]) Reader() (io.ReadCloser, error) {
	if f.source.IsStdin() {
		r, err := guardOrDefault(f.guard).Claim()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}
	return os.Open(f.source.Value())
}

// ReaderContext is Reader with every Read gated on ctx. If ctx is already
// done, standard input is not claimed.
func (f *FileOrStdin[T]) ReaderContext(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r, err := f.Reader()
	if err != nil {
		return nil, err
	}
	return newContextReader(ctx, r), nil
}

func readContents[T any](r io.ReadCloser, parse ParseFunc[T]) (T, error) {
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert(parse, string(b))
}
