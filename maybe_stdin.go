package stdinarg

import (
	"fmt"
	"io"
	"os"
)

// eagerValue is the shared core of the wrappers that resolve their content
// while the argument is being parsed.
type eagerValue[T any] struct {
	parse  ParseFunc[T]
	guard  *Guard
	source Source
	value  T
	set    bool
}

func newEagerValue[T any](parse ParseFunc[T], opts []Option) eagerValue[T] {
	o := newOptions(opts)
	return eagerValue[T]{parse: mustParser(parse), guard: o.guard}
}

// resolve classifies token, fetches the content and converts it. For a
// named source, readNamed decides whether the token is the content itself
// or a path to read it from.
func (e *eagerValue[T]) resolve(token string, readNamed func(string) (string, error)) error {
	source := ParseSource(token)

	var raw string
	if source.IsStdin() {
		r, err := guardOrDefault(e.guard).Claim()
		if err != nil {
			return err
		}
		b, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		raw = string(b)
	} else {
		var err error
		if raw, err = readNamed(source.Value()); err != nil {
			return err
		}
	}

	v, err := convert(e.parse, raw)
	if err != nil {
		return err
	}

	e.source = source
	e.value = v
	e.set = true
	return nil
}

// Value returns the resolved value.
func (e *eagerValue[T]) Value() T {
	return e.value
}

// IntoInner extracts the resolved value from the wrapper.
func (e *eagerValue[T]) IntoInner() T {
	return e.value
}

// Get implements flag.Getter.
func (e *eagerValue[T]) Get() any {
	return e.value
}

// Source reports where the value was read from.
func (e *eagerValue[T]) Source() Source {
	return e.source
}

// IsStdin reports whether the value was read from standard input.
func (e *eagerValue[T]) IsStdin() bool {
	return e.source.IsStdin()
}

func (e *eagerValue[T]) String() string {
	if e == nil || !e.set {
		return ""
	}
	return fmt.Sprint(e.value)
}

// MaybeStdin is an argument value given either literally on the command line
// or, when the argument is "-", read from standard input. Content is read
// and converted as soon as the argument is set.
//
//	path := stdinarg.NewMaybeStdin(stdinarg.Path)
//	fs.Var(path, "path", `source path ("-" reads it from stdin)`)
type MaybeStdin[T any] struct {
	eagerValue[T]
}

// NewMaybeStdin returns an unset wrapper, ready to be registered with a flag
// set.
func NewMaybeStdin[T any](parse ParseFunc[T], opts ...Option) *MaybeStdin[T] {
	return &MaybeStdin[T]{eagerValue: newEagerValue(parse, opts)}
}

// ParseMaybeStdin resolves token into a MaybeStdin.
func ParseMaybeStdin[T any](token string, parse ParseFunc[T], opts ...Option) (*MaybeStdin[T], error) {
	m := NewMaybeStdin(parse, opts...)
	if err := m.Set(token); err != nil {
		return nil, err
	}
	return m, nil
}

// Set implements flag.Value.
func (m *MaybeStdin[T]) Set(token string) error {
	return m.resolve(token, literal)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MaybeStdin[T]) UnmarshalText(text []byte) error {
	return m.Set(string(text))
}

// IsLiteral reports whether the value was given on the command line.
func (m *MaybeStdin[T]) IsLiteral() bool {
	return !m.IsStdin()
}

// FileOrStdinValue is an argument naming a file, or "-" for standard input,
// whose whole content is read and converted as soon as the argument is set.
// Use FileOrStdin to defer the read.
type FileOrStdinValue[T any] struct {
	eagerValue[T]
}

// NewFileOrStdinValue returns an unset wrapper, ready to be registered with
// a flag set.
func NewFileOrStdinValue[T any](parse ParseFunc[T], opts ...Option) *FileOrStdinValue[T] {
	return &FileOrStdinValue[T]{eagerValue: newEagerValue(parse, opts)}
}

// ParseFileOrStdinValue resolves token into a FileOrStdinValue.
func ParseFileOrStdinValue[T any](token string, parse ParseFunc[T], opts ...Option) (*FileOrStdinValue[T], error) {
	f := NewFileOrStdinValue(parse, opts...)
	if err := f.Set(token); err != nil {
		return nil, err
	}
	return f, nil
}

// Set implements flag.Value.
func (f *FileOrStdinValue[T]) Set(token string) error {
	return f.resolve(token, readFile)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FileOrStdinValue[T]) UnmarshalText(text []byte) error {
	return f.Set(string(text))
}

// IsFile reports whether the value was read from a file.
func (f *FileOrStdinValue[T]) IsFile() bool {
	return !f.IsStdin()
}

// Filename returns "-" for standard input, else the path that was read.
func (f *FileOrStdinValue[T]) Filename() string {
	return f.source.Value()
}

func literal(s string) (string, error) {
	return s, nil
}

func readFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
