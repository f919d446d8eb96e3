package stdinarg

import (
	"encoding"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ParseFunc converts the trimmed textual content of an argument into a
// value. Its error message is carried by ConversionError.
type ParseFunc[T any] func(string) (T, error)

// Content is trimmed of trailing white space only. Leading white space is
// handed to the ParseFunc untouched, so " 42" is not a valid Int.
func trimContent(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func convert[T any](parse ParseFunc[T], raw string) (T, error) {
	input := trimContent(raw)
	v, err := parse(input)
	if err != nil {
		var zero T
		return zero, &ConversionError{Input: input, Err: err}
	}
	return v, nil
}

func mustParser[T any](parse ParseFunc[T]) ParseFunc[T] {
	if parse == nil {
		panic("stdinarg: ParseFunc must not be nil")
	}
	return parse
}

// String returns the content as is.
func String(s string) (string, error) {
	return s, nil
}

// Path returns the content as a cleaned file path.
func Path(s string) (string, error) {
	return filepath.Clean(s), nil
}

func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

func Int64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func Uint(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, strconv.IntSize)
	return uint(v), err
}

func Uint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func Float64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func Bool(s string) (bool, error) {
	return strconv.ParseBool(s)
}

func Duration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// Text adapts any encoding.TextUnmarshaler into a ParseFunc, e.g.
// Text[netip.Addr]().
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() ParseFunc[T] {
	return func(s string) (T, error) {
		var v T
		err := PT(&v).UnmarshalText([]byte(s))
		return v, err
	}
}
