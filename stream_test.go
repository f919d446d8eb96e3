package stdinarg

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	bytes.Buffer
	closes int
}

func (c *closeRecorder) Close() error {
	c.closes++
	return nil
}

func TestContextReader(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	r := newContextReader(ctx, io.NopCloser(strings.NewReader("abcdef")))

	buf := make([]byte, 3)
	n, err := r.Read(buf)
	require.NoError(t, err)
	require.Equal(t, "abc", string(buf[:n]))

	cancel()
	_, err = r.Read(buf)
	require.ErrorIs(t, err, context.Canceled)

	require.NoError(t, r.Close())
	require.ErrorIs(t, r.Close(), ErrClosed)
	_, err = r.Read(buf)
	require.ErrorIs(t, err, ErrClosed)
}

func TestContextWriter(t *testing.T) {
	t.Parallel()

	sink := &closeRecorder{}
	w := newContextWriter(context.Background(), sink)

	_, err := io.WriteString(w, "hello")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Close(), ErrClosed)
	_, err = io.WriteString(w, "again")
	require.ErrorIs(t, err, ErrClosed)

	require.Equal(t, "hello", sink.String())
	require.Equal(t, 1, sink.closes, "the underlying writer is closed once")
}

func TestTrimContent(t *testing.T) {
	t.Parallel()

	require.Equal(t, "42", trimContent("42\n"))
	require.Equal(t, " 42", trimContent(" 42\r\n"))
	require.Equal(t, "a b", trimContent("a b  "))
	require.Equal(t, "", trimContent(" \n\t"))
}
