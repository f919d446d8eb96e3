package stdinarg

import (
	"context"
	"io"
	"sync"
)

// contextReader checks its context before every Read. A cancelled caller
// stops at the next read boundary; a Read already in progress is not
// interrupted.
type contextReader struct {
	r io.ReadCloser

	mu     sync.Mutex
	ctx    context.Context
	closed bool
}

func newContextReader(ctx context.Context, r io.ReadCloser) *contextReader {
	return &contextReader{r: r, ctx: ctx}
}

func (cr *contextReader) Read(p []byte) (int, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.closed {
		return 0, ErrClosed
	}

	select {
	case <-cr.ctx.Done():
		return 0, cr.ctx.Err()
	default:
	}

	return cr.r.Read(p)
}

func (cr *contextReader) Close() error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if cr.closed {
		return ErrClosed
	}
	cr.closed = true
	return cr.r.Close()
}

// contextWriter is the write-side counterpart of contextReader.
type contextWriter struct {
	w io.WriteCloser

	mu     sync.Mutex
	ctx    context.Context
	closed bool
}

func newContextWriter(ctx context.Context, w io.WriteCloser) *contextWriter {
	return &contextWriter{w: w, ctx: ctx}
}

func (cw *contextWriter) Write(p []byte) (int, error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return 0, ErrClosed
	}

	select {
	case <-cw.ctx.Done():
		return 0, cw.ctx.Err()
	default:
	}

	return cw.w.Write(p)
}

func (cw *contextWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.closed {
		return ErrClosed
	}
	cw.closed = true
	return cw.w.Close()
}

// nopWriteCloser keeps callers from closing the process's standard output.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
