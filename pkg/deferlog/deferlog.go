// Package deferlog buffers log output while an interactive session owns the
// terminal, so logs can be shown after the session ends instead of tearing
// through the prompt.
package deferlog

import (
	"bytes"
	"io"
	"sync"
)

// Writer is an io.Writer that accumulates writes until Flush is called.
// Safe for concurrent writers.
type Writer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// Write appends p to the buffer.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

// Flush replays everything buffered so far to dst, one line per write so
// event-oriented writers (like zerolog's console writer) render each log
// record, then resets the buffer.
func (w *Writer) Flush(dst io.Writer) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() == 0 {
		return nil
	}

	for _, line := range bytes.SplitAfter(w.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		if _, err := dst.Write(line); err != nil {
			return err
		}
	}

	w.buf.Reset()
	return nil
}
