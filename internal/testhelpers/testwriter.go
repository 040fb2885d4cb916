package testhelpers

import (
	"io"
	"strings"
	"testing"
)

// Writer adapts t.Log to io.Writer so loggers can be pointed at the test
// output. Writing after the test has finished panics, which surfaces goroutines
// that outlive their test.
type Writer struct {
	t        *testing.T
	testDone chan struct{}
}

// NewWriter creates a Writer bound to the lifetime of t.
func NewWriter(t *testing.T) io.Writer {
	w := &Writer{
		t:        t,
		testDone: make(chan struct{}),
	}
	t.Cleanup(func() {
		close(w.testDone)
	})
	return w
}

// Write implements io.Writer by writing to t.Log.
func (w *Writer) Write(p []byte) (int, error) {
	select {
	case <-w.testDone:
		panic("testwriter: write after test completion; stop background goroutines in t.Cleanup")
	default:
		// Trailing newlines double-space the test log.
		output := strings.TrimSuffix(string(p), "\n")
		if output != "" {
			w.t.Log(output)
		}
		return len(p), nil
	}
}
