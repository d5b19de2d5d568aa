package cmdutil

import (
	"io"
	"sync"
)

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// LockedWriter serializes writes to w so warnings from the feeder and the
// collector goroutine never interleave mid-line.
func LockedWriter(w io.Writer) io.Writer { return &lockedWriter{w: w} }
