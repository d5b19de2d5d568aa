package cmdutil

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestWarnf(t *testing.T) {
	DisableColor()
	var buf bytes.Buffer
	Warnf(&buf, false, "%s: %v", "a.csv:3", "bad structure")
	if got := buf.String(); got != "WARN: a.csv:3: bad structure\n" {
		t.Fatalf("got %q", got)
	}
	buf.Reset()
	Warnf(&buf, true, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("quiet Warnf wrote %q", buf.String())
	}
	Errorf(&buf, "%d", 7)
	if !strings.HasPrefix(buf.String(), "error: 7") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestThreads(t *testing.T) {
	if Threads(3) != 3 {
		t.Fatal("explicit thread count not honoured")
	}
	n := Threads(0)
	if n < 1 || n > runtime.NumCPU() {
		t.Fatalf("auto threads %d outside [1, %d]", n, runtime.NumCPU())
	}
}
