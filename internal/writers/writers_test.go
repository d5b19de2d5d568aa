package writers

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"rnahelix/internal/output"
	"rnahelix/pkg/api"
)

func TestRegistryHasAllFormats(t *testing.T) {
	for _, f := range []string{output.FormatText, output.FormatJSON, output.FormatJSONL} {
		if _, ok := RecordWriters[f]; !ok {
			t.Errorf("no record writer for %q", f)
		}
		if _, ok := SummaryWriters[f]; !ok {
			t.Errorf("no summary writer for %q", f)
		}
	}
	if err := WriteRecords("fasta", io.Discard, nil, true); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if err := WriteSummary("xml", io.Discard, api.SummaryV1{}, true); err == nil {
		t.Fatal("expected error for unknown summary format")
	}
}

func TestJSONLOneObjectPerLine(t *testing.T) {
	list := []api.RecordV1{
		{Source: "a", Row: 1, Structure: "((..))", Lengths: []int{2}},
		{Source: "a", Row: 2, Structure: "(()", Error: "bad"},
	}
	var buf bytes.Buffer
	if err := WriteRecords(output.FormatJSONL, &buf, list, false); err != nil {
		t.Fatal(err)
	}
	sc := bufio.NewScanner(&buf)
	n := 0
	for sc.Scan() {
		var r api.RecordV1
		if err := json.Unmarshal(sc.Bytes(), &r); err != nil {
			t.Fatalf("line %d not JSON: %v", n+1, err)
		}
		if r.Row != list[n].Row {
			t.Fatalf("line %d: row %d", n+1, r.Row)
		}
		n++
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d", n)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestJSONLBrokenPipeIsQuiet(t *testing.T) {
	if err := WriteJSONL(failWriter{}, []api.RecordV1{{Source: "a"}}); err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
	if !IsBrokenPipe(io.ErrClosedPipe) || IsBrokenPipe(io.EOF) || IsBrokenPipe(nil) {
		t.Fatal("IsBrokenPipe misclassifies")
	}
}

func TestTextViaRegistry(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRecords(output.FormatText, &buf, []api.RecordV1{{Source: "s", Row: 1}}, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), output.TSVHeader+"\n") {
		t.Fatalf("missing header: %q", buf.String())
	}
}
