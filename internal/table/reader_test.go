package table

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `id1;id2;E;hybridDP
b0001;sRNA;-12.5;((((&))))
b0002;sRNA;-10.1;((..((&))..))
b0003;sRNA;-9.0;
b0004;sRNA;-8.2;(.(&).)
`

func TestParseColumns(t *testing.T) {
	recs, err := Parse(strings.NewReader(sample), "a.csv", Options{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("want 3 records (empty cell skipped), got %d: %+v", len(recs), recs)
	}
	first := recs[0]
	if first.Source != "a.csv" || first.Row != 1 || first.ID != "b0001" || first.Structure != "((((&))))" {
		t.Fatalf("unexpected first record %+v", first)
	}
	if recs[2].Row != 4 || recs[2].Key() != "a.csv:4" {
		t.Fatalf("row numbering: %+v", recs[2])
	}
}

func TestParseDefaultIDColumn(t *testing.T) {
	recs, err := Parse(strings.NewReader(sample), "a.csv", Options{Column: "hybridDP"})
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []string{"b0001", "b0002", "b0004"} {
		if recs[i].ID != want {
			t.Fatalf("record %d: ID %q, want %q", i, recs[i].ID, want)
		}
	}

	recs, err = Parse(strings.NewReader("hybridDP\n((..))\n"), "b.csv", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "" {
		t.Fatalf("table without id column: %+v", recs)
	}
}

func TestParseTop(t *testing.T) {
	recs, err := Parse(strings.NewReader(sample), "a.csv", Options{Top: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[1].Row != 2 {
		t.Fatalf("Top=2: got %+v", recs)
	}
}

func TestParseCustomColumnAndSeparator(t *testing.T) {
	in := "name,structure\nq1,((..))\n"
	recs, err := Parse(strings.NewReader(in), "x", Options{Separator: ',', Column: "structure", IDColumn: "name"})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "q1" || recs[0].Structure != "((..))" {
		t.Fatalf("got %+v", recs)
	}
}

func TestParseMissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("id1;E\nx;1\n"), "x", Options{})
	if !errors.Is(err, ErrNoColumn) {
		t.Fatalf("want ErrNoColumn, got %v", err)
	}
	if _, err := Parse(strings.NewReader(""), "x", Options{}); err == nil {
		t.Fatal("expected error for empty table")
	}
}

func TestReadStructuresGzip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "sRNA_NC_000913.csv.gz")
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte(sample))
	_ = gw.Close()
	_ = fh.Close()

	recs, err := ReadStructures(fn, Options{})
	if err != nil {
		t.Fatalf("ReadStructures: %v", err)
	}
	if len(recs) != 3 || recs[0].Source != fn {
		t.Fatalf("got %+v", recs)
	}
}

func TestReadStructuresMissingFile(t *testing.T) {
	if _, err := ReadStructures(filepath.Join(t.TempDir(), "nope.csv"), Options{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestExpandInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"ChiX_NC_000913.csv",
		"ArcZ_NC_000913.csv",
		"memoryUsage.csv",
		"runTime.csv",
		"notes.txt",
		"benchmark.csv",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("hybridDP\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	extra := filepath.Join(t.TempDir(), "single.csv")
	_ = os.WriteFile(extra, []byte("hybridDP\n"), 0o644)

	got, err := ExpandInputs([]string{dir, extra, "-"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "ArcZ_NC_000913.csv"),
		filepath.Join(dir, "ChiX_NC_000913.csv"),
		extra,
		"-",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v\nwant %v", got, want)
	}

	if _, err := ExpandInputs([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Fatal("expected error for missing path")
	}
}
