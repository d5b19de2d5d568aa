// internal/table/reader.go
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Defaults match the result tables of the interaction predictor.
const (
	DefaultSeparator = ';'
	DefaultColumn    = "hybridDP"
	DefaultIDColumn  = "id1"
	DefaultTop       = 200
)

// ErrNoColumn is returned when the structure column is absent from the header.
var ErrNoColumn = errors.New("structure column not found")

// Record is one structure cell of a result table.
type Record struct {
	Source    string // file the record was read from
	Row       int    // 1-based data row (header excluded)
	ID        string // value of the id column, if any
	Structure string
}

// Key identifies the record in warnings and sorted output.
func (r Record) Key() string { return fmt.Sprintf("%s:%d", r.Source, r.Row) }

type Options struct {
	Separator rune
	Column    string
	IDColumn  string // optional; ignored when absent from the header
	Top       int    // max data rows to read; 0 = all
}

func (o Options) withDefaults() Options {
	if o.Separator == 0 {
		o.Separator = DefaultSeparator
	}
	if o.Column == "" {
		o.Column = DefaultColumn
	}
	if o.IDColumn == "" {
		o.IDColumn = DefaultIDColumn
	}
	return o
}

// ReadStructures reads the structure column of the table at path.
// Rows with an empty structure cell are skipped but still count towards Top.
func ReadStructures(path string, opt Options) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := Parse(rc, path, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// Parse reads records from r; source is recorded on every Record.
func Parse(r io.Reader, source string, opt Options) ([]Record, error) {
	opt = opt.withDefaults()

	cr := csv.NewReader(r)
	cr.Comma = opt.Separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty table")
	}
	if err != nil {
		return nil, err
	}
	col, idCol := -1, -1
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		switch h {
		case opt.Column:
			col = i
		case opt.IDColumn:
			if opt.IDColumn != "" {
				idCol = i
			}
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoColumn, opt.Column)
	}

	var out []Record
	for row := 1; opt.Top <= 0 || row <= opt.Top; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if col >= len(fields) {
			continue
		}
		s := strings.TrimSpace(fields[col])
		if s == "" {
			continue
		}
		rec := Record{Source: source, Row: row, Structure: s}
		if idCol >= 0 && idCol < len(fields) {
			rec.ID = fields[idCol]
		}
		out = append(out, rec)
	}
	return out, nil
}
