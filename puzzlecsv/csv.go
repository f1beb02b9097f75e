// Package puzzlecsv reads and writes puzzle records as comma-separated rows:
//
//	id,top,right,bottom,left,orientation,row,col
//
// The first row is a header and is copied through unchanged. Fields are
// kept as written, leading spaces and stray quotes included; interpretation
// belongs to package puzzle. Output rows are the fields joined by commas,
// never re-quoted.
package puzzlecsv

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/jigsaw/puzzle"
)

// Sentinel errors for CSV transport.
var (
	// ErrNoHeader is returned when the input has no rows at all.
	ErrNoHeader = errors.New("puzzlecsv: missing header row")
	// ErrFieldCount is returned when a row does not have exactly NumFields fields.
	ErrFieldCount = errors.New("puzzlecsv: wrong number of fields")
	// ErrSeparatorInField is returned by Write for a field holding a comma
	// or line break, which an unquoted row cannot carry.
	ErrSeparatorInField = errors.New("puzzlecsv: separator inside field")
)

// NumFields is the number of columns in every row.
const NumFields = 8

// DefaultHeader is written when a Table has no header of its own.
var DefaultHeader = []string{"id", "top", "right", "bottom", "left", "orientation", "row", "col"}

// Table is a header plus the records below it, in file order.
type Table struct {
	Header  []string
	Records []puzzle.Record
}

// Read parses a whole table from r.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked below, with the line number
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("puzzlecsv: header: %w", err)
	}

	t := &Table{Header: header}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("puzzlecsv: %w", err)
		}
		if len(row) != NumFields {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d, want %d", ErrFieldCount, line, len(row), NumFields)
		}
		t.Records = append(t.Records, puzzle.Record{
			ID:          row[0],
			Top:         row[1],
			Right:       row[2],
			Bottom:      row[3],
			Left:        row[4],
			Orientation: row[5],
			Row:         row[6],
			Col:         row[7],
		})
	}
	return t, nil
}

// Write emits t's header and records to w, one comma-joined line each.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	header := t.Header
	if len(header) == 0 {
		header = DefaultHeader
	}
	if err := writeRow(bw, header); err != nil {
		return fmt.Errorf("puzzlecsv: header: %w", err)
	}
	for _, rec := range t.Records {
		row := []string{rec.ID, rec.Top, rec.Right, rec.Bottom, rec.Left, rec.Orientation, rec.Row, rec.Col}
		if err := writeRow(bw, row); err != nil {
			return fmt.Errorf("puzzlecsv: record %q: %w", rec.ID, err)
		}
	}
	return bw.Flush()
}

func writeRow(w *bufio.Writer, fields []string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, ",\r\n") {
			return fmt.Errorf("%w: %q", ErrSeparatorInField, f)
		}
	}
	_, err := w.WriteString(strings.Join(fields, ",") + "\n")
	return err
}

// ReadFile reads a table from the named file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// WriteFile writes t to the named file, creating or truncating it.
func WriteFile(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Write(f, t)
}
