package data

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sadhukhansayan29-ai/Data-cleaning-and-preprosing-tools/pkg/table"
)

var (
	// ErrEmptyInput is returned when the CSV has no header row.
	ErrEmptyInput = errors.New("csv input is empty")
	// ErrRaggedRow is returned when a record's width differs from the header's.
	ErrRaggedRow = errors.New("csv record has wrong number of fields")
)

// DefaultMissing lists the cell texts read as missing.
var DefaultMissing = []string{"", "NA", "NaN", "null"}

// CSVOptions controls CSV parsing.
type CSVOptions struct {
	// Comma is the field delimiter; 0 means ','.
	Comma rune
	// Missing lists cell texts treated as missing; nil means DefaultMissing.
	Missing []string
}

func (o CSVOptions) isMissing(s string) bool {
	tokens := o.Missing
	if tokens == nil {
		tokens = DefaultMissing
	}
	s = strings.TrimSpace(s)
	for _, m := range tokens {
		if s == m {
			return true
		}
	}
	return false
}

// LoadCSV reads a table from the CSV file at path.
func LoadCSV(path string, opts CSVOptions) (*table.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	t, err := ReadCSV(bufio.NewReader(file), opts)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses CSV with a header row. A column is numeric when every
// non-missing cell parses as a float, categorical otherwise.
func ReadCSV(r io.Reader, opts CSVOptions) (*table.Table, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	// width is checked below to report ErrRaggedRow
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	body := records[1:]
	for i, rec := range body {
		if len(rec) != len(header) {
			// +2: one for the header, one for 1-based line numbers
			return nil, fmt.Errorf("line %d: %w (got %d, want %d)", i+2, ErrRaggedRow, len(rec), len(header))
		}
	}

	cols := make([]table.Column, len(header))
	for j, name := range header {
		cols[j] = table.Column{Name: strings.TrimSpace(name), Kind: detectKind(body, j, opts)}
	}

	t := table.New(cols...)
	for _, rec := range body {
		row := make([]table.Value, len(rec))
		for j, s := range rec {
			row[j] = parseCell(s, cols[j].Kind, opts)
		}
		t.Append(row...)
	}
	return t, nil
}

func detectKind(body [][]string, j int, opts CSVOptions) table.Kind {
	for _, rec := range body {
		v := rec[j]
		if opts.isMissing(v) {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return table.Categorical
		}
	}
	return table.Numeric
}

func parseCell(s string, kind table.Kind, opts CSVOptions) table.Value {
	if opts.isMissing(s) {
		return table.Missing()
	}
	if kind == table.Numeric {
		f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return table.Num(f)
	}
	return table.Str(s)
}

// WriteCSV writes t with a header row. Missing cells are written empty.
func WriteCSV(w io.Writer, t *table.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Names()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	rec := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, v := range row {
			rec[j] = v.String()
		}
		if err := writer.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes t to the file at path, creating or truncating it.
func SaveCSV(path string, t *table.Table) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(file, t); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
