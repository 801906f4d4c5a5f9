package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// CSVOptions controls CSV materialization.
type CSVOptions struct {
	// Delimiter for CSV. If 0, auto-detects from the file extension.
	Delimiter rune
	// Latin1 forces ISO-8859-1 decoding. Survey exports from older form
	// tools commonly ship in this encoding; when false, the reader still
	// falls back to it if the content is not valid UTF-8.
	Latin1 bool
	// MaxRows limits rows read; 0 means unlimited.
	MaxRows int
}

// ReadCSV materializes a delimited file into a Table.
func ReadCSV(path string, opt CSVOptions) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if opt.Latin1 || !utf8.Valid(raw) {
		dec, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode latin-1: %w", err)
		}
		raw = dec
	}

	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(strings.NewReader(string(raw)))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv %s is empty", filepath.Base(path))
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	tbl := &Table{Name: filepath.Base(path), Columns: make([]string, len(header))}
	for i, h := range header {
		tbl.Columns[i] = strings.TrimSpace(h)
	}

	maxRows := opt.MaxRows
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(tbl.Rows)+1, err)
		}
		if maxRows > 0 && len(tbl.Rows) >= maxRows {
			break
		}
		row := make([]string, len(rec))
		copy(row, rec)
		tbl.Rows = append(tbl.Rows, padRow(row, len(tbl.Columns)))
	}
	return tbl, nil
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
