// Package source materializes survey responses from their upstream forms
// (delimited file or warehouse table) into one raw tabular shape. The rest of
// the pipeline treats both origins identically.
package source

import "fmt"

// Table is a raw tabular result: ordered named columns and ordered rows of
// untyped text cells. Short rows are padded so every row has len(Columns)
// cells; missing cells are empty strings.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Validate reports structural malformation. A zero-row table is valid.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("source table is nil")
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("source %q has no columns", t.Name)
	}
	return nil
}

func padRow(rec []string, n int) []string {
	if len(rec) == n {
		return rec
	}
	out := make([]string, n)
	copy(out, rec)
	return out
}
