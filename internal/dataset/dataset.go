// Package dataset turns a raw source table into the canonical in-memory
// survey table and answers filter queries over it.
package dataset

import (
	"fmt"

	"github.com/aipulse/aipulse-cli/internal/schema"
	"github.com/aipulse/aipulse-cli/internal/source"
)

// Record is one respondent's canonicalized answers, keyed by canonical field
// name for recognized columns and by the original header for pass-through
// columns. The derived rating is absent (HasRating false) when the raw answer
// did not parse as a number or the question was never asked.
type Record struct {
	Values    map[string]string
	RatingNum float64
	HasRating bool
}

// Value returns the canonical value for a column, or the missing sentinel if
// the respondent has no entry for it.
func (r Record) Value(col string) string {
	if v, ok := r.Values[col]; ok {
		return v
	}
	return schema.Missing
}

// Dataset is an ordered canonical table. It is built once per source and
// never mutated; filtering produces a new view.
type Dataset struct {
	Name    string
	Columns []string
	Records []Record
}

// Len returns the row count.
func (d *Dataset) Len() int { return len(d.Records) }

// HasColumn reports whether the dataset carries the named column.
func (d *Dataset) HasColumn(col string) bool {
	for _, c := range d.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Build projects a raw table through the schema normalizer and value
// canonicalizer. Rows and columns are never dropped: unrecognized columns
// pass through under their original name.
func Build(tbl *source.Table) (*Dataset, error) {
	if err := tbl.Validate(); err != nil {
		return nil, fmt.Errorf("build dataset: %w", err)
	}

	type colPlan struct {
		name  string
		field schema.Field
		known bool
	}
	plans := make([]colPlan, len(tbl.Columns))
	ds := &Dataset{Name: tbl.Name}
	seen := map[string]bool{}
	for i, raw := range tbl.Columns {
		p := colPlan{name: raw}
		if f, ok := schema.NormalizeName(raw); ok {
			p.name = string(f)
			p.field = f
			p.known = true
		}
		plans[i] = p
		if !seen[p.name] {
			seen[p.name] = true
			ds.Columns = append(ds.Columns, p.name)
		}
	}

	ds.Records = make([]Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		rec := Record{Values: make(map[string]string, len(plans))}
		for i, p := range plans {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if p.known {
				rec.Values[p.name] = schema.Canonicalize(p.field, cell)
			} else {
				rec.Values[p.name] = schema.CanonicalizePassthrough(cell)
			}
		}
		if v, ok := rec.Values[string(schema.FieldAIUsageRating)]; ok {
			rec.RatingNum, rec.HasRating = schema.ParseRating(v)
		}
		ds.Records = append(ds.Records, rec)
	}
	return ds, nil
}

// DistinctValues returns the sorted-by-first-appearance distinct canonical
// values of a column, excluding the missing sentinel. Used to populate
// filter choices.
func (d *Dataset) DistinctValues(col string) []string {
	var out []string
	seen := map[string]bool{}
	for _, rec := range d.Records {
		v := rec.Value(col)
		if v == schema.Missing || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
