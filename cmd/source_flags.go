package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/schema"
	"github.com/aipulse/aipulse-cli/internal/source"
)

// sourceFlags selects where the raw table comes from: a delimited file
// argument or a warehouse table. Both materialize into the same shape.
type sourceFlags struct {
	latin1    bool
	delimiter string
	dbPath    string
	dbTable   string
	maxRows   int
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&s.latin1, "latin1", false, "force ISO-8859-1 decoding of the CSV (auto-detected otherwise)")
	cmd.Flags().StringVar(&s.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	cmd.Flags().StringVar(&s.dbPath, "db", "", "read from a SQLite warehouse file instead of a CSV")
	cmd.Flags().StringVar(&s.dbTable, "table", "", "warehouse table to read (with --db)")
	cmd.Flags().IntVar(&s.maxRows, "max-rows", 0, "maximum rows to read (0 = unlimited)")
}

// load materializes the raw table from whichever source the flags select.
func (s *sourceFlags) load(ctx context.Context, args []string) (*source.Table, error) {
	if s.dbPath != "" {
		return source.ReadSQLite(ctx, s.dbPath, source.SQLiteOptions{Table: s.dbTable, MaxRows: s.maxRows})
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("a CSV file argument or --db is required")
	}
	opt := source.CSVOptions{Latin1: s.latin1, MaxRows: s.maxRows}
	switch s.delimiter {
	case "":
	case ",":
		opt.Delimiter = ','
	case ";":
		opt.Delimiter = ';'
	case "\t", "tab":
		opt.Delimiter = '\t'
	default:
		return nil, fmt.Errorf("unsupported --delimiter: %s", s.delimiter)
	}
	return source.ReadCSV(args[0], opt)
}

// filterFlags carry the shared per-field selections plus the generic
// --where clauses. AND across fields, OR within a field.
type filterFlags struct {
	age        []string
	gender     []string
	education  []string
	employment []string
	where      []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.age, "age", nil, "age range values to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.gender, "gender", nil, "gender values to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.education, "education", nil, "education level values to keep (repeatable)")
	cmd.Flags().StringSliceVar(&f.employment, "employment", nil, "employment status values to keep (repeatable)")
	cmd.Flags().StringArrayVar(&f.where, "where", nil, "generic filter COLUMN=v1,v2 (repeatable)")
}

func (f *filterFlags) spec() (dataset.FilterSpec, error) {
	spec, err := dataset.ParseFilterSpec(f.where)
	if err != nil {
		return nil, err
	}
	add := func(field schema.Field, vals []string) {
		if len(vals) > 0 {
			spec[string(field)] = append(spec[string(field)], vals...)
		}
	}
	add(schema.FieldAgeRange, f.age)
	add(schema.FieldGender, f.gender)
	add(schema.FieldEducationLevel, f.education)
	add(schema.FieldEmploymentStatus, f.employment)
	return spec, nil
}

// loadFiltered builds the canonical dataset and applies the selected filters.
// Returns the filtered view and the unfiltered row count for display.
func loadFiltered(ctx context.Context, src *sourceFlags, flt *filterFlags, args []string) (*dataset.Dataset, int, error) {
	tbl, err := src.load(ctx, args)
	if err != nil {
		return nil, 0, err
	}
	ds, err := dataset.Build(tbl)
	if err != nil {
		return nil, 0, err
	}
	spec, err := flt.spec()
	if err != nil {
		return nil, 0, err
	}
	return ds.Apply(spec), ds.Len(), nil
}
