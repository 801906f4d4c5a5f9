package dataset_test

import (
	"testing"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/schema"
	"github.com/aipulse/aipulse-cli/internal/source"
)

func TestBuildRoundTrip(t *testing.T) {
	tbl := &source.Table{
		Name:    "survey.csv",
		Columns: []string{"What is your age range?", "Do you generally trust artificial intelligence (AI)?"},
		Rows: [][]string{
			{"18-24", "yes"},
			{"25-34", "No"},
		},
	}
	ds, err := dataset.Build(tbl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ds.Len() != 2 {
		t.Fatalf("rows = %d; want 2", ds.Len())
	}
	want := []map[string]string{
		{"AGE_RANGE": "18-24", "TRUST_AI": "Yes"},
		{"AGE_RANGE": "25-34", "TRUST_AI": "No"},
	}
	for i, w := range want {
		for col, v := range w {
			if got := ds.Records[i].Value(col); got != v {
				t.Errorf("row %d %s = %q; want %q", i, col, got, v)
			}
		}
	}
}

func TestBuildPassThroughColumns(t *testing.T) {
	tbl := &source.Table{
		Name:    "survey.csv",
		Columns: []string{"Timestamp", "GENDER"},
		Rows:    [][]string{{"2024-01-01 10:00", "female"}},
	}
	ds, err := dataset.Build(tbl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ds.HasColumn("Timestamp") {
		t.Fatalf("pass-through column dropped: %v", ds.Columns)
	}
	if got := ds.Records[0].Value("Timestamp"); got != "2024-01-01 10:00" {
		t.Errorf("pass-through value = %q", got)
	}
	// Warehouse-style header resolves to the canonical field.
	if got := ds.Records[0].Value("GENDER"); got != "Female" {
		t.Errorf("GENDER = %q; want Female", got)
	}
}

func TestBuildDerivedRating(t *testing.T) {
	tbl := &source.Table{
		Name:    "survey.csv",
		Columns: []string{"AI_USAGE_RATING"},
		Rows:    [][]string{{"4"}, {"often"}, {""}},
	}
	ds, err := dataset.Build(tbl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !ds.Records[0].HasRating || ds.Records[0].RatingNum != 4 {
		t.Errorf("row 0 rating = %v, %v; want 4, true", ds.Records[0].RatingNum, ds.Records[0].HasRating)
	}
	// Unparsable and missing ratings are absent, not errors.
	for _, i := range []int{1, 2} {
		if ds.Records[i].HasRating {
			t.Errorf("row %d unexpectedly has a rating", i)
		}
	}
}

func TestBuildEmptyTableValid(t *testing.T) {
	ds, err := dataset.Build(&source.Table{Name: "empty.csv", Columns: []string{"GENDER"}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ds.Len() != 0 {
		t.Fatalf("rows = %d; want 0", ds.Len())
	}
}

func TestBuildMalformedTable(t *testing.T) {
	if _, err := dataset.Build(&source.Table{Name: "bad"}); err == nil {
		t.Fatal("expected error for table without columns")
	}
	if _, err := dataset.Build(nil); err == nil {
		t.Fatal("expected error for nil table")
	}
}

func TestBuildIdempotentOverCanonicalValues(t *testing.T) {
	tbl := &source.Table{
		Name:    "survey.csv",
		Columns: []string{"TRUST_AI", "EDUCATION_LEVEL"},
		Rows:    [][]string{{"y", "high school"}},
	}
	ds1, err := dataset.Build(tbl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Feed the canonical output back through the builder.
	tbl2 := &source.Table{
		Name:    "survey.csv",
		Columns: ds1.Columns,
		Rows:    [][]string{{ds1.Records[0].Value("TRUST_AI"), ds1.Records[0].Value("EDUCATION_LEVEL")}},
	}
	ds2, err := dataset.Build(tbl2)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, col := range ds1.Columns {
		if ds1.Records[0].Value(col) != ds2.Records[0].Value(col) {
			t.Errorf("%s changed on rebuild: %q vs %q", col, ds1.Records[0].Value(col), ds2.Records[0].Value(col))
		}
	}
}

func TestDistinctValues(t *testing.T) {
	tbl := &source.Table{
		Name:    "survey.csv",
		Columns: []string{"GENDER"},
		Rows:    [][]string{{"female"}, {"male"}, {"female"}, {""}},
	}
	ds, err := dataset.Build(tbl)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := ds.DistinctValues("GENDER")
	if len(got) != 2 || got[0] != "Female" || got[1] != "Male" {
		t.Fatalf("DistinctValues = %v", got)
	}
	for _, v := range got {
		if v == schema.Missing {
			t.Fatal("missing sentinel leaked into filter choices")
		}
	}
}
