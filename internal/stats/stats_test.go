package stats_test

import (
	"math"
	"testing"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/source"
	"github.com/aipulse/aipulse-cli/internal/stats"
)

func build(t *testing.T, cols []string, rows [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Build(&source.Table{Name: "t", Columns: cols, Rows: rows})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds
}

func TestMeanRating(t *testing.T) {
	ds := build(t, []string{"AI_USAGE_RATING"}, [][]string{{"2"}, {"4"}, {"often"}, {""}})
	mean, ok := stats.MeanRating(ds)
	if !ok || math.Abs(mean-3) > 1e-9 {
		t.Fatalf("MeanRating = %v, %v; want 3, true", mean, ok)
	}
}

func TestMeanRatingEmptyDataset(t *testing.T) {
	ds := build(t, []string{"AI_USAGE_RATING"}, nil)
	if _, ok := stats.MeanRating(ds); ok {
		t.Fatal("MeanRating on empty dataset should report no result")
	}
	// All-unparsable ratings behave the same way.
	ds = build(t, []string{"AI_USAGE_RATING"}, [][]string{{"often"}, {""}})
	if _, ok := stats.MeanRating(ds); ok {
		t.Fatal("MeanRating with no parsed ratings should report no result")
	}
}

func TestValueFrequency(t *testing.T) {
	ds := build(t, []string{"WANT_MORE_AI"}, [][]string{{"Yes"}, {"Yes"}, {"No"}, {""}})
	got := stats.ValueFrequency(ds, "WANT_MORE_AI")
	want := map[string]int{"Yes": 2, "No": 1, "Not Answered": 1}
	if len(got) != len(want) {
		t.Fatalf("ValueFrequency = %v", got)
	}
	total := 0
	for _, p := range got {
		if want[p.Value] != p.Count {
			t.Errorf("%s = %d; want %d", p.Value, p.Count, want[p.Value])
		}
		total += p.Count
	}
	if total != ds.Len() {
		t.Fatalf("frequency covers %d rows; want %d", total, ds.Len())
	}
	// Sorted by descending count.
	if got[0].Value != "Yes" {
		t.Fatalf("top value = %s; want Yes", got[0].Value)
	}
}

func TestRateEquals(t *testing.T) {
	ds := build(t, []string{"TRUST_AI"}, [][]string{{"yes"}, {"no"}, {"yes"}, {"maybe"}})
	if got := stats.RateEquals(ds, "TRUST_AI", "Yes"); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("RateEquals = %v; want 0.5", got)
	}
	empty := build(t, []string{"TRUST_AI"}, nil)
	if got := stats.RateEquals(empty, "TRUST_AI", "Yes"); got != 0 {
		t.Fatalf("RateEquals on empty dataset = %v; want 0", got)
	}
}

func TestContingency(t *testing.T) {
	ds := build(t, []string{"TRUST_AI", "AI_USAGE_RATING"}, [][]string{
		{"yes", "5"},
		{"yes", "5"},
		{"no", "2"},
		{"yes", ""},   // missing rating excluded
		{"", "3"},     // missing trust excluded
	})
	m := stats.Contingency(ds, "TRUST_AI", "AI_USAGE_RATING")
	if len(m.RowLabels) != 2 || len(m.ColLabels) != 2 {
		t.Fatalf("labels = %v x %v", m.RowLabels, m.ColLabels)
	}
	at := func(r, c string) int {
		for i, rl := range m.RowLabels {
			for j, cl := range m.ColLabels {
				if rl == r && cl == c {
					return m.Counts[i][j]
				}
			}
		}
		t.Fatalf("cell (%s,%s) not found", r, c)
		return 0
	}
	if at("Yes", "5") != 2 || at("No", "2") != 1 || at("Yes", "2") != 0 || at("No", "5") != 0 {
		t.Fatalf("unexpected counts: %v", m.Counts)
	}
}

func TestGroupMean(t *testing.T) {
	ds := build(t, []string{"GENDER", "AI_USAGE_RATING"}, [][]string{
		{"female", "4"},
		{"female", "2"},
		{"male", "5"},
		{"male", "often"}, // no parsed rating
		{"other", ""},     // group with zero ratings omitted
	})
	got := stats.GroupMean(ds, "GENDER")
	if len(got) != 2 {
		t.Fatalf("groups = %v", got)
	}
	if got[0].Group != "Female" || math.Abs(got[0].Mean-3) > 1e-9 || got[0].Count != 2 {
		t.Errorf("female group = %+v", got[0])
	}
	if got[1].Group != "Male" || got[1].Mean != 5 || got[1].Count != 1 {
		t.Errorf("male group = %+v", got[1])
	}
}

func TestRatingHistogram(t *testing.T) {
	ds := build(t, []string{"AI_USAGE_RATING"}, [][]string{
		{"1"}, {"1"}, {"3"}, {"5"}, {"often"}, {""},
	})
	got := stats.RatingHistogram(ds)
	if len(got) != 5 {
		t.Fatalf("buckets = %d; want 5", len(got))
	}
	counts := map[string]int{}
	for _, p := range got {
		counts[p.Value] = p.Count
	}
	if counts["1"] != 2 || counts["3"] != 1 || counts["5"] != 1 || counts["2"] != 0 || counts["4"] != 0 {
		t.Fatalf("histogram = %v", got)
	}
}
