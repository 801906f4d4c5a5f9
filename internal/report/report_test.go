package report_test

import (
	"strings"
	"testing"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/report"
	"github.com/aipulse/aipulse-cli/internal/source"
	"github.com/aipulse/aipulse-cli/internal/stats"
)

func build(t *testing.T, cols []string, rows [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Build(&source.Table{Name: "survey.csv", Columns: cols, Rows: rows})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return ds
}

func TestSummaryKPIs(t *testing.T) {
	ds := build(t,
		[]string{"TRUST_AI", "AI_USAGE_RATING", "WANT_MORE_AI"},
		[][]string{
			{"yes", "4", "yes"},
			{"no", "2", "no"},
		})
	md := report.Summary(ds, 0)
	for _, want := range []string{
		"[SURVEY SUMMARY]",
		"Rows: 2",
		"- Respondents: 2",
		"Avg AI usage rating (1-5): 3.00",
		"% Trust AI: 50.0%",
		"[USAGE & ADOPTION]",
		"[TRUST x USAGE RATING]",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("summary missing %q:\n%s", want, md)
		}
	}
}

func TestSummaryEmptyDataset(t *testing.T) {
	ds := build(t, []string{"TRUST_AI", "AI_USAGE_RATING"}, nil)
	md := report.Summary(ds, 0)
	if !strings.Contains(md, "Avg AI usage rating (1-5): -") {
		t.Fatalf("empty dataset KPI not neutral:\n%s", md)
	}
	if !strings.Contains(md, "% Trust AI: 0.0%") {
		t.Fatalf("empty dataset trust rate not zero:\n%s", md)
	}
}

func TestSummaryShowsFilteredCount(t *testing.T) {
	ds := build(t, []string{"GENDER"}, [][]string{{"female"}})
	md := report.Summary(ds, 10)
	if !strings.Contains(md, "Rows: 1 (filtered from 10)") {
		t.Fatalf("filtered count missing:\n%s", md)
	}
}

func TestPreviewBoundsRows(t *testing.T) {
	ds := build(t, []string{"GENDER"}, [][]string{{"a"}, {"b"}, {"c"}})
	md := report.Preview(ds, 2)
	// header + separator + 2 rows
	if got := strings.Count(strings.TrimSpace(md), "\n"); got != 3 {
		t.Fatalf("preview lines = %d:\n%s", got+1, md)
	}
}

func TestRenderMatrix(t *testing.T) {
	m := stats.Matrix{
		RowLabels: []string{"No", "Yes"},
		ColLabels: []string{"2", "5"},
		Counts:    [][]int{{1, 0}, {0, 2}},
	}
	md := report.RenderMatrix(m)
	for _, want := range []string{"No", "Yes", "2", "5"} {
		if !strings.Contains(md, want) {
			t.Errorf("matrix missing %q:\n%s", want, md)
		}
	}
	if report.RenderMatrix(stats.Matrix{}) != "(no overlapping answers)\n" {
		t.Error("empty matrix placeholder missing")
	}
}

func TestChartsShapes(t *testing.T) {
	ds := build(t,
		[]string{"TRUST_AI", "AI_USAGE_RATING", "WANT_MORE_AI", "ETHICAL_LIMITS"},
		[][]string{{"yes", "5", "yes", "yes"}})
	tables := report.Charts(ds)
	kinds := map[string]bool{}
	for _, tab := range tables {
		kinds[tab.Kind] = true
		if tab.Kind == "heatmap" && tab.Grid == nil {
			t.Errorf("heatmap %q has no grid", tab.Title)
		}
		if tab.Kind != "heatmap" && len(tab.Pairs) == 0 {
			t.Errorf("chart %q has no pairs", tab.Title)
		}
	}
	for _, k := range []string{"histogram", "bar", "pie", "heatmap"} {
		if !kinds[k] {
			t.Errorf("missing chart kind %s", k)
		}
	}
}

func TestFieldCatalogListsEveryField(t *testing.T) {
	md := report.FieldCatalog()
	for _, want := range []string{"AGE_RANGE", "TRUST_AI", "CHATGPT_TYPE", "AI_USAGE_RATING_NUM"} {
		if !strings.Contains(md, want) {
			t.Errorf("catalog missing %s", want)
		}
	}
}
