// Package report renders dataset summaries and chart-ready tables as
// markdown. Output is compact enough to embed in prompts and readable as a
// standalone document.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/schema"
	"github.com/aipulse/aipulse-cli/internal/stats"
)

// chartSpec names one standard bar/pie table of the dashboard.
type chartSpec struct {
	Field schema.Field
	Title string
}

var usageCharts = []chartSpec{
	{schema.FieldWantMoreAI, "Would like to use more AI?"},
	{schema.FieldTrustAI, "General Trust in AI"},
}

var jobEthicsCharts = []chartSpec{
	{schema.FieldEliminateProfessions, "Could AI eliminate some professions?"},
	{schema.FieldOwnJobAffected, "Do you think your own job could be affected?"},
	{schema.FieldEthicalLimits, "Should AI be limited by ethical rules?"},
	{schema.FieldConsciousOneDay, "Could AI become conscious like humans?"},
}

var literacyCharts = []chartSpec{
	{schema.FieldNotAIApplication, "Which is NOT an AI application?"},
	{schema.FieldMLAlgorithm, "Which is a machine learning algorithm?"},
	{schema.FieldChatGPTType, "ChatGPT is an example of ..."},
}

// Summary renders the full dashboard report for a (possibly filtered)
// dataset: KPIs, usage and trust tables, the trust-by-rating contingency,
// and the job-impact and literacy frequency tables.
func Summary(ds *dataset.Dataset, baseRows int) string {
	var b strings.Builder
	b.WriteString("[SURVEY SUMMARY]\n")
	if ds.Name != "" {
		b.WriteString(fmt.Sprintf("Source: %s\n", ds.Name))
	}
	if baseRows > 0 && baseRows != ds.Len() {
		b.WriteString(fmt.Sprintf("Rows: %d (filtered from %d)\n", ds.Len(), baseRows))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", ds.Len()))
	}
	b.WriteString("\n[KPIS]\n")
	b.WriteString(fmt.Sprintf("- Respondents: %d\n", ds.Len()))
	if mean, ok := stats.MeanRating(ds); ok {
		b.WriteString(fmt.Sprintf("- Avg AI usage rating (1-5): %.2f\n", mean))
	} else {
		b.WriteString("- Avg AI usage rating (1-5): -\n")
	}
	trust := stats.RateEquals(ds, string(schema.FieldTrustAI), "Yes") * 100
	b.WriteString(fmt.Sprintf("- %% Trust AI: %.1f%%\n", trust))

	b.WriteString("\n[USAGE & ADOPTION]\n")
	writePairs(&b, "AI Usage Rating (1-5)", stats.RatingHistogram(ds))
	for _, c := range usageCharts {
		if ds.HasColumn(string(c.Field)) {
			writePairs(&b, c.Title, stats.ValueFrequency(ds, string(c.Field)))
		}
	}

	if ds.HasColumn(string(schema.FieldTrustAI)) {
		b.WriteString("\n[TRUST x USAGE RATING]\n")
		m := stats.Contingency(ds, string(schema.FieldTrustAI), string(schema.FieldAIUsageRating))
		b.WriteString(RenderMatrix(m))
	}

	b.WriteString("\n[JOB IMPACT & ETHICS]\n")
	for _, c := range jobEthicsCharts {
		if ds.HasColumn(string(c.Field)) {
			writePairs(&b, c.Title, stats.ValueFrequency(ds, string(c.Field)))
		}
	}

	b.WriteString("\n[AI LITERACY]\n")
	for _, c := range literacyCharts {
		if ds.HasColumn(string(c.Field)) {
			writePairs(&b, c.Title, stats.ValueFrequency(ds, string(c.Field)))
		}
	}
	return b.String()
}

// ChartTable is one chart-ready table with its display title.
type ChartTable struct {
	Title string                `json:"title"`
	Kind  string                `json:"kind"` // histogram|bar|pie|heatmap
	Pairs []stats.CategoryCount `json:"pairs,omitempty"`
	Grid  *stats.Matrix         `json:"grid,omitempty"`
}

// Charts computes every standard chart table over the dataset. The rendering
// layer draws them; this package only fixes their shapes.
func Charts(ds *dataset.Dataset) []ChartTable {
	out := []ChartTable{
		{Title: "AI Usage Rating (1-5)", Kind: "histogram", Pairs: stats.RatingHistogram(ds)},
	}
	add := func(specs []chartSpec, kind string) {
		for _, c := range specs {
			if !ds.HasColumn(string(c.Field)) {
				continue
			}
			out = append(out, ChartTable{Title: c.Title, Kind: kind, Pairs: stats.ValueFrequency(ds, string(c.Field))})
		}
	}
	add(usageCharts[:1], "pie") // WANT_MORE_AI
	add(usageCharts[1:], "bar") // TRUST_AI
	if ds.HasColumn(string(schema.FieldTrustAI)) {
		m := stats.Contingency(ds, string(schema.FieldTrustAI), string(schema.FieldAIUsageRating))
		out = append(out, ChartTable{Title: "Trust x AI Usage Rating", Kind: "heatmap", Grid: &m})
	}
	add(jobEthicsCharts, "bar")
	add(literacyCharts, "bar")
	return out
}

// Preview renders the first n rows as an aligned markdown table.
func Preview(ds *dataset.Dataset, n int) string {
	if n <= 0 || n > ds.Len() {
		n = ds.Len()
	}
	rows := make([][]string, 0, n+1)
	rows = append(rows, ds.Columns)
	for _, rec := range ds.Records[:n] {
		row := make([]string, len(ds.Columns))
		for i, c := range ds.Columns {
			row[i] = clip(rec.Value(c), 40)
		}
		rows = append(rows, row)
	}
	return renderTable(rows)
}

// GroupMeans renders the per-group mean rating table.
func GroupMeans(ds *dataset.Dataset, groupCol string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[MEAN RATING BY %s]\n", groupCol))
	for _, g := range stats.GroupMean(ds, groupCol) {
		b.WriteString(fmt.Sprintf("- %s: %.2f (n=%d)\n", g.Group, g.Mean, g.Count))
	}
	return b.String()
}

// RenderMatrix renders a contingency table with the column labels sorted
// along the header row.
func RenderMatrix(m stats.Matrix) string {
	if len(m.RowLabels) == 0 || len(m.ColLabels) == 0 {
		return "(no overlapping answers)\n"
	}
	rows := make([][]string, 0, len(m.RowLabels)+1)
	header := append([]string{""}, m.ColLabels...)
	rows = append(rows, header)
	for i, r := range m.RowLabels {
		row := make([]string, len(m.ColLabels)+1)
		row[0] = r
		for j := range m.ColLabels {
			row[j+1] = fmt.Sprintf("%d", m.Counts[i][j])
		}
		rows = append(rows, row)
	}
	return renderTable(rows)
}

func writePairs(b *strings.Builder, title string, pairs []stats.CategoryCount) {
	b.WriteString(fmt.Sprintf("%s:\n", title))
	for _, p := range pairs {
		b.WriteString(fmt.Sprintf("  - %s: %d\n", p.Value, p.Count))
	}
}

// renderTable writes a markdown table with display-width alignment so wide
// answer labels keep the pipes in a readable column.
func renderTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	ncol := len(rows[0])
	widths := make([]int, ncol)
	for _, row := range rows {
		for i := 0; i < ncol && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	var b strings.Builder
	writeRow := func(row []string) {
		b.WriteString("|")
		for i := 0; i < ncol; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := widths[i] - runewidth.StringWidth(cell)
			b.WriteString(" " + cell + strings.Repeat(" ", pad) + " |")
		}
		b.WriteString("\n")
	}
	writeRow(rows[0])
	b.WriteString("|")
	for i := 0; i < ncol; i++ {
		b.WriteString(" " + strings.Repeat("-", max(3, widths[i])) + " |")
	}
	b.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}
	return b.String()
}

func clip(s string, limit int) string {
	if len(s) <= limit {
		return safeCell(s)
	}
	return safeCell(s[:limit-3]) + "..."
}

func safeCell(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}

// FieldCatalog lists every canonical field with its long question form, for
// the fields command.
func FieldCatalog() string {
	var b strings.Builder
	b.WriteString("[CANONICAL FIELDS]\n")
	for _, f := range schema.All() {
		q := schema.Question(f)
		if q == "" {
			b.WriteString(fmt.Sprintf("- %s\n", f))
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %s\n", f, q))
	}
	b.WriteString(fmt.Sprintf("- %s (derived numeric)\n", schema.RatingNumColumn))
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
