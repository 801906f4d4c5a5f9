// Package stats provides the pure summary functions that feed KPI and chart
// output. Every function tolerates a zero-row dataset and returns a defined
// neutral result instead of failing.
package stats

import (
	"sort"

	"github.com/aipulse/aipulse-cli/internal/dataset"
	"github.com/aipulse/aipulse-cli/internal/schema"
)

// CategoryCount is one (category, count) pair of a frequency table, the shape
// bar and pie renderers consume.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Matrix is a two-way count table with row and column labels, the shape
// heatmap renderers consume.
type Matrix struct {
	RowLabels []string `json:"row_labels"`
	ColLabels []string `json:"col_labels"`
	Counts    [][]int  `json:"counts"` // Counts[i][j] pairs RowLabels[i] with ColLabels[j]
}

// MeanRating returns the arithmetic mean of the derived rating column over
// rows where it is present. ok is false when no row carries a rating.
func MeanRating(ds *dataset.Dataset) (mean float64, ok bool) {
	var sum float64
	var n int
	for _, rec := range ds.Records {
		if rec.HasRating {
			sum += rec.RatingNum
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ValueFrequency counts every row's canonical value for the column exactly
// once, the missing sentinel included. Results are sorted by descending
// count, ties by value.
func ValueFrequency(ds *dataset.Dataset, col string) []CategoryCount {
	counts := map[string]int{}
	for _, rec := range ds.Records {
		counts[rec.Value(col)]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Value < out[j].Value
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// RateEquals returns the fraction of rows whose canonical value for the
// column equals target. An empty dataset yields 0, never a division error.
func RateEquals(ds *dataset.Dataset, col, target string) float64 {
	if ds.Len() == 0 {
		return 0
	}
	var n int
	for _, rec := range ds.Records {
		if rec.Value(col) == target {
			n++
		}
	}
	return float64(n) / float64(ds.Len())
}

// Contingency builds the two-way count table over the observed values of two
// columns, restricted to rows where both answers are present. Labels are
// sorted for stable output.
func Contingency(ds *dataset.Dataset, rowCol, colCol string) Matrix {
	rowSeen := map[string]bool{}
	colSeen := map[string]bool{}
	type pair struct{ r, c string }
	counts := map[pair]int{}
	for _, rec := range ds.Records {
		r := rec.Value(rowCol)
		c := rec.Value(colCol)
		if r == schema.Missing || c == schema.Missing {
			continue
		}
		rowSeen[r] = true
		colSeen[c] = true
		counts[pair{r, c}]++
	}
	m := Matrix{
		RowLabels: sortedKeys(rowSeen),
		ColLabels: sortedKeys(colSeen),
	}
	m.Counts = make([][]int, len(m.RowLabels))
	for i, r := range m.RowLabels {
		m.Counts[i] = make([]int, len(m.ColLabels))
		for j, c := range m.ColLabels {
			m.Counts[i][j] = counts[pair{r, c}]
		}
	}
	return m
}

// GroupMean maps each distinct value of the group column to the mean derived
// rating within that group. Groups with no parsed rating are omitted.
func GroupMean(ds *dataset.Dataset, groupCol string) []GroupStat {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, rec := range ds.Records {
		if !rec.HasRating {
			continue
		}
		g := rec.Value(groupCol)
		sums[g] += rec.RatingNum
		counts[g]++
	}
	out := make([]GroupStat, 0, len(counts))
	for g, n := range counts {
		out = append(out, GroupStat{Group: g, Count: n, Mean: sums[g] / float64(n)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Group < out[j].Group })
	return out
}

// GroupStat is one group's aggregate in a GroupMean result.
type GroupStat struct {
	Group string  `json:"group"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
}

// RatingHistogram buckets the derived rating into integer bins 1..5, the
// shape the usage histogram renders. Out-of-range ratings land in the
// nearest bin.
func RatingHistogram(ds *dataset.Dataset) []CategoryCount {
	bins := [5]int{}
	for _, rec := range ds.Records {
		if !rec.HasRating {
			continue
		}
		i := int(rec.RatingNum) - 1
		if i < 0 {
			i = 0
		}
		if i > 4 {
			i = 4
		}
		bins[i]++
	}
	out := make([]CategoryCount, 5)
	for i, n := range bins {
		out[i] = CategoryCount{Value: ratingLabel(i + 1), Count: n}
	}
	return out
}

func ratingLabel(n int) string {
	return string(rune('0' + n))
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
