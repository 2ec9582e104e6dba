// Package summary turns a user's materialized document and category set into
// chart-ready aggregates. All computations are pure and synchronous: they
// operate on a private snapshot already fetched and authorization-checked by
// the caller, so there is no I/O, locking or partial failure here.
package summary

import (
	"math"
	"time"
)

// Document is the aggregator's view of a receipt: when the purchase happened,
// how much was spent and which of the user's categories it is attached to.
type Document struct {
	Timestamp  time.Time
	Amount     float64
	Categories []string
}

// Snapshot bundles one user's full document and category set. Categories
// fixes the iteration order, which keeps color assignment deterministic.
type Snapshot struct {
	Categories []string
	Documents  []Document
}

// Mode selects how a multi-category document's amount is attributed.
type Mode int

const (
	// Split divides the amount evenly across the document's categories.
	Split Mode = iota
	// Combo credits the full amount to every attached category.
	Combo
)

// chartPalette is cycled in category-iteration order so the same category
// keeps the same color across recomputations.
var chartPalette = []string{
	"#339af0", // blue
	"#ff6b6b", // red
	"#51cf66", // green
	"#fcc419", // yellow
	"#9775fa", // violet
	"#20c997", // teal
	"#f783ac", // pink
	"#748ffc", // indigo
	"#63e6be", // cyan
	"#ffa94d", // orange
}

// Aggregate reduces the snapshot into per-category totals for both modes over
// an inclusive [start, end] window; a nil bound means unbounded on that side.
// Every known category starts at 0. A document with no categories cannot
// occur once the Other fallback has been applied, but if one slips through it
// contributes nothing rather than dividing by zero.
func Aggregate(snap Snapshot, start, end *time.Time) (split, combo map[string]float64) {
	split = make(map[string]float64, len(snap.Categories))
	combo = make(map[string]float64, len(snap.Categories))
	for _, name := range snap.Categories {
		split[name] = 0
		combo[name] = 0
	}

	for _, doc := range snap.Documents {
		if !inWindow(doc.Timestamp, start, end) {
			continue
		}
		n := len(doc.Categories)
		if n == 0 {
			continue
		}
		share := doc.Amount / float64(n)
		for _, name := range doc.Categories {
			split[name] += share
			combo[name] += doc.Amount
		}
	}

	return split, combo
}

func inWindow(t time.Time, start, end *time.Time) bool {
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

// Slice is one donut-chart segment.
type Slice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// ChartData produces the donut representation of a window: values rounded to
// 2 decimals, zero-spend categories omitted, colors cycled through the fixed
// palette in category-iteration order.
func ChartData(snap Snapshot, start, end *time.Time) (split, combo []Slice) {
	splitMap, comboMap := Aggregate(snap, start, end)
	return toSlices(snap.Categories, splitMap), toSlices(snap.Categories, comboMap)
}

func toSlices(categories []string, totals map[string]float64) []Slice {
	slices := make([]Slice, 0, len(categories))
	for i, name := range categories {
		value := round2(totals[name])
		if value <= 0 {
			continue
		}
		slices = append(slices, Slice{
			Name:  name,
			Value: value,
			Color: chartPalette[i%len(chartPalette)],
		})
	}
	return slices
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
