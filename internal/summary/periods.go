package summary

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSeededPeriod is returned when removing "This Week" or "Last Week".
	ErrSeededPeriod = errors.New("seeded periods cannot be removed")
	// ErrPeriodIndex is returned for an index outside the period list.
	ErrPeriodIndex = errors.New("period index out of range")
)

// seededPeriodCount is the number of default periods at the front of the
// list: "This Week" and "Last Week".
const seededPeriodCount = 2

// periodColumn caches one period's aggregated column so edits only recompute
// the column they touch.
type periodColumn struct {
	start *time.Time
	end   *time.Time
	split map[string]float64
	combo map[string]float64
}

// ComparisonBuilder maintains the ordered period list behind the bar-chart
// comparison view. Display labels are derived from position, never stored, so
// removing a custom period renumbers the later "Custom Period N" labels
// without rewriting any keys.
type ComparisonBuilder struct {
	snap    Snapshot
	periods []*periodColumn
}

// NewComparisonBuilder seeds the two default periods: "This Week" covering
// the last 7 days up to now and "Last Week" covering days 14 through 7 ago.
func NewComparisonBuilder(snap Snapshot, now time.Time) *ComparisonBuilder {
	sevenDaysAgo := now.AddDate(0, 0, -7)
	fourteenDaysAgo := now.AddDate(0, 0, -14)

	b := &ComparisonBuilder{snap: snap}
	b.Add(&sevenDaysAgo, &now)
	b.Add(&fourteenDaysAgo, &sevenDaysAgo)
	return b
}

// Add appends a period with the given window (either bound may be nil) and
// returns its index.
func (b *ComparisonBuilder) Add(start, end *time.Time) int {
	col := &periodColumn{start: start, end: end}
	col.split, col.combo = Aggregate(b.snap, start, end)
	b.periods = append(b.periods, col)
	return len(b.periods) - 1
}

// Remove deletes the period at index. The two seeded periods are protected.
func (b *ComparisonBuilder) Remove(index int) error {
	if index < 0 || index >= len(b.periods) {
		return ErrPeriodIndex
	}
	if index < seededPeriodCount {
		return ErrSeededPeriod
	}
	b.periods = append(b.periods[:index], b.periods[index+1:]...)
	return nil
}

// SetStart replaces the period's start bound and recomputes only that column.
func (b *ComparisonBuilder) SetStart(index int, start *time.Time) error {
	if index < 0 || index >= len(b.periods) {
		return ErrPeriodIndex
	}
	col := b.periods[index]
	col.start = start
	col.split, col.combo = Aggregate(b.snap, col.start, col.end)
	return nil
}

// SetEnd replaces the period's end bound and recomputes only that column.
func (b *ComparisonBuilder) SetEnd(index int, end *time.Time) error {
	if index < 0 || index >= len(b.periods) {
		return ErrPeriodIndex
	}
	col := b.periods[index]
	col.end = end
	col.split, col.combo = Aggregate(b.snap, col.start, col.end)
	return nil
}

// Len reports the number of periods, seeded ones included.
func (b *ComparisonBuilder) Len() int {
	return len(b.periods)
}

// Window returns the period's bounds.
func (b *ComparisonBuilder) Window(index int) (start, end *time.Time, err error) {
	if index < 0 || index >= len(b.periods) {
		return nil, nil, ErrPeriodIndex
	}
	return b.periods[index].start, b.periods[index].end, nil
}

// Labels derives the display names by position: "This Week", "Last Week",
// then "Custom Period 1" onward, always contiguous.
func (b *ComparisonBuilder) Labels() []string {
	labels := make([]string, len(b.periods))
	for i := range b.periods {
		labels[i] = periodLabel(i)
	}
	return labels
}

func periodLabel(index int) string {
	switch index {
	case 0:
		return "This Week"
	case 1:
		return "Last Week"
	default:
		return fmt.Sprintf("Custom Period %d", index-1)
	}
}

// SeriesInfo describes one period column for the chart legend. Color cycling
// by index can repeat on long lists, matching the donut palette behavior.
type SeriesInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (b *ComparisonBuilder) Series() []SeriesInfo {
	series := make([]SeriesInfo, len(b.periods))
	for i := range b.periods {
		series[i] = SeriesInfo{
			Name:  periodLabel(i),
			Color: chartPalette[(i+1)%len(chartPalette)],
		}
	}
	return series
}

// Row is one category's line in the comparison table: the category name and
// one rounded value per period label.
type Row struct {
	Category string             `json:"category"`
	Values   map[string]float64 `json:"values"`
}

// Rows assembles the wide comparison table for the given mode. Every category
// appears, including zero-spend ones, so the bar chart's axis is stable.
func (b *ComparisonBuilder) Rows(mode Mode) []Row {
	rows := make([]Row, 0, len(b.snap.Categories))
	for _, name := range b.snap.Categories {
		values := make(map[string]float64, len(b.periods))
		for i, col := range b.periods {
			totals := col.split
			if mode == Combo {
				totals = col.combo
			}
			values[periodLabel(i)] = round2(totals[name])
		}
		rows = append(rows, Row{Category: name, Values: values})
	}
	return rows
}
