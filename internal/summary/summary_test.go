package summary

import (
	"math"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, 3, d, 12, 0, 0, 0, time.UTC)
}

func testSnapshot() Snapshot {
	return Snapshot{
		Categories: []string{"Other", "Groceries", "Electronics"},
		Documents: []Document{
			{Timestamp: day(1), Amount: 90, Categories: []string{"Groceries"}},
			{Timestamp: day(5), Amount: 60, Categories: []string{"Groceries", "Electronics"}},
			{Timestamp: day(10), Amount: 30, Categories: []string{"Other", "Groceries", "Electronics"}},
		},
	}
}

func TestAggregateSplit(t *testing.T) {
	split, _ := Aggregate(testSnapshot(), nil, nil)

	want := map[string]float64{
		"Other":       10,
		"Groceries":   90 + 30 + 10,
		"Electronics": 30 + 10,
	}
	for name, value := range want {
		if math.Abs(split[name]-value) > 1e-9 {
			t.Errorf("split[%s] = %v, want %v", name, split[name], value)
		}
	}

	// Split shares of every document sum back to the total spend.
	var total float64
	for _, v := range split {
		total += v
	}
	if math.Abs(total-180) > 1e-9 {
		t.Errorf("split total = %v, want 180", total)
	}
}

func TestAggregateCombo(t *testing.T) {
	_, combo := Aggregate(testSnapshot(), nil, nil)

	want := map[string]float64{
		"Other":       30,
		"Groceries":   90 + 60 + 30,
		"Electronics": 60 + 30,
	}
	for name, value := range want {
		if combo[name] != value {
			t.Errorf("combo[%s] = %v, want %v", name, combo[name], value)
		}
	}
}

func TestAggregateWindowBoundsInclusive(t *testing.T) {
	snap := Snapshot{
		Categories: []string{"Other"},
		Documents: []Document{
			{Timestamp: day(1), Amount: 10, Categories: []string{"Other"}},
			{Timestamp: day(5), Amount: 20, Categories: []string{"Other"}},
			{Timestamp: day(9), Amount: 40, Categories: []string{"Other"}},
		},
	}

	start := day(1)
	end := day(5)
	split, _ := Aggregate(snap, &start, &end)
	if split["Other"] != 30 {
		t.Errorf("inclusive window total = %v, want 30", split["Other"])
	}

	// Disjoint windows partition the all-time total.
	start2 := day(6)
	rest, _ := Aggregate(snap, &start2, nil)
	all, _ := Aggregate(snap, nil, nil)
	if split["Other"]+rest["Other"] != all["Other"] {
		t.Errorf("windows not additive: %v + %v != %v", split["Other"], rest["Other"], all["Other"])
	}
}

func TestAggregateNoCategoriesDocument(t *testing.T) {
	snap := Snapshot{
		Categories: []string{"Other"},
		Documents:  []Document{{Timestamp: day(1), Amount: 50}},
	}
	split, combo := Aggregate(snap, nil, nil)
	if split["Other"] != 0 || combo["Other"] != 0 {
		t.Errorf("uncategorized document contributed: split=%v combo=%v", split["Other"], combo["Other"])
	}
}

func TestChartDataOmitsZeroCategories(t *testing.T) {
	split, combo := ChartData(testSnapshot(), nil, nil)

	for _, slices := range [][]Slice{split, combo} {
		for _, s := range slices {
			if s.Value <= 0 {
				t.Errorf("zero-value slice %q leaked into chart data", s.Name)
			}
			if s.Color == "" {
				t.Errorf("slice %q missing color", s.Name)
			}
		}
	}

	start := day(20)
	emptySplit, _ := ChartData(testSnapshot(), &start, nil)
	if len(emptySplit) != 0 {
		t.Errorf("expected no slices for empty window, got %d", len(emptySplit))
	}
}

func TestChartDataColorsStable(t *testing.T) {
	first, _ := ChartData(testSnapshot(), nil, nil)
	second, _ := ChartData(testSnapshot(), nil, nil)

	if len(first) != len(second) {
		t.Fatalf("slice counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Color != second[i].Color {
			t.Errorf("color for %q changed between runs", first[i].Name)
		}
	}
}
