package summary

import (
	"math"
	"testing"
)

func TestCumulativeSeriesEmpty(t *testing.T) {
	if got := CumulativeSeries(Snapshot{Categories: []string{"Other"}}); got != nil {
		t.Fatalf("expected nil series for no documents, got %v", got)
	}
}

func TestCumulativeSeriesAnchorPoint(t *testing.T) {
	points := CumulativeSeries(testSnapshot())
	if len(points) == 0 {
		t.Fatal("expected points")
	}

	anchor := points[0]
	wantDate := day(1).AddDate(0, 0, -1)
	if anchor.Date.Year() != wantDate.Year() || anchor.Date.YearDay() != wantDate.YearDay() {
		t.Errorf("anchor date = %v, want day before %v", anchor.Date, day(1))
	}
	for name, v := range anchor.Values {
		if v != 0 {
			t.Errorf("anchor value for %q = %v, want 0", name, v)
		}
	}
}

func TestCumulativeSeriesMonotonic(t *testing.T) {
	points := CumulativeSeries(testSnapshot())

	// One point per distinct day plus the anchor.
	if len(points) != 4 {
		t.Fatalf("len(points) = %d, want 4", len(points))
	}

	for i := 1; i < len(points); i++ {
		if !points[i-1].Date.Before(points[i].Date) {
			t.Errorf("points out of order at %d", i)
		}
		for name, v := range points[i].Values {
			if v < points[i-1].Values[name] {
				t.Errorf("cumulative value for %q decreased at %d", name, i)
			}
		}
	}
}

func TestCumulativeSeriesFinalEqualsAllTimeSplit(t *testing.T) {
	snap := testSnapshot()
	points := CumulativeSeries(snap)
	split, _ := Aggregate(snap, nil, nil)

	final := points[len(points)-1].Values
	for _, name := range snap.Categories {
		if math.Abs(final[name]-round2(split[name])) > 1e-9 {
			t.Errorf("final[%s] = %v, want %v", name, final[name], split[name])
		}
	}
}

func TestCumulativeSeriesKeepsZeroCategories(t *testing.T) {
	snap := Snapshot{
		Categories: []string{"Other", "Unused"},
		Documents:  []Document{{Timestamp: day(3), Amount: 10, Categories: []string{"Other"}}},
	}
	points := CumulativeSeries(snap)
	for _, p := range points {
		if _, ok := p.Values["Unused"]; !ok {
			t.Fatalf("zero-spend category missing from point %v", p.Date)
		}
	}
}
