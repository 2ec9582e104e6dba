package summary

import (
	"errors"
	"testing"
	"time"
)

func newTestBuilder(t *testing.T) *ComparisonBuilder {
	t.Helper()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	return NewComparisonBuilder(testSnapshot(), now)
}

func TestBuilderSeedsTwoPeriods(t *testing.T) {
	b := newTestBuilder(t)
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}

	labels := b.Labels()
	if labels[0] != "This Week" || labels[1] != "Last Week" {
		t.Errorf("labels = %v", labels)
	}

	start, end, err := b.Window(0)
	if err != nil || start == nil || end == nil {
		t.Fatalf("Window(0): start=%v end=%v err=%v", start, end, err)
	}
	if end.Sub(*start) != 7*24*time.Hour {
		t.Errorf("seeded window length = %v, want 168h", end.Sub(*start))
	}
}

func TestBuilderCustomLabelsRenumber(t *testing.T) {
	b := newTestBuilder(t)

	start := day(1)
	end := day(5)
	b.Add(&start, &end)
	b.Add(&start, nil)
	b.Add(nil, &end)

	labels := b.Labels()
	want := []string{"This Week", "Last Week", "Custom Period 1", "Custom Period 2", "Custom Period 3"}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], label)
		}
	}

	if err := b.Remove(2); err != nil {
		t.Fatalf("Remove(2): %v", err)
	}

	labels = b.Labels()
	want = []string{"This Week", "Last Week", "Custom Period 1", "Custom Period 2"}
	if len(labels) != len(want) {
		t.Fatalf("len(labels) = %d, want %d", len(labels), len(want))
	}
	for i, label := range want {
		if labels[i] != label {
			t.Errorf("after remove labels[%d] = %q, want %q", i, labels[i], label)
		}
	}
}

func TestBuilderRemoveSeeded(t *testing.T) {
	b := newTestBuilder(t)
	for _, index := range []int{0, 1} {
		if err := b.Remove(index); !errors.Is(err, ErrSeededPeriod) {
			t.Errorf("Remove(%d) = %v, want ErrSeededPeriod", index, err)
		}
	}
	if err := b.Remove(99); !errors.Is(err, ErrPeriodIndex) {
		t.Errorf("Remove(99) = %v, want ErrPeriodIndex", err)
	}
}

func TestBuilderSetBoundsRecomputes(t *testing.T) {
	b := newTestBuilder(t)

	start := day(1)
	end := day(1)
	index := b.Add(&start, &end)

	rows := b.Rows(Split)
	if got := rowValue(rows, "Groceries", periodLabel(index)); got != 90 {
		t.Fatalf("initial window value = %v, want 90", got)
	}

	newEnd := day(10)
	if err := b.SetEnd(index, &newEnd); err != nil {
		t.Fatalf("SetEnd: %v", err)
	}

	rows = b.Rows(Split)
	if got := rowValue(rows, "Groceries", periodLabel(index)); got != 130 {
		t.Errorf("widened window value = %v, want 130", got)
	}
}

func TestBuilderRowsIncludeZeroCategories(t *testing.T) {
	b := newTestBuilder(t)
	rows := b.Rows(Combo)

	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	for _, row := range rows {
		if len(row.Values) != b.Len() {
			t.Errorf("row %q has %d values, want %d", row.Category, len(row.Values), b.Len())
		}
	}
}

func TestBuilderSeriesColors(t *testing.T) {
	b := newTestBuilder(t)
	start := day(1)
	b.Add(&start, nil)

	series := b.Series()
	if len(series) != 3 {
		t.Fatalf("len(series) = %d, want 3", len(series))
	}
	for i, s := range series {
		if s.Name != periodLabel(i) {
			t.Errorf("series[%d].Name = %q", i, s.Name)
		}
		if s.Color == "" {
			t.Errorf("series[%d] missing color", i)
		}
	}
}

func rowValue(rows []Row, category, label string) float64 {
	for _, row := range rows {
		if row.Category == category {
			return row.Values[label]
		}
	}
	return -1
}
