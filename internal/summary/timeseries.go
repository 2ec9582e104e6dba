package summary

import (
	"sort"
	"time"
)

// SeriesPoint is one row of the cumulative area chart: a calendar day and
// every category's running total at the end of that day. Unlike the donut
// output, zero-spend categories are kept so the chart's key set is stable.
type SeriesPoint struct {
	Date   time.Time          `json:"date"`
	Values map[string]float64 `json:"values"`
}

// CumulativeSeries builds the area-chart series: documents are grouped by
// calendar day (time-of-day ignored), walked chronologically, and each day's
// split-mode contributions are added to per-category running sums. A zero
// point dated one day before the earliest document anchors the chart's left
// edge. Returns nil when the user has no documents.
func CumulativeSeries(snap Snapshot) []SeriesPoint {
	if len(snap.Documents) == 0 {
		return nil
	}

	docs := make([]Document, len(snap.Documents))
	copy(docs, snap.Documents)
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].Timestamp.Before(docs[j].Timestamp)
	})

	byDay := make(map[time.Time][]Document)
	var days []time.Time
	for _, doc := range docs {
		day := dayOf(doc.Timestamp)
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] = append(byDay[day], doc)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	cumulative := make(map[string]float64, len(snap.Categories))
	for _, name := range snap.Categories {
		cumulative[name] = 0
	}

	points := make([]SeriesPoint, 0, len(days)+1)
	points = append(points, SeriesPoint{
		Date:   days[0].AddDate(0, 0, -1),
		Values: snapshotValues(snap.Categories, cumulative),
	})

	for _, day := range days {
		for _, doc := range byDay[day] {
			n := len(doc.Categories)
			if n == 0 {
				continue
			}
			share := doc.Amount / float64(n)
			for _, name := range doc.Categories {
				cumulative[name] += share
			}
		}
		points = append(points, SeriesPoint{
			Date:   day,
			Values: snapshotValues(snap.Categories, cumulative),
		})
	}

	return points
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func snapshotValues(categories []string, totals map[string]float64) map[string]float64 {
	values := make(map[string]float64, len(categories))
	for _, name := range categories {
		values[name] = round2(totals[name])
	}
	return values
}
