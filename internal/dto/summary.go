package dto

import "quikchek/internal/summary"

// WindowResponse holds one date window's donut data in both attribution modes.
type WindowResponse struct {
	Split []summary.Slice `json:"split"`
	Combo []summary.Slice `json:"combo"`
}

type SummaryResponse struct {
	SevenDays  WindowResponse  `json:"seven_days"`
	ThirtyDays WindowResponse  `json:"thirty_days"`
	AllTime    WindowResponse  `json:"all_time"`
	Custom     *WindowResponse `json:"custom,omitempty"`
}

type TimeSeriesResponse struct {
	Points []summary.SeriesPoint `json:"points"`
}

type PeriodResponse struct {
	Index  int     `json:"index"`
	Name   string  `json:"name"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	Seeded bool    `json:"seeded"`
}

type ComparisonResponse struct {
	Series  []summary.SeriesInfo `json:"series"`
	Split   []summary.Row        `json:"split"`
	Combo   []summary.Row        `json:"combo"`
	Periods []PeriodResponse     `json:"periods"`
}

type AddPeriodRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}

// UpdatePeriodRequest replaces either bound of a custom period; a nil field
// keeps the current value.
type UpdatePeriodRequest struct {
	Start *string `json:"start,omitempty"`
	End   *string `json:"end,omitempty"`
}
