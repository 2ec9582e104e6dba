package summary

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrNoChartData is returned when a window has nothing to draw.
var ErrNoChartData = errors.New("no data to chart")

// RenderDonutPNG renders one window's slices as a donut chart PNG.
func RenderDonutPNG(slices []Slice, title string) ([]byte, error) {
	if len(slices) == 0 {
		return nil, ErrNoChartData
	}

	values := make([]chart.Value, len(slices))
	for i, s := range slices {
		values[i] = chart.Value{
			Value: s.Value,
			Label: fmt.Sprintf("%s (%.2f)", s.Name, s.Value),
		}
	}

	graph := chart.DonutChart{
		Title:  title,
		Width:  512,
		Height: 512,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render donut chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderBarPNG renders one window's slices as a bar chart PNG.
func RenderBarPNG(slices []Slice, title string) ([]byte, error) {
	if len(slices) == 0 {
		return nil, ErrNoChartData
	}

	bars := make([]chart.Value, len(slices))
	for i, s := range slices {
		bars[i] = chart.Value{
			Value: s.Value,
			Label: s.Name,
		}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    max(256, 96*len(bars)),
		Height:   512,
		BarWidth: 60,
		Bars:     bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}
	return buf.Bytes(), nil
}
