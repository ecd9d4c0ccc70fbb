// Package charts provides the built-in trace providers: each chart kind is a
// small struct created through a constructor that holds its formatting
// configuration and turns a dataframe into plotly traces on demand.
package charts

import (
	"time"

	"github.com/samber/lo"

	"github.com/diorw/parade-server/chart"
)

// SeriesStyle names one value column to plot and the color to draw it with.
// An empty color leaves the choice to the frontend palette.
type SeriesStyle struct {
	Column string
	Color  string
}

// timeAxis converts a time index into x values for the frontend.
func timeAxis(times []time.Time) []any {
	return lo.Map(times, func(t time.Time, _ int) any {
		return t.Format(time.RFC3339)
	})
}

// anyValues widens a typed slice for use as trace x values.
func anyValues[T any](values []T) []any {
	return lo.Map(values, func(v T, _ int) any {
		return any(v)
	})
}

func lineStyle(color string) *chart.LineStyle {
	if color == "" {
		return nil
	}

	return &chart.LineStyle{Color: color}
}

func markerStyle(color string) *chart.MarkerStyle {
	if color == "" {
		return nil
	}

	return &chart.MarkerStyle{Color: color}
}
