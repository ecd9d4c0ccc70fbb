package charts

import (
	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

// Line creates a multi-series line provider plotting the named value columns
// against the dataframe time index.
func Line(series ...SeriesStyle) chart.TraceProvider {
	return &line{series: series, mode: "lines"}
}

// Scatter is like Line but draws point markers instead of connecting lines.
func Scatter(series ...SeriesStyle) chart.TraceProvider {
	return &line{series: series, mode: "markers"}
}

type line struct {
	series []SeriesStyle
	mode   string
}

// Name returns the chart kind identifier
func (l line) Name() string {
	if l.mode == "markers" {
		return "scatter"
	}

	return "line"
}

// CreateTraces produces one scatter trace per configured series
func (l line) CreateTraces(df *core.Dataframe) ([]chart.Trace, error) {
	x := timeAxis(df.Time)

	traces := make([]chart.Trace, 0, len(l.series))
	for _, style := range l.series {
		values, err := df.Column(style.Column)
		if err != nil {
			return nil, err
		}

		trace := chart.Trace{
			Type: "scatter",
			Name: style.Column,
			Mode: l.mode,
			X:    x,
			Y:    values.Values(),
		}
		if l.mode == "markers" {
			trace.Marker = markerStyle(style.Color)
		} else {
			trace.Line = lineStyle(style.Color)
		}

		traces = append(traces, trace)
	}

	return traces, nil
}
