package charts

import (
	"fmt"

	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

// Bar creates a grouped bar provider plotting the named value columns per
// category, using labelColumn as the x axis.
func Bar(labelColumn string, series ...SeriesStyle) chart.TraceProvider {
	return &bar{labelColumn: labelColumn, series: series}
}

type bar struct {
	labelColumn string
	series      []SeriesStyle
}

func (b bar) Name() string {
	return "bar"
}

func (b bar) CreateTraces(df *core.Dataframe) ([]chart.Trace, error) {
	labels, err := df.Label(b.labelColumn)
	if err != nil {
		return nil, err
	}

	x := anyValues(labels.Values())

	traces := make([]chart.Trace, 0, len(b.series))
	for _, style := range b.series {
		values, err := df.Column(style.Column)
		if err != nil {
			return nil, err
		}

		if values.Length() != labels.Length() {
			return nil, fmt.Errorf("%q has %d values for %d categories: %w",
				style.Column, values.Length(), labels.Length(), core.ErrLengthMismatch)
		}

		traces = append(traces, chart.Trace{
			Type:   "bar",
			Name:   style.Column,
			X:      x,
			Y:      values.Values(),
			Marker: markerStyle(style.Color),
		})
	}

	return traces, nil
}
