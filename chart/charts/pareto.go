package charts

import (
	"fmt"
	"sort"

	"github.com/StudioSol/set"
	"gonum.org/v1/gonum/floats"

	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

// Pareto creates a pareto provider: per-category totals as descending bars
// with a cumulative-percent overlay line on a secondary y axis. A limit above
// zero caps the number of plotted categories; ties and remaining categories
// are dropped, not aggregated.
func Pareto(labelColumn, valueColumn string, limit int, barColor, lineColor string) chart.TraceProvider {
	return &pareto{
		labelColumn: labelColumn,
		valueColumn: valueColumn,
		limit:       limit,
		barColor:    barColor,
		lineColor:   lineColor,
	}
}

type pareto struct {
	labelColumn string
	valueColumn string
	limit       int
	barColor    string
	lineColor   string
}

func (p pareto) Name() string {
	return "pareto"
}

func (p pareto) CreateTraces(df *core.Dataframe) ([]chart.Trace, error) {
	labels, err := df.Label(p.labelColumn)
	if err != nil {
		return nil, err
	}

	values, err := df.Column(p.valueColumn)
	if err != nil {
		return nil, err
	}

	if labels.Length() != values.Length() {
		return nil, fmt.Errorf("%q has %d values for %d labels: %w",
			p.valueColumn, values.Length(), labels.Length(), core.ErrLengthMismatch)
	}

	// First-seen order keeps the aggregation deterministic before sorting
	categories := set.NewLinkedHashSetString()
	totals := make(map[string]float64)
	for i, label := range labels {
		categories.Add(label)
		totals[label] += values[i]
	}

	ordered := make([]string, 0, categories.Length())
	for category := range categories.Iter() {
		ordered = append(ordered, category)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return totals[ordered[i]] > totals[ordered[j]]
	})

	grandTotal := floats.Sum(values)

	if p.limit > 0 && len(ordered) > p.limit {
		ordered = ordered[:p.limit]
	}

	sums := make([]float64, len(ordered))
	for i, category := range ordered {
		sums[i] = totals[category]
	}

	cumulative := make([]float64, len(sums))
	floats.CumSum(cumulative, sums)

	percents := make([]float64, len(cumulative))
	if grandTotal > 0 {
		for i, c := range cumulative {
			percents[i] = c / grandTotal * 100
		}
	}

	x := anyValues(ordered)

	return []chart.Trace{
		{
			Type:   "bar",
			Name:   p.valueColumn,
			X:      x,
			Y:      sums,
			Marker: markerStyle(p.barColor),
		},
		{
			Type:  "scatter",
			Name:  "cumulative %",
			Mode:  "lines+markers",
			X:     x,
			Y:     percents,
			YAxis: "y2",
			Line:  lineStyle(p.lineColor),
		},
	}, nil
}

// CustomizeLayout adds the secondary percent axis the overlay line plots
// against.
func (p pareto) CustomizeLayout(layout chart.Layout) {
	layout["yaxis2"] = chart.Layout{
		"overlaying": "y",
		"side":       "right",
		"range":      []any{0.0, 100.0},
		"title":      "cumulative %",
		"showgrid":   false,
	}
}
