package charts

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

// Histogram creates a histogram provider binning one value column server side
// into a bar trace with bins equal-width buckets.
func Histogram(column string, bins int, color string) chart.TraceProvider {
	return &histogram{column: column, bins: bins, color: color}
}

type histogram struct {
	column string
	bins   int
	color  string
}

func (h histogram) Name() string {
	return "histogram"
}

func (h histogram) CreateTraces(df *core.Dataframe) ([]chart.Trace, error) {
	if h.bins <= 0 {
		return nil, fmt.Errorf("charts: histogram needs a positive bin count, got %d", h.bins)
	}

	values, err := df.Column(h.column)
	if err != nil {
		return nil, err
	}

	if values.Length() == 0 {
		return []chart.Trace{{Type: "bar", Name: h.column, Marker: markerStyle(h.color)}}, nil
	}

	sorted := make([]float64, values.Length())
	copy(sorted, values)
	sort.Float64s(sorted)

	min, max := sorted[0], sorted[len(sorted)-1]
	if min == max {
		// Degenerate distribution, a single bucket holds everything
		return []chart.Trace{{
			Type:   "bar",
			Name:   h.column,
			X:      []any{min},
			Y:      []float64{float64(values.Length())},
			Marker: markerStyle(h.color),
		}}, nil
	}

	dividers := make([]float64, h.bins+1)
	width := (max - min) / float64(h.bins)
	for i := range dividers {
		dividers[i] = min + float64(i)*width
	}
	// Dividers are half-open, nudge the last one past the maximum so the
	// largest sample lands in the final bucket
	dividers[h.bins] = math.Nextafter(max, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	centers := make([]any, h.bins)
	for i := 0; i < h.bins; i++ {
		centers[i] = min + (float64(i)+0.5)*width
	}

	return []chart.Trace{{
		Type:   "bar",
		Name:   h.column,
		X:      centers,
		Y:      counts,
		Marker: markerStyle(h.color),
	}}, nil
}
