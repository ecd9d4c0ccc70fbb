package charts

import (
	"fmt"
	"time"

	"github.com/markcheno/go-talib"

	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

// Rolling creates a rolling-average provider: the raw series as scatter
// points, its moving mean, and a band of stdDevs standard deviations around
// the mean.
func Rolling(column string, window int, stdDevs float64, color, bandColor string) chart.TraceProvider {
	return &rolling{
		column:    column,
		window:    window,
		stdDevs:   stdDevs,
		color:     color,
		bandColor: bandColor,
	}
}

type rolling struct {
	column    string
	window    int
	stdDevs   float64
	color     string
	bandColor string
}

func (r rolling) Name() string {
	return "rolling"
}

func (r rolling) CreateTraces(df *core.Dataframe) ([]chart.Trace, error) {
	values, err := df.Column(r.column)
	if err != nil {
		return nil, err
	}

	if values.Length() != len(df.Time) {
		return nil, fmt.Errorf("%q has %d values for %d timestamps: %w",
			r.column, values.Length(), len(df.Time), core.ErrLengthMismatch)
	}

	x := timeAxis(df.Time)

	raw := chart.Trace{
		Type:   "scatter",
		Name:   r.column,
		Mode:   "markers",
		X:      x,
		Y:      values.Values(),
		Marker: markerStyle(r.color),
	}

	// Not enough points for the window, plot the raw series alone
	if values.Length() < r.window {
		return []chart.Trace{raw}, nil
	}

	mean := talib.Sma(values, r.window)
	dev := talib.StdDev(values, r.window, 1.0)

	// The leading outputs are warmup artifacts
	mean, meanTime := trimWarmup(mean, df.Time, r.window)
	dev, _ = trimWarmup(dev, df.Time, r.window)

	upper := make([]float64, len(mean))
	lower := make([]float64, len(mean))
	for i := range mean {
		upper[i] = mean[i] + r.stdDevs*dev[i]
		lower[i] = mean[i] - r.stdDevs*dev[i]
	}

	xTrimmed := timeAxis(meanTime)

	return []chart.Trace{
		raw,
		{
			Type: "scatter",
			Name: fmt.Sprintf("%s mean(%d)", r.column, r.window),
			Mode: "lines",
			X:    xTrimmed,
			Y:    mean,
			Line: lineStyle(r.color),
		},
		{
			Type:    "scatter",
			Name:    fmt.Sprintf("%s +%.0fσ", r.column, r.stdDevs),
			Mode:    "lines",
			X:       xTrimmed,
			Y:       upper,
			Opacity: 0.4,
			Line:    lineStyle(r.bandColor),
		},
		{
			Type:    "scatter",
			Name:    fmt.Sprintf("%s -%.0fσ", r.column, r.stdDevs),
			Mode:    "lines",
			X:       xTrimmed,
			Y:       lower,
			Fill:    "tonexty",
			Opacity: 0.4,
			Line:    lineStyle(r.bandColor),
		},
	}, nil
}

// trimWarmup drops the leading values the moving calculation could not fill.
func trimWarmup(values []float64, times []time.Time, window int) ([]float64, []time.Time) {
	if window <= 0 || len(values) <= window {
		return values, times
	}

	return values[window:], times[window:]
}
