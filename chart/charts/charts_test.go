package charts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/diorw/parade-server/chart"
	"github.com/diorw/parade-server/core"
)

func salesDataframe() *core.Dataframe {
	df := core.NewDataframe("sales")
	base := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		df.Time = append(df.Time, base.AddDate(0, 0, i))
	}
	df.Columns["units"] = core.Series[float64]{5, 3, 8, 6, 4, 9}
	df.Columns["returns"] = core.Series[float64]{1, 0, 2, 1, 0, 1}
	df.Labels["region"] = core.Series[string]{"north", "south", "north", "east", "south", "north"}

	return df
}

func TestLine_CreateTraces(t *testing.T) {
	provider := Line(
		SeriesStyle{Column: "units", Color: "#1f77b4"},
		SeriesStyle{Column: "returns"},
	)

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Len(t, traces, 2)

	require.Equal(t, "scatter", traces[0].Type)
	require.Equal(t, "lines", traces[0].Mode)
	require.Equal(t, "units", traces[0].Name)
	require.Equal(t, "2023-04-10T00:00:00Z", traces[0].X[0])
	require.Equal(t, []float64{5, 3, 8, 6, 4, 9}, traces[0].Y)
	require.Equal(t, "#1f77b4", traces[0].Line.Color)

	// No color configured, the frontend palette decides
	require.Nil(t, traces[1].Line)
}

func TestLine_MissingColumn(t *testing.T) {
	provider := Line(SeriesStyle{Column: "missing"})

	_, err := provider.CreateTraces(salesDataframe())
	require.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestScatter_CreateTraces(t *testing.T) {
	provider := Scatter(SeriesStyle{Column: "units", Color: "red"})

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Len(t, traces, 1)
	require.Equal(t, "markers", traces[0].Mode)
	require.Equal(t, "red", traces[0].Marker.Color)
	require.Nil(t, traces[0].Line)
}

func TestBar_CreateTraces(t *testing.T) {
	provider := Bar("region", SeriesStyle{Column: "units"})

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Len(t, traces, 1)
	require.Equal(t, "bar", traces[0].Type)
	require.Equal(t, []any{"north", "south", "north", "east", "south", "north"}, traces[0].X)
	require.Equal(t, []float64{5, 3, 8, 6, 4, 9}, traces[0].Y)
}

func TestBar_LengthMismatch(t *testing.T) {
	df := salesDataframe()
	df.Columns["short"] = core.Series[float64]{1, 2}

	provider := Bar("region", SeriesStyle{Column: "short"})

	_, err := provider.CreateTraces(df)
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestRolling_CreateTraces(t *testing.T) {
	provider := Rolling("units", 3, 2, "blue", "lightblue")

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Len(t, traces, 4)

	require.Equal(t, "markers", traces[0].Mode)
	require.Len(t, traces[0].Y, 6)

	// Warmup values are trimmed from the derived traces
	mean := traces[1]
	require.Equal(t, "units mean(3)", mean.Name)
	require.Len(t, mean.Y, 3)

	upper, lower := traces[2], traces[3]
	require.Equal(t, "tonexty", lower.Fill)
	for i := range mean.Y {
		require.GreaterOrEqual(t, upper.Y[i], mean.Y[i])
		require.LessOrEqual(t, lower.Y[i], mean.Y[i])
	}
}

func TestRolling_ShortSeries(t *testing.T) {
	df := salesDataframe().Sample(2)

	provider := Rolling("units", 3, 2, "blue", "lightblue")

	traces, err := provider.CreateTraces(&df)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	require.Equal(t, "markers", traces[0].Mode)
}

func TestPareto_CreateTraces(t *testing.T) {
	provider := Pareto("region", "units", 0, "steelblue", "orange")

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Len(t, traces, 2)

	// Categories sorted by total descending: north=22, south=7, east=6
	bars := traces[0]
	require.Equal(t, "bar", bars.Type)
	require.Equal(t, []any{"north", "south", "east"}, bars.X)
	require.Equal(t, []float64{22, 7, 6}, bars.Y)

	cumulative := traces[1]
	require.Equal(t, "y2", cumulative.YAxis)
	require.InDelta(t, 22.0/35.0*100, cumulative.Y[0], 1e-9)
	require.InDelta(t, 29.0/35.0*100, cumulative.Y[1], 1e-9)
	require.InDelta(t, 100, cumulative.Y[2], 1e-9)
}

func TestPareto_CategoryLimit(t *testing.T) {
	provider := Pareto("region", "units", 2, "", "")

	traces, err := provider.CreateTraces(salesDataframe())
	require.NoError(t, err)
	require.Equal(t, []any{"north", "south"}, traces[0].X)

	// Percentages stay relative to the full total
	require.InDelta(t, 29.0/35.0*100, traces[1].Y[1], 1e-9)
}

func TestPareto_SecondaryAxisLayout(t *testing.T) {
	template := chart.New(Pareto("region", "units", 0, "", ""))

	layout, err := template.CreateLayout()
	require.NoError(t, err)

	yaxis2 := layout["yaxis2"].(chart.Layout)
	require.Equal(t, "y", yaxis2["overlaying"])
	require.Equal(t, "right", yaxis2["side"])
}

func TestHistogram_CreateTraces(t *testing.T) {
	df := core.NewDataframe("d")
	df.Columns["v"] = core.Series[float64]{1, 1, 2, 2, 3, 3}

	provider := Histogram("v", 2, "")

	traces, err := provider.CreateTraces(df)
	require.NoError(t, err)
	require.Len(t, traces, 1)
	require.Equal(t, []float64{2, 4}, traces[0].Y)
	require.Equal(t, []any{1.5, 2.5}, traces[0].X)
}

func TestHistogram_DegenerateDistribution(t *testing.T) {
	df := core.NewDataframe("d")
	df.Columns["v"] = core.Series[float64]{7, 7, 7}

	provider := Histogram("v", 4, "")

	traces, err := provider.CreateTraces(df)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, traces[0].Y)
	require.Equal(t, []any{7.0}, traces[0].X)
}

func TestHistogram_InvalidBins(t *testing.T) {
	provider := Histogram("units", 0, "")

	_, err := provider.CreateTraces(salesDataframe())
	require.Error(t, err)
}
