package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDataframe() *Dataframe {
	df := NewDataframe("sales")
	base := time.Date(2023, 4, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		df.Time = append(df.Time, base.AddDate(0, 0, i))
	}
	df.Columns["units"] = Series[float64]{5, 3, 8, 6}
	df.Labels["region"] = Series[string]{"north", "south", "north", "east"}

	return df
}

func TestDataframe_Column(t *testing.T) {
	df := testDataframe()

	units, err := df.Column("units")
	require.NoError(t, err)
	require.Equal(t, 4, units.Length())

	_, err = df.Column("missing")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestDataframe_Label(t *testing.T) {
	df := testDataframe()

	region, err := df.Label("region")
	require.NoError(t, err)
	require.Equal(t, "east", region.Last(0))

	_, err = df.Label("missing")
	require.ErrorIs(t, err, ErrLabelNotFound)
}

func TestDataframe_Sample(t *testing.T) {
	df := testDataframe()

	sample := df.Sample(2)
	require.Len(t, sample.Time, 2)
	require.Equal(t, Series[float64]{8, 6}, sample.Columns["units"])
	require.Equal(t, Series[string]{"north", "east"}, sample.Labels["region"])

	// Requesting more than available returns the whole dataframe
	full := df.Sample(10)
	require.Len(t, full.Time, 4)
}
