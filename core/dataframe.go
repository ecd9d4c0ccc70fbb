package core

import (
	"fmt"
	"time"
)

// Dataframe is the raw tabular input handed to trace providers: a shared time
// index plus named value and label columns. Data retrieval lives outside this
// module, callers fill a dataframe and pass it to a chart template.
type Dataframe struct {
	Name string

	Time       []time.Time
	LastUpdate time.Time

	// Numeric value columns, keyed by column name
	Columns map[string]Series[float64]

	// Categorical string columns, keyed by column name
	Labels map[string]Series[string]
}

// NewDataframe creates an empty dataframe with fresh column maps.
func NewDataframe(name string) *Dataframe {
	return &Dataframe{
		Name:    name,
		Columns: make(map[string]Series[float64]),
		Labels:  make(map[string]Series[string]),
	}
}

// Column returns the named value column.
func (df Dataframe) Column(name string) (Series[float64], error) {
	values, ok := df.Columns[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return values, nil
}

// Label returns the named label column.
func (df Dataframe) Label(name string) (Series[string], error) {
	labels, ok := df.Labels[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrLabelNotFound)
	}
	return labels, nil
}

// Sample returns a subset of the dataframe with the last 'positions' elements
// Used for windowing operations on a dataframe
func (df Dataframe) Sample(positions int) Dataframe {
	size := len(df.Time)
	start := size - positions

	// Return the entire dataframe if requested sample is larger than dataframe
	if start <= 0 {
		return df
	}

	sample := Dataframe{
		Name:       df.Name,
		Time:       df.Time[start:],
		LastUpdate: df.LastUpdate,
		Columns:    make(map[string]Series[float64]),
		Labels:     make(map[string]Series[string]),
	}

	for key := range df.Columns {
		sample.Columns[key] = df.Columns[key].LastValues(positions)
	}
	for key := range df.Labels {
		sample.Labels[key] = df.Labels[key].LastValues(positions)
	}

	return sample
}
