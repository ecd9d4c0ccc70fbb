package chart

import (
	"github.com/diorw/parade-server/schema"
)

// AxisRange maps an axis name ("x" or "y") to an explicit two-element bound
// pair. Axes absent from the mapping are auto-ranged from the data.
type AxisRange map[string][]any

// axisRangeSchema is the fixed shape SetAxisRange validates against: both
// axes optional, each exactly two bounds, numeric or string.
var axisRangeSchema = schema.Schema{
	"x": {Items: [][]schema.Kind{
		{schema.Number, schema.String},
		{schema.Number, schema.String},
	}},
	"y": {Items: [][]schema.Kind{
		{schema.Number, schema.String},
		{schema.Number, schema.String},
	}},
}

// AxisRange returns the current explicit axis bounds. The default is an empty
// mapping, meaning full autorange on both axes.
func (t *Template) AxisRange() AxisRange {
	return t.axisRange
}

// SetAxisRange replaces the explicit axis bounds. A value that does not match
// the axis-range schema is rejected with a *ConfigurationError and the
// previous bounds stay in effect.
func (t *Template) SetAxisRange(axisRange AxisRange) error {
	if issues := schema.Validate(axisRange, axisRangeSchema); len(issues) > 0 {
		return &ConfigurationError{Setting: "axis range", Issues: issues}
	}

	t.axisRange = axisRange

	return nil
}
