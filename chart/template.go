// Package chart assembles plotly-style figures for the dashboard: a template
// owns the visual layout (title, axes, legend, hover behavior) while a
// pluggable trace provider formats the raw tabular data into renderable
// series.
package chart

import (
	"fmt"

	"github.com/diorw/parade-server/core"
	"github.com/diorw/parade-server/logger"
)

// TraceProvider supplies the renderable data series for one chart kind. A
// provider carries its own formatting configuration; the template only owns
// the layout.
type TraceProvider interface {
	// Name identifies the chart kind in logs and figure summaries
	Name() string

	// CreateTraces formats the raw tabular input into traces.
	// The returned slice may be empty
	CreateTraces(df *core.Dataframe) ([]Trace, error)
}

// LayoutCustomizer is an optional TraceProvider extension for chart kinds
// that need to adjust the standard layout. It runs after the standard layout
// is built and before the template's overrides are applied, so overrides
// still win.
type LayoutCustomizer interface {
	CustomizeLayout(layout Layout)
}

// AxisLabels holds the display labels of the two axes.
type AxisLabels struct {
	X string
	Y string
}

// Template composes figures from a trace provider and the standard layout,
// optionally patched by an ordered list of layout overrides.
type Template struct {
	provider        TraceProvider
	title           string
	labels          AxisLabels
	layoutOverrides []LayoutOverride
	annotations     []Annotation
	axisRange       AxisRange
	log             logger.Logger
}

// Option defines a function type for configuring a Template instance
type Option func(*Template)

// WithTitle sets the chart title, an empty string leaves it blank
func WithTitle(title string) Option {
	return func(t *Template) {
		t.title = title
	}
}

// WithAxisLabels sets the x and y axis display labels
func WithAxisLabels(xlabel, ylabel string) Option {
	return func(t *Template) {
		t.labels = AxisLabels{X: xlabel, Y: ylabel}
	}
}

// WithLayoutOverrides sets the ordered layout override list
func WithLayoutOverrides(overrides ...LayoutOverride) Option {
	return func(t *Template) {
		t.layoutOverrides = overrides
	}
}

// WithAnnotations sets the initial annotation list
func WithAnnotations(annotations ...Annotation) Option {
	return func(t *Template) {
		t.annotations = annotations
	}
}

// WithLogger sets the logger used during figure assembly
func WithLogger(log logger.Logger) Option {
	return func(t *Template) {
		t.log = log
	}
}

// New creates a chart template for the given provider. Mutable state is
// allocated fresh per template, instances never share annotations or axis
// bounds.
func New(provider TraceProvider, options ...Option) *Template {
	template := &Template{
		provider:    provider,
		annotations: []Annotation{},
		axisRange:   AxisRange{},
		log:         logger.Nop(),
	}

	for _, option := range options {
		option(template)
	}

	return template
}

// Title returns the chart title.
func (t *Template) Title() string {
	return t.title
}

// Labels returns the axis display labels.
func (t *Template) Labels() AxisLabels {
	return t.labels
}

// Annotations returns the current annotation list.
func (t *Template) Annotations() []Annotation {
	return t.annotations
}

// AddAnnotation appends a note to the annotation list.
func (t *Template) AddAnnotation(annotation Annotation) {
	t.annotations = append(t.annotations, annotation)
}

// SetAnnotations replaces the annotation list.
func (t *Template) SetAnnotations(annotations []Annotation) {
	t.annotations = annotations
}

// CreateLayout returns the standard layout patched by the provider's optional
// customization and then by the template's override list, in that order.
func (t *Template) CreateLayout() (Layout, error) {
	layout := t.buildLayout()

	if customizer, ok := t.provider.(LayoutCustomizer); ok {
		customizer.CustomizeLayout(layout)
	}

	if err := applyOverrides(layout, t.layoutOverrides); err != nil {
		return nil, err
	}

	return layout, nil
}

// CreateFigure formats df through the trace provider and combines the result
// with the template layout. Each call produces a fresh figure, no state is
// kept across calls beyond the template's own settings.
func (t *Template) CreateFigure(df *core.Dataframe) (*Figure, error) {
	if t.provider == nil {
		return nil, ErrNoTraceProvider
	}

	data, err := t.provider.CreateTraces(df)
	if err != nil {
		return nil, fmt.Errorf("chart: %s traces: %w", t.provider.Name(), err)
	}

	layout, err := t.CreateLayout()
	if err != nil {
		return nil, err
	}

	t.log.WithField("chart", t.provider.Name()).
		Debugf("figure assembled with %d traces", len(data))

	return &Figure{Data: data, Layout: layout}, nil
}
