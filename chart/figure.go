package chart

// Trace is one renderable data series in the figure, shaped after plotly's
// trace object model. Unset fields are omitted from the serialized form so
// each chart kind only carries what it uses.
type Trace struct {
	Type        string       `json:"type"`
	Name        string       `json:"name,omitempty"`
	X           []any        `json:"x,omitempty"`
	Y           []float64    `json:"y,omitempty"`
	Text        []string     `json:"text,omitempty"`
	Mode        string       `json:"mode,omitempty"`
	Fill        string       `json:"fill,omitempty"`
	Opacity     float64      `json:"opacity,omitempty"`
	YAxis       string       `json:"yaxis,omitempty"`
	Orientation string       `json:"orientation,omitempty"`
	Line        *LineStyle   `json:"line,omitempty"`
	Marker      *MarkerStyle `json:"marker,omitempty"`
}

// LineStyle styles the connecting line of a trace.
type LineStyle struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// MarkerStyle styles the point markers of a trace.
type MarkerStyle struct {
	Color string  `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Annotation is a free-floating text note drawn on the figure.
type Annotation struct {
	X         any     `json:"x"`
	Y         any     `json:"y"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	ArrowHead int     `json:"arrowhead,omitempty"`
	YShift    float64 `json:"yshift,omitempty"`
}

// Figure is the assembled chart description the dashboard frontend renders.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}
