package chart

// Layout is the non-data visual configuration of a figure: titles, axes,
// legend, hover behavior. Sections are nested string-keyed mappings so
// override triples can address individual fields.
type Layout map[string]any

// LayoutOverride is one patch instruction applied after the standard layout
// is built. With a Sub key, Value is written into the existing Parent section;
// with an empty Sub, the whole Parent entry is replaced.
type LayoutOverride struct {
	Parent string
	Sub    string
	Value  any
}

// buildLayout assembles the standard layout shared by every chart kind:
// automargin axes that fall back to autorange when no explicit bounds are
// set, the legend below the x axis label, and closest-point hovering.
func (t *Template) buildLayout() Layout {
	xaxis := Layout{
		"automargin": true,
		"title":      t.labels.X,
	}
	yaxis := Layout{
		"automargin": true,
		"title":      t.labels.Y,
		"zeroline":   true,
	}

	for axis, section := range map[string]Layout{"x": xaxis, "y": yaxis} {
		if bounds, ok := t.axisRange[axis]; ok {
			section["range"] = bounds
		} else {
			section["autorange"] = true
		}
	}

	return Layout{
		"annotations": t.annotations,
		"title":       Layout{"text": t.title},
		"xaxis":       xaxis,
		"yaxis":       yaxis,
		"legend":      Layout{"orientation": "h", "y": -0.25}, // below the x axis label
		"hovermode":   "closest",
	}
}

// applyOverrides patches layout in place, strictly in override order so later
// entries win over earlier ones and over the base layout on key collisions.
func applyOverrides(layout Layout, overrides []LayoutOverride) error {
	for _, override := range overrides {
		if override.Sub == "" {
			layout[override.Parent] = override.Value
			continue
		}

		switch section := layout[override.Parent].(type) {
		case Layout:
			section[override.Sub] = override.Value
		case map[string]any:
			section[override.Sub] = override.Value
		default:
			return &LayoutKeyError{Parent: override.Parent, Sub: override.Sub}
		}
	}

	return nil
}
