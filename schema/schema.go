// Package schema implements a small declarative validator for the nested
// chart settings that arrive as dynamic mappings. It is deliberately not a
// general schema engine: rules cover fixed-arity lists of primitive values,
// which is all the chart layer needs.
package schema

import (
	"fmt"
	"sort"
)

// Kind is a permitted primitive kind for a validated item.
type Kind string

const (
	Number Kind = "number"
	String Kind = "string"
)

// Issue describes a single validation failure.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return i.Field + ": " + i.Message
}

// Rule constrains one field of the validated mapping: a fixed-arity list
// whose items each admit a set of kinds.
type Rule struct {
	Required bool
	Items    [][]Kind
}

// Schema maps field names to their rules.
type Schema map[string]Rule

// Validate checks value against s and returns every failure found. An empty
// result means value conforms.
func Validate(value map[string][]any, s Schema) []Issue {
	var issues []Issue

	for field := range value {
		if _, ok := s[field]; !ok {
			issues = append(issues, Issue{Field: field, Message: "unknown field"})
		}
	}

	for field, rule := range s {
		items, ok := value[field]
		if !ok {
			if rule.Required {
				issues = append(issues, Issue{Field: field, Message: "required field missing"})
			}
			continue
		}

		if len(items) != len(rule.Items) {
			issues = append(issues, Issue{
				Field:   field,
				Message: fmt.Sprintf("expected %d items, got %d", len(rule.Items), len(items)),
			})
			continue
		}

		for i, item := range items {
			if !kindAllowed(item, rule.Items[i]) {
				issues = append(issues, Issue{
					Field:   field,
					Message: fmt.Sprintf("item %d: %v is not one of %v", i, item, rule.Items[i]),
				})
			}
		}
	}

	// Map iteration order is random, keep the report stable
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Field != issues[j].Field {
			return issues[i].Field < issues[j].Field
		}
		return issues[i].Message < issues[j].Message
	})

	return issues
}

func kindAllowed(value any, kinds []Kind) bool {
	kind, ok := kindOf(value)
	if !ok {
		return false
	}

	for _, k := range kinds {
		if k == kind {
			return true
		}
	}

	return false
}

func kindOf(value any) (Kind, bool) {
	switch value.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Number, true
	case string:
		return String, true
	}

	return "", false
}
