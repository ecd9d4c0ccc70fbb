package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/diorw/parade-server/schema"
)

// ErrNoTraceProvider is returned by CreateFigure when the template was built
// without a trace provider.
var ErrNoTraceProvider = errors.New("chart: no trace provider configured")

// ConfigurationError reports a rejected template setting together with the
// validation issues that caused the rejection. The previous setting stays in
// effect.
type ConfigurationError struct {
	Setting string
	Issues  []schema.Issue
}

func (e *ConfigurationError) Error() string {
	details := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		details[i] = issue.String()
	}

	return fmt.Sprintf("chart: invalid %s: %s", e.Setting, strings.Join(details, "; "))
}

// LayoutKeyError reports a layout override that addressed a sub key of a
// section that does not exist or is not a nested mapping.
type LayoutKeyError struct {
	Parent string
	Sub    string
}

func (e *LayoutKeyError) Error() string {
	return fmt.Sprintf("chart: layout override %s.%s: parent section missing or not a mapping", e.Parent, e.Sub)
}
