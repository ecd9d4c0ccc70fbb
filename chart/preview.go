package chart

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary prints a table with one row per trace, useful to inspect what
// a provider produced without rendering the figure.
func (f *Figure) WriteSummary(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Name", "Type", "Points"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, trace := range f.Data {
		points := len(trace.X)
		if points == 0 {
			points = len(trace.Y)
		}

		table.Append([]string{
			strconv.Itoa(i),
			trace.Name,
			trace.Type,
			strconv.Itoa(points),
		})
	}

	table.Render()
}
