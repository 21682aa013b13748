// Package viz renders finished trajectories as terminal plots.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/popsim/internal/experiment"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 10
)

// Plot renders one compartment as an ASCII line chart.
func Plot(res *experiment.Result, idx, width, height int) string {
	series := res.Series(idx)
	caption := fmt.Sprintf("x%d vs time", idx)
	if idx < len(res.Labels) {
		caption = fmt.Sprintf("%s vs time", res.Labels[idx])
	}

	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(CaptionStyle.Render(caption)),
	)
}

// PlotAll renders every compartment, stacked, with a styled header.
func PlotAll(res *experiment.Result, title string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n\n")

	dim := 0
	if len(res.Trajectory) > 0 {
		dim = len(res.Trajectory[0])
	}
	for i := 0; i < dim; i++ {
		b.WriteString(Plot(res, i, DefaultWidth, DefaultHeight))
		b.WriteString("\n\n")
	}
	return b.String()
}
