// Package chart writes trajectory plots as PNG files.
package chart

import (
	"fmt"
	"os"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/san-kum/popsim/internal/experiment"
)

// WritePNG renders every compartment of the trajectory as one line
// chart and writes it to path.
func WritePNG(path, title string, res *experiment.Result) error {
	if len(res.Trajectory) == 0 {
		return fmt.Errorf("chart: nothing to plot")
	}

	dim := len(res.Trajectory[0])
	series := make([]gochart.Series, 0, dim)
	for i := 0; i < dim; i++ {
		name := fmt.Sprintf("x%d", i)
		if i < len(res.Labels) {
			name = res.Labels[i]
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    name,
			XValues: res.Times,
			YValues: res.Series(i),
		})
	}

	graph := gochart.Chart{
		Title:  title,
		XAxis:  gochart.XAxis{Name: "Time"},
		YAxis:  gochart.YAxis{Name: "Population"},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return graph.Render(gochart.PNG, f)
}
