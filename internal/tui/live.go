// Package tui animates a finished run in the terminal, replaying the
// trajectory frame by frame.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/popsim/internal/experiment"
	"github.com/san-kum/popsim/internal/viz"
)

const (
	plotWidth  = 70
	plotHeight = 8
	minWindow  = 2
)

type tickMsg time.Time

type playback struct {
	res    *experiment.Result
	title  string
	frame  int
	stride int
	fps    int
	paused bool
}

// NewPlayback builds a bubbletea model that replays res at the given
// frame rate. stride controls how many grid points advance per frame.
func NewPlayback(title string, res *experiment.Result, fps int) tea.Model {
	stride := len(res.Trajectory) / 400
	if stride < 1 {
		stride = 1
	}
	if fps <= 0 {
		fps = 30
	}
	frame := min(minWindow, len(res.Trajectory))
	return &playback{res: res, title: title, frame: frame, stride: stride, fps: fps}
}

// Run plays the animation until it finishes or the user quits.
func Run(title string, res *experiment.Result, fps int) error {
	_, err := tea.NewProgram(NewPlayback(title, res, fps)).Run()
	return err
}

func (p *playback) Init() tea.Cmd {
	return p.tick()
}

func (p *playback) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(p.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
		case "r":
			p.frame = min(minWindow, len(p.res.Trajectory))
		}
	case tickMsg:
		if !p.paused && p.frame < len(p.res.Trajectory) {
			p.frame += p.stride
			if p.frame > len(p.res.Trajectory) {
				p.frame = len(p.res.Trajectory)
			}
		}
		return p, p.tick()
	}
	return p, nil
}

func (p *playback) View() string {
	var b strings.Builder
	b.WriteString(viz.TitleStyle.Render(p.title))
	b.WriteString("\n")

	t := p.res.Times[min(p.frame, len(p.res.Times))-1]
	status := fmt.Sprintf("t=%.2f  frame %d/%d", t, p.frame, len(p.res.Trajectory))
	if p.paused {
		status += "  " + viz.WarnStyle.Render("paused")
	}
	b.WriteString(viz.CaptionStyle.Render(status))
	b.WriteString("\n\n")

	dim := len(p.res.Trajectory[0])
	for i := 0; i < dim; i++ {
		series := p.res.Series(i)[:p.frame]
		label := fmt.Sprintf("x%d", i)
		if i < len(p.res.Labels) {
			label = p.res.Labels[i]
		}
		b.WriteString(asciigraph.Plot(series,
			asciigraph.Width(plotWidth),
			asciigraph.Height(plotHeight),
			asciigraph.Caption(label),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(viz.CaptionStyle.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}
