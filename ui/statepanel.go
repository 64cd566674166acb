package ui

import (
	"fmt"
	"math"
	"reactive-breakpoints/breakpoint"
	"reactive-breakpoints/log"
)

const labelWidth = 10

// StatePanel shows the current breakpoint name, the viewport size and every
// flag of the state.
type StatePanel struct {
	width, height  int
	state          breakpoint.State
	showRelational bool
}

func NewStatePanel() *StatePanel {
	return &StatePanel{showRelational: true}
}

func (p *StatePanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

func (p *StatePanel) SetState(s breakpoint.State) {
	p.state = s
}

// SetShowRelational toggles the smAndDown..xlAndUp rows.
func (p *StatePanel) SetShowRelational(show bool) {
	p.showRelational = show
}

type relationalFlag struct {
	name string
	on   bool
}

func relationalFlags(s breakpoint.State) [][2]relationalFlag {
	return [][2]relationalFlag{
		{{"smAndDown", s.SmAndDown}, {"smAndUp", s.SmAndUp}},
		{{"mdAndDown", s.MdAndDown}, {"mdAndUp", s.MdAndUp}},
		{{"lgAndDown", s.LgAndDown}, {"lgAndUp", s.LgAndUp}},
		{{"xlAndDown", s.XlAndDown}, {"xlAndUp", s.XlAndUp}},
	}
}

func (p *StatePanel) lines() []string {
	s := p.state
	lines := []string{
		panelTitle("State"),
		"",
		TextStyles.Secondary.Render(label("name", labelWidth)) + TierBadge(s.Name),
		TextStyles.Secondary.Render(label("width", labelWidth)) + formatSize(s.Width),
		TextStyles.Secondary.Render(label("height", labelWidth)) + formatSize(s.Height),
		"",
	}

	for _, name := range breakpoint.Names {
		on := s.Own(name)
		style := TextStyles.Muted
		if on {
			style = TierStyle(name)
		}
		lines = append(lines, style.Render(FlagIcon(on)+" "+label(name.String(), labelWidth-2)))
	}

	if p.showRelational {
		lines = append(lines, "")
		for _, pair := range relationalFlags(s) {
			line := ""
			for i, f := range pair {
				style := TextStyles.Muted
				if f.on {
					style = TextStyles.Primary
				}
				cell := FlagIcon(f.on) + " " + f.name
				if i == 0 {
					cell = label(cell, labelWidth+4)
				}
				line += style.Render(cell)
			}
			lines = append(lines, line)
		}
	}
	return lines
}

func (p *StatePanel) String() string {
	defer log.GetProfiler().StartRender("state")()
	return frame(p.lines(), p.width, p.height)
}

// formatSize prints whole sizes without a fraction.
func formatSize(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
