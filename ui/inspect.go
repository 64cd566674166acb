package ui

import (
	"reactive-breakpoints/inspect"
)

func (p *StatePanel) InspectNode() *inspect.Node {
	return inspect.NewNode("StatePanel").
		WithBounds(p.width, p.height).
		WithVisible(p.width > 0 && p.height > 0).
		WithState("name", p.state.Name.String()).
		WithState("show_relational", p.showRelational).
		WithStyles(inspect.ExtractStyleInfo(panelStyle, "panel"))
}

func (r *Ruler) InspectNode() *inspect.Node {
	return inspect.NewNode("Ruler").
		WithBounds(r.width, 2).
		WithVisible(r.width > 0).
		WithState("marker_column", r.MarkerColumn())
}

func (l *List) InspectNode() *inspect.Node {
	n := inspect.NewNode("List").
		WithID("changes").
		WithBounds(l.width, l.height).
		WithVisible(l.width > 0 && l.height > 0).
		WithState("changes", len(l.changes)).
		WithState("paused", l.paused).
		WithStyles(inspect.ExtractStyleInfo(panelStyle, "panel"))
	if len(l.changes) > 0 {
		last := l.changes[len(l.changes)-1]
		n.WithState("last", last.From.Name.String()+arrow+last.To.Name.String())
	}
	return n
}
