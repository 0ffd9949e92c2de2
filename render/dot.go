package render

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/comalice/datepickerx/internal/fsm"
)

// Edge represents a transition edge.
type Edge struct {
	From  string
	To    string
	Label string
}

// ExportDOT generates Graphviz DOT source for m, highlighting the current
// state. Internal transitions are drawn as self loops with a dashed style.
func ExportDOT(m *fsm.Machine) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Picker {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)
	for _, s := range m.States() {
		style := ""
		if m.In(s.ID) {
			style = ` style="rounded,filled" fillcolor=lightgreen`
		}
		if s == m.Initial() {
			style += ` peripheries=2`
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", s.String(), s.String(), style)
	}
	for _, e := range collectEdges(m) {
		attrs := fmt.Sprintf("label=%q", e.Label)
		if e.From == e.To {
			attrs += " style=dashed"
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, attrs)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// collectEdges collects all transitions in a stable order.
func collectEdges(m *fsm.Machine) []Edge {
	var edges []Edge
	for _, s := range m.States() {
		for _, t := range s.Transitions {
			if t == nil {
				continue
			}
			to := s
			if !t.Internal() {
				to = t.Target
			}
			label := m.EventName(t.Event)
			if t.Guard != nil {
				label += " [guarded]"
			}
			edges = append(edges, Edge{From: s.String(), To: to.String(), Label: label})
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].Label < edges[j].Label
	})
	return edges
}
