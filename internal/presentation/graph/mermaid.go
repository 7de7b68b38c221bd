package graph

import (
	"fmt"
	"strings"

	"github.com/drake200120xx/constorm/pkg/menu"
)

// GraphOverlay contains session data to visualize on the graph.
type GraphOverlay struct {
	Visits      map[menu.NodeID]int
	CurrentNode menu.NodeID
}

// GenerateMermaid produces a Mermaid flowchart of g.
// Shapes follow the node kind:
// - Start: ((Circle))
// - Function: [[Subroutine]]
// - Input: [/Parallelogram/]
// - Exit: ([Stadium])
// - Default: [Rectangle]
// Option edges carry their label. Edges to no node are drawn into a shared end marker.
func GenerateMermaid(g *menu.Graph, start menu.NodeID, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	ends := false
	for _, id := range g.IDs() {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		name := g.Name(id)
		safeID := sanitizeMermaidID(name)

		opener, closer := "[", "]"
		switch {
		case id == start:
			opener, closer = "((", "))"
		case n.Kind() == menu.KindFunction:
			opener, closer = "[[", "]]"
		case n.Kind() == menu.KindInput:
			opener, closer = "[/", "/]"
		case n.Kind() == menu.KindExit:
			opener, closer = "([", "])"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, escape(name), closer)

		for _, e := range n.Edges() {
			safeTo := "end_"
			if e.To == menu.None {
				ends = true
			} else {
				safeTo = sanitizeMermaidID(g.Name(e.To))
			}

			arrow := "-->"
			if e.Label != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", escape(e.Label))
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, safeTo)
		}
	}
	if ends {
		sb.WriteString("    end_(((end)))\n")
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for _, id := range g.IDs() {
			if overlay.Visits[id] > 0 {
				fmt.Fprintf(&sb, "    class %s visited;\n", sanitizeMermaidID(g.Name(id)))
			}
		}
		if overlay.CurrentNode != menu.None {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(g.Name(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_")
	s := r.Replace(id)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = "n" + s
	}
	return s
}
