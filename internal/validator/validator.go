package validator

import (
	"fmt"
	"strings"

	"github.com/drake200120xx/constorm/pkg/menu"
)

// ValidateGraph walks g from start and reports broken links, empty option
// lists, unreachable nodes and graphs in which no reachable node ends the session.
func ValidateGraph(g *menu.Graph, start menu.NodeID) error {
	if _, ok := g.Node(start); !ok {
		return fmt.Errorf("start node '%s' not found: %w", g.Name(start), menu.ErrUnknownNode)
	}

	visited := make(map[menu.NodeID]bool)
	queue := []menu.NodeID{start}
	var problems []string
	terminal := false

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		n, ok := g.Node(current)
		if !ok {
			problems = append(problems, fmt.Sprintf("Missing node: '%s'", g.Name(current)))
			continue
		}

		edges := n.Edges()
		switch {
		case n.Kind() == menu.KindOptions && len(edges) == 0:
			problems = append(problems, fmt.Sprintf("Options node '%s' has no options", g.Name(current)))
		case len(edges) == 0:
			terminal = true
		}

		for _, e := range edges {
			if e.To == menu.None {
				terminal = true
				continue
			}
			if !visited[e.To] {
				queue = append(queue, e.To)
			}
		}
	}

	if !terminal {
		problems = append(problems, "No reachable node ends the session")
	}
	for _, id := range g.IDs() {
		if !visited[id] {
			problems = append(problems, fmt.Sprintf("Unreachable node: '%s'", g.Name(id)))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(problems), strings.Join(problems, "\n- "))
	}
	return nil
}
