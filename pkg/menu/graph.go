package menu

import (
	"fmt"
	"strconv"
)

// Graph is an arena of nodes addressed by NodeID.
// Nodes reference each other only through handles, so cycles are fine.
type Graph struct {
	nodes []Node
	names []string
	index map[string]NodeID
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[string]NodeID)}
}

// Add stores n and returns its handle. A nil node reserves a handle to be filled with Set.
func (g *Graph) Add(n Node) NodeID {
	g.nodes = append(g.nodes, n)
	g.names = append(g.names, "")
	return NodeID(len(g.nodes))
}

// AddNamed is Add with a unique name usable with Lookup.
func (g *Graph) AddNamed(name string, n Node) (NodeID, error) {
	if g.index == nil {
		g.index = make(map[string]NodeID)
	}
	if _, ok := g.index[name]; ok {
		return None, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	id := g.Add(n)
	g.names[id-1] = name
	g.index[name] = id
	return id, nil
}

// Set replaces the node behind id.
func (g *Graph) Set(id NodeID, n Node) error {
	if !g.valid(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	g.nodes[id-1] = n
	return nil
}

// Node resolves a handle. It reports false for None, unknown handles and reserved slots.
func (g *Graph) Node(id NodeID) (Node, bool) {
	if !g.valid(id) || g.nodes[id-1] == nil {
		return nil, false
	}
	return g.nodes[id-1], true
}

// Lookup finds a node by name.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// Name returns the node's name, or its numeric handle when unnamed.
func (g *Graph) Name(id NodeID) string {
	if g.valid(id) && g.names[id-1] != "" {
		return g.names[id-1]
	}
	return strconv.Itoa(int(id))
}

// Len is the number of handles issued.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// IDs lists every handle in insertion order.
func (g *Graph) IDs() []NodeID {
	ids := make([]NodeID, len(g.nodes))
	for i := range g.nodes {
		ids[i] = NodeID(i + 1)
	}
	return ids
}

func (g *Graph) valid(id NodeID) bool {
	return id > None && int(id) <= len(g.nodes)
}
