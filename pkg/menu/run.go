package menu

import (
	"fmt"
	"time"
)

// Stats summarizes a finished session.
type Stats struct {
	Invocations int
	Reprompts   int
	Visits      map[NodeID]int
}

// Run drives g from start until a node returns None.
// Input and output go through env, which is shared by every node; nil fields get
// the NewEnv defaults. Run installs its own invalid-input hook on env.In for the
// duration of the session.
func Run(env *Env, g *Graph, start NodeID) (Stats, error) {
	env = complete(env)
	stats := Stats{Visits: make(map[NodeID]int)}

	cur := start
	var kind Kind
	env.In.SetInvalidHook(func() {
		stats.Reprompts++
		env.Hooks.fire(env.Hooks.OnReprompt, &NodeEvent{
			Type:      EventReprompt,
			Timestamp: time.Now(),
			Node:      cur,
			Name:      g.Name(cur),
			Kind:      kind,
		})
	})
	defer env.In.SetInvalidHook(nil)

	for cur != None {
		n, ok := g.Node(cur)
		if !ok {
			return stats, fmt.Errorf("%w: %d", ErrUnknownNode, cur)
		}
		kind = n.Kind()
		name := g.Name(cur)

		env.Logger.Debug("node enter", "node", name, "kind", kind)
		env.Hooks.fire(env.Hooks.OnNodeEnter, &NodeEvent{
			Type:      EventNodeEnter,
			Timestamp: time.Now(),
			Node:      cur,
			Name:      name,
			Kind:      kind,
		})

		nextID, err := n.Run(env)
		stats.Invocations++
		stats.Visits[cur]++
		if err != nil {
			return stats, fmt.Errorf("node %s: %w", name, err)
		}

		env.Hooks.fire(env.Hooks.OnNodeLeave, &NodeEvent{
			Type:      EventNodeLeave,
			Timestamp: time.Now(),
			Node:      cur,
			Name:      name,
			Kind:      kind,
			Next:      nextID,
		})
		cur = nextID
	}
	return stats, nil
}
