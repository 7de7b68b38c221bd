package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	g := NewGraph()

	first := g.Add(NewExitMenu(""))
	named, err := g.AddNamed("bye", NewExitMenu("Bye"))
	require.NoError(t, err)

	assert.Equal(t, NodeID(1), first)
	assert.Equal(t, NodeID(2), named)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []NodeID{1, 2}, g.IDs())
	assert.Equal(t, "1", g.Name(first))
	assert.Equal(t, "bye", g.Name(named))

	id, ok := g.Lookup("bye")
	assert.True(t, ok)
	assert.Equal(t, named, id)

	_, err = g.AddNamed("bye", NewExitMenu(""))
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestGraph_NodeResolution(t *testing.T) {
	g := NewGraph()
	reserved := g.Add(nil)

	_, ok := g.Node(None)
	assert.False(t, ok)
	_, ok = g.Node(reserved)
	assert.False(t, ok)
	_, ok = g.Node(42)
	assert.False(t, ok)

	require.NoError(t, g.Set(reserved, NewExitMenu("")))
	n, ok := g.Node(reserved)
	assert.True(t, ok)
	assert.Equal(t, KindExit, n.Kind())

	assert.ErrorIs(t, g.Set(9, NewExitMenu("")), ErrUnknownNode)
}
