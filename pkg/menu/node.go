package menu

import "errors"

// NodeID is a handle into a Graph. Handles start at 1.
type NodeID int

// None is the absence of a next node. Returning it ends a session.
const None NodeID = 0

// Kind names a node variant.
type Kind string

const (
	KindOptions  Kind = "options"
	KindInput    Kind = "input"
	KindInfo     Kind = "info"
	KindFunction Kind = "function"
	KindExit     Kind = "exit"
)

// Edge is an outgoing link of a node. Label is empty for unconditional links.
type Edge struct {
	Label string
	To    NodeID
}

// Node is one screen of a menu graph.
// Run displays the node, collects whatever input it needs and returns the
// next node. The error is reserved for a failing input stream.
type Node interface {
	Run(env *Env) (NodeID, error)
	Kind() Kind
	Edges() []Edge
}

var (
	// ErrUnknownNode is returned when a handle does not resolve to a node.
	ErrUnknownNode = errors.New("unknown node")
	// ErrOptionsMismatch is returned when labels and targets differ in length.
	ErrOptionsMismatch = errors.New("options and targets differ in length")
	// ErrIndexOutOfRange is returned by indexed setters.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrDuplicateName is returned when a node name is registered twice.
	ErrDuplicateName = errors.New("duplicate node name")
)

func edgeTo(id NodeID) []Edge {
	if id == None {
		return nil
	}
	return []Edge{{To: id}}
}

var (
	_ Node = (*OptionsMenu)(nil)
	_ Node = (*InputMenu[int])(nil)
	_ Node = (*InfoMenu)(nil)
	_ Node = (*FunctionMenu[struct{}, any])(nil)
	_ Node = (*ExitMenu)(nil)
)
