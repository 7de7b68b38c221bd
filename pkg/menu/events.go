package menu

import "time"

// EventType defines the category of a driver event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventReprompt  EventType = "reprompt"
)

// NodeEvent describes a driver step.
type NodeEvent struct {
	Type      EventType
	Timestamp time.Time
	Node      NodeID
	Name      string
	Kind      Kind
	// Next is set on leave events.
	Next NodeID
}

// Hooks are optional callbacks fired by Run.
type Hooks struct {
	OnNodeEnter func(*NodeEvent)
	OnNodeLeave func(*NodeEvent)
	OnReprompt  func(*NodeEvent)
}

func (h Hooks) fire(fn func(*NodeEvent), e *NodeEvent) {
	if fn != nil {
		fn(e)
	}
}
