package menu

// FunctionMenu calls a bound function without showing a screen.
// An unbound FunctionMenu ends its branch: Run returns None.
type FunctionMenu[A, R any] struct {
	fn      func(A) R
	args    A
	result  R
	ran     bool
	next    NodeID
	display func(env *Env, result R) error
}

// NewFunctionMenu creates a FunctionMenu bound to fn. A nil fn leaves it unbound.
func NewFunctionMenu[A, R any](fn func(A) R, args A, next NodeID) *FunctionMenu[A, R] {
	return &FunctionMenu[A, R]{fn: fn, args: args, next: next}
}

// SetFunction binds fn. Nil unbinds.
func (m *FunctionMenu[A, R]) SetFunction(fn func(A) R) { m.fn = fn }

// SetArgs replaces the bound argument.
func (m *FunctionMenu[A, R]) SetArgs(args A) { m.args = args }

// Args returns the bound argument.
func (m *FunctionMenu[A, R]) Args() A { return m.args }

// Bound reports whether a function is set.
func (m *FunctionMenu[A, R]) Bound() bool { return m.fn != nil }

// SetNext sets the node run after the call.
func (m *FunctionMenu[A, R]) SetNext(id NodeID) { m.next = id }

// Next returns the node run after the call.
func (m *FunctionMenu[A, R]) Next() NodeID { return m.next }

// SetDisplay shows the result after each call. Its error ends the session.
func (m *FunctionMenu[A, R]) SetDisplay(fn func(env *Env, result R) error) { m.display = fn }

// Result returns the last result. It reports false until the function has run.
func (m *FunctionMenu[A, R]) Result() (R, bool) { return m.result, m.ran }

func (m *FunctionMenu[A, R]) Kind() Kind { return KindFunction }

// Edges is empty while no function is bound, since Run then ends the session.
func (m *FunctionMenu[A, R]) Edges() []Edge {
	if m.fn == nil {
		return nil
	}
	return edgeTo(m.next)
}

func (m *FunctionMenu[A, R]) Run(env *Env) (NodeID, error) {
	if m.fn == nil {
		return None, nil
	}
	m.result = m.fn(m.args)
	m.ran = true
	if m.display != nil {
		if err := m.display(env, m.result); err != nil {
			return None, err
		}
	}
	return m.next, nil
}
