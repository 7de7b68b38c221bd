package menu

// ExitMenu ends the session, optionally pausing on a farewell message.
type ExitMenu struct {
	message string
}

// NewExitMenu creates an ExitMenu. An empty message exits without pausing.
func NewExitMenu(message string) *ExitMenu {
	return &ExitMenu{message: message}
}

// SetMessage replaces the farewell message.
func (m *ExitMenu) SetMessage(msg string) { m.message = msg }

// Message returns the farewell message.
func (m *ExitMenu) Message() string { return m.message }

func (m *ExitMenu) Kind() Kind { return KindExit }

func (m *ExitMenu) Edges() []Edge { return nil }

// Run always returns None. A closed input stream during the pause is not an error here.
func (m *ExitMenu) Run(env *Env) (NodeID, error) {
	if m.message != "" {
		if err := env.In.Pause("\n " + m.message); err != nil {
			env.Logger.Debug("exit pause ended early", "error", err)
		}
	}
	return None, nil
}
