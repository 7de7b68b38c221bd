package constorm_test

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/drake200120xx/constorm"
	"github.com/drake200120xx/constorm/pkg/menu"
)

// ExampleSession_RunLoop walks a two-option menu with scripted answers.
func ExampleSession_RunLoop() {
	g := menu.NewGraph()
	a := g.Add(menu.NewExitMenu(""))
	b := g.Add(menu.NewExitMenu(""))
	m := menu.NewOptionsMenu("Pick")
	if err := m.SetOptions([]string{"A", "B"}, []menu.NodeID{a, b}); err != nil {
		log.Fatal(err)
	}
	start := g.Add(m)

	s, err := constorm.New(g,
		constorm.WithInput(strings.NewReader("3\n1\n")),
		constorm.WithOutput(io.Discard),
	)
	if err != nil {
		log.Fatal(err)
	}

	stats, err := s.RunLoop(start)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("invocations=%d reprompts=%d visited A=%d\n", stats.Invocations, stats.Reprompts, stats.Visits[a])
	// Output:
	// invocations=2 reprompts=1 visited A=1
}
