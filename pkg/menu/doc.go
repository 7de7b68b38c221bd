/*
Package menu models a text menu application as a graph of screens.

A Graph is an arena: nodes are stored once and refer to each other through
NodeID handles, so a node may lead back to itself or to any ancestor. Every
node implements Run, which displays the screen, collects whatever input it
needs through the Env and returns the handle of the next node. Returning None
is the only way a session ends.

The variants are:

  - OptionsMenu: numbered choices; the user picks one in [1, N].
  - InputMenu: reads one validated value of a scalar type.
  - InfoMenu: headed sections followed by a pause.
  - FunctionMenu: calls a bound function without displaying anything.
  - ExitMenu: optional farewell pause, then None.

Invalid input never surfaces as an error. Nodes re-prompt until the answer is
valid; the only error a node returns is a failing input stream.

	g := menu.NewGraph()
	bye := g.Add(menu.NewExitMenu("Goodbye"))
	main := menu.NewOptionsMenu("Main Menu")
	main.AppendOption("Quit", bye)
	start := g.Add(main)

	stats, err := menu.Run(menu.NewEnv(nil, nil), g, start)
*/
package menu
