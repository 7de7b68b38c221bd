/*
Package constorm is a toolkit for interactive, text-based menu applications.

An application is a graph of screens: option lists, info panels, data-entry
prompts, silent function steps and exit screens. A single-threaded loop runs
the current screen, which displays itself, collects validated input and names
the next screen. The loop ends when a screen names none.

# Packages

  - pkg/menu: node variants, the Graph arena and the driver.
  - pkg/wordwrap: delimiter and hyphenation aware word wrapping.
  - pkg/input: validated, line-oriented reads.
  - pkg/output: the printer, headers and renderable values.
  - pkg/loader: menu graphs declared in YAML.

# Usage

	g := menu.NewGraph()
	bye := g.Add(menu.NewExitMenu("Press something to close this application..."))

	login := menu.NewInputMenu[string]("User Name Entry")
	login.SetValidation(func(s string) bool { return s != "" })
	loginID := g.Add(login)

	main := menu.NewOptionsMenu("Main Menu")
	main.SetDescriptionWrap("Select the number of your preferred option.", 40, 4)
	main.AppendOption("Login", loginID)
	main.AppendOption("Exit", bye)
	start := g.Add(main)
	login.SetNext(start)

	if err := constorm.RunLoop(g, start); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal(err)
	}
*/
package constorm
