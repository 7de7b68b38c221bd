/*
Package loader builds menu graphs from YAML.

A file holds one or more YAML documents, each with an optional start node and
a list of nodes:

	start: main
	nodes:
	  - id: main
	    type: options
	    title: Main Menu
	    description: Pick an option.
	    columns: 40
	    options:
	      - {text: Login, to: login}
	      - {text: Exit, to: bye}
	  - id: login
	    type: input
	    value: string
	    validate: {non_empty: true}
	    to: main
	  - id: bye
	    type: exit
	    message: Goodbye

Node types are options, input, info, function and exit. Input values are
string, int, float or bool. Function nodes name a callback in a
registry.Registry; their result is printed before a pause.

Every reference is resolved when the graph is built, so a loaded graph never
holds a dangling handle. Unknown keys are rejected.
*/
package loader
