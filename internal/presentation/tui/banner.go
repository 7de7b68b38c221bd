package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"   ___             ___ _                     ", "#38bdf8"},
	{"  / __|___ _ _    / __| |_ ___ _ _ _ __      ", "#60a5fa"},
	{" | (__/ _ \\ ' \\   \\__ \\  _/ _ \\ '_| '  \\ ", "#818cf8"},
	{"  \\___\\___/_||_|  |___/\\__\\___/_| |_|_|_|", "#a78bfa"},
}

// PrintBanner writes the ConStorm banner to w, colored when w is a color terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
