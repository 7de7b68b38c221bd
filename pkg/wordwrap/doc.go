/*
Package wordwrap reflows text into fixed-width lines.

Breaking is delimiter aware: spaces, explicit newlines and tabs separate tokens, and tabs are
expanded inline while scanning. A single token wider than the column limit is force-hyphenated.
Widths are measured in terminal columns, so wide runes count double.

	lines := wordwrap.Wrap("The quick brown fox", 10, 4)
	// ["The quick ", "brown fox"]

Trailing spaces of a flushed line are part of the output.
*/
package wordwrap
