// Package cli implements the interactive diary menu.
//
// # Overview
//
// App is the application context: it owns the entry service, the input
// reader, the output writer, the screen clearer and the ordered list of menu
// commands. Run drives the menu loop until the user types "q".
//
// Menu commands
//
//	a: add an entry (multi-line, finished with Ctrl+D)
//	v: browse all entries, newest first
//	s: search entries, then browse the matches
//	q: quit
//
// While browsing, each entry is shown on its own screen with
//
//	n: next entry (any unrecognised input does the same)
//	d: delete the entry after a y/n confirmation
//	q: return to the main menu
//
// Declined confirmations, blank entries and unknown menu keys are silent.
// Storage errors are returned from Run; closing standard input at the menu
// prompt ends Run without error.
package cli
