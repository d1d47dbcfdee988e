// Package termsize reports the dimensions of the controlling terminal.
package termsize

import "golang.org/x/term"

// Size is a terminal geometry in character cells.
type Size struct {
	Cols, Rows int
}

// Default is used when the output is not a terminal.
var Default = Size{Cols: 80, Rows: 24}

// Current queries the terminal behind fd. It never fails: anything that is
// not a usable terminal reports Default.
func Current(fd uintptr) Size {
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return Default
	}
	return Size{Cols: w, Rows: h}
}

// IsTerminal reports whether fd is a terminal.
func IsTerminal(fd uintptr) bool { return term.IsTerminal(int(fd)) }
