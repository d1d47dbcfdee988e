package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Terminal control sequences for the plain front end. Colors go through
// lipgloss; these cover what lipgloss does not.
const clearScreen = ansi.EraseEntireScreen + ansi.EraseEntireDisplay + ansi.CursorHomePosition

var bgBlack = ansi.Style{}.BackgroundColor(ansi.Black).String()

// SetTitle returns the sequence that sets the terminal window title.
func SetTitle(title string) string {
	// BEL and ESC would end the sequence early.
	title = strings.Map(func(r rune) rune {
		if r == '\a' || r == ansi.ESC {
			return -1
		}
		return r
	}, title)
	return ansi.SetWindowTitle(title)
}

// MoveToRow returns the sequence that puts the cursor on the first column of
// a 1-based row.
func MoveToRow(row int) string {
	return ansi.CursorPosition(1, max(row, 1))
}

// Prepare sets the window title and default background.
func Prepare(w io.Writer, title string) {
	io.WriteString(w, SetTitle(title)+bgBlack)
}

// Restore resets the window title and colors and clears the screen.
func Restore(w io.Writer) {
	io.WriteString(w, ansi.SetWindowTitle("")+ansi.ResetStyle+clearScreen)
}
