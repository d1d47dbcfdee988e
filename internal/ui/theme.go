package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Screen glyphs. The list file uses its own markers.
const (
	symDone    = "✔"
	symPending = "✘"
)

// Eight-color palette, so it reads the same on any terminal.
var (
	bannerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	helpKeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// PromptStyle styles the input prompt.
func PromptStyle() lipgloss.Style { return promptStyle }

// ApplyColorProfile picks the lipgloss color profile. Output that is not a
// terminal and NO_COLOR turn colors off; otherwise the terminal's
// capabilities decide.
func ApplyColorProfile(tty bool) {
	if !tty || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.ColorProfile())
}

// Fail prints msg as an error line.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(symPending+" "+msg))
}
