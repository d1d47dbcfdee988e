package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/tadalist/internal/model"
	"github.com/idilsaglam/tadalist/internal/termsize"
)

const prompt = "> "

var helpRows = [][2]string{
	{"[n]", "Toggle entry [n]"},
	{"A [title]", "Add new entry"},
	{"D [n]", "Delete entry [n]"},
	{"H", "Toggle help"},
	{"Q", "Quit"},
}

// Screen is everything one redraw needs.
type Screen struct {
	Title    string
	Entries  []model.Entry
	Size     termsize.Size
	ShowHelp bool
	Status   string // last persistence error, if any
}

// Banner is the title between two rows of '=' spanning cols. It follows the
// terminal width, unlike the banner in the list file.
func Banner(title string, cols int) []string {
	deco := strings.Repeat("=", max(cols, 0))
	w := ansi.StringWidth(title)
	line := title
	if pad := cols/2 + w/2 - w; pad > 0 {
		line = strings.Repeat(" ", pad) + title
	}
	return []string{
		bannerStyle.Render(deco),
		bannerStyle.Render(line),
		bannerStyle.Render(deco),
	}
}

// EntryLines numbers entries from 1 and cuts them to cols.
func EntryLines(entries []model.Entry, cols int) []string {
	out := make([]string, 0, len(entries))
	for i, e := range entries {
		sym, style := symPending, pendingStyle
		if e.Done {
			sym, style = symDone, doneStyle
		}
		line := fmt.Sprintf("%3d: %s %s", i+1, sym, e.Title)
		if cols > 0 {
			line = ansi.Truncate(line, cols, "…")
		}
		out = append(out, style.Render(line))
	}
	return out
}

// HelpLines is the command reference, roughly centered.
func HelpLines(cols int) []string {
	indent := strings.Repeat(" ", max(cols/2-15, 0))
	out := make([]string, 0, len(helpRows))
	for _, r := range helpRows {
		out = append(out, indent+helpKeyStyle.Render(fmt.Sprintf("%-13s", r[0]))+helpStyle.Render(r[1]))
	}
	return out
}

// body is the banner, a spacer and the entries.
func (s Screen) body() []string {
	lines := Banner(s.Title, s.Size.Cols)
	lines = append(lines, "")
	return append(lines, EntryLines(s.Entries, s.Size.Cols)...)
}

// footer is what sits at the bottom, one blank line above the prompt.
func (s Screen) footer() []string {
	var lines []string
	if s.ShowHelp {
		lines = append(lines, HelpLines(s.Size.Cols)...)
	}
	if s.Status != "" {
		lines = append(lines, errorStyle.Render(ansi.Truncate(s.Status, max(s.Size.Cols, 1), "…")))
	}
	return lines
}

// anchorRow is the 1-based row the cursor jumps to before the footer: rows-7
// with the help panel and rows-2 without. The footer starts on the row below.
func (s Screen) anchorRow() int {
	return s.Size.Rows - 2 - len(s.footer())
}

// View lays the screen out as lines for a full-screen renderer, with input
// as the prompt line. The footer is pushed to the bottom with blank lines.
func (s Screen) View(input string) string {
	body, footer := s.body(), s.footer()
	if gap := s.anchorRow() - len(body); gap > 0 {
		body = append(body, make([]string, gap)...)
	}
	lines := append(body, footer...)
	return strings.Join(append(lines, "", input), "\n")
}

// Frame is the screen as a byte stream for a plain terminal: clear, draw the
// body, jump to the footer row, draw the footer and the prompt.
func (s Screen) Frame() string {
	var b strings.Builder
	b.WriteString(clearScreen)
	for _, l := range s.body() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString(MoveToRow(s.anchorRow()))
	b.WriteByte('\n')
	for _, l := range s.footer() {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.WriteString(promptStyle.Render(prompt))
	return b.String()
}

// Text is the screen without any cursor control, for output that is not a
// terminal.
func (s Screen) Text() string {
	var b strings.Builder
	for _, l := range append(s.body(), s.footer()...) {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	b.WriteString("\n" + prompt)
	return b.String()
}
