// Package tui is the interactive front end: a bubbletea program whose event
// queue carries keystrokes, terminal resizes and shutdown.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tadalist/internal/session"
	"github.com/idilsaglam/tadalist/internal/termsize"
	"github.com/idilsaglam/tadalist/internal/ui"
)

type keyMap struct {
	Submit    key.Binding
	Interrupt key.Binding
}

var keys = keyMap{
	Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
	Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

type modelTUI struct {
	sess   *session.Session
	input  textinput.Model
	size   termsize.Size
	status string // last save error

	quitting bool
}

func newModel(sess *session.Session, size termsize.Size) modelTUI {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.PromptStyle = ui.PromptStyle()
	ti.CharLimit = 510
	ti.Focus()
	return modelTUI{sess: sess, input: ti, size: size}
}

// Run drives sess until the user quits, presses ctrl+c or ctx is
// cancelled. None of these is an error.
func Run(ctx context.Context, sess *session.Session, in io.Reader, out io.Writer, size termsize.Size) error {
	p := tea.NewProgram(newModel(sess, size),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, tea.ErrInterrupted) {
		return nil
	}
	return err
}

func (m modelTUI) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle(windowTitle(m.sess)), textinput.Blink)
}

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Applied before the next View; whatever is typed stays in the input.
		m.size = termsize.Size{Cols: msg.Width, Rows: msg.Height}
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 1)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Interrupt):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			out := m.sess.Handle(line)
			if out.Action == session.ActionQuit {
				m.quitting = true
				return m, tea.Quit
			}
			m.status = statusText(out)
			return m, tea.SetWindowTitle(windowTitle(m.sess))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m modelTUI) View() string {
	if m.quitting {
		return ""
	}
	l := m.sess.List()
	return ui.Screen{
		Title:    l.Title(),
		Entries:  l.Entries(),
		Size:     m.size,
		ShowHelp: m.sess.ShowHelp(),
		Status:   m.status,
	}.View(m.input.View())
}

// statusText surfaces save failures. Ignored indexes stay silent.
func statusText(out session.Outcome) string {
	if out.Err == nil || out.Ignored() {
		return ""
	}
	return out.Err.Error()
}

func windowTitle(sess *session.Session) string {
	l := sess.List()
	_, pending := l.Counts()
	if pending == 0 {
		return l.Title()
	}
	return fmt.Sprintf("%s (%d)", l.Title(), pending)
}
