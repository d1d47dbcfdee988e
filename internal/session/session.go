// Package session turns input lines into list operations. It owns the list
// for the lifetime of the program; both front ends drive it from a single
// goroutine.
package session

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/idilsaglam/tadalist/internal/model"
)

// Action is what a line was understood as.
type Action int

const (
	ActionToggle Action = iota
	ActionAdd
	ActionDelete
	ActionHelp
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionDelete:
		return "delete"
	case ActionHelp:
		return "help"
	case ActionQuit:
		return "quit"
	default:
		return "toggle"
	}
}

// Outcome reports one handled line. Err is model.ErrInvalidIndex for an
// index that matched nothing, or the save error. Neither is fatal.
type Outcome struct {
	Action Action
	Index  int
	Err    error
}

// Ignored reports whether the line changed nothing because its index was
// out of range.
func (o Outcome) Ignored() bool { return errors.Is(o.Err, model.ErrInvalidIndex) }

// SaveFunc persists the list.
type SaveFunc func(*model.List) error

// Session holds the list and the view state shared by both front ends.
type Session struct {
	list     *model.List
	save     SaveFunc
	log      *slog.Logger
	showHelp bool
	done     bool

	closeOnce sync.Once
	onClose   func()
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option { return func(s *Session) { s.log = l } }

// WithHelp sets whether the help panel starts visible.
func WithHelp(show bool) Option { return func(s *Session) { s.showHelp = show } }

// OnClose registers f to run once when the session closes.
func OnClose(f func()) Option { return func(s *Session) { s.onClose = f } }

// New returns a session over l that calls save after every mutation.
func New(l *model.List, save SaveFunc, opts ...Option) *Session {
	s := &Session{
		list:     l,
		save:     save,
		log:      slog.New(slog.DiscardHandler),
		showHelp: true,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Session) List() *model.List { return s.list }
func (s *Session) ShowHelp() bool    { return s.showHelp }

// Done reports whether a quit line was handled.
func (s *Session) Done() bool { return s.done }

// Handle dispatches one line, without its terminator, on its first byte:
// q quits, a adds, d deletes, h toggles the help panel and anything else is
// read as the number of an entry to toggle.
func (s *Session) Handle(line string) Outcome {
	var cmd byte
	if len(line) > 0 {
		cmd = line[0] | 0x20 // ASCII lower case
	}

	var out Outcome
	switch cmd {
	case 'q':
		s.done = true
		return Outcome{Action: ActionQuit}
	case 'h':
		s.showHelp = !s.showHelp
		return Outcome{Action: ActionHelp}
	case 'a':
		s.list.AddFromCommand(line)
		out = Outcome{Action: ActionAdd, Index: s.list.Len()}
	case 'd':
		// The letter reads as a leading zero, so only digits right after it count.
		out = Outcome{Action: ActionDelete, Index: Atoi("0" + line[1:])}
		out.Err = s.list.Delete(out.Index)
	default:
		out = Outcome{Action: ActionToggle, Index: Atoi(line)}
		out.Err = s.list.Toggle(out.Index)
	}

	if out.Ignored() {
		s.log.Debug("index ignored", "action", out.Action.String(), "index", out.Index, "entries", s.list.Len())
	}
	if err := s.save(s.list); err != nil {
		s.log.Error("save failed", "path", s.list.Path(), "err", err)
		out.Err = err
	}
	return out
}

// Close releases the list and runs the OnClose hook. Only the first call
// does anything.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.log.Info("shutdown", "path", s.list.Path())
		s.list.Clear()
		if s.onClose != nil {
			s.onClose()
		}
	})
}
