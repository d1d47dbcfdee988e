// Package lineloop is the line-at-a-time front end used when input is not a
// terminal: draw the list, block for one line, handle it, repeat.
package lineloop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/idilsaglam/tadalist/internal/session"
	"github.com/idilsaglam/tadalist/internal/termsize"
	"github.com/idilsaglam/tadalist/internal/ui"
)

// Config wires the loop to its environment.
type Config struct {
	In  io.Reader
	Out io.Writer

	// Size queries the current geometry. Nil means termsize.Default.
	Size func() termsize.Size
	// Resize delivers terminal size changes. Nil never fires.
	Resize <-chan struct{}
	// Escapes enables cursor control in the output; off, each frame is
	// plain text.
	Escapes bool

	Logger *slog.Logger
}

type input struct {
	line string
	err  error
}

// Run drives sess until a quit line, end of input or ctx cancellation. Only
// a failing reader is reported as an error.
func Run(ctx context.Context, sess *session.Session, cfg Config) error {
	if cfg.Size == nil {
		cfg.Size = func() termsize.Size { return termsize.Default }
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := readLines(ctx, cfg.In)

	var status string
	for !sess.Done() {
		draw(cfg, sess, cfg.Size(), status)

		var in input
	wait:
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-cfg.Resize:
				// The read stays blocked; the new size is picked up by the
				// next draw.
				log.Debug("terminal resized", "size", cfg.Size())
			case in = <-lines:
				break wait
			}
		}

		if in.err != nil {
			if errors.Is(in.err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read input: %w", in.err)
		}

		out := sess.Handle(in.line)
		status = ""
		if out.Err != nil && !out.Ignored() {
			status = out.Err.Error()
		}
	}
	return nil
}

func draw(cfg Config, sess *session.Session, size termsize.Size, status string) {
	l := sess.List()
	s := ui.Screen{
		Title:    l.Title(),
		Entries:  l.Entries(),
		Size:     size,
		ShowHelp: sess.ShowHelp(),
		Status:   status,
	}
	if cfg.Escapes {
		io.WriteString(cfg.Out, s.Frame())
		return
	}
	io.WriteString(cfg.Out, s.Text())
}

// readLines forwards lines from r without their terminators. The final
// value carries the read error, io.EOF included; a last line without a
// newline is delivered before it.
func readLines(ctx context.Context, r io.Reader) <-chan input {
	ch := make(chan input)
	go func() {
		br := bufio.NewReader(r)
		for {
			s, err := br.ReadString('\n')
			if s != "" {
				s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
				select {
				case ch <- input{line: s}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				select {
				case ch <- input{err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return ch
}
