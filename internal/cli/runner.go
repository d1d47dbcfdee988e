package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/idilsaglam/tadalist/internal/lineloop"
	"github.com/idilsaglam/tadalist/internal/session"
	"github.com/idilsaglam/tadalist/internal/store/textstore"
	"github.com/idilsaglam/tadalist/internal/termsize"
	"github.com/idilsaglam/tadalist/internal/tui"
	"github.com/idilsaglam/tadalist/internal/ui"
)

// Run executes the command line and returns the exit code: 0 on quit or
// interrupt, 1 on a usage or startup error.
func Run(args []string, app *App) int {
	cmd := NewRootCmd(app)
	cmd.SetArgs(args)
	cmd.SetOut(app.Out)
	cmd.SetErr(app.Err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		app.Out.WriteString(usage(filepath.Base(os.Args[0])))
		return 1
	default:
		ui.Fail(app.Err, err.Error())
		return 1
	}
}

func runList(ctx context.Context, app *App, path, title string) error {
	log, closeLog, err := newLogger(app.LogPath, app.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	l, err := textstore.Load(path, title)
	if err != nil {
		log.Error("load failed", "path", path, "err", err)
		return err
	}
	log.Info("list loaded", "path", l.Path(), "title", l.Title(), "entries", l.Len())

	outTTY := termsize.IsTerminal(app.Out.Fd())
	ui.ApplyColorProfile(outTTY)
	interactive := !app.Plain && outTTY && termsize.IsTerminal(app.In.Fd())

	sess := session.New(l, textstore.Save,
		session.WithLogger(log),
		session.WithHelp(!app.NoHelp),
		session.OnClose(func() {
			if outTTY {
				ui.Restore(app.Out)
			}
		}),
	)
	defer sess.Close()

	if outTTY {
		ui.Prepare(app.Out, l.Title())
	}

	if interactive {
		return tui.Run(ctx, sess, app.In, app.Out, termsize.Current(app.Out.Fd()))
	}

	var resize <-chan struct{}
	if outTTY {
		resize = lineloop.Resizes(ctx)
	}
	return lineloop.Run(ctx, sess, lineloop.Config{
		In:      app.In,
		Out:     app.Out,
		Size:    func() termsize.Size { return termsize.Current(app.Out.Fd()) },
		Resize:  resize,
		Escapes: outTTY,
		Logger:  log,
	})
}
