package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// App carries root flags and the process streams.
type App struct {
	Plain    bool
	NoHelp   bool
	LogPath  string
	LogLevel string

	In  *os.File
	Out *os.File
	Err *os.File
}

// errUsage marks a violated command-line contract.
var errUsage = errors.New("usage")

func usage(name string) string {
	return fmt.Sprintf("usage:\n%s filename [title]\n", name)
}

// NewRootCmd builds the tadalist command.
func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tadalist <path> [title]",
		Short:         "Keep a todo list in a text file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Open (or start) shopping.txt, titled "Shopping"
  tadalist shopping

  # Start a new list with an explicit title
  tadalist ~/lists/week.txt "This week"
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) > 1 {
				title = args[1]
			}
			return runList(cmd.Context(), app, args[0], title)
		},
	}
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error { return errUsage })

	cmd.Flags().BoolVar(&app.Plain, "plain", envBool("TADALIST_PLAIN"), "Read commands line by line instead of running the full-screen UI")
	cmd.Flags().BoolVar(&app.NoHelp, "no-help", false, "Start with the help panel hidden")
	cmd.Flags().StringVar(&app.LogPath, "log", envOr("TADALIST_LOG", ""), "Write logs to this file")
	cmd.Flags().StringVar(&app.LogLevel, "log-level", envOr("TADALIST_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
	return cmd
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
