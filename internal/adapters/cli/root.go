// Package cli is the command-line front-end. With no arguments it opens the
// interactive lookup form; lookup and complete serve scripts.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Streams are the terminal streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// overrides maps the flags the user actually set onto config keys.
func (f *rootFlags) overrides(cmd *cobra.Command) map[string]any {
	out := map[string]any{}
	if cmd.Flags().Changed("log-level") {
		out["log.level"] = f.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		out["log.format"] = f.logFormat
	}
	return out
}

// NewRootCommand builds the oktaorginfo command tree.
func NewRootCommand(streams Streams) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "oktaorginfo [domain]",
		Short: "Look up the public organization metadata of an Okta tenant",
		Long: "oktaorginfo reads an Okta tenant's /.well-known/okta-organization document " +
			"and shows its org ID, engine type, cell and URLs.\n\n" +
			"Run without a command to open the interactive form. Requests go straight from this " +
			"machine to the tenant; there is no backend.\n\n" +
			"Not affiliated with, endorsed by, or associated with Okta, Inc.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags, streams, args)
		},
	}

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/oktaorginfo/config.yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		newUICommand(flags, streams),
		newLookupCommand(flags, streams),
		newCompleteCommand(streams),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, streams Streams) error {
	root := NewRootCommand(streams)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
