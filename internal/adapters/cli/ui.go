package cli

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/tui"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/logging"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

func newUICommand(flags *rootFlags, streams Streams) *cobra.Command {
	return &cobra.Command{
		Use:   "ui [domain]",
		Short: "Open the interactive lookup form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, flags, streams, args)
		},
	}
}

func runUI(cmd *cobra.Command, flags *rootFlags, streams Streams, args []string) (err error) {
	rt, err := bootstrap(cmd.Context(), flags.configPath, flags.overrides(cmd), true, streams.Err)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	svc, err := rt.orgInfoService()
	if err != nil {
		return err
	}
	clip, err := do.Invoke[ports.Clipboard](rt.injector)
	if err != nil {
		return fmt.Errorf("resolving clipboard: %w", err)
	}

	var initial string
	if len(args) == 1 {
		initial = args[0]
	}

	ctx := logging.WithLogger(cmd.Context(), rt.logger)
	_, err = tui.Run(ctx, tui.New(ctx, svc, clip, initial), streams.In, streams.Out)
	return err
}
