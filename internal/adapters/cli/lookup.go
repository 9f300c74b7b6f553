package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/present"
	"github.com/jsamuelsen11/oktaorginfo/internal/app/controller"
	"github.com/jsamuelsen11/oktaorginfo/internal/app/fanout"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain/tenant"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/logging"
)

// errLookupsFailed is returned when at least one lookup did not succeed.
var errLookupsFailed = errors.New("lookup failed")

func newLookupCommand(flags *rootFlags, streams Streams) *cobra.Command {
	var (
		output   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "lookup <domain>...",
		Short: "Fetch and print organization metadata for one or more tenants",
		Long: "Each domain is completed and normalized the same way the interactive form does it, " +
			"then fetched with exactly one request.",
		Example: "  oktaorginfo lookup acme\n" +
			"  oktaorginfo lookup --output json acme.oktapreview.com\n" +
			"  oktaorginfo lookup --parallel 4 acme globex initech",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			overrides := flags.overrides(cmd)
			if cmd.Flags().Changed("output") {
				overrides["output.format"] = output
			}

			rt, err := bootstrap(cmd.Context(), flags.configPath, overrides, false, streams.Err)
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

			ctx := logging.WithLogger(cmd.Context(), rt.logger)
			results := fanout.Run(ctx, parallel, args, func(ctx context.Context, d string) (*domain.OrgInfo, error) {
				c := controller.New()
				c.SetInput(d)
				return c.Submit(ctx, svc)
			})

			return writeResults(streams, rt.cfg.Output.Format, args, results)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: text, json (default from config)")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "number of tenants to look up at once")
	return cmd
}

// writeResults prints each outcome in argument order. Successes go to Out and
// failures to Err as "Error: <message>".
func writeResults(streams Streams, format string, args []string, results []fanout.Result[*domain.OrgInfo]) error {
	multi := len(args) > 1
	failed := 0

	for i, r := range results {
		name := tenant.Complete(tenant.CleanInput(args[i]))

		if r.Err != nil {
			failed++
			if multi {
				fmt.Fprintf(streams.Err, "%s: %s%v\n", name, controller.ErrorPrefix, r.Err)
			} else {
				fmt.Fprintf(streams.Err, "%s%v\n", controller.ErrorPrefix, r.Err)
			}
			continue
		}

		if multi && format == present.FormatText {
			fmt.Fprintf(streams.Out, "# %s\n", name)
		}
		if err := present.Write(streams.Out, r.Value, format); err != nil {
			return fmt.Errorf("writing result for %s: %w", name, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errLookupsFailed, failed, len(args))
	}
	return nil
}
