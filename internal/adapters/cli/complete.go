package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain/tenant"
)

func newCompleteCommand(streams Streams) *cobra.Command {
	var asURL bool

	cmd := &cobra.Command{
		Use:   "complete <partial>",
		Short: "Print the completed domain for partial input",
		Example: "  oktaorginfo complete acme          # acme.okta.com\n" +
			"  oktaorginfo complete acme.oktap    # acme.oktapreview.com\n" +
			"  oktaorginfo complete --url acme    # https://acme.okta.com/.well-known/okta-organization",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			input := tenant.CleanInput(args[0])
			if input == "" {
				return domain.ErrEmptyDomain
			}

			out := tenant.Complete(input)
			if asURL {
				out = tenant.NormalizeDomain(out)
			}
			_, err := fmt.Fprintln(streams.Out, out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asURL, "url", false, "print the metadata URL instead of the domain")
	return cmd
}
