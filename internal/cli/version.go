package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the traits CLI release.
const Version = "0.3.0"

const modulePath = "github.com/mesh-intelligence/traits"

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the traits version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.flags.jsonMode {
				return a.printJSON(cmd, map[string]string{"version": Version, "module": modulePath})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "traits v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
