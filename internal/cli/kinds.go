package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/traits/pkg/trait"
)

type kindView struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	ID      string `json:"id"`
	Tooltip string `json:"tooltip,omitempty"`
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List declared trait kinds and their identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metas := trait.Default().Kinds()
			if a.flags.jsonMode {
				views := make([]kindView, 0, len(metas))
				for _, m := range metas {
					views = append(views, kindView{Kind: string(m.Kind), Name: m.Name, ID: m.ID.String(), Tooltip: m.Tooltip})
				}
				return a.printJSON(cmd, views)
			}
			for _, m := range metas {
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-36s %s\n", m.Name, m.ID, m.Kind)
			}
			return nil
		},
	}
}

func newIDCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "id <name>",
		Short: "Print the identifier of an anonymous trait name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := trait.AnonymousID(args[0])
			if a.flags.jsonMode {
				return a.printJSON(cmd, map[string]string{"name": args[0], "id": id.String()})
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
