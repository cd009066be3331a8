package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/traits/pkg/types"
)

func newNewCmd(a *app) *cobra.Command {
	var flat bool
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create an object with the standard traits and store it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := types.ObjectModel
			if flat {
				kind = types.ObjectSymbol
			}

			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			o, err := buildObject(args[0], kind)
			if err != nil {
				return sysError("build object: %w", err)
			}
			defer o.Deinit()

			snap, err := saveObject(store, o)
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return a.printJSON(cmd, snap)
			}
			fmt.Fprintln(cmd.OutOrStdout(), snap.ObjectID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "create a flat symbol object (rotation about Z)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <object-id>",
		Short: "Display an object and its trait values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			o, err := loadObject(store, args[0])
			if err != nil {
				return err
			}
			defer o.Deinit()

			// Re-read through the getters so derived traits reflect the node.
			snap, err := o.Snapshot()
			if err != nil {
				return sysError("snapshot: %w", err)
			}
			return a.printSnapshot(cmd, snap)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <object-id> <trait> <json>",
		Short: "Write a trait value through its setter and store the result",
		Long: "Write a JSON value into the named trait (display name or identifier).\n" +
			"The write runs the trait's interceptor, so dependent traits update too.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			o, err := loadObject(store, args[0])
			if err != nil {
				return err
			}
			defer o.Deinit()

			t, err := findTrait(o, args[1])
			if err != nil {
				return err
			}
			if err := t.UnmarshalValue([]byte(args[2])); err != nil {
				return userError("set %s: %w", t.Name(), err)
			}

			snap, err := saveObject(store, o)
			if err != nil {
				return err
			}
			return a.printSnapshot(cmd, snap)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored objects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			snaps, err := store.List()
			if err != nil {
				return sysError("list objects: %w", err)
			}
			if a.flags.jsonMode {
				return a.printJSON(cmd, snaps)
			}
			for _, s := range snaps {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %s\n", s.ObjectID, s.Kind, s.Name)
			}
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <object-id>",
		Short: "Remove a stored object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			if err := store.Delete(args[0]); err != nil {
				if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidID) {
					return userError("delete %q: %w", args[0], err)
				}
				return sysError("delete object: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
			return nil
		},
	}
}
