package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/traits/pkg/adapters"
	"github.com/mesh-intelligence/traits/pkg/object"
	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/sqlite"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

// defaultBounds sizes the single part every CLI object carries so that
// collider generation has something to measure.
var defaultBounds = types.V3(1, 1, 1)

// attachStore opens the snapshot store for the resolved config. The caller
// must defer store.Detach().
func (a *app) attachStore() (types.SnapshotStore, error) {
	store := sqlite.NewStore()
	if err := store.Attach(a.config); err != nil {
		return nil, sysError("attach store: %w", err)
	}
	return store, nil
}

// buildObject creates an initialized object with the standard adapters over
// a fresh one-part scene node.
func buildObject(name string, kind types.ObjectKind, opts ...object.Option) (*object.Object, error) {
	node := scene.NewNode(name, scene.NewPart("body", defaultBounds))
	o, err := object.New(name, kind, node, opts...)
	if err != nil {
		return nil, err
	}
	if err := o.Init(adapters.Install()); err != nil {
		return nil, err
	}
	return o, nil
}

// loadObject rebuilds the object stored under objectID and restores its
// trait values through the adapters' setters.
func loadObject(store types.SnapshotStore, objectID string) (*object.Object, error) {
	id, err := uuid.Parse(objectID)
	if err != nil {
		return nil, userError("object id %q: %w", objectID, types.ErrInvalidID)
	}
	snap, err := store.Load(id.String())
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, userError("object %q not found", objectID)
		}
		return nil, sysError("load object: %w", err)
	}
	o, err := buildObject(snap.Name, snap.Kind, object.WithID(id))
	if err != nil {
		return nil, sysError("build object: %w", err)
	}
	if err := o.Restore(snap); err != nil {
		_ = o.Deinit()
		return nil, sysError("restore object: %w", err)
	}
	return o, nil
}

// saveObject snapshots o into store.
func saveObject(store types.SnapshotStore, o *object.Object) (types.ObjectSnapshot, error) {
	snap, err := o.Snapshot()
	if err != nil {
		return types.ObjectSnapshot{}, sysError("snapshot: %w", err)
	}
	if err := store.Save(snap); err != nil {
		return types.ObjectSnapshot{}, sysError("save object: %w", err)
	}
	return snap, nil
}

// findTrait resolves ref as a trait identifier first, then as a display name.
func findTrait(o *object.Object, ref string) (trait.Trait, error) {
	if id, err := uuid.Parse(ref); err == nil {
		if t, err := o.Trait(id); err == nil {
			return t, nil
		}
	}
	t, err := o.TraitByName(ref)
	if err != nil {
		return nil, userError("trait %q: %w", ref, err)
	}
	return t, nil
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError("marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printSnapshot renders snap as JSON or as a human-readable block.
func (a *app) printSnapshot(cmd *cobra.Command, snap types.ObjectSnapshot) error {
	if a.flags.jsonMode {
		return a.printJSON(cmd, snap)
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "ID:     %s\n", snap.ObjectID)
	fmt.Fprintf(w, "Name:   %s\n", snap.Name)
	fmt.Fprintf(w, "Kind:   %s\n", snap.Kind)
	fmt.Fprintf(w, "Saved:  %s\n", snap.SavedAt.Format("2006-01-02 15:04:05"))
	if len(snap.Traits) > 0 {
		fmt.Fprintln(w, "\nTraits:")
		for _, tv := range snap.Traits {
			fmt.Fprintf(w, "  %-20s %s\n", tv.Name, string(tv.Value))
		}
	}
	return nil
}
