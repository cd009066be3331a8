package object

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/traits/pkg/types"
)

// Snapshot captures the value of every attached trait, read through the
// traits' intercepted getters.
func (o *Object) Snapshot() (types.ObjectSnapshot, error) {
	snap := types.ObjectSnapshot{
		ObjectID: o.id.String(),
		Name:     o.name,
		Kind:     o.kind,
		Traits:   make([]types.TraitValue, 0, len(o.order)),
		SavedAt:  time.Now().UTC(),
	}
	for _, t := range o.Traits() {
		data, err := t.MarshalValue()
		if err != nil {
			return types.ObjectSnapshot{}, fmt.Errorf("snapshot %s: %w", t.Name(), err)
		}
		snap.Traits = append(snap.Traits, types.TraitValue{
			TraitID: t.ID().String(),
			Name:    t.Name(),
			Value:   data,
		})
	}
	return snap, nil
}

// Restore writes each snapshot value into the attached trait with the same
// identifier, in attach order, through the traits' intercepted setters.
// Values for traits that are not attached are logged and skipped.
func (o *Object) Restore(snap types.ObjectSnapshot) error {
	byID := make(map[uuid.UUID]types.TraitValue, len(snap.Traits))
	for _, tv := range snap.Traits {
		id, err := uuid.Parse(tv.TraitID)
		if err != nil {
			return fmt.Errorf("restore %s: trait id %q: %w", tv.Name, tv.TraitID, err)
		}
		if _, ok := o.traits[id]; !ok {
			o.logger.Warn("snapshot trait not attached", slog.String("trait", tv.Name), slog.String("id", tv.TraitID))
			continue
		}
		byID[id] = tv
	}
	for _, id := range o.order {
		tv, ok := byID[id]
		if !ok {
			continue
		}
		if err := o.traits[id].UnmarshalValue(tv.Value); err != nil {
			return fmt.Errorf("restore %s: %w", tv.Name, err)
		}
	}
	return nil
}
