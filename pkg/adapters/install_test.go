package adapters

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/traits/pkg/object"
	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

func TestInstallAttachesStandardSet(t *testing.T) {
	o := newTestObject(t, types.ObjectModel, twoParts()...)
	require.NoError(t, o.Init(Install()))

	var names []string
	for _, tr := range o.Traits() {
		names = append(names, tr.Name())
	}
	assert.Equal(t, []string{
		"Position", "Position2D", "Altitude", "Rotation", "Rotation1D",
		"Scale", "UniformScale", "Active", "Physics", "HighFidelityPhysics", "Collider",
	}, names)

	c, ok := object.Lookup[*Collider](o)
	require.True(t, ok)
	got, err := o.Trait(c.ID())
	require.NoError(t, err)
	assert.Same(t, c, got)

	_, ok = object.Lookup[*Expression](o)
	assert.False(t, ok)
}

func TestInstallRejectsDuplicateKind(t *testing.T) {
	o := newTestObject(t, types.ObjectModel)
	require.NoError(t, o.Init(Install()))

	extra, err := NewPosition3D(o)
	require.NoError(t, err)
	assert.ErrorIs(t, o.Attach(extra), types.ErrDuplicateTrait)
	assert.Len(t, o.Traits(), 11)
}

func TestPhysicsEndToEnd(t *testing.T) {
	o := newTestObject(t, types.ObjectModel, twoParts()...)
	require.NoError(t, o.Init(Install()))
	require.Nil(t, o.Node().Body)

	physicsID := uuid.MustParse("ea687117-1933-4301-b902-64706263f445")
	tr, err := o.Trait(physicsID)
	require.NoError(t, err)

	require.NoError(t, tr.SetValueAny(true))
	body := o.Node().Body
	require.NotNil(t, body)
	assert.True(t, body.UseGravity)
	assert.False(t, body.Kinematic)

	require.NoError(t, tr.SetValueAny(false))
	require.NotNil(t, o.Node().Body)
	assert.False(t, body.UseGravity)
	assert.True(t, body.Kinematic)

	enabled, err := object.Value[bool](o, physicsID)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestDeinitReleasesResources(t *testing.T) {
	o := newTestObject(t, types.ObjectModel, twoParts()...)
	require.NoError(t, o.Init(Install()))
	node := o.Node()

	phys, ok := object.Lookup[*Physics](o)
	require.True(t, ok)
	require.NoError(t, phys.SetValue(true))
	coll, ok := object.Lookup[*Collider](o)
	require.True(t, ok)
	require.NoError(t, coll.SetValue(types.ColliderBox))

	require.NoError(t, o.Deinit())
	assert.Nil(t, node.Body)
	for _, part := range node.Parts {
		assert.Empty(t, part.Colliders)
	}
	assert.Nil(t, o.Node())
	assert.Empty(t, o.Traits())
	assert.ErrorIs(t, o.Deinit(), types.ErrNotInitialized)
}

func TestSnapshotRestoreAcrossObjects(t *testing.T) {
	src := newTestObject(t, types.ObjectSymbol, twoParts()...)
	require.NoError(t, src.Init(Install()))

	pos, _ := object.Lookup[*Position3D](src)
	require.NoError(t, pos.SetValue(types.V3(1, 2, 3)))
	rot, _ := object.Lookup[*Rotation1D](src)
	require.NoError(t, rot.SetValue(30))
	phys, _ := object.Lookup[*Physics](src)
	require.NoError(t, phys.SetValue(true))
	coll, _ := object.Lookup[*Collider](src)
	require.NoError(t, coll.SetValue(types.ColliderSphere))

	snap, err := src.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Traits, 11)
	assert.Equal(t, types.ObjectSymbol, snap.Kind)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)
	var decoded types.ObjectSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))

	dst := newTestObject(t, types.ObjectSymbol, twoParts()...)
	require.NoError(t, dst.Init(Install()))
	require.NoError(t, dst.Restore(decoded))

	assert.Equal(t, types.V3(1, 2, 3), dst.Node().Transform.Position)
	assert.Equal(t, 30.0, dst.Node().Transform.Rotation.Z)
	require.NotNil(t, dst.Node().Body)
	assert.True(t, dst.Node().Body.UseGravity)
	for _, part := range dst.Node().Parts {
		require.Len(t, part.Colliders, 1)
		assert.Equal(t, types.ColliderSphere, part.Colliders[0].Shape)
	}
}

func TestAnonymousTraitAddressableByName(t *testing.T) {
	a := newTestObject(t, types.ObjectModel)
	b, err := object.New("other", types.ObjectModel, scene.NewNode("other"))
	require.NoError(t, err)

	ta, err := trait.NewAnonymous[float64](a, "speed", 1, nil, nil)
	require.NoError(t, err)
	tb, err := trait.NewAnonymous[float64](b, "speed", 2, nil, nil)
	require.NoError(t, err)
	require.NoError(t, a.Attach(ta))
	require.NoError(t, b.Attach(tb))

	got, err := object.Value[float64](b, trait.AnonymousID("speed"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, ta.ID(), tb.ID())
}
