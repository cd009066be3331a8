package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/traits/pkg/object"
	"github.com/mesh-intelligence/traits/pkg/trait"
	"github.com/mesh-intelligence/traits/pkg/types"
)

func TestExpressionReadsOtherTraits(t *testing.T) {
	o := newTestObject(t, types.ObjectModel)
	require.NoError(t, o.Init(Install(), InstallExpressions(
		[]string{"DoubleAltitude", "Falling", "Right"},
		map[string]string{
			"DoubleAltitude": "Altitude * 2",
			"Falling":        "Active && Physics",
			"Right":          "Position.X > 0",
		},
	)))

	alt, ok := object.Lookup[*Altitude](o)
	require.True(t, ok)
	require.NoError(t, alt.SetValue(3.5))

	double, err := o.TraitByName("DoubleAltitude")
	require.NoError(t, err)
	assert.Equal(t, 7.0, double.ValueAny())
	assert.Equal(t, trait.AnonymousID("DoubleAltitude"), double.ID())

	falling, err := o.TraitByName("Falling")
	require.NoError(t, err)
	assert.Equal(t, false, falling.ValueAny())
	phys, err := o.TraitByName("Physics")
	require.NoError(t, err)
	require.NoError(t, phys.SetValueAny(true))
	assert.Equal(t, true, falling.ValueAny())

	right, err := o.TraitByName("Right")
	require.NoError(t, err)
	assert.Equal(t, false, right.ValueAny())
}

func TestExpressionSelfReferenceUsesRawValue(t *testing.T) {
	o := newTestObject(t, types.ObjectModel)
	e, err := NewExpression(o, "Counter", "Counter == nil ? 1 : Counter + 1")
	require.NoError(t, err)
	require.NoError(t, o.Attach(e))

	assert.Equal(t, 1, e.Value())
	require.NoError(t, e.SetValue(41))
	assert.Equal(t, 42, e.Value())
	assert.Equal(t, 41, e.Get())
}

func TestExpressionFallsBackOnRuntimeError(t *testing.T) {
	o := newTestObject(t, types.ObjectModel)
	alt, err := NewAltitude(o)
	require.NoError(t, err)
	require.NoError(t, o.Attach(alt))
	e, err := NewExpression(o, "Broken", "Altitude.Field")
	require.NoError(t, err)
	require.NoError(t, o.Attach(e))

	require.NoError(t, e.SetValue("stored"))
	assert.Equal(t, "stored", e.Value())
}

func TestExpressionCompileErrors(t *testing.T) {
	o := newTestObject(t, types.ObjectModel)

	_, err := NewExpression(o, "Empty", "  ")
	assert.ErrorIs(t, err, types.ErrInvalidExpression)

	_, err = NewExpression(o, "Bad", "1 +")
	assert.ErrorIs(t, err, types.ErrInvalidExpression)

	_, err = NewExpression(nil, "NoOwner", "1")
	assert.ErrorIs(t, err, types.ErrOwnerRequired)
}
