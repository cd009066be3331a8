package trait

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousFallsBackToRawStorage(t *testing.T) {
	a, err := NewAnonymous[float64](newTestOwner(), "speed", 1.5, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.5, a.Value())
	require.NoError(t, a.SetValue(3))
	assert.Equal(t, 3.0, a.Value())
	assert.Equal(t, 3.0, a.Get())
	assert.Equal(t, Kind(""), a.Kind())
	assert.Equal(t, "speed", a.Name())
}

func TestAnonymousDelegates(t *testing.T) {
	backing := 10
	a, err := NewAnonymous[int](newTestOwner(), "counter", 0,
		func() int { return backing },
		func(v int) error {
			if v < 0 {
				return errors.New("negative")
			}
			backing = v
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 10, a.Value())
	require.NoError(t, a.SetValue(42))
	assert.Equal(t, 42, backing)
	assert.Equal(t, 0, a.Get(), "delegate writes bypass the container")
	assert.Error(t, a.SetValue(-1))
}

func TestAnonymousSameNameSameIdentifier(t *testing.T) {
	a, err := NewAnonymous[int](newTestOwner(), "position", 0, nil, nil)
	require.NoError(t, err)
	b, err := NewAnonymous[string](newTestOwner(), "position", "", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, a.ID(), b.ID())
	assert.Equal(t, AnonymousID("position"), a.ID())
}

func TestAnonymousDestroy(t *testing.T) {
	a, err := NewAnonymous[int](newTestOwner(), "tmp", 0, nil, nil)
	require.NoError(t, err)
	require.NoError(t, a.Destroy())
	assert.True(t, a.Released())
}
