package adapters

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/traits/pkg/object"
	"github.com/mesh-intelligence/traits/pkg/scene"
	"github.com/mesh-intelligence/traits/pkg/types"
)

func newTestObject(t *testing.T, kind types.ObjectKind, parts ...*scene.Part) *object.Object {
	t.Helper()
	o, err := object.New("test", kind, scene.NewNode("test", parts...))
	require.NoError(t, err)
	return o
}

func twoParts() []*scene.Part {
	return []*scene.Part{
		scene.NewPart("body", types.V3(2, 1, 1)),
		scene.NewPart("head", types.V3(1, 1, 1)),
	}
}
