package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geom "github.com/Alpha-00/cavalry-types"
)

func TestCreateEditable(t *testing.T) {
	r := NewRegistry()
	var p geom.Path
	require.NoError(t, p.AddRect(0, 0, 100, 100))

	id := r.CreateEditable(&p, "square")
	require.NotZero(t, id)

	l, ok := r.Layer(id)
	require.True(t, ok)
	assert.Equal(t, "square", l.Name)
	assert.Equal(t, id, l.ID)
	assert.Equal(t, geom.NewRect(0, 0, 100, 100), l.Path.BoundingBox())
}

func TestCreateEditableSnapshots(t *testing.T) {
	r := NewRegistry()
	var p geom.Path
	require.NoError(t, p.AddRect(0, 0, 100, 100))

	id := r.CreateEditable(&p, "square")

	// Mutating the original after handoff must not touch the layer.
	require.NoError(t, p.Translate(500, 500))
	p.Clear()

	l, ok := r.Layer(id)
	require.True(t, ok)
	assert.Equal(t, geom.NewRect(0, 0, 100, 100), l.Path.BoundingBox())
}

func TestDistinctIDs(t *testing.T) {
	r := NewRegistry()
	var p geom.Path
	require.NoError(t, p.AddRect(0, 0, 10, 10))

	a := r.CreateEditable(&p, "a")
	b := r.CreateEditable(&p, "b")
	assert.NotEqual(t, a, b)
}

func TestRemove(t *testing.T) {
	r := NewRegistry()
	var p geom.Path
	require.NoError(t, p.AddRect(0, 0, 10, 10))

	id := r.CreateEditable(&p, "a")
	assert.True(t, r.Remove(id))
	assert.False(t, r.Remove(id))

	_, ok := r.Layer(id)
	assert.False(t, ok)
}
