package drawable

import (
	"testing"

	"github.com/achilleasa/displaymgr/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleIdentity(t *testing.T) {
	h1 := Handle{ID: 1, Style: Triangles, Count: 3, Color: types.XYZ(1, 0, 0)}
	h2 := Handle{ID: 1, Style: Lines, Count: 6, Color: types.XYZ(0, 1, 0)}
	h3 := Handle{ID: 2, Style: Triangles, Count: 3, Color: types.XYZ(1, 0, 0)}

	assert.True(t, h1.Same(h2))
	assert.False(t, h1.Same(h3))
}

func TestHandleValidate(t *testing.T) {
	require.NoError(t, Handle{ID: 1, Style: TriangleFan, Count: 0}.Validate())

	err := Handle{ID: 4, Style: Triangles, Count: -1}.Validate()
	require.EqualError(t, err, "drawable: handle 4 has negative count -1")

	err = Handle{ID: 5, Style: Style(42), Count: 1}.Validate()
	require.EqualError(t, err, "drawable: handle 5 has unsupported style style(42)")
}

func TestParseStyle(t *testing.T) {
	for style, name := range styleNames {
		parsed, err := ParseStyle(name)
		require.NoError(t, err)
		assert.Equal(t, style, parsed)
		assert.Equal(t, name, style.String())
	}

	_, err := ParseStyle("quads")
	require.EqualError(t, err, `drawable: unknown draw style "quads"`)
}

func TestFinalize(t *testing.T) {
	var released []ID
	h := Handle{ID: 7}
	h.Finalize(ReleaserFunc(func(id ID) {
		released = append(released, id)
	}))

	assert.Equal(t, []ID{7}, released)
}
