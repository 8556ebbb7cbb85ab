package fixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdtkit/fixtures/geom"
)

func TestLoadSVG(t *testing.T) {
	tc, err := LoadSVG(filepath.Join("testdata", "svg", "triangle.svg"), false)
	require.NoError(t, err)

	assert.Equal(t, "triangle.svg", tc.Name)
	assert.Equal(t, "svg:triangle.svg", tc.Source)
	assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}, tc.Points)
	// The outline is fully constrained and closed.
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, tc.Edges)
	assert.Equal(t, geom.Extent{MinX: 0, MinY: 0, MaxX: 10, MaxY: 8}, tc.Extent)
	assert.False(t, tc.ExpectsError())
}

func TestLoadSVG_Missing(t *testing.T) {
	_, err := LoadSVG(filepath.Join(t.TempDir(), "nope.svg"), false)
	require.Error(t, err)
	assert.True(t, IsReadError(err))
}

func TestLoadSVG_NotSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "junk.svg")
	require.NoError(t, os.WriteFile(path, []byte("<<<"), 0o644))
	_, err := LoadSVG(path, false)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestLoadSVG_NoPolygon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`
	require.NoError(t, os.WriteFile(path, []byte(svg), 0o644))
	_, err := LoadSVG(path, false)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "exactly one polygon")
}
