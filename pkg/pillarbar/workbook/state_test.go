package workbook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkondo9/pillarbar-go/pkg/pillarbar"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadStateYAML(t *testing.T) {
	path := writeFile(t, "state.yaml", `
orientation:
  orientation: horizontal
  useSentimentFeatures: true
  limitBreakdown: true
  maxBreakdown: 25
pillars:
  totalPillar: true
xAxis:
  fontSize: 9
  showGridline: true
  gridlineColor: "#cccccc"
labels:
  show: true
  defaultPosition: insideEnd
`)

	st, err := LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, "horizontal", st.Orientation.Orientation)
	assert.True(t, st.Orientation.UseSentimentFeatures)
	assert.Equal(t, 25, st.Orientation.MaxBreakdown)
	assert.True(t, st.Pillars.TotalPillar)
	assert.Equal(t, 9.0, st.XAxis.FontSize)
	assert.Equal(t, "#cccccc", st.XAxis.GridlineColor)
	assert.Equal(t, "insideEnd", st.Labels.DefaultPosition)
}

func TestLoadStateJSON(t *testing.T) {
	path := writeFile(t, "state.json", `{
  "orientation": {"orientation": "vertical", "sort_data": true},
  "margins": {"top": 10, "bottom": 20, "left": 30, "right": 40}
}`)

	st, err := LoadState(path)
	require.NoError(t, err)
	assert.True(t, st.Orientation.SortData)
	assert.Equal(t, 40.0, st.Margins.Right)
}

func TestLoadStateErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadState(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorIs(t, err, pillarbar.ErrFileNotFound)
	})

	t.Run("bad yaml", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "orientation: [")
		_, err := LoadState(path)
		assert.ErrorIs(t, err, pillarbar.ErrInvalidFormat)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "state.toml", "x = 1")
		_, err := LoadState(path)
		assert.ErrorIs(t, err, pillarbar.ErrInvalidFormat)
	})
}
