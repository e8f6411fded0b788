package drills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalCatalog = `
Physical:
  - title: "Sprint ladder"
    description: "Ladder footwork then 10m sprint."
    video_query: "futsal agility ladder"
Technical:
  - title: "Sole control"
    description: "Receive with the sole and turn."
Tactical:
  - title: "3-1 rotation"
    description: "Rotate positions on the pivot's cue."
  - title: "Zonal press"
    description: "Press in pairs."
Set-Piece:
  - title: "Kick-in routine"
    description: "Short kick-in and shot."
Game:
  - title: "4v4 scrimmage"
    description: "Free play."
`

func TestParse_Valid(t *testing.T) {
	cat, err := Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	assert.Equal(t, 6, cat.Size())
	require.Len(t, cat[CategoryTactical], 2)
	assert.Equal(t, "Zonal press", cat[CategoryTactical][1].Title)
	assert.Equal(t, "futsal agility ladder", cat[CategoryPhysical][0].VideoQuery)
	assert.Empty(t, cat[CategoryTechnical][0].VideoQuery)
}

func TestParse_UnknownCategory(t *testing.T) {
	data := minimalCatalog + `
Goalkeeping:
  - title: "Diving saves"
    description: "Low dives."
`
	_, err := Parse([]byte(data))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestParse_EmptyPool(t *testing.T) {
	data := `
Physical:
  - title: "Sprint"
    description: "Sprint."
Technical: []
Tactical:
  - title: "Press"
    description: "Press."
Set-Piece:
  - title: "Corner"
    description: "Corner."
Game:
  - title: "Scrimmage"
    description: "Play."
`
	_, err := Parse([]byte(data))
	require.ErrorIs(t, err, ErrEmptyPool)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("Physical: [unterminated"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalCatalog), 0o644))

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cat.Size())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
