package theory

import (
	"testing"

	"github.com/imuzolev/playnashville/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTonalityScoring(t *testing.T) {
	catalog := NewCatalog()

	// C F G C maximizes total, unique and tonic hits for C major
	tonality, err := SelectTonality(catalog, "", "", []string{"C", "F", "G", "C"})
	require.NoError(t, err)
	assert.Equal(t, "C", tonality.Key)
	assert.Equal(t, ModeMajor, tonality.Mode)

	tonality, err = SelectTonality(catalog, "", "", []string{"Am", "Dm", "E", "Am"})
	require.NoError(t, err)
	assert.Equal(t, "Am", tonality.Key)
	assert.Equal(t, ModeMinor, tonality.Mode)
}

func TestSelectTonalityTonicBreaksHitTies(t *testing.T) {
	catalog := NewCatalog()

	// A lone G scores one hit in many tonalities; only G major maps it to
	// the tonic degree
	tonality, err := SelectTonality(catalog, "", "", []string{"G"})
	require.NoError(t, err)
	assert.Equal(t, "G", tonality.Key)
	assert.Equal(t, ModeMajor, tonality.Mode)
}

func TestSelectTonalityFullTieKeepsCatalogOrder(t *testing.T) {
	catalog := NewCatalog()

	// Dm is a non-tonic chord of several tonalities; every candidate scores
	// (1, 1, 0), so the first one in table order wins
	tonality, err := SelectTonality(catalog, "", "", []string{"Dm"})
	require.NoError(t, err)
	assert.Equal(t, "C", tonality.Key)
	assert.Equal(t, ModeMajor, tonality.Mode)
}

func TestSelectTonalityModeFilter(t *testing.T) {
	catalog := NewCatalog()

	tonality, err := SelectTonality(catalog, "", ModeMinor, []string{"Am", "Dm", "G"})
	require.NoError(t, err)
	assert.Equal(t, ModeMinor, tonality.Mode)
	assert.Equal(t, "Am", tonality.Key)
}

func TestSelectTonalityExplicitKey(t *testing.T) {
	catalog := NewCatalog()

	// Explicit key wins even with no chords; mode defaults to major
	tonality, err := SelectTonality(catalog, "G", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "G", tonality.Key)
	assert.Equal(t, ModeMajor, tonality.Mode)

	// Flat spellings resolve through normalization
	tonality, err = SelectTonality(catalog, "Bb", ModeMinor, nil)
	require.NoError(t, err)
	assert.Equal(t, "A#m", tonality.Key)
	assert.Equal(t, "A#m", tonality.Label)
}

func TestSelectTonalityExplicitKeyErrors(t *testing.T) {
	catalog := NewCatalog()

	_, err := SelectTonality(catalog, "X", "", []string{"C"})
	assert.ErrorIs(t, err, errors.ErrInvalidKey)

	// C minor names a real key but has no table data
	_, err = SelectTonality(catalog, "C", ModeMinor, nil)
	assert.ErrorIs(t, err, errors.ErrInvalidKey)
}

func TestSelectTonalityNoChords(t *testing.T) {
	catalog := NewCatalog()
	_, err := SelectTonality(catalog, "", "", nil)
	assert.ErrorIs(t, err, errors.ErrNoChordsFound)
}

func TestSelectTonalityNoCandidate(t *testing.T) {
	catalog := NewCatalog()
	_, err := SelectTonality(catalog, "", "", []string{"HB", "Z"})
	assert.ErrorIs(t, err, errors.ErrNoTonalityMatch)
}
