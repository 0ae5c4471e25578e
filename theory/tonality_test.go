package theory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogCoversAllScales(t *testing.T) {
	catalog := NewCatalog()
	tonalities := catalog.Tonalities()
	require.Len(t, tonalities, 18, "12 major + 6 minor")

	var major, minor int
	for _, tonality := range tonalities {
		switch tonality.Mode {
		case ModeMajor:
			major++
		case ModeMinor:
			minor++
		}
	}
	assert.Equal(t, 12, major)
	assert.Equal(t, 6, minor)

	// Majors come first; selector tie-breaks depend on this order
	assert.Equal(t, ModeMajor, tonalities[0].Mode)
	assert.Equal(t, "C", tonalities[0].Key)
}

func TestCatalogChordMaps(t *testing.T) {
	catalog := NewCatalog()

	cMajor, ok := catalog.Lookup("C", ModeMajor)
	require.True(t, ok)
	assert.Equal(t, "C", cMajor.Label)
	assert.Equal(t, map[string]int{
		"C": 1, "Dm": 2, "Em": 3, "F": 4, "G": 5, "Am": 6, "Bm": 7,
	}, cMajor.ChordMap)

	aMinor, ok := catalog.Lookup("Am", ModeMinor)
	require.True(t, ok)
	assert.Equal(t, "Am", aMinor.Label)
	assert.Equal(t, map[string]int{
		"Am": 1, "B": 2, "Cm": 3, "Dm": 4, "E": 5, "Fm": 6, "G": 7,
	}, aMinor.ChordMap)

	degree, ok := cMajor.Degree("Am")
	assert.True(t, ok)
	assert.Equal(t, 6, degree)
	_, ok = cMajor.Degree("F#")
	assert.False(t, ok)
}

func TestCatalogEveryTonalityHasSevenDegrees(t *testing.T) {
	catalog := NewCatalog()
	for _, tonality := range catalog.Tonalities() {
		require.Len(t, tonality.ChordMap, 7, "tonality %s (%s)", tonality.Label, tonality.Mode)
		seen := make(map[int]bool)
		for chord, degree := range tonality.ChordMap {
			assert.GreaterOrEqual(t, degree, 1, "%s in %s", chord, tonality.Label)
			assert.LessOrEqual(t, degree, 7, "%s in %s", chord, tonality.Label)
			assert.False(t, seen[degree], "duplicate degree %d in %s", degree, tonality.Label)
			seen[degree] = true
		}
	}
}

func TestCatalogLookupMisses(t *testing.T) {
	catalog := NewCatalog()
	_, ok := catalog.Lookup("Cm", ModeMinor)
	assert.False(t, ok, "C minor is not tabulated")
	_, ok = catalog.Lookup("C", ModeMinor)
	assert.False(t, ok, "mode must match the cataloged spelling")
	_, ok = catalog.Lookup("X", ModeMajor)
	assert.False(t, ok)
}

func TestCatalogLabels(t *testing.T) {
	catalog := NewCatalog()

	major := catalog.Labels(ModeMajor)
	require.Len(t, major, 12)
	assert.True(t, sort.StringsAreSorted(major))
	assert.Contains(t, major, "C#")

	minor := catalog.Labels(ModeMinor)
	require.Len(t, minor, 6)
	assert.True(t, sort.StringsAreSorted(minor))
	assert.Contains(t, minor, "F#m")
}
