package theory

import (
	"testing"

	"github.com/imuzolev/playnashville/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeChordSymbol(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain major", "C", "C"},
		{"plain minor", "Am", "Am"},
		{"sharp root", "F#", "F#"},
		{"sharp minor", "G#m", "G#m"},
		{"lowercase root", "c#", "C#"},
		{"flat folds to sharp", "Db", "C#"},
		{"lowercase flat", "db", "C#"},
		{"flat minor", "Bbm", "A#m"},
		{"C-flat is B", "Cb", "B"},
		{"E-sharp is F", "E#", "F"},
		{"B-sharp is C", "B#", "C"},
		{"german H", "H", "B"},
		{"german H minor", "Hm", "Bm"},
		{"lowercase german H", "h", "B"},
		{"maj suffix stays major", "Cmaj7", "C"},
		{"mixed-case maj suffix", "CMaj7", "C"},
		{"min suffix", "Cmin", "Cm"},
		{"seventh chord", "Am7", "Am"},
		{"sus defaults major", "Dsus4", "D"},
		{"dim defaults major", "Bdim", "B"},
		{"aug defaults major", "Caug", "C"},
		{"add defaults major", "Cadd9", "C"},
		{"numeric tail", "G7", "G"},
		{"slash bass ignored", "C/E", "C"},
		{"slash bass with quality", "Am7/G", "Am"},
		{"flat slash bass", "Db/F", "C#"},
		{"trailing comma", "G,", "G"},
		{"trailing punctuation run", "F#m?!", "F#m"},
		{"surrounding whitespace", "  Em  ", "Em"},
		{"full normalized token", "Dbmaj", "C#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeChordSymbol(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Any tail starting with "m" short of "maj" reads as minor, real suffix or
// not. Inherited heuristic; these cases pin it.
func TestNormalizeChordSymbolMPrefixHeuristic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Cmadd9", "Cm"},
		{"Cmsus4", "Cm"},
		{"Am-5", "Am"},
		{"Dm9", "Dm"},
		{"Dmaj9", "D"},
	}
	for _, tt := range tests {
		got, err := NormalizeChordSymbol(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

// An H with its own accidental is not folded to B and passes through as an
// un-mapped spelling; it never matches a chord map, which is the behavior
// the annotator relies on.
func TestNormalizeChordSymbolAccidentalH(t *testing.T) {
	got, err := NormalizeChordSymbol("Hb")
	require.NoError(t, err)
	assert.Equal(t, "HB", got)
}

func TestNormalizeChordSymbolFailures(t *testing.T) {
	for _, input := range []string{"", "   ", "X", "xyz", "#C", "/G", "7", "?!"} {
		_, err := NormalizeChordSymbol(input)
		assert.ErrorIs(t, err, errors.ErrNotAChord, "input %q", input)
	}
}

func TestNormalizeChordSymbolIdempotent(t *testing.T) {
	for _, input := range []string{"Db", "Hm", "Cmaj7", "Am7/G", "E#", "Gsus4"} {
		once, err := NormalizeChordSymbol(input)
		require.NoError(t, err)
		twice, err := NormalizeChordSymbol(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "normalize(normalize(%q))", input)
	}
}

func TestNormalizeKeyName(t *testing.T) {
	tests := []struct {
		name string
		key  string
		mode Mode
		want string
	}{
		{"major key plain", "C", ModeMajor, "C"},
		{"minor marker stripped for major", "Am", ModeMajor, "A"},
		{"minor marker added for minor", "C", ModeMinor, "Cm"},
		{"minor key plain", "F#m", ModeMinor, "F#m"},
		{"flat key", "Bb", ModeMajor, "A#"},
		{"flat minor key", "Bb", ModeMinor, "A#m"},
		{"german key", "H", ModeMajor, "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeKeyName(tt.key, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NormalizeKeyName("X", ModeMajor)
	assert.ErrorIs(t, err, errors.ErrNotAChord)
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("major")
	assert.True(t, ok)
	assert.Equal(t, ModeMajor, mode)

	mode, ok = ParseMode("minor")
	assert.True(t, ok)
	assert.Equal(t, ModeMinor, mode)

	_, ok = ParseMode("dorian")
	assert.False(t, ok)
	_, ok = ParseMode("")
	assert.False(t, ok)
}
