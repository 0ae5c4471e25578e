package theory

import (
	"strings"

	"github.com/imuzolev/playnashville/errors"
)

// isNoteLetter reports whether b is a note letter the grammar accepts:
// A-G in either case, plus the German "H" spelling of B.
func isNoteLetter(b byte) bool {
	switch {
	case b >= 'A' && b <= 'G':
		return true
	case b >= 'a' && b <= 'g':
		return true
	case b == 'H' || b == 'h':
		return true
	}
	return false
}

// NormalizeChordSymbol reduces a raw chord token to its canonical form:
// sharp-or-natural root plus an optional trailing "m" for minor. Flats,
// the German "H", and the E#/B# enharmonics collapse into the canonical
// twelve-note set. Extension and slash-bass suffixes are discarded.
//
// Returns ErrNotAChord when the token does not start with a note letter.
func NormalizeChordSymbol(symbol string) (string, error) {
	cleaned := strings.TrimSpace(symbol)
	if cleaned == "" {
		return "", errors.ErrNotAChord
	}
	cleaned = strings.TrimRight(cleaned, ".,:;!?")

	// Slash-bass suffix (C/E, Am7/G) is ignored for key purposes
	base, _, _ := strings.Cut(cleaned, "/")
	if base == "" || !isNoteLetter(base[0]) {
		return "", errors.ErrNotAChord
	}

	accidental := ""
	tail := base[1:]
	if len(tail) > 0 && (tail[0] == '#' || tail[0] == 'b') {
		accidental = tail[:1]
		tail = tail[1:]
	}

	note := strings.ToUpper(base[:1] + accidental)
	if note == "H" {
		note = "B"
	}

	// Any "m"-leading tail except "maj" reads as minor; everything else
	// (sus, dim, aug, add, bare digits) buckets into major. Inherited
	// heuristic, pinned by tests.
	quality := ""
	lower := strings.ToLower(tail)
	switch {
	case strings.HasPrefix(lower, "maj"):
		quality = ""
	case strings.HasPrefix(lower, "min"), strings.HasPrefix(lower, "m"):
		quality = "m"
	}

	if canonical, ok := enharmonicEquivalents[note]; ok {
		note = canonical
	}
	return note + quality, nil
}

// NormalizeKeyName normalizes a key label relative to the target mode.
// A handful of printed labels carry a quality marker that disagrees with
// their mode notationally; the marker is stripped or added so that the
// canonical key always spells the tonic the way the mode expects
// ("Am"/minor, "C"/major).
func NormalizeKeyName(name string, mode Mode) (string, error) {
	symbol, err := NormalizeChordSymbol(name)
	if err != nil {
		return "", err
	}
	minor := strings.HasSuffix(symbol, "m")
	switch {
	case mode == ModeMajor && minor:
		symbol = symbol[:len(symbol)-1]
		if symbol == "" {
			return "", errors.ErrNotAChord
		}
	case mode == ModeMinor && !minor:
		symbol += "m"
	}
	return symbol, nil
}
