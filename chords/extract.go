package chords

import (
	"github.com/imuzolev/playnashville/theory"
)

// Extract returns the canonical chord symbols found in text, in order of
// appearance, duplicates retained. Tokens that fail normalization are
// skipped; they are not chords.
func Extract(text string) []string {
	var result []string
	for _, sp := range scan(text) {
		normalized, err := theory.NormalizeChordSymbol(text[sp.start:sp.end])
		if err != nil {
			continue
		}
		result = append(result, normalized)
	}
	return result
}
