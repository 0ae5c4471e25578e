// Package chords finds chord-shaped tokens in free-form song text and
// rewrites the text with scale-degree annotations.
package chords

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// span is a half-open byte range of one chord-shaped token in the text.
type span struct {
	start int
	end   int
}

// multiFragments are the quality/extension literals the grammar accepts,
// longest-prefix first so "maj7" is not split as "m" + reject. Literals are
// lowercase only, matching how chord charts print them.
var multiFragments = []string{"maj", "min", "sus", "dim", "aug", "add", "m"}

func isNoteByte(b byte) bool {
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

func isAccidental(b byte) bool {
	return b == '#' || b == 'b'
}

// isWordRune mirrors \b word characters: letters, digits, underscore.
// Cyrillic lyrics count as word characters, so a note letter glued to a
// Russian word is not a token start.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// scan returns every chord-shaped token in text, left to right.
//
// A token anchors at a word boundary on a note letter, takes an optional
// accidental, then greedily consumes quality/extension fragments. Matching
// never backtracks across fragments: if the greedy end touches an ASCII
// lowercase letter the whole anchor is rejected (this is what keeps
// "Amazing" from yielding a match at "A").
func scan(text string) []span {
	var spans []span
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if isNoteStart(text, i, r) {
			if end, ok := matchAt(text, i); ok {
				spans = append(spans, span{i, end})
				i = end
				continue
			}
		}
		i += size
	}
	return spans
}

func isNoteStart(text string, i int, r rune) bool {
	if r >= utf8.RuneSelf || !isNoteByte(byte(r)) {
		return false
	}
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(prev)
}

// matchAt runs the grammar from the anchor position and returns the token
// end, or ok=false when the anchor is rejected.
func matchAt(text string, start int) (int, bool) {
	j := start + 1 // note letter is a single byte
	if j < len(text) && isAccidental(text[j]) {
		j++
	}
	for {
		next, ok := matchFragment(text, j)
		if !ok {
			break
		}
		j = next
	}
	if j < len(text) && text[j] >= 'a' && text[j] <= 'z' {
		return 0, false
	}
	return j, true
}

// matchFragment consumes one quality/extension fragment at position j:
// a literal (m/maj/min/sus/dim/aug/add), a digit, +, -, or a slash-bass
// spec (slash plus note letter plus optional accidental).
func matchFragment(text string, j int) (int, bool) {
	if j >= len(text) {
		return 0, false
	}
	for _, frag := range multiFragments {
		if strings.HasPrefix(text[j:], frag) {
			return j + len(frag), true
		}
	}
	switch c := text[j]; {
	case c >= '0' && c <= '9':
		return j + 1, true
	case c == '+' || c == '-':
		return j + 1, true
	case c == '/':
		if j+1 < len(text) && isNoteByte(text[j+1]) {
			k := j + 2
			if k < len(text) && isAccidental(text[k]) {
				k++
			}
			return k, true
		}
	}
	return 0, false
}
