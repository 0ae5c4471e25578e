package chords

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/imuzolev/playnashville/theory"
)

// chordAlphabet is every character a chord-shaped word may contain: note
// letters in both cases, accidentals, the letters of the quality literals,
// digits, and slash/altered-fifth punctuation.
const chordAlphabet = "ABCDEFGHabcdefgh#bmsujdiaog0123456789/+-"

// Annotate rewrites text, appending " (<degree>)" after each token that
// normalizes to a chord present in chordMap. All other content, including
// tokens suppressed by the guards below, is copied through unchanged, so the
// output never drops or reorders a single input character. Annotation is
// idempotent: an already-annotated chord is left alone.
func Annotate(text string, chordMap map[string]int) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/8)
	last := 0
	for _, sp := range scan(text) {
		b.WriteString(text[last:sp.start])
		b.WriteString(renderMatch(text, sp, chordMap))
		last = sp.end
	}
	b.WriteString(text[last:])
	return b.String()
}

// renderMatch decides what one scanned token becomes in the output. The
// guards run in fixed order; each either settles on "verbatim" or passes the
// token to the next check.
func renderMatch(text string, sp span, chordMap map[string]int) string {
	token := text[sp.start:sp.end]

	if isWordFragment(text, sp.end) {
		return token
	}
	if isLoneLetterArticle(text, sp) {
		return token
	}
	if alreadyAnnotated(text, sp.end) {
		return token
	}

	normalized, err := theory.NormalizeChordSymbol(token)
	if err != nil {
		return token
	}
	degree, ok := chordMap[normalized]
	if !ok {
		// Not diatonic to the chosen key; no error, no annotation
		return token
	}
	return token + " (" + strconv.Itoa(degree) + ")"
}

// isWordFragment reports whether the token is glued to a following lowercase
// letter and is therefore part of a larger word. The scanner already rejects
// ASCII lowercase followers; this catches the rest (Cyrillic lyrics).
func isWordFragment(text string, end int) bool {
	if end >= len(text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return unicode.IsLetter(r) && unicode.IsLower(r)
}

// isLoneLetterArticle reports whether a single-letter token followed by a
// space reads as an article or pronoun rather than a chord. The call is
// settled by peeking at the next space-delimited word: if that word is not
// chord-shaped, the letter is prose. A lone letter at end of line or end of
// text still counts as a chord.
func isLoneLetterArticle(text string, sp span) bool {
	if sp.end-sp.start != 1 || !isNoteByte(text[sp.start]) {
		return false
	}
	if sp.end >= len(text) || text[sp.end] != ' ' {
		return false
	}
	idx := sp.end
	for idx < len(text) && text[idx] == ' ' {
		idx++
	}
	if idx >= len(text) {
		return false
	}
	wordEnd := idx
	for wordEnd < len(text) {
		r, size := utf8.DecodeRuneInString(text[wordEnd:])
		if unicode.IsSpace(r) {
			break
		}
		wordEnd += size
	}
	return !looksChordShaped(text[idx:wordEnd])
}

// looksChordShaped applies the cheap shape test used by the lone-letter
// guard: short (C#m7/G is six characters), starts on a note letter, and
// drawn entirely from the chord alphabet.
func looksChordShaped(word string) bool {
	n := utf8.RuneCountInString(word)
	if n == 0 || n > 6 {
		return false
	}
	if !isNoteByte(word[0]) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if !strings.ContainsRune(chordAlphabet, rune(word[i])) {
			return false
		}
	}
	return true
}

// alreadyAnnotated looks past trailing whitespace for "(<digits>)" and
// reports whether the token already carries a degree annotation.
func alreadyAnnotated(text string, end int) bool {
	idx := end
	for idx < len(text) {
		r, size := utf8.DecodeRuneInString(text[idx:])
		if !unicode.IsSpace(r) {
			break
		}
		idx += size
	}
	if idx >= len(text) || text[idx] != '(' {
		return false
	}
	idx++
	digitsStart := idx
	for idx < len(text) && text[idx] >= '0' && text[idx] <= '9' {
		idx++
	}
	return idx > digitsStart && idx < len(text) && text[idx] == ')'
}
