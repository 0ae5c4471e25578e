package theory

import (
	"github.com/imuzolev/playnashville/errors"
)

// score orders tonality candidates lexicographically: total chord hits,
// then distinct chord hits, then hits on the tonic degree.
type score struct {
	hits   int
	unique int
	tonic  int
}

func (s score) greaterThan(o score) bool {
	if s.hits != o.hits {
		return s.hits > o.hits
	}
	if s.unique != o.unique {
		return s.unique > o.unique
	}
	return s.tonic > o.tonic
}

// SelectTonality resolves the tonality for a chord sequence.
//
// With an explicit key the catalog is consulted directly (mode defaults to
// major) and no scoring happens; an unknown key yields ErrInvalidKey. Without
// one, every cataloged tonality in the allowed mode set is scored against the
// sequence and the best candidate wins. Ties keep the first-seen tonality in
// catalog order: the comparison is strictly-greater, never greater-or-equal.
//
// explicitKey and explicitMode may be empty to mean "unset".
func SelectTonality(catalog *Catalog, explicitKey string, explicitMode Mode, chords []string) (Tonality, error) {
	if explicitKey != "" {
		mode := explicitMode
		if mode == "" {
			mode = ModeMajor
		}
		normalized, err := NormalizeKeyName(explicitKey, mode)
		if err != nil {
			return Tonality{}, errors.Wrapf(errors.ErrInvalidKey, "%q does not name a key", explicitKey)
		}
		tonality, ok := catalog.Lookup(normalized, mode)
		if !ok {
			return Tonality{}, errors.Wrapf(errors.ErrInvalidKey, "no table data for key %q (%s)", explicitKey, mode)
		}
		return tonality, nil
	}

	if len(chords) == 0 {
		return Tonality{}, errors.WithStack(errors.ErrNoChordsFound)
	}

	var (
		best      Tonality
		bestScore score
		found     bool
	)
	for _, tonality := range catalog.Tonalities() {
		if explicitMode != "" && tonality.Mode != explicitMode {
			continue
		}
		s := scoreTonality(tonality, chords)
		if s.hits == 0 {
			continue
		}
		if !found || s.greaterThan(bestScore) {
			best = tonality
			bestScore = s
			found = true
		}
	}
	if !found {
		return Tonality{}, errors.WithStack(errors.ErrNoTonalityMatch)
	}
	return best, nil
}

func scoreTonality(tonality Tonality, chords []string) score {
	var s score
	seen := make(map[string]struct{})
	for _, chord := range chords {
		degree, ok := tonality.ChordMap[chord]
		if !ok {
			continue
		}
		s.hits++
		if degree == 1 {
			s.tonic++
		}
		if _, dup := seen[chord]; !dup {
			seen[chord] = struct{}{}
			s.unique++
		}
	}
	return s
}
