package theory

import "sort"

// Tonality is an immutable key+mode pair with its diatonic chord map.
// Built once by NewCatalog and never mutated afterwards.
type Tonality struct {
	// Key is the canonical root ("C#", "Am" style spelling per mode)
	Key string `json:"key"`
	// Mode is major or minor
	Mode Mode `json:"mode"`
	// Label is the display name as originally tabulated; it may differ
	// enharmonically from Key
	Label string `json:"label"`
	// ChordMap maps canonical chord symbols to scale degrees 1-7.
	// Treat as read-only.
	ChordMap map[string]int `json:"chord_map"`
}

// Degree returns the scale degree of a canonical chord symbol, if diatonic.
func (t Tonality) Degree(symbol string) (int, bool) {
	d, ok := t.ChordMap[symbol]
	return d, ok
}

type catalogKey struct {
	key  string
	mode Mode
}

// Catalog is the read-only list of all cataloged tonalities plus a point
// lookup by (canonical key, mode). Safe for unlimited concurrent readers.
type Catalog struct {
	tonalities []Tonality
	byKey      map[catalogKey]int
}

// NewCatalog builds the tonality catalog from the static scale tables.
// A scale whose label fails to normalize is silently dropped; with the
// built-in tables this never happens.
func NewCatalog() *Catalog {
	c := &Catalog{
		byKey: make(map[catalogKey]int),
	}
	c.addScales(ModeMajor, majorScales)
	c.addScales(ModeMinor, minorScales)
	return c
}

func (c *Catalog) addScales(mode Mode, scales []scale) {
	for _, s := range scales {
		key, err := NormalizeKeyName(s.Label, mode)
		if err != nil {
			continue
		}
		chordMap := make(map[string]int, len(s.Chords))
		for idx, chord := range s.Chords {
			normalized, err := NormalizeChordSymbol(chord)
			if err != nil {
				continue
			}
			// First assignment wins when two scale positions collapse
			// to the same normalized form
			if _, seen := chordMap[normalized]; !seen {
				chordMap[normalized] = idx + 1
			}
		}
		c.tonalities = append(c.tonalities, Tonality{
			Key:      key,
			Mode:     mode,
			Label:    s.Label,
			ChordMap: chordMap,
		})
		c.byKey[catalogKey{key, mode}] = len(c.tonalities) - 1
	}
}

// Tonalities returns all cataloged tonalities in table order.
// Treat the returned slice as read-only.
func (c *Catalog) Tonalities() []Tonality {
	return c.tonalities
}

// Lookup returns the tonality for a canonical key and mode.
func (c *Catalog) Lookup(key string, mode Mode) (Tonality, bool) {
	idx, ok := c.byKey[catalogKey{key, mode}]
	if !ok {
		return Tonality{}, false
	}
	return c.tonalities[idx], true
}

// Labels returns the sorted display labels of all tonalities in the given
// mode, for key listings.
func (c *Catalog) Labels(mode Mode) []string {
	var labels []string
	for _, t := range c.tonalities {
		if t.Mode == mode {
			labels = append(labels, t.Label)
		}
	}
	sort.Strings(labels)
	return labels
}
