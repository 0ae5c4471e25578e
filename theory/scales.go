package theory

// Mode distinguishes major and minor tonalities.
type Mode string

const (
	ModeMajor Mode = "major"
	ModeMinor Mode = "minor"
)

// ParseMode validates a user-supplied mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeMajor:
		return ModeMajor, true
	case ModeMinor:
		return ModeMinor, true
	}
	return "", false
}

// enharmonicEquivalents folds flat spellings and the two semitone
// enharmonics (E#, B#) into the sharp/natural canonical set. Keys are the
// uppercased root+accidental of the raw token.
var enharmonicEquivalents = map[string]string{
	"AB": "G#",
	"BB": "A#",
	"CB": "B",
	"DB": "C#",
	"EB": "D#",
	"FB": "E",
	"GB": "F#",
	"E#": "F",
	"B#": "C",
}

// scale is one row of the tonality tables: the printed label and the seven
// diatonic chords in scale-degree order.
type scale struct {
	Label  string
	Chords [7]string
}

// Table order is semantic: the key selector breaks score ties by first-seen
// catalog position, so these must stay slices, not maps.
var majorScales = []scale{
	{"C", [7]string{"C", "Dm", "Em", "F", "G", "Am", "Bm"}},
	{"C#", [7]string{"C#", "D#m", "Fm", "F#", "G#", "A#m", "Cm"}},
	{"D", [7]string{"D", "Em", "F#m", "G", "A", "Bm", "C#m"}},
	{"D#", [7]string{"D#", "Fm", "Gm", "G#", "A#", "Cm", "Dm"}},
	{"E", [7]string{"E", "F#m", "G#m", "A", "B", "C#m", "D#m"}},
	{"F", [7]string{"F", "Gm", "Am", "A#", "C", "Dm", "Em"}},
	{"F#", [7]string{"F#", "G#m", "A#m", "B", "C#", "D#m", "Fm"}},
	{"G", [7]string{"G", "Am", "Bm", "C", "D", "Em", "F#m"}},
	{"G#", [7]string{"G#", "A#m", "Cm", "C#", "D#", "Fm", "Gm"}},
	{"A", [7]string{"A", "Bm", "C#m", "D", "E", "F#m", "G#m"}},
	{"A#", [7]string{"A#", "Cm", "Dm", "D#", "F", "Gm", "Am"}},
	{"B", [7]string{"B", "C#m", "D#m", "E", "F#", "G#m", "A#m"}},
}

var minorScales = []scale{
	{"F#m", [7]string{"F#m", "G#", "Am", "Bm", "C#", "D", "E"}},
	{"Gm", [7]string{"Gm", "A", "A#m", "Cm", "D", "D#m", "F"}},
	{"G#m", [7]string{"G#m", "A#", "Bm", "C#m", "D#", "Em", "F#"}},
	{"Am", [7]string{"Am", "B", "Cm", "Dm", "E", "Fm", "G"}},
	{"A#m", [7]string{"A#m", "C", "C#m", "D#m", "F", "F#m", "G#"}},
	{"Bm", [7]string{"Bm", "C#", "Dm", "Em", "F#", "Gm", "A"}},
}
