// Package subtaste classifies archetypes into fixed designations.
//
// Classification is a pure lookup and never touches the random stream.
package subtaste

import "github.com/chromox/forge/internal/archetype"

// Designation is the code, glyph and label assigned to an archetype.
type Designation struct {
	Code  string `json:"code" yaml:"code"`
	Glyph string `json:"glyph" yaml:"glyph"`
	Label string `json:"label" yaml:"label"`
}

// FallbackCode is assigned to archetypes with no explicit mapping.
const FallbackCode = "NULL"

var designations = map[string]Designation{
	"AUR":        {Code: "AUR", Glyph: "☉", Label: "Radiant Sovereign"},
	"VEX":        {Code: "VEX", Glyph: "ϟ", Label: "Agent of Disruption"},
	"NOX":        {Code: "NOX", Glyph: "☾", Label: "Night Cartographer"},
	"SEK":        {Code: "SEK", Glyph: "✧", Label: "Seeker"},
	"KIN":        {Code: "KIN", Glyph: "♡", Label: "Hearthkeeper"},
	"FER":        {Code: "FER", Glyph: "⚔", Label: "Iron Will"},
	"MYR":        {Code: "MYR", Glyph: "⚗", Label: "Alchemist"},
	"LUM":        {Code: "LUM", Glyph: "✦", Label: "Lantern Bearer"},
	"SIG":        {Code: "SIG", Glyph: "◈", Label: "Sigil Weaver"},
	"VOR":        {Code: "VOR", Glyph: "⌬", Label: "Threshold Walker"},
	"ECH":        {Code: "ECH", Glyph: "∿", Label: "Echo Chorus"},
	FallbackCode: {Code: FallbackCode, Glyph: "∅", Label: "VOID"},
}

// codes maps normalized archetype keys to designation codes.
var codes = map[string]string{
	// radiant
	"the_emperor": "AUR",
	"the_sun":     "AUR",
	"the_ruler":   "AUR",
	"leo":         "AUR",
	"rubedo":      "AUR",

	// disruption
	"the_tower": "VEX",
	"the_rebel": "VEX",
	"the_devil": "VEX",
	"loki":      "VEX",
	"aquarius":  "VEX",

	// night
	"the_moon":           "NOX",
	"the_high_priestess": "NOX",
	"hel":                "NOX",
	"nigredo":            "NOX",
	"pisces":             "NOX",
	"scorpio":            "NOX",

	// seekers
	"the_fool":     "SEK",
	"the_explorer": "SEK",
	"sagittarius":  "SEK",

	// hearth
	"the_empress":   "KIN",
	"the_caregiver": "KIN",
	"frigg":         "KIN",
	"cancer":        "KIN",
	"idun":          "KIN",
	"njord":         "KIN",

	// will
	"the_chariot": "FER",
	"strength":    "FER",
	"the_hero":    "FER",
	"thor":        "FER",
	"tyr":         "FER",
	"aries":       "FER",
	"capricorn":   "FER",

	// alchemy
	"the_magician":        "MYR",
	"temperance":          "MYR",
	"mercury":             "MYR",
	"sulfur":              "MYR",
	"philosopher's_stone": "MYR",

	// lanterns
	"the_star":   "LUM",
	"the_hermit": "LUM",
	"the_sage":   "LUM",
	"heimdall":   "LUM",
	"citrinitas": "LUM",
	"albedo":     "LUM",
	"virgo":      "LUM",

	// sigils
	"the_hierophant": "SIG",
	"justice":        "SIG",
	"libra":          "SIG",
	"salt":           "SIG",
	"the_creator":    "SIG",
	"odin":           "SIG",

	// thresholds
	"death":            "VOR",
	"the_hanged_man":   "VOR",
	"judgement":        "VOR",
	"ouroboros":        "VOR",
	"wheel_of_fortune": "VOR",
	"the_world":        "VOR",
	"gemini":           "VOR",

	// echoes
	"the_lovers":   "ECH",
	"the_lover":    "ECH",
	"the_jester":   "ECH",
	"the_innocent": "ECH",
	"the_orphan":   "ECH",
	"freyja":       "ECH",
	"baldr":        "ECH",
	"taurus":       "ECH",
}

// Classify returns the designation for an archetype key. Keys are normalized
// before lookup; unmapped keys resolve to the NULL designation.
func Classify(key string) Designation {
	code, ok := codes[archetype.Normalize(key)]
	if !ok {
		code = FallbackCode
	}
	return designations[code]
}

// Lookup returns the designation for a code.
func Lookup(code string) (Designation, bool) {
	d, ok := designations[code]
	return d, ok
}

// All returns every designation, the fallback last.
func All() []Designation {
	order := []string{"AUR", "VEX", "NOX", "SEK", "KIN", "FER", "MYR", "LUM", "SIG", "VOR", "ECH", FallbackCode}
	out := make([]Designation, 0, len(order))
	for _, code := range order {
		out = append(out, designations[code])
	}
	return out
}
