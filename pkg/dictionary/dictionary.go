// Package dictionary holds the fixed 256-entry haiku vocabulary and its
// feature bitmasks (spec.md §3 DictionaryEntry, C2). It is pure data: no
// class hierarchy, a single immutable table keyed by byte index, per
// spec.md's Design Notes ("grammar as data").
package dictionary

// Feature is a bitmask describing how a dictionary entry may participate in
// a haiku frame slot (spec.md §3).
type Feature uint32

const (
	ING    Feature = 1 << iota // present-participle verb ("falling")
	INF                        // infinitive/base verb ("fall")
	MOTION                     // motion-indicating word
	NS                         // singular noun
	NPL                        // plural noun
	MASS                       // mass/uncountable noun
	AMB                        // ambient/atmosphere noun
	TIMED                      // time-of-day noun
	TIMEY                      // time-period/season noun
	AT                         // preposition "at"
	ON                         // preposition "on"
	IN                         // preposition "in"
	PREP                       // general preposition
	ADJ                        // adjective
	OP                         // onomatopoeia
	DETS                       // singular determiner
	DETPL                      // plural determiner
	XLIT                       // literal-only token, never feature-matched
)

// Entry is one dictionary word: its printed token and its feature bitmask.
// Index 0 is the sentinel NIL entry (empty token, zero features), the
// haiku terminator.
type Entry struct {
	Token    []byte
	Features Feature
}

// Size is the fixed dictionary cardinality; a byte index into it never
// traps.
const Size = 256

// Dict is the immutable 256-entry dictionary.
var Dict = buildDictionary()

// Lookup returns the entry for a byte index. Indexing is total: every value
//0..255 resolves.
func Lookup(index byte) Entry {
	return Dict[index]
}

type category struct {
	features Feature
	words    []string
}

func buildDictionary() [Size]Entry {
	categories := []category{
		{DETS, []string{"a", "the", "this", "that", "one", "every"}},
		{DETPL, []string{"these", "those", "some", "many"}},
		{AT | PREP, []string{"at"}},
		{ON | PREP, []string{"on"}},
		{IN | PREP, []string{"in"}},
		{PREP, []string{
			"beneath", "behind", "beyond", "through", "across",
			"upon", "among", "above", "below", "near",
		}},
		{NS, []string{
			"mountain", "river", "temple", "bell", "stone", "pond", "shadow",
			"petal", "blossom", "branch", "leaf", "cloud", "star", "moon",
			"sun", "wave", "shore", "valley", "forest", "field", "garden",
			"bridge", "lantern", "window", "door", "roof", "path", "well",
			"flame", "ember", "mist", "fog", "puddle", "reflection", "ripple",
			"heron", "sparrow", "owl", "fox", "deer", "cicada", "cricket",
			"firefly", "dragonfly", "butterfly", "spider", "raindrop",
			"snowflake", "icicle", "harvest", "orchard", "meadow", "hillside",
			"cave", "cliff", "tide", "current", "whirlpool", "horizon",
			"silence", "echo", "whisper", "breath", "heartbeat", "willow",
			"bamboo", "pine", "maple", "cherry", "plum", "lotus", "reed",
			"moss", "pebble", "boulder", "ridge", "peak", "summit", "harbor",
			"lagoon", "marsh",
		}},
		{NPL, []string{
			"mountains", "rivers", "stones", "leaves", "clouds", "stars",
			"waves", "petals", "shadows", "branches", "lanterns", "fireflies",
			"crickets", "cicadas", "sparrows",
		}},
		{MASS, []string{
			"rain", "snow", "frost", "dew", "moonlight", "sunlight",
			"twilight", "wind", "thunder", "lightning", "ash", "smoke",
			"incense", "silk", "ink",
		}},
		{AMB, []string{
			"stillness", "coolness", "warmth", "darkness", "brightness",
			"calm", "solitude", "emptiness",
		}},
		{TIMED, []string{
			"morning", "evening", "midnight", "noon", "sunrise", "sunset",
			"dusk", "dawn",
		}},
		{TIMEY, []string{
			"spring", "summer", "autumn", "winter", "season", "year",
			"moment", "eternity",
		}},
		{ING, []string{
			"falling", "drifting", "whispering", "blooming", "fading",
			"glowing", "dancing", "resting", "humming", "echoing",
			"gleaming", "trembling", "rippling", "melting", "freezing",
			"rising", "setting", "shining", "glistening", "lingering",
			"vanishing", "deepening", "darkening", "stirring", "swaying",
		}},
		{INF, []string{
			"fall", "drift", "whisper", "bloom", "fade", "glow", "dance",
			"rest", "hum", "echo", "gleam", "tremble", "ripple", "melt",
			"freeze", "rise", "set", "shine", "glisten", "linger", "vanish",
			"deepen", "darken", "stir", "sway",
		}},
		{MOTION, []string{"flow", "rush", "glide", "sweep", "surge", "journey"}},
		{ADJ, []string{
			"quiet", "golden", "silver", "gentle", "soft", "cold", "warm",
			"still", "bright", "pale", "dark", "faint", "fresh", "ancient",
			"fragile", "tender", "distant", "hollow", "endless", "fleeting",
			"solemn", "tranquil", "serene", "crisp", "weary",
		}},
		{OP, []string{
			"plop", "splash", "crack", "creak", "sigh", "chime", "patter",
			"buzz",
		}},
	}

	var out [Size]Entry
	// index 0 is reserved for the NIL sentinel.
	idx := 1
	for _, c := range categories {
		for _, w := range c.words {
			out[idx] = Entry{Token: []byte(w), Features: c.features}
			idx++
		}
	}
	for _, x := range xlitTokens {
		out[idx] = Entry{Token: x.token, Features: XLIT}
		idx++
	}
	if idx != Size {
		panic("dictionary: built table does not cover all 256 indices")
	}
	return out
}

type xlitWord struct {
	token []byte
}

// xlitTokens are literal-only tokens, selected by a frame's literal index
// slot rather than by feature match: punctuation with retro-erase
// semantics (spec.md §4.2's "\b" backspace rule) and grammatical particles.
var xlitTokens = []xlitWord{
	{[]byte("\n")},
	{[]byte("\b,")},
	{[]byte("\b.")},
	{[]byte("\b!")},
	{[]byte("\b?")},
	{[]byte("of")},
	{[]byte("like")},
	{[]byte("as")},
}
