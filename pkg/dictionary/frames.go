package dictionary

// Slot is one position in a Frame. A zero Slot terminates the frame. A Slot
// with SlotXLit set names a literal dictionary index in its low byte; any
// other nonzero Slot is a Feature bitmask that a candidate word's Features
// must intersect (spec.md §4.2, "a token either names a literal or
// constrains by feature").
type Slot uint32

// SlotXLit flags a Slot as naming a literal dictionary index rather than a
// feature constraint.
const SlotXLit Slot = 1 << 31

// Literal builds a Slot that always resolves to the dictionary entry at
// index.
func Literal(index byte) Slot {
	return SlotXLit | Slot(index)
}

// Match builds a Slot requiring the chosen word's Features to intersect f.
func Match(f Feature) Slot {
	return Slot(f)
}

// IsLiteral reports whether s names a literal dictionary index, and returns
// it.
func (s Slot) IsLiteral() (index byte, ok bool) {
	if s&SlotXLit == 0 {
		return 0, false
	}
	return byte(s), true
}

// Feature returns the feature constraint of a non-literal, non-terminator
// slot.
func (s Slot) Feature() Feature {
	return Feature(s)
}

// Frame is a fixed-width template of up to 16 slots; a zero slot ends the
// frame early. GenerateTokens fills each non-terminator slot by drawing a
// dictionary index matching its constraint; Syntax re-checks a token
// sequence against every frame looking for one that unifies.
type Frame [16]Slot

// Frames is the fixed grammar: ten haiku-line templates a generated or
// received token sequence must unify against one of (spec.md §4.2, C3).
var Frames = [10]Frame{
	// "the quiet river drifting beneath the bridge"
	{Match(DETS), Match(ADJ), Match(NS), Match(ING), Match(PREP), Match(DETS), Match(NS)},
	// "a river falls upon the stone"
	{Match(DETS), Match(NS), Match(INF), Match(PREP), Match(DETS), Match(NS)},
	// "rain falling on the window"
	{Match(MASS), Match(ING), Match(ON), Match(DETS), Match(NS)},
	// "these shadows drifting in twilight"
	{Match(DETPL), Match(NPL), Match(ING), Match(IN), Match(MASS)},
	// "the cicada hums at dusk"
	{Match(DETS), Match(NS), Match(INF), Match(AT), Match(TIMED)},
	// "a cold wind through the pines"
	{Match(DETS), Match(ADJ), Match(MASS), Match(PREP), Match(DETS), Match(NPL)},
	// "stillness, the moon rising"
	{Match(AMB), Literal(dictIndexComma), Match(DETS), Match(NS), Match(ING)},
	// "splash! a heron in the reeds"
	{Match(OP), Literal(dictIndexExclaim), Match(DETS), Match(NS), Match(IN), Match(DETS), Match(NS)},
	// "winter deepening like a breath"
	{Match(TIMEY), Match(ING), Literal(dictIndexLike), Match(DETS), Match(NS)},
	// "some fireflies glisten beyond the marsh"
	{Match(DETPL), Match(NPL), Match(INF), Match(PREP), Match(DETS), Match(NS)},
}

// Literal indices of the XLIT punctuation tokens, resolved against the
// order they're appended in buildDictionary. These carry real initializer
// expressions (rather than being filled in by an init func) so that Go's
// package-initialization dependency order runs Dict, then these, then
// Frames — an init func would run too late, after Frames's own literal
// array initializer had already captured their zero values.
var (
	dictIndexComma   = findTokenIndex("\b,")
	dictIndexExclaim = findTokenIndex("\b!")
	dictIndexLike    = findTokenIndex("like")
)

func findTokenIndex(token string) byte {
	for i, e := range Dict {
		if string(e.Token) == token {
			return byte(i)
		}
	}
	panic("dictionary: token " + token + " not found")
}
