// Package trigg implements the haiku-grammar-constrained proof of work: the
// C3 grammar engine (generation, expansion, syntax unification) and the C4
// difficulty evaluator, plus the public trigg_check/solve/generate
// operations (spec.md §4.2-§4.3, §6).
package trigg

import (
	"crypto/sha256"

	"trigpeach/internal/rng"
	"trigpeach/pkg/dictionary"
	"trigpeach/pkg/trailer"
)

// NumFrames is the size of the frame table a generated haiku is drawn
// against.
const NumFrames = len(dictionary.Frames)

// GenerateTokens draws one 16-byte tokenised haiku: pick a frame uniformly
// from the 10-frame table via src, then fill each slot — zero slots emit a
// zero byte (and generation continues, it does not early-return), XLIT
// slots emit their literal index, feature slots draw dictionary indices
// uniformly until one's features intersect the slot mask.
func GenerateTokens(src *rng.Source) [16]byte {
	frame := dictionary.Frames[src.Intn(uint32(NumFrames))]

	var tokens [16]byte
	for i, slot := range frame {
		switch {
		case slot == 0:
			tokens[i] = 0
		default:
			if idx, ok := slot.IsLiteral(); ok {
				tokens[i] = idx
				continue
			}
			want := slot.Feature()
			for {
				idx := src.Byte()
				if dictionary.Lookup(idx).Features&want != 0 {
					tokens[i] = idx
					break
				}
			}
		}
	}
	return tokens
}

// Expand renders a 16-byte token sequence into its 256-byte expanded text:
// dictionary tokens are copied verbatim and separated by a single space,
// except a token ending in '\n' suppresses the trailing space, and a token
// beginning with '\b' erases the single preceding byte before the rest of
// the token is appended (spec.md §4.2's teletype retro-erase rule). The
// sequence stops at the first zero index; the remainder is zero-padded.
func Expand(tokens [16]byte) [256]byte {
	var out [256]byte
	buf := make([]byte, 0, 256)

	for _, idx := range tokens {
		if idx == 0 {
			break
		}
		tok := dictionary.Lookup(idx).Token
		if len(tok) > 0 && tok[0] == '\b' {
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
			tok = tok[1:]
		}
		buf = append(buf, tok...)
		if len(tok) == 0 || tok[len(tok)-1] != '\n' {
			buf = append(buf, ' ')
		}
	}

	n := len(buf)
	if n > len(out) {
		n = len(out)
	}
	copy(out[:n], buf[:n])
	return out
}

// Syntax reports whether a 16-byte token sequence unifies with any of the
// 10 frames: a zero frame slot matches iff the token's feature mask is 0
// (haiku terminator), an XLIT slot matches iff the token index equals the
// slot's literal index, and any other slot matches iff the token's
// features intersect the slot mask. All 16 slots of some frame must match
// in order.
func Syntax(tokens [16]byte) bool {
	for _, frame := range dictionary.Frames {
		if unifies(frame, tokens) {
			return true
		}
	}
	return false
}

func unifies(frame dictionary.Frame, tokens [16]byte) bool {
	for i, slot := range frame {
		features := dictionary.Lookup(tokens[i]).Features
		switch {
		case slot == 0:
			if features != 0 {
				return false
			}
		default:
			if idx, ok := slot.IsLiteral(); ok {
				if tokens[i] != idx {
					return false
				}
				continue
			}
			if features&slot.Feature() == 0 {
				return false
			}
		}
	}
	return true
}

// Eval reports whether hash has at least diff leading zero bits, the
// difficulty predicate of both Trigg and Peach (spec.md §4.3).
func Eval(hash [32]byte, diff uint8) bool {
	fullBytes := int(diff / 8)
	for i := 0; i < fullBytes && i < len(hash); i++ {
		if hash[i] != 0 {
			return false
		}
	}
	if fullBytes >= len(hash) {
		return true
	}
	rem := diff % 8
	if rem == 0 {
		return true
	}
	mask := byte(0xFF << (8 - rem))
	return hash[fullBytes]&mask == 0
}

// Context holds one mining loop's fixed inputs: the block root and number
// taken from the trailer, and the difficulty to search against. It is
// stack-scoped and allocation-free, matching the source's lifecycle
// (spec.md §3 "Trigg context is stack-scoped to one mining loop").
type Context struct {
	mroot [32]byte
	bnum  [8]byte
	diff  uint8
	src   *rng.Source
}

// Solve initialises a Trigg context from a trailer, using the shared
// global PRNG stream (trigg_srand/trigg_rand, spec.md §6).
func Solve(T *Context, bt *trailer.Trailer) {
	copy(T.mroot[:], bt.Mroot())
	copy(T.bnum[:], bt.BnumBytes())
	T.diff = bt.DifficultyByte()
	T.src = rng.Global()
}

// chain builds the 312-byte TRIGG chain mroot‖expand(primary)‖secondary‖bnum
// that is hashed verbatim (spec.md §3).
func chain(mroot [32]byte, primary, secondary [16]byte, bnum [8]byte) []byte {
	expanded := Expand(primary)
	buf := make([]byte, 0, 32+256+16+8)
	buf = append(buf, mroot[:]...)
	buf = append(buf, expanded[:]...)
	buf = append(buf, secondary[:]...)
	buf = append(buf, bnum[:]...)
	return buf
}

// Generate attempts one candidate nonce: draws a fresh primary and
// secondary haiku, hashes the TRIGG chain, and checks it against T's
// difficulty. On success the 32-byte nonce (primary‖secondary) is written
// to out and Generate returns true.
func Generate(T *Context, out *[32]byte) bool {
	primary := GenerateTokens(T.src)
	secondary := GenerateTokens(T.src)

	hash := sha256.Sum256(chain(T.mroot, primary, secondary, T.bnum))
	if !Eval(hash, T.diff) {
		return false
	}
	copy(out[0:16], primary[:])
	copy(out[16:32], secondary[:])
	return true
}

// Check is pure: it returns true iff bt.Nonce() satisfies the Trigg PoW
// predicate at bt's difficulty (trigg_check, spec.md §6).
func Check(bt *trailer.Trailer) bool {
	nonce := bt.Nonce()
	var primary, secondary [16]byte
	copy(primary[:], nonce[0:16])
	copy(secondary[:], nonce[16:32])

	if !Syntax(primary) || !Syntax(secondary) {
		return false
	}

	var mroot [32]byte
	var bnum [8]byte
	copy(mroot[:], bt.Mroot())
	copy(bnum[:], bt.BnumBytes())

	hash := sha256.Sum256(chain(mroot, primary, secondary, bnum))
	return Eval(hash, bt.DifficultyByte())
}
