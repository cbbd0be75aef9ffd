package trigg

import (
	"testing"

	"trigpeach/internal/rng"
	"trigpeach/pkg/dictionary"
	"trigpeach/pkg/trailer"
)

func TestGenerateTokensAlwaysSatisfiesSyntax(t *testing.T) {
	src := rng.NewSeeded(1)
	for i := 0; i < 200; i++ {
		toks := GenerateTokens(src)
		if !Syntax(toks) {
			t.Fatalf("generated tokens %v do not satisfy Syntax", toks)
		}
	}
}

func TestEmptyHaikuFailsSyntax(t *testing.T) {
	var toks [16]byte // all zero: byte 0 = 0, an empty haiku
	if Syntax(toks) {
		t.Errorf("all-zero token sequence should fail Syntax (no frame starts with a terminator slot)")
	}
}

func TestExpandIsPureFunction(t *testing.T) {
	src := rng.NewSeeded(7)
	toks := GenerateTokens(src)
	orig := toks

	first := Expand(toks)
	second := Expand(toks)
	if first != second {
		t.Errorf("Expand is not deterministic for identical input")
	}
	if toks != orig {
		t.Errorf("Expand must not mutate its input token array")
	}
}

func TestExpandStopsAtFirstZero(t *testing.T) {
	var toks [16]byte
	toks[0] = 7 // arbitrary nonzero index present in the table, replaced below
	// find a populated NS index to make the test independent of table layout
	for i := 1; i < dictionary.Size; i++ {
		if dictionary.Dict[i].Features&dictionary.NS != 0 {
			toks[0] = byte(i)
			break
		}
	}
	toks[1] = 0
	toks[2] = 255 // must be ignored: generation stopped at toks[1] == 0

	out := Expand(toks)
	tok := dictionary.Lookup(toks[0]).Token
	for i, b := range tok {
		if out[i] != b {
			t.Fatalf("expanded buffer does not start with the single token's bytes")
		}
	}
	// everything after token+space must be zero since generation stopped
	for i := len(tok) + 1; i < 256; i++ {
		if out[i] != 0 {
			t.Fatalf("expanded buffer byte %d = %#x, want 0 past the terminator", i, out[i])
		}
	}
}

func TestBackspaceTokenErasesPrecedingByte(t *testing.T) {
	var toks [16]byte
	nsIdx := byte(0)
	for i := 1; i < dictionary.Size; i++ {
		if dictionary.Dict[i].Features&dictionary.NS != 0 {
			nsIdx = byte(i)
			break
		}
	}
	commaIdx := byte(0)
	for i, e := range dictionary.Dict {
		if string(e.Token) == "\b," {
			commaIdx = byte(i)
			break
		}
	}
	toks[0] = nsIdx
	toks[1] = commaIdx

	out := Expand(toks)
	word := dictionary.Lookup(nsIdx).Token
	want := append(append([]byte{}, word...), ',', ' ')
	for i, b := range want {
		if out[i] != b {
			t.Fatalf("expanded = %q, want prefix %q", out[:len(want)], want)
		}
	}
}

func TestEvalBoundaries(t *testing.T) {
	var zero [32]byte
	if !Eval(zero, 0) {
		t.Errorf("diff=0 must always pass")
	}
	if !Eval(zero, 256) {
		t.Errorf("diff=256 on the all-zero hash must pass")
	}

	var one [32]byte
	one[31] = 1
	if Eval(one, 256) {
		t.Errorf("diff=256 on a nonzero hash must fail")
	}
}

func TestEvalConcreteVector(t *testing.T) {
	var h [32]byte
	h[0] = 0x00
	h[1] = 0x00
	h[2] = 0x1F // 0001 1111: top 3 bits zero, giving 16+3=19 leading zero bits total
	if !Eval(h, 19) {
		t.Errorf("diff=19 should pass: top 19 bits of %x are zero", h)
	}
	if Eval(h, 20) {
		t.Errorf("diff=20 should fail: bit 20 of %x is set", h)
	}
}

func TestGenerateProducesCheckableNonce(t *testing.T) {
	rng.Srand(42)
	bt := trailer.New()
	bt.SetDifficulty(1) // low difficulty so Generate succeeds quickly in a bounded loop

	var T Context
	Solve(&T, bt)

	var out [32]byte
	found := false
	for i := 0; i < 100000; i++ {
		if Generate(&T, &out) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Generate did not find a nonce at difficulty 1 within the attempt budget")
	}

	bt.SetNonce(out)
	if !Check(bt) {
		t.Errorf("a nonce produced by Generate must pass Check on the same trailer")
	}
}

func TestCheckRejectsEmptyHaikuNonce(t *testing.T) {
	bt := trailer.New()
	bt.SetDifficulty(1)
	var empty [32]byte // both halves start with index 0: an empty haiku
	bt.SetNonce(empty)
	if Check(bt) {
		t.Errorf("an empty-haiku nonce must fail Check on syntax alone, before any hashing")
	}
}
