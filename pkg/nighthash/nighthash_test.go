package nighthash

import (
	"bytes"
	"testing"
)

func TestHashIsDeterministic(t *testing.T) {
	in := []byte("trigpeach nighthash vector, thirty-six bytes!!")
	a := append([]byte(nil), in...)
	b := append([]byte(nil), in...)

	h1 := Hash(a, 42, true, false)
	h2 := Hash(b, 42, true, false)
	if h1 != h2 {
		t.Errorf("Hash is not deterministic: %x vs %x", h1, h2)
	}
}

func TestHashTxFalseLeavesInputUnchanged(t *testing.T) {
	in := []byte("thirty-six bytes of fixed input data!!!")
	orig := append([]byte(nil), in...)

	_ = Hash(in, 7, false, false)
	if !bytes.Equal(in, orig) {
		t.Errorf("tx=false must leave input bitwise unchanged, got %x want %x", in, orig)
	}
}

func TestHashTxTrueMutatesInput(t *testing.T) {
	in := make([]byte, 36)
	for i := range in {
		in[i] = byte(i * 7)
	}
	orig := append([]byte(nil), in...)

	_ = Hash(in, 7, false, true)
	if bytes.Equal(in, orig) {
		t.Errorf("tx=true is expected to mutate the buffer via dflop/dmemtx in at least one lane")
	}
}

func TestDflopShortInputReturnsZeroWithoutTouchingMemory(t *testing.T) {
	in := []byte{1, 2, 3}
	orig := append([]byte(nil), in...)

	op := dflop(in, 0, true)
	if op != 0 {
		t.Errorf("dflop on <4 byte input = %d, want 0", op)
	}
	if !bytes.Equal(in, orig) {
		t.Errorf("dflop on <4 byte input must not touch memory")
	}
}

func TestDflopEmptyInputReturnsZero(t *testing.T) {
	if op := dflop(nil, 0, true); op != 0 {
		t.Errorf("dflop(nil) = %d, want 0", op)
	}
}

func TestHashIndexSuffixChangesDigest(t *testing.T) {
	in := []byte("fixed thirty-six byte input buffer!")

	withoutIndex := Hash(append([]byte(nil), in...), 99, false, false)
	withIndex := Hash(append([]byte(nil), in...), 99, true, false)
	if withoutIndex == withIndex {
		t.Errorf("appending the index suffix should change the digest")
	}
}

func TestAlgoForCoversAllEightSelectors(t *testing.T) {
	seen := make(map[int]bool)
	for op := uint32(0); op < 64; op++ {
		seen[int(algoFor(op))] = true
	}
	if len(seen) != 8 {
		t.Errorf("algoFor produced %d distinct algorithms across 64 ops, want 8", len(seen))
	}
}
