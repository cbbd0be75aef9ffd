package hashfacade

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func TestZeroPaddingForShortDigests(t *testing.T) {
	for _, tc := range []struct {
		alg      Algorithm
		nativeLn int
	}{
		{AlgoSHA1, 20},
		{AlgoMD2, 16},
		{AlgoMD5, 16},
	} {
		out := Sum32(tc.alg, []byte("trigpeach"))
		for i := tc.nativeLn; i < 32; i++ {
			if out[i] != 0 {
				t.Errorf("%s: byte %d = %#x, want 0 (zero padding)", tc.alg, i, out[i])
			}
		}
	}
}

func TestSHA256MatchesStdlib(t *testing.T) {
	data := []byte("trigpeach nighthash")
	want := sha256.Sum256(data)
	got := Sum32(AlgoSHA256, data)
	if !bytes.Equal(got[:], want[:]) {
		t.Errorf("SHA-256 mismatch: got %x, want %x", got, want)
	}
}

func TestUpdateIsIncremental(t *testing.T) {
	whole := Sum32(AlgoSHA256, []byte("abcdef"))

	d := New(AlgoSHA256)
	d.Update([]byte("abc"))
	d.Update([]byte("def"))
	split := d.Final()

	if whole != split {
		t.Errorf("incremental Update produced a different digest: %x vs %x", split, whole)
	}
}

func TestAllAlgorithmsProduceDistinctOutput(t *testing.T) {
	seen := make(map[[32]byte]bool)
	data := []byte("distinct-check")
	for a := Algorithm(0); a < NumAlgorithms; a++ {
		out := Sum32(a, data)
		if seen[out] {
			t.Errorf("algorithm %s collided with a previous algorithm's output", a)
		}
		seen[out] = true
	}
}
