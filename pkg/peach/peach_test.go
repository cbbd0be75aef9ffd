package peach

import (
	"testing"

	"trigpeach/internal/rng"
	"trigpeach/pkg/tile"
	"trigpeach/pkg/trailer"
)

func TestNextIndexIsDeterministic(t *testing.T) {
	var tl [tile.Size]byte
	for i := range tl {
		tl[i] = byte(i)
	}
	var nonce [32]byte
	for i := range nonce {
		nonce[i] = byte(i * 3)
	}

	a := NextIndex(5, tl, nonce)
	b := NextIndex(5, tl, nonce)
	if a != b {
		t.Errorf("NextIndex is not deterministic: %d vs %d", a, b)
	}
	if a >= MapTiles {
		t.Errorf("NextIndex returned %d, out of range [0, %d)", a, MapTiles)
	}
}

func TestMarioStartBoundaries(t *testing.T) {
	var allOnes [32]byte
	for i := range allOnes {
		allOnes[i] = 1
	}
	if m := marioStart(allOnes); m != 1 {
		t.Errorf("marioStart(all ones) = %d, want 1", m)
	}

	var withZero [32]byte
	withZero[0] = 1 // a zero anywhere else in the chain collapses the product to 0
	if m := marioStart(withZero); m != 0 {
		t.Errorf("marioStart with a zero byte present = %d, want 0", m)
	}
}

func TestFetchOrGenerateMatchesMapless(t *testing.T) {
	var P Context
	P.tileMap = nil // map-absent mode
	mapless := P.fetchOrGenerate(7)

	gen := tile.Generate(P.phash, 7)
	if mapless != gen {
		t.Errorf("map-absent fetchOrGenerate diverges from tile.Generate")
	}
}

func TestFetchOrGenerateCachesAfterFirstFill(t *testing.T) {
	var P Context
	P.tileMap = make([]byte, 64*tile.Size) // small backing store, enough for index 7
	P.cache = newBitmap(64)

	first := P.fetchOrGenerate(7)
	if !P.cache.get(7) {
		t.Fatalf("presence bit for index 7 not set after first fill")
	}
	second := P.fetchOrGenerate(7)
	if first != second {
		t.Errorf("cached fetch returned different bytes than the first fill")
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	var P Context
	P.tileMap = make([]byte, tile.Size)
	P.cache = newBitmap(1)

	Free(&P)
	Free(&P) // must not panic
	if P.tileMap != nil || P.cache != nil {
		t.Errorf("Free did not clear map/cache references")
	}
}

func TestCheckRejectsEmptyHaikuNonce(t *testing.T) {
	bt := trailer.New()
	bt.SetDifficulty(1)
	var empty [32]byte
	bt.SetNonce(empty)
	if Check(bt, nil) {
		t.Errorf("an empty-haiku nonce must fail Check on syntax alone")
	}
}

func TestSolveGenerateCheckRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates a 1 GiB tile map; skipped in -short mode")
	}

	rng.Srand(1234)
	bt := trailer.New()
	bt.SetDifficulty(1) // low difficulty: a handful of attempts should succeed

	var P Context
	if err := Solve(&P, bt); err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	defer Free(&P)

	var out [32]byte
	found := false
	for i := 0; i < 2000; i++ {
		if Generate(&P, &out) {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("Generate did not find a nonce at difficulty 1 within the attempt budget")
	}

	if !Check(bt, nil) {
		t.Errorf("a nonce accepted by Generate must also pass Check")
	}
}
