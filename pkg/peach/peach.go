package peach

import (
	"crypto/sha256"

	"trigpeach/internal/errs"
	"trigpeach/internal/rng"
	"trigpeach/pkg/tile"
	"trigpeach/pkg/trailer"
	"trigpeach/pkg/trigg"
)

// Context is one mining session's state: the previous block hash and
// difficulty copied from the trailer, the optional 1 GiB tile map with its
// presence bitmap, a one-tile scratch buffer for map-less operation, and
// the rolling 32-byte nonce (spec.md §3 "Peach context"). The zero value
// is Uninit; Solve moves it to Ready, Free moves it to Freed (spec.md
// §4.8).
type Context struct {
	bt    *trailer.Trailer
	phash [32]byte
	diff  uint8

	tileMap []byte
	cache   *bitmap
	scratch [tile.Size]byte

	nonce [32]byte
}

// Solve initialises P against bt: it allocates the 1 GiB map and the
// 128 KiB (one bit per tile) presence cache, records phash and diff, and seeds the
// second half of the nonce with a fresh Trigg haiku (spec.md §4.7).
// Allocation failure is reported as ErrAllocationFailure with no partial
// state retained.
func Solve(P *Context, bt *trailer.Trailer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			Free(P)
			err = errs.ErrAllocationFailure
		}
	}()

	*P = Context{}
	copy(P.phash[:], bt.Phash())
	P.diff = bt.DifficultyByte()
	P.bt = bt

	P.tileMap = make([]byte, MapTiles*tile.Size)
	P.cache = newBitmap(MapTiles)

	half := trigg.GenerateTokens(rng.Global())
	copy(P.nonce[16:32], half[:])
	return nil
}

// FillFraction reports the proportion of the tile map that has been
// populated so far, for progress reporting. It returns 0 when no map is
// allocated.
func (P *Context) FillFraction() float64 {
	if P.cache == nil {
		return 0
	}
	return float64(P.cache.count()) / float64(MapTiles)
}

// Free releases the map and cache bitmap and resets P to a freed state.
// Calling Free twice, or on a Context that failed Solve, is safe.
func Free(P *Context) {
	P.tileMap = nil
	P.cache = nil
}

// marioStart computes the starting walk index from a trailer hash: a
// 32-bit wrapping multiplication across all 32 bytes, reduced mod MapTiles
// (spec.md §4.7). The result is zero whenever any input byte is zero
// (roughly 1 hash in 8) and also whenever the product carries 20 or more
// factors of two, so for uniformly random hashes it is zero about 95% of the
// time — preserved bit-for-bit per spec.md §9's open question, despite being
// suboptimal.
func marioStart(btHash [32]byte) uint32 {
	mario := uint32(btHash[0])
	for i := 1; i < 32; i++ {
		mario *= uint32(btHash[i])
	}
	return mario % MapTiles
}

// fetchOrGenerate returns tile i, honoring the three-way map-present/
// bit-set, map-present/bit-unset, and map-absent cases (spec.md §4.7).
func (P *Context) fetchOrGenerate(i uint32) [tile.Size]byte {
	if P.tileMap == nil {
		P.scratch = tile.Generate(P.phash, i)
		return P.scratch
	}

	if P.cache.get(i) {
		var out [tile.Size]byte
		copy(out[:], P.tileMap[uint64(i)*tile.Size:(uint64(i)+1)*tile.Size])
		return out
	}

	gen := tile.Generate(P.phash, i)
	copy(P.tileMap[uint64(i)*tile.Size:(uint64(i)+1)*tile.Size], gen[:])
	P.cache.set(i)
	return gen
}

// walk runs the 8-hop traversal from mario over tile, returning the final
// tile visited.
func walk(fetch func(uint32) [tile.Size]byte, mario uint32, nonce [32]byte) (finalMario uint32, finalTile [tile.Size]byte) {
	t := fetch(mario)
	for i := 0; i < 8; i++ {
		mario = NextIndex(mario, t, nonce)
		t = fetch(mario)
	}
	return mario, t
}

// Generate attempts one candidate nonce against P: it advances the rolling
// nonce (the previous second haiku half becomes the new first half, and a
// fresh second half is drawn), computes the starting index, walks 8 hops
// of the tile map, and checks the final hash against P's difficulty. On
// success the nonce is written to out and to the trailer (spec.md §4.7).
func Generate(P *Context, out *[32]byte) bool {
	copy(P.nonce[0:16], P.nonce[16:32])
	half := trigg.GenerateTokens(rng.Global())
	copy(P.nonce[16:32], half[:])

	btHashInput := make([]byte, 0, 92+32)
	btHashInput = append(btHashInput, P.bt.Through92()...)
	btHashInput = append(btHashInput, P.nonce[:]...)
	btHash := sha256.Sum256(btHashInput)

	mario := marioStart(btHash)
	_, finalTile := walk(P.fetchOrGenerate, mario, P.nonce)

	finalInput := make([]byte, 0, 32+tile.Size)
	finalInput = append(finalInput, btHash[:]...)
	finalInput = append(finalInput, finalTile[:]...)
	final := sha256.Sum256(finalInput)

	if !trigg.Eval(final, P.diff) {
		return false
	}

	*out = P.nonce
	P.bt.SetNonce(P.nonce)
	return true
}

// Check is pure and allocates no persistent map: it verifies nonce syntax,
// then regenerates every visited tile on demand into a transient scratch
// buffer. If out is non-nil the final 32-byte hash is copied there.
//
// Note bt_hash here is SHA256 of the trailer's first 124 bytes (through
// stime, skipping it), which differs from Generate's SHA256(bt[0:92] ‖
// nonce) — the two are equal only because nonce occupies bytes [92:124);
// this is protocol-observable and preserved exactly (spec.md §9).
func Check(bt *trailer.Trailer, out *[32]byte) bool {
	nonce := bt.Nonce()
	var primary, secondary [16]byte
	copy(primary[:], nonce[0:16])
	copy(secondary[:], nonce[16:32])
	if !trigg.Syntax(primary) || !trigg.Syntax(secondary) {
		return false
	}

	var phash [32]byte
	copy(phash[:], bt.Phash())
	diff := bt.DifficultyByte()

	btHash := sha256.Sum256(bt.Through124())

	var nonceArr [32]byte
	copy(nonceArr[:], nonce)

	mario := marioStart(btHash)
	fetch := func(i uint32) [tile.Size]byte {
		return tile.Generate(phash, i)
	}
	_, finalTile := walk(fetch, mario, nonceArr)

	finalInput := make([]byte, 0, 32+tile.Size)
	finalInput = append(finalInput, btHash[:]...)
	finalInput = append(finalInput, finalTile[:]...)
	final := sha256.Sum256(finalInput)

	if out != nil {
		*out = final
	}
	return trigg.Eval(final, diff)
}
