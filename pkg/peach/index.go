// Package peach implements the memory-hard Peach proof of work layered on
// Trigg: the index-jump hop (C7) and the solve/generate/check orchestrator
// with its optional 1 GiB tile map (C8), spec.md §4.6-§4.8.
package peach

import (
	"encoding/binary"

	"trigpeach/pkg/nighthash"
	"trigpeach/pkg/tile"
)

// MapTiles is the number of tiles in a full map (2^20), also the modulus
// every tile index is reduced to.
const MapTiles = 1 << 20

// NextIndex maps (current tile index, current tile, nonce) to the next
// tile index in an 8-hop walk (spec.md §4.6).
func NextIndex(current uint32, t [tile.Size]byte, nonce [32]byte) uint32 {
	seed := make([]byte, 32+4+tile.Size)
	copy(seed[0:32], nonce[:])
	binary.LittleEndian.PutUint32(seed[32:36], current)
	copy(seed[36:], t[:])

	h := nighthash.Hash(seed, current, false, false)

	var sum uint32
	for lane := 0; lane < 8; lane++ {
		sum += binary.LittleEndian.Uint32(h[lane*4 : lane*4+4])
	}
	return sum % MapTiles
}
