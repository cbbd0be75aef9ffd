// Package tile implements the Peach deterministic tile generator (spec.md
// §4.5, C6): a 1 KiB region derived solely from the previous block hash
// and a tile index, built from 32 chained Nighthash invocations.
package tile

import (
	"encoding/binary"

	"trigpeach/pkg/nighthash"
)

// Size is the byte length of one tile.
const Size = 1024

const chunkSize = 32
const numChunks = Size / chunkSize // 32

// Generate deterministically builds the 1 KiB tile for index under phash.
// Two independent invocations with the same (phash, index) produce
// byte-identical output (spec.md §8).
func Generate(phash [32]byte, index uint32) [Size]byte {
	var out [Size]byte

	seed := make([]byte, 4+32)
	binary.LittleEndian.PutUint32(seed[0:4], index)
	copy(seed[4:], phash[:])

	first := nighthash.Hash(seed, index, false, true)
	copy(out[0:chunkSize], first[:])

	for k := 1; k < numChunks; k++ {
		prev := out[(k-1)*chunkSize : k*chunkSize]
		next := nighthash.Hash(prev, index, true, true)
		copy(out[k*chunkSize:(k+1)*chunkSize], next[:])
	}

	return out
}
