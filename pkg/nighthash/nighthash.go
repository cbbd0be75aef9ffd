// Package nighthash implements the Peach mixing primitive: a deterministic
// floating-point digest phase, an optional memory-transform phase, and a
// dispatch to one of eight cryptographic hashes (spec.md §4.4, C5). Every
// byte reinterpretation here is little-endian and goes through
// math.Float32bits/Float32frombits — never an unsafe pointer cast — so the
// result is reproducible across platforms (spec.md §9 "Determinism vs.
// aliasing").
package nighthash

import (
	"encoding/binary"
	"math"

	"trigpeach/pkg/hashfacade"
)

// selector constants from the wire specification (spec.md §4.4 Step A).
const (
	selConst0 = 0x26C34
	selConst1 = 0x14198
	selConst2 = 0x3D6EC
)

func laneFloat(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putLaneFloat(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}

func isNaN32(f float32) bool {
	return f != f
}

// dflop is Step A, the deterministic floating-point digest. It processes
// in in 4-byte lanes (the tail, len(in) mod 4 bytes, is ignored). When tx
// is true each lane's float is updated in place; when false, in is left
// bitwise unchanged.
func dflop(in []byte, index uint32, tx bool) uint32 {
	l := len(in) - (len(in) % 4)
	var op uint32

	for i := 0; i+4 <= l; i += 4 {
		lane := in[i : i+4]

		var flp float32
		if tx {
			flp = laneFloat(lane)
		} else {
			var tmp [4]byte
			copy(tmp[:], lane)
			flp = laneFloat(tmp[:])
		}

		shift := ((uint32(in[i]) & 7) + 1) * 2
		sel0 := (selConst0 >> shift) & 3
		sel1 := (selConst1 >> shift) & 3
		sel2 := (selConst2 >> shift) & 3

		op += uint32(in[i+int(sel0)])

		operand := uint32(in[i+int(sel1)])
		if in[i+int(sel2)]&1 != 0 {
			operand ^= 0x80000000
		}
		flv := float32(int32(operand))

		if isNaN32(flp) {
			flp = float32(index)
		}

		var result float32
		switch op & 3 {
		case 0:
			result = flp + flv
		case 1:
			result = flp - flv
		case 2:
			result = flp * flv
		case 3:
			result = flp / flv
		}
		if isNaN32(result) {
			result = float32(index)
		}
		flp = result

		if tx {
			putLaneFloat(lane, flp)
		}

		bits := math.Float32bits(flp)
		op += bits & 0xFF
		op += (bits >> 8) & 0xFF
		op += (bits >> 16) & 0xFF
		op += (bits >> 24) & 0xFF
	}

	return op
}

// dmemtx is Step B, the 8-round memory transform. It mutates in in place
// and is only ever invoked when tx is true.
func dmemtx(in []byte, op uint32) uint32 {
	n := len(in)
	half := n / 2

	for round := 0; round < 8; round++ {
		op += uint32(in[round%32])

		switch op % 8 {
		case 0:
			for z := 0; z < n; z++ {
				in[z] ^= 0x81
			}
		case 1:
			for z := 0; z < half; z++ {
				in[z], in[z+half] = in[z+half], in[z]
			}
		case 2:
			for z := 0; z < n; z++ {
				in[z] = ^in[z]
			}
		case 3:
			for z := 0; z < n; z++ {
				if z%2 == 0 {
					in[z]++
				} else {
					in[z]--
				}
			}
		case 4:
			for z := 0; z < n; z++ {
				if z%2 == 0 {
					in[z] -= byte(round)
				} else {
					in[z] += byte(round)
				}
			}
		case 5:
			for z := 0; z < n; z++ {
				if in[z] == 'h' {
					in[z] = 'H'
				}
			}
		case 6:
			for z := 0; z < half; z++ {
				if in[z] > in[z+half] {
					in[z], in[z+half] = in[z+half], in[z]
				}
			}
		case 7:
			for z := 1; z < n; z++ {
				in[z] ^= in[z-1]
			}
		}
	}

	return op
}

// algoFor maps op mod 8 to the Step C hash algorithm (spec.md §4.4 Step C);
// the ordering matches hashfacade.Algorithm's iota sequence exactly.
func algoFor(op uint32) hashfacade.Algorithm {
	return hashfacade.Algorithm(op % 8)
}

// Hash runs the full Nighthash pipeline over in: dflop, then (if tx)
// dmemtx, then hashes the resulting bytes with the selected algorithm,
// optionally appending index as a little-endian suffix.
func Hash(in []byte, index uint32, hashIndex bool, tx bool) [32]byte {
	op := dflop(in, index, tx)
	if tx {
		op = dmemtx(in, op)
	}

	d := hashfacade.New(algoFor(op))
	d.Update(in)
	if hashIndex {
		var suffix [4]byte
		binary.LittleEndian.PutUint32(suffix[:], index)
		d.Update(suffix[:])
	}
	return d.Final()
}
