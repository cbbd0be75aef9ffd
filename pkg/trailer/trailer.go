// Package trailer exposes the fixed 160-byte block trailer layout as an
// opaque byte array with named field accessors. The core treats the trailer
// as an external collaborator's wire format: only reading phash, bnum,
// difficulty, mroot and nonce, and only ever writing nonce.
package trailer

import "encoding/binary"

// Size is the fixed on-wire length of a block trailer.
const Size = 160

// Field byte offsets, little-endian.
const (
	offPhash      = 0
	offBnum       = 32
	offMfee       = 40
	offTcount     = 48
	offTime0      = 52
	offDifficulty = 56
	offMroot      = 60
	offNonce      = 92
	offStime      = 124
	offBhash      = 128
)

const (
	phashLen  = 32
	bnumLen   = 8
	mfeeLen   = 8
	mrootLen  = 32
	nonceLen  = 32
	bhashLen  = 32
)

// Trailer wraps a 160-byte buffer and provides field-level accessors. It
// never copies the underlying array; callers that need isolation should
// copy Bytes() themselves.
type Trailer struct {
	buf [Size]byte
}

// New returns a zeroed trailer.
func New() *Trailer {
	return &Trailer{}
}

// FromBytes copies exactly Size bytes into a new Trailer.
func FromBytes(b []byte) (*Trailer, error) {
	if len(b) != Size {
		return nil, ErrBadLength
	}
	t := &Trailer{}
	copy(t.buf[:], b)
	return t, nil
}

// Bytes returns the raw 160-byte buffer (not a copy).
func (t *Trailer) Bytes() []byte {
	return t.buf[:]
}

// Phash is the previous block hash, bytes [0, 32).
func (t *Trailer) Phash() []byte { return t.buf[offPhash : offPhash+phashLen] }

// Bnum is the block number, bytes [32, 40), little-endian.
func (t *Trailer) Bnum() uint64 {
	return binary.LittleEndian.Uint64(t.buf[offBnum : offBnum+bnumLen])
}

// BnumBytes is the raw 8-byte block number field.
func (t *Trailer) BnumBytes() []byte { return t.buf[offBnum : offBnum+bnumLen] }

// Mfee is the miner fee field, bytes [40, 48).
func (t *Trailer) Mfee() []byte { return t.buf[offMfee : offMfee+mfeeLen] }

// Tcount is the transaction count, bytes [48, 52), little-endian.
func (t *Trailer) Tcount() uint32 {
	return binary.LittleEndian.Uint32(t.buf[offTcount : offTcount+4])
}

// Time0 is the block start time, bytes [52, 56), little-endian.
func (t *Trailer) Time0() uint32 {
	return binary.LittleEndian.Uint32(t.buf[offTime0 : offTime0+4])
}

// Difficulty is the difficulty field, bytes [56, 60), little-endian. Only
// the low byte is used by the PoW predicate (spec.md §4.3).
func (t *Trailer) Difficulty() uint32 {
	return binary.LittleEndian.Uint32(t.buf[offDifficulty : offDifficulty+4])
}

// DifficultyByte returns the difficulty as used by Eval: the low byte of
// the 4-byte difficulty field.
func (t *Trailer) DifficultyByte() uint8 {
	return t.buf[offDifficulty]
}

// SetDifficulty sets the 4-byte little-endian difficulty field.
func (t *Trailer) SetDifficulty(d uint32) {
	binary.LittleEndian.PutUint32(t.buf[offDifficulty:offDifficulty+4], d)
}

// Mroot is the merkle root, bytes [60, 92). This is the 32-byte mroot that
// opens the Trigg chain (pkg/trigg's Solve/Check), not the previous block
// hash returned by Phash.
func (t *Trailer) Mroot() []byte { return t.buf[offMroot : offMroot+mrootLen] }

// Nonce is the 32-byte haiku nonce, bytes [92, 124). This is the only field
// the core ever writes.
func (t *Trailer) Nonce() []byte { return t.buf[offNonce : offNonce+nonceLen] }

// SetNonce overwrites the 32-byte nonce field.
func (t *Trailer) SetNonce(nonce [32]byte) {
	copy(t.buf[offNonce:offNonce+nonceLen], nonce[:])
}

// Stime is the solve time field, bytes [124, 128).
func (t *Trailer) Stime() []byte { return t.buf[offStime : offStime+4] }

// Bhash is the block hash field, bytes [128, 160).
func (t *Trailer) Bhash() []byte { return t.buf[offBhash : offBhash+bhashLen] }

// Through124 returns bytes [0, 124): trailer through stime, exclusive. This
// is the slice peach.Check hashes per spec.md §4.7.
func (t *Trailer) Through124() []byte { return t.buf[:offStime] }

// Through92 returns bytes [0, 92): trailer up to but excluding the nonce.
// This is the slice peach.Generate hashes before appending the nonce
// separately.
func (t *Trailer) Through92() []byte { return t.buf[:offNonce] }
