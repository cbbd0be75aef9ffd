// Package hashfacade provides the uniform init/update/final interface over
// the eight hash functions Nighthash selects between (spec.md C1, §4.4 Step
// C), each producing a fixed 32-byte digest, zero-padded when the
// underlying algorithm is shorter.
package hashfacade

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"

	"trigpeach/pkg/hashfacade/md2"
)

// Algorithm selects one of the eight hash functions Nighthash dispatches
// between. Values match spec.md §4.4 Step C's selector table (op mod 8).
type Algorithm int

const (
	AlgoBlake2bKey0 Algorithm = iota // key = 32 bytes of 0x00
	AlgoBlake2bKey1                  // key = 64 bytes of 0x01
	AlgoSHA1                         // 20 bytes, zero-padded to 32
	AlgoSHA256                       // 32 bytes
	AlgoSHA3256                      // 32 bytes
	AlgoKeccak256                    // 32 bytes, pre-NIST padding
	AlgoMD2                          // 16 bytes, zero-padded to 32
	AlgoMD5                          // 16 bytes, zero-padded to 32
)

// NumAlgorithms is the size of the selector space (op mod NumAlgorithms).
const NumAlgorithms = 8

func (a Algorithm) String() string {
	switch a {
	case AlgoBlake2bKey0:
		return "blake2b-key0"
	case AlgoBlake2bKey1:
		return "blake2b-key1"
	case AlgoSHA1:
		return "sha1"
	case AlgoSHA256:
		return "sha256"
	case AlgoSHA3256:
		return "sha3-256"
	case AlgoKeccak256:
		return "keccak-256"
	case AlgoMD2:
		return "md2"
	case AlgoMD5:
		return "md5"
	default:
		return "unknown"
	}
}

var (
	blake2bKey0 = make([]byte, 32)
	blake2bKey1 = func() []byte {
		k := make([]byte, 64)
		for i := range k {
			k[i] = 1
		}
		return k
	}()
)

// newUnderlying builds the stdlib/ecosystem hash.Hash backing an Algorithm.
// BLAKE2b construction cannot fail for these fixed key lengths (<=64 bytes),
// so the error is discarded at this boundary only.
func newUnderlying(a Algorithm) hash.Hash {
	switch a {
	case AlgoBlake2bKey0:
		h, _ := blake2b.New256(blake2bKey0)
		return h
	case AlgoBlake2bKey1:
		h, _ := blake2b.New256(blake2bKey1)
		return h
	case AlgoSHA1:
		return sha1.New()
	case AlgoSHA256:
		return sha256.New()
	case AlgoSHA3256:
		return sha3.New256()
	case AlgoKeccak256:
		return sha3.NewLegacyKeccak256()
	case AlgoMD2:
		return md2.New()
	case AlgoMD5:
		return md5.New()
	default:
		return sha256.New()
	}
}

// Digest is one init/update/final hashing session.
type Digest struct {
	alg Algorithm
	h   hash.Hash
}

// New starts a new digest session for Algorithm a (the "init" step).
func New(a Algorithm) *Digest {
	return &Digest{alg: a, h: newUnderlying(a)}
}

// Update feeds more bytes into the digest.
func (d *Digest) Update(p []byte) {
	d.h.Write(p)
}

// Final returns the 32-byte output, zero-padded if the underlying
// algorithm's native output is shorter.
func (d *Digest) Final() [32]byte {
	var out [32]byte
	sum := d.h.Sum(nil)
	copy(out[:], sum)
	return out
}

// Sum32 is a convenience one-shot init+update+final over the entire input.
func Sum32(a Algorithm, data []byte) [32]byte {
	d := New(a)
	d.Update(data)
	return d.Final()
}
