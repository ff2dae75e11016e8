// Package params implements C8: the RFC-5091 security-level table, Solinas
// prime generation, and the random sampling primitives (ranged integers,
// affine curve points) used by ibe.Setup and cpabe.Setup to build a fresh
// set of domain parameters.
package params

import "github.com/rfc5091/cryptid/hashfn"

// SecurityLevel selects the subgroup-order bit length, field-prime bit
// length, and hash family for a fresh set of domain parameters, per the
// RFC-5091 table reproduced in spec §4.5.
type SecurityLevel int

const (
	// Level0 is legacy-only: SHA-1, 160-bit q, 512-bit p.
	Level0 SecurityLevel = iota
	Level1
	Level2
	Level3
	Level4
)

type levelSpec struct {
	qBits int
	pBits int
	hash  func() hashfn.HashFunction
}

var levelTable = map[SecurityLevel]levelSpec{
	Level0: {qBits: 160, pBits: 512, hash: hashfn.SHA1},
	Level1: {qBits: 224, pBits: 1024, hash: hashfn.SHA224},
	Level2: {qBits: 256, pBits: 1536, hash: hashfn.SHA256},
	Level3: {qBits: 384, pBits: 3840, hash: hashfn.SHA384},
	Level4: {qBits: 512, pBits: 7680, hash: hashfn.SHA512},
}

// Bits returns the (q-bits, p-bits) pair named by the RFC-5091 table for
// this level.
func (l SecurityLevel) Bits() (qBits, pBits int) {
	spec := levelTable[l]
	return spec.qBits, spec.pBits
}

// Hash returns the named SHA-family hash for this level.
func (l SecurityLevel) Hash() hashfn.HashFunction {
	return levelTable[l].hash()
}

// Valid reports whether l is one of the five defined levels.
func (l SecurityLevel) Valid() bool {
	_, ok := levelTable[l]
	return ok
}
