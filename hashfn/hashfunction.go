// Package hashfn implements the hash primitives shared by the IBE and
// CP-ABE protocol layers (C7): a named, fixed-output-length hash capability,
// hash-to-range, hash-to-point, a counter-based byte-string PRBG, and the
// canonical F_p² serialization used as pairing-output-to-bytes glue.
package hashfn

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// HashFunction is the small capability record spec §9 asks for instead of
// dynamic dispatch: a name, a fixed output length, and a pure byte-to-byte
// transform.
type HashFunction struct {
	Name      string
	OutputLen int
	hashNew   func() hash.Hash
}

// Hash returns H(data) using this HashFunction's underlying algorithm.
func (h HashFunction) Hash(data []byte) []byte {
	d := h.hashNew()
	d.Write(data)
	return d.Sum(nil)
}

// SHA1 is the legacy-only hash named by SecurityLevel 0.
func SHA1() HashFunction { return HashFunction{Name: "SHA-1", OutputLen: sha1.Size, hashNew: sha1.New} }

// SHA224 backs SecurityLevel 1.
func SHA224() HashFunction {
	return HashFunction{Name: "SHA-224", OutputLen: sha256.Size224, hashNew: sha256.New224}
}

// SHA256 backs SecurityLevel 2.
func SHA256() HashFunction {
	return HashFunction{Name: "SHA-256", OutputLen: sha256.Size, hashNew: sha256.New}
}

// SHA384 backs SecurityLevel 3.
func SHA384() HashFunction {
	return HashFunction{Name: "SHA-384", OutputLen: sha512.Size384, hashNew: sha512.New384}
}

// SHA512 backs SecurityLevel 4.
func SHA512() HashFunction {
	return HashFunction{Name: "SHA-512", OutputLen: sha512.Size, hashNew: sha512.New}
}
