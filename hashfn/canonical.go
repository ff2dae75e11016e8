package hashfn

import (
	"math/big"

	"github.com/rfc5091/cryptid/field"
)

// Canonical renders an F_p² element as the fixed-width big-endian byte
// string spec §4.2 calls for when a pairing value crosses a wire boundary:
// A and B each padded out to the byte length of p, B-component appended
// after A so the encoding round-trips through field.New without any
// length ambiguity.
func Canonical(p *big.Int, e field.Elt) []byte {
	width := (p.BitLen() + 7) / 8
	out := make([]byte, 2*width)
	e.A.FillBytes(out[:width])
	e.B.FillBytes(out[width:])
	return out
}

// FromCanonical parses the encoding Canonical produces back into an F_p²
// element.
func FromCanonical(p *big.Int, data []byte) field.Elt {
	width := (p.BitLen() + 7) / 8
	a := new(big.Int).SetBytes(data[:width])
	b := new(big.Int).SetBytes(data[width:])
	return field.New(p, a, b)
}
