package ibe

import "github.com/rfc5091/cryptid/wire"

// Marshal encodes ct per spec §6's on-wire format: U as an AffinePoint,
// then V and W as length-prefixed raw byte strings.
func (ct *Ciphertext) Marshal() []byte {
	out := wire.MarshalAffinePoint(ct.U)
	out = append(out, wire.MarshalBytes(ct.V)...)
	out = append(out, wire.MarshalBytes(ct.W)...)
	return out
}

// Unmarshal decodes a Ciphertext written by Marshal.
func Unmarshal(data []byte) (*Ciphertext, error) {
	u, rest, err := wire.UnmarshalAffinePoint(data)
	if err != nil {
		return nil, err
	}
	v, rest, err := wire.UnmarshalBytes(rest)
	if err != nil {
		return nil, err
	}
	w, _, err := wire.UnmarshalBytes(rest)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{U: u, V: v, W: w}, nil
}
