// Package wire implements the on-wire serialization formats spec §6
// names: length-prefixed big-endian BigInts, and AffinePoints as an
// is-infinity flag followed by two length-prefixed coordinates. Adapted
// from the teacher's Marshal/Unmarshal pair-per-type shape (its
// serialization package wrapped gnark-crypto's own Marshal methods; this
// package implements the encoding directly over math/big and curve.AffinePoint).
package wire

import (
	"encoding/binary"
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/status"
)

// MarshalBigInt encodes v as a 4-byte big-endian length followed by v's
// big-endian bytes.
func MarshalBigInt(v *big.Int) []byte {
	b := v.Bytes()
	out := make([]byte, 4+len(b))
	binary.BigEndian.PutUint32(out[:4], uint32(len(b)))
	copy(out[4:], b)
	return out
}

// UnmarshalBigInt decodes a value written by MarshalBigInt, returning the
// value and the unconsumed remainder of data.
func UnmarshalBigInt(data []byte) (*big.Int, []byte, error) {
	if len(data) < 4 {
		return nil, nil, status.New(status.IllegalCiphertext)
	}
	n := binary.BigEndian.Uint32(data[:4])
	rest := data[4:]
	if uint32(len(rest)) < n {
		return nil, nil, status.New(status.IllegalCiphertext)
	}
	return new(big.Int).SetBytes(rest[:n]), rest[n:], nil
}

// MarshalAffinePoint encodes p as a one-byte is-infinity flag, followed —
// when p is finite — by MarshalBigInt(x) then MarshalBigInt(y).
func MarshalAffinePoint(p curve.AffinePoint) []byte {
	if p.Inf {
		return []byte{1}
	}
	out := []byte{0}
	out = append(out, MarshalBigInt(p.X)...)
	out = append(out, MarshalBigInt(p.Y)...)
	return out
}

// UnmarshalAffinePoint decodes a value written by MarshalAffinePoint.
func UnmarshalAffinePoint(data []byte) (curve.AffinePoint, []byte, error) {
	if len(data) < 1 {
		return curve.AffinePoint{}, nil, status.New(status.IllegalCiphertext)
	}
	if data[0] == 1 {
		return curve.Infinity(), data[1:], nil
	}
	x, rest, err := UnmarshalBigInt(data[1:])
	if err != nil {
		return curve.AffinePoint{}, nil, err
	}
	y, rest, err := UnmarshalBigInt(rest)
	if err != nil {
		return curve.AffinePoint{}, nil, err
	}
	return curve.NewAffinePoint(x, y), rest, nil
}

// MarshalBytes encodes a raw byte string as a 4-byte length followed by
// the bytes themselves (spec §6: "V and W are raw byte strings with
// explicit lengths").
func MarshalBytes(b []byte) []byte {
	out := make([]byte, 4+len(b))
	binary.BigEndian.PutUint32(out[:4], uint32(len(b)))
	copy(out[4:], b)
	return out
}

// UnmarshalBytes decodes a value written by MarshalBytes.
func UnmarshalBytes(data []byte) ([]byte, []byte, error) {
	if len(data) < 4 {
		return nil, nil, status.New(status.IllegalCiphertext)
	}
	n := binary.BigEndian.Uint32(data[:4])
	rest := data[4:]
	if uint32(len(rest)) < n {
		return nil, nil, status.New(status.IllegalCiphertext)
	}
	return rest[:n], rest[n:], nil
}
