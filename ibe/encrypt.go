package ibe

import (
	"crypto/rand"

	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/pairing"
	"github.com/rfc5091/cryptid/status"
)

// Encrypt runs the BF-IBE encryption algorithm (spec §4.6):
//
//  1. ρ ← hashlen random bytes; t ← H(M); l ← hashToRange(ρ‖t, q).
//  2. U ← l·P.
//  3. θ ← e(P_pub, hashToPoint(id)); θ' ← θ^l.
//  4. z ← canonical(p, θ'); w ← H(z).
//  5. V ← w ⊕ ρ.
//  6. W ← hashBytes(|M|, ρ) ⊕ M.
func (inst *Instance) Encrypt(message, id []byte) (*Ciphertext, error) {
	pp := inst.Params
	if message == nil {
		return nil, status.New(status.MessageNull)
	}
	if len(message) == 0 {
		return nil, status.New(status.MessageLengthZero)
	}
	if id == nil {
		return nil, status.New(status.IdentityNull)
	}
	if len(id) == 0 {
		return nil, status.New(status.IdentityLengthZero)
	}

	rho := make([]byte, pp.Hash.OutputLen)
	if _, err := rand.Read(rho); err != nil {
		return nil, status.Wrap(status.IllegalCiphertext, err)
	}

	t := pp.Hash.Hash(message)
	l := hashfn.HashToRange(append(append([]byte{}, rho...), t...), pp.Q, pp.Hash)

	u := pp.Curve.ScalarMul(pp.P, l)

	qid, err := hashToIdentityPoint(pp, id)
	if err != nil {
		inst.log.Errorw("encrypt: hash to point failed", "error", err)
		return nil, err
	}

	theta, err := pairing.Tate(pp.Curve, pp.Ppub, pp.Curve.Distort(qid), pp.Q)
	if err != nil {
		inst.log.Errorw("encrypt: pairing failed", "error", err)
		return nil, err
	}
	thetaPrime, err := theta.Pow(pp.Curve.P, l)
	if err != nil {
		return nil, status.Wrap(status.IllegalCiphertext, err)
	}

	z := hashfn.Canonical(pp.Curve.P, thetaPrime)
	w := pp.Hash.Hash(z)

	v := xorBytes(w, rho)
	mask := hashfn.HashBytes(len(message), rho, pp.Hash)
	wOut := xorBytes(mask, message)

	inst.log.Debugw("encrypt complete", "messageLen", len(message))
	return &Ciphertext{U: u, V: v, W: wOut}, nil
}

// xorBytes returns a⊕b; both slices must have equal length.
func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
