package ibe

import (
	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/pairing"
	"github.com/rfc5091/cryptid/status"
)

// Decrypt runs the BF-IBE decryption algorithm (spec §4.6):
//
//  1. θ ← e(U, sk); z ← canonical(p, θ); w ← H(z); ρ ← w ⊕ V.
//  2. M ← hashBytes(|W|, ρ) ⊕ W.
//  3. Consistency check: t ← H(M); l ← hashToRange(ρ‖t, q); require U=l·P,
//     else fail — the ciphertext was not honestly constructed for this key.
func (inst *Instance) Decrypt(ct *Ciphertext) ([]byte, error) {
	pp := inst.Params
	if ct == nil {
		return nil, status.New(status.IllegalCiphertext)
	}
	if inst.privateKey == nil {
		return nil, status.New(status.IllegalPrivateKey)
	}

	theta, err := pairing.Tate(pp.Curve, ct.U, pp.Curve.Distort(inst.privateKey.D), pp.Q)
	if err != nil {
		inst.log.Errorw("decrypt: pairing failed", "error", err)
		return nil, err
	}

	z := hashfn.Canonical(pp.Curve.P, theta)
	w := pp.Hash.Hash(z)
	rho := xorBytes(w, ct.V)

	mask := hashfn.HashBytes(len(ct.W), rho, pp.Hash)
	message := xorBytes(mask, ct.W)

	t := pp.Hash.Hash(message)
	l := hashfn.HashToRange(append(append([]byte{}, rho...), t...), pp.Q, pp.Hash)
	expectedU := pp.Curve.ScalarMul(pp.P, l)
	if !curve.Equal(expectedU, ct.U) {
		inst.log.Warnw("decrypt: consistency check failed")
		return nil, status.New(status.DecryptionFailed)
	}

	inst.log.Debugw("decrypt complete", "messageLen", len(message))
	return message, nil
}

// WithPrivateKey binds sk to inst for subsequent Decrypt calls, mirroring
// how a recipient holds exactly one extracted key per identity.
func (inst *Instance) WithPrivateKey(sk *PrivateKey) *Instance {
	clone := *inst
	clone.privateKey = sk
	return &clone
}
