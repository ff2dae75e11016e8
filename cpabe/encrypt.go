package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/access"
	"github.com/rfc5091/cryptid/field"
	"github.com/rfc5091/cryptid/status"
)

// Encrypt runs BSW07 encryption under tree (spec §4.8): draw s, propagate
// it through tree via access.ShareSecret, then set
// CTilde=M·e(g,g)^(αs) and C=s·h. message must be an integer strictly
// below the field prime, the same "treat M as an integer < p" convention
// spec §4.8 names for the exponentiated-message encoding.
func (inst *Instance) Encrypt(message *big.Int, tree *access.Node) (*Ciphertext, error) {
	if message == nil {
		return nil, status.New(status.MessageNull)
	}
	domain := inst.Domain
	if message.Sign() < 0 || message.Cmp(domain.Curve.P) >= 0 {
		return nil, status.New(status.IllegalCiphertext)
	}

	s, err := drawNonzero(domain.Q)
	if err != nil {
		return nil, status.Wrap(status.IllegalCiphertext, err)
	}

	if err := access.ShareSecret(tree, s, inst.PublicKey.G, domain); err != nil {
		inst.log.Errorw("encrypt: share secret failed", "error", err)
		return nil, err
	}

	eggAlphaS, err := inst.PublicKey.EggAlpha.Pow(domain.Curve.P, s)
	if err != nil {
		return nil, status.Wrap(status.IllegalCiphertext, err)
	}
	cTilde := eggAlphaS.Mul(domain.Curve.P, field.FromBase(message))

	c := domain.Curve.ScalarMul(inst.PublicKey.H, s)

	inst.log.Debugw("encrypt complete")
	return &Ciphertext{Tree: tree, CTilde: cTilde, C: c}, nil
}
