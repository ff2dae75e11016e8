package ibe

import (
	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/status"
)

// Extract derives the private key for id: Q_id ← hashToPoint(id), then
// D ← s·Q_id (spec §4.6). Only the key generation center, which holds
// Master, can call this.
func (inst *Instance) Extract(id []byte) (*PrivateKey, error) {
	if id == nil {
		return nil, status.New(status.IdentityNull)
	}
	if len(id) == 0 {
		return nil, status.New(status.IdentityLengthZero)
	}
	if inst.Master == nil {
		return nil, status.New(status.IllegalPrivateKey)
	}

	qid, err := hashToIdentityPoint(inst.Params, id)
	if err != nil {
		inst.log.Errorw("extract: hash to point failed", "error", err)
		return nil, err
	}

	d := inst.Params.Curve.ScalarMul(qid, inst.Master.S)
	inst.log.Debugw("extract complete")
	return &PrivateKey{D: d}, nil
}

// hashToIdentityPoint maps id onto the order-q subgroup of pp.Curve with
// pp's hash function and cofactor (spec §4.4).
func hashToIdentityPoint(pp *PublicParams, id []byte) (curve.AffinePoint, error) {
	return hashfn.HashToPoint(id, pp.Curve, pp.Q, pp.Cofactor, pp.Hash)
}
