// Package cpabe implements C11: Bethencourt–Sahai–Waters ciphertext-policy
// attribute-based encryption over a Boolean threshold access tree (package
// access), built on the same curve/pairing/hashfn/params stack as package
// ibe.
package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/access"
	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/field"
	"github.com/rfc5091/cryptid/params"
	"go.uber.org/zap"
)

// PublicKey is the published output of Setup (spec §4.8): the domain's
// generator g, h=β·g, f=β⁻¹·g, and e(g,g)^α.
type PublicKey struct {
	G        curve.AffinePoint
	H        curve.AffinePoint
	F        curve.AffinePoint
	EggAlpha field.Elt
}

// MasterKey is the authority's secret: β and α·g (never α itself — every
// operation that needs α only ever needs α·g, spec §4.8 KeyGen).
type MasterKey struct {
	Beta   *big.Int
	AlphaG curve.AffinePoint
}

// UserSecretKey is a private key for an attribute set: D=β⁻¹·(α+r)·g, plus
// a per-attribute (Dj, Dj') pair for every attribute the user holds.
type UserSecretKey struct {
	Attributes map[string]bool
	D          curve.AffinePoint
	Dj         map[string]curve.AffinePoint
	DjPrime    map[string]curve.AffinePoint
}

// Ciphertext is a BSW CP-ABE encryption under access tree Tree: CTilde is
// the masked message, C=s·h, and Tree's nodes (after Encrypt runs
// access.ShareSecret over it) carry the per-leaf Cy/Cy' pairs Decrypt
// consumes.
type Ciphertext struct {
	Tree   *access.Node
	CTilde field.Elt
	C      curve.AffinePoint
}

// Instance bundles the domain parameters and published PublicKey, plus an
// optional MasterKey for the authority that ran Setup, with a logger for
// protocol-level tracing.
type Instance struct {
	Domain    *params.Domain
	PublicKey *PublicKey
	Master    *MasterKey
	log       *zap.SugaredLogger
}

func withLogger(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}
