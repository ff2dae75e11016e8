// Package ibe implements C9: Boneh–Franklin identity-based encryption
// (RFC-5091) over the supersingular curve and Tate pairing built in
// packages curve/pairing/hashfn/params.
package ibe

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"go.uber.org/zap"
)

// PublicParams is the published output of Setup: the curve, subgroup
// order, generator, master public key P_pub=s·P, and the hash function
// this instance's SecurityLevel names. Every field is safe to publish.
type PublicParams struct {
	Curve    *curve.Curve
	Q        *big.Int
	Cofactor *big.Int
	P        curve.AffinePoint
	Ppub     curve.AffinePoint
	Hash     hashfn.HashFunction
}

// MasterSecret is the key generation center's secret s∈[2,q); it must
// never leave the PKG boundary.
type MasterSecret struct {
	S *big.Int
}

// PrivateKey is a user's extracted key D=s·Q_id.
type PrivateKey struct {
	D curve.AffinePoint
}

// Ciphertext is a BF-IBE encryption: U=l·P, plus the two XOR-masked byte
// strings V (hashlen bytes) and W (len(M) bytes).
type Ciphertext struct {
	U curve.AffinePoint
	V []byte
	W []byte
}

// Instance bundles the public parameters and (when held by the key
// generation center) the master secret, with an optional logger for the
// protocol-level tracing spec's ambient logging concern calls for — never
// inside the field/curve/pairing arithmetic itself.
type Instance struct {
	Params     *PublicParams
	Master     *MasterSecret
	privateKey *PrivateKey
	log        *zap.SugaredLogger
}

func nopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

// withLogger substitutes a no-op logger for a nil one so callers never need
// a nil check before logging.
func withLogger(log *zap.SugaredLogger) *zap.SugaredLogger {
	if log == nil {
		return nopLogger()
	}
	return log
}
