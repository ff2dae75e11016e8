package ibe

import (
	"math/big"

	"github.com/rfc5091/cryptid/params"
	"github.com/rfc5091/cryptid/status"
	"go.uber.org/zap"
)

// minMasterSecret is the lower bound spec §4.6 gives for the master secret
// draw: s∈[2,q).
var minMasterSecret = big.NewInt(2)

// Setup runs the BF-IBE key generation center's initialization (spec
// §4.6): build a fresh Domain at level, draw the master secret s∈[2,q),
// and publish P_pub=s·P alongside the domain's curve and generator.
func Setup(level params.SecurityLevel, log *zap.SugaredLogger) (*Instance, error) {
	log = withLogger(log)
	log.Infow("ibe setup starting", "level", level)

	domain, err := params.GenerateDomain(level)
	if err != nil {
		log.Errorw("domain generation failed", "error", err)
		return nil, err
	}

	s, err := drawMasterSecret(domain.Q)
	if err != nil {
		log.Errorw("master secret draw failed", "error", err)
		return nil, err
	}

	ppub := domain.Curve.ScalarMul(domain.Generator, s)

	inst := &Instance{
		Params: &PublicParams{
			Curve:    domain.Curve,
			Q:        domain.Q,
			Cofactor: domain.Cofactor(),
			P:        domain.Generator,
			Ppub:     ppub,
			Hash:     domain.Hash,
		},
		Master: &MasterSecret{S: s},
		log:    log,
	}
	log.Infow("ibe setup complete")
	return inst, nil
}

// NewRecipient builds an Instance for a party that holds only the public
// parameters and an extracted private key — able to Decrypt but not
// Extract or hold Master.
func NewRecipient(pp *PublicParams, sk *PrivateKey, log *zap.SugaredLogger) *Instance {
	return &Instance{Params: pp, privateKey: sk, log: withLogger(log)}
}

// drawMasterSecret samples s uniformly from [2,q).
func drawMasterSecret(q *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(q, minMasterSecret)
	if span.Sign() <= 0 {
		return nil, status.New(status.IllegalPublicParameters)
	}
	s, err := params.RandomMpzInRange(span)
	if err != nil {
		return nil, status.Wrap(status.IllegalPublicParameters, err)
	}
	return s.Add(s, minMasterSecret), nil
}
