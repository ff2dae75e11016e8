package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/params"
	"github.com/rfc5091/cryptid/status"
	"go.uber.org/zap"
)

// Setup builds the domain exactly as ibe.Setup does, then draws the
// authority's α,β∈[1,q) and publishes h=β·g, f=β⁻¹·g and e(g,g)^α (spec
// §4.8 Setup).
func Setup(level params.SecurityLevel, log *zap.SugaredLogger) (*Instance, error) {
	log = withLogger(log)
	log.Infow("cpabe setup starting", "level", level)

	domain, err := params.GenerateDomain(level)
	if err != nil {
		log.Errorw("domain generation failed", "error", err)
		return nil, err
	}
	g := domain.Generator
	q := domain.Q

	alpha, err := drawNonzero(q)
	if err != nil {
		return nil, status.Wrap(status.IllegalPublicParameters, err)
	}
	beta, err := drawNonzero(q)
	if err != nil {
		return nil, status.Wrap(status.IllegalPublicParameters, err)
	}

	h := domain.Curve.ScalarMul(g, beta)
	betaInv := new(big.Int).ModInverse(beta, q)
	f := domain.Curve.ScalarMul(g, betaInv)
	alphaG := domain.Curve.ScalarMul(g, alpha)

	egg, err := pairGG(domain, g)
	if err != nil {
		log.Errorw("setup: pairing failed", "error", err)
		return nil, err
	}
	eggAlpha, err := egg.Pow(domain.Curve.P, alpha)
	if err != nil {
		return nil, status.Wrap(status.IllegalPublicParameters, err)
	}

	inst := &Instance{
		Domain: domain,
		PublicKey: &PublicKey{
			G:        g,
			H:        h,
			F:        f,
			EggAlpha: eggAlpha,
		},
		Master: &MasterKey{Beta: beta, AlphaG: alphaG},
		log:    log,
	}
	log.Infow("cpabe setup complete")
	return inst, nil
}

// drawNonzero samples a value in [1,bound).
func drawNonzero(bound *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(bound, big.NewInt(1))
	v, err := params.RandomMpzInRange(span)
	if err != nil {
		return nil, err
	}
	return v.Add(v, big.NewInt(1)), nil
}
