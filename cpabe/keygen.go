package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/status"
)

// KeyGen issues a private key for attrs (spec §4.8 KeyGen): draw r, set
// D=β⁻¹·(α·g+r·g), and for every attribute j draw r_j and set
// Dj=r·g+r_j·H(j), Dj'=r_j·g.
func (inst *Instance) KeyGen(attrs []string) (*UserSecretKey, error) {
	if len(attrs) == 0 {
		return nil, status.New(status.IllegalPrivateKey)
	}
	if inst.Master == nil {
		return nil, status.New(status.IllegalPrivateKey)
	}

	domain := inst.Domain
	c := domain.Curve
	g := inst.PublicKey.G

	r, err := drawNonzero(domain.Q)
	if err != nil {
		return nil, status.Wrap(status.IllegalPrivateKey, err)
	}

	rg := c.ScalarMul(g, r)
	alphaPlusRG := c.Add(inst.Master.AlphaG, rg)
	betaInv := new(big.Int).ModInverse(inst.Master.Beta, domain.Q)
	d := c.ScalarMul(alphaPlusRG, betaInv)

	attrSet := make(map[string]bool, len(attrs))
	dj := make(map[string]curve.AffinePoint, len(attrs))
	djPrime := make(map[string]curve.AffinePoint, len(attrs))

	for _, attr := range attrs {
		attrSet[attr] = true

		rj, err := drawNonzero(domain.Q)
		if err != nil {
			return nil, status.Wrap(status.IllegalPrivateKey, err)
		}

		hAttr, err := hashfn.HashToPoint([]byte(attr), c, domain.Q, domain.Cofactor(), domain.Hash)
		if err != nil {
			inst.log.Errorw("keygen: hash to point failed", "attr", attr, "error", err)
			return nil, err
		}

		dj[attr] = c.Add(rg, c.ScalarMul(hAttr, rj))
		djPrime[attr] = c.ScalarMul(g, rj)
	}

	inst.log.Debugw("keygen complete", "attrCount", len(attrs))
	return &UserSecretKey{
		Attributes: attrSet,
		D:          d,
		Dj:         dj,
		DjPrime:    djPrime,
	}, nil
}
