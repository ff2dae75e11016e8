package params

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/status"
)

// domainGenLimit bounds every retry loop GenerateDomain runs internally
// (Solinas search, p search, generator sampling).
const domainGenLimit = 100

// Domain is the full set of domain parameters shared by BF-IBE and BSW
// CP-ABE (spec §4.6/§4.8 both open with "build E and q"): a Solinas
// subgroup order q, a cofactor r such that p=12rq−1 is itself prime, the
// resulting supersingular curve, a generator P of the order-q subgroup, and
// the hash function this SecurityLevel names.
type Domain struct {
	Level     SecurityLevel
	Q         *big.Int
	R         *big.Int
	Curve     *curve.Curve
	Generator curve.AffinePoint
	Hash      hashfn.HashFunction
}

// Cofactor returns 12·r, the factor by which a random curve point must be
// scaled to land in the order-q subgroup.
func (d *Domain) Cofactor() *big.Int {
	return new(big.Int).Mul(big.NewInt(12), d.R)
}

// GenerateDomain builds a fresh Domain for level (spec §4.6 Setup, shared
// verbatim by cpabe.Setup): draw q (Solinas, n_q bits), draw r such that
// p=12rq−1 is prime and n_p bits, build E(0,1,p), then pick a generator P
// by scaling a random point by the cofactor 12r until it is not infinity.
func GenerateDomain(level SecurityLevel) (*Domain, error) {
	if !level.Valid() {
		return nil, status.New(status.IllegalPublicParameters)
	}
	qBits, pBits := level.Bits()

	q, err := RandomSolinasPrime(qBits, domainGenLimit)
	if err != nil {
		return nil, err
	}

	r, p, err := searchCofactorAndPrime(q, pBits, domainGenLimit)
	if err != nil {
		return nil, err
	}

	c := curve.Supersingular(p)

	cofactor := new(big.Int).Mul(big.NewInt(12), r)
	generator, err := sampleGenerator(c, cofactor, domainGenLimit)
	if err != nil {
		return nil, err
	}

	return &Domain{
		Level:     level,
		Q:         q,
		R:         r,
		Curve:     c,
		Generator: generator,
		Hash:      level.Hash(),
	}, nil
}

// searchCofactorAndPrime draws r candidates until p=12rq−1 is prime and
// exactly pBits bits long.
func searchCofactorAndPrime(q *big.Int, pBits, limit int) (r, p *big.Int, err error) {
	twelveQ := new(big.Int).Mul(big.NewInt(12), q)

	rBound := new(big.Int).Lsh(big.NewInt(1), uint(pBits))
	rBound.Div(rBound, twelveQ)
	if rBound.Sign() <= 0 {
		return nil, nil, status.New(status.PrimalityTestFailed)
	}

	for attempt := 0; attempt < limit; attempt++ {
		candidateR, genErr := RandomMpzInRange(rBound)
		if genErr != nil {
			return nil, nil, status.Wrap(status.PrimalityTestFailed, genErr)
		}
		if candidateR.Sign() == 0 {
			continue
		}

		candidateP := new(big.Int).Mul(twelveQ, candidateR)
		candidateP.Sub(candidateP, big.NewInt(1))

		if candidateP.BitLen() != pBits {
			continue
		}
		if candidateP.ProbablyPrime(solinasPrimalityRounds) {
			return candidateR, candidateP, nil
		}
	}
	return nil, nil, status.New(status.PrimalityTestFailed)
}

// sampleGenerator finds a point of order q by scaling random curve points
// by the cofactor until the result is not the identity.
func sampleGenerator(c *curve.Curve, cofactor *big.Int, limit int) (curve.AffinePoint, error) {
	for attempt := 0; attempt < limit; attempt++ {
		candidate, err := RandomAffinePoint(c, limit)
		if err != nil {
			return curve.AffinePoint{}, err
		}
		generator := c.ScalarMul(candidate, cofactor)
		if !generator.Inf {
			return generator, nil
		}
	}
	return curve.AffinePoint{}, status.New(status.PointGenFailed)
}
