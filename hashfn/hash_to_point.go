package hashfn

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/status"
)

// maxHashToPointAttempts bounds the retry loop below; spec §4.4 allows a
// bounded number of tries before declaring a hash-to-point failure rather
// than looping forever on an identity string that happens to miss the
// order-q subgroup every time.
const maxHashToPointAttempts = 100

// HashToPoint maps an identity string onto a point of order q in E(F_p)
// (spec §4.4). It first derives a candidate y-coordinate via HashToRange,
// recovers the matching x via the cube-root-inversion shortcut valid on
// y²=x³+1 when p≡2 (mod 3) — x=(y²−1)^((2p−1)/3) mod p, since cubing is then
// a bijection of F_p* — and multiplies the resulting curve point by the
// cofactor to project it into the order-q subgroup. A projection landing on
// the identity restarts with a re-salted input, up to maxHashToPointAttempts
// times.
func HashToPoint(id []byte, c *curve.Curve, order, cofactor *big.Int, h HashFunction) (curve.AffinePoint, error) {
	cubeExp := cubeRootExponent(c.P)

	salted := make([]byte, len(id))
	copy(salted, id)

	for attempt := 0; attempt < maxHashToPointAttempts; attempt++ {
		y := HashToRange(salted, c.P, h)

		ySq := new(big.Int).Mul(y, y)
		ySq.Mod(ySq, c.P)
		t := new(big.Int).Sub(ySq, big.NewInt(1))
		t.Mod(t, c.P)

		x := new(big.Int).Exp(t, cubeExp, c.P)

		candidate := curve.NewAffinePoint(x, y)
		if c.IsOnCurve(candidate) {
			point := c.ScalarMul(candidate, cofactor)
			if !point.Inf {
				return point, nil
			}
		}

		salted = append(salted, 0x00)
	}

	return curve.AffinePoint{}, status.New(status.HashToPointFailed)
}

// cubeRootExponent returns (2p-1)/3, the exponent that inverts cubing on
// F_p* when p≡2 (mod 3) (gcd(3,p-1)=1 makes x↦x³ a bijection there).
func cubeRootExponent(p *big.Int) *big.Int {
	e := new(big.Int).Lsh(p, 1)
	e.Sub(e, big.NewInt(1))
	return e.Div(e, big.NewInt(3))
}
