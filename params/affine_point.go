package params

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/status"
)

// RandomAffinePoint samples a random point of E(F_p) (spec §4.5): draw
// x∈[0,p), compute r=x³+ax+b, and take y as its modular square root when r
// is a quadratic residue (p≡3 mod 4 lets y=r^((p+1)/4) double as the
// residue test — field.SqrtOfBase performs the analogous shortcut for the
// cube-root-of-unity computation in package curve). Resamples x on a
// non-residue, up to limit times. y is always the root r^((p+1)/4), so of
// the two points (x,±y) only that one is ever returned.
func RandomAffinePoint(c *curve.Curve, limit int) (curve.AffinePoint, error) {
	for attempt := 0; attempt < limit; attempt++ {
		x, err := RandomMpzInRange(c.P)
		if err != nil {
			return curve.AffinePoint{}, status.Wrap(status.PointGenFailed, err)
		}

		rhs := new(big.Int).Mul(x, x)
		rhs.Mul(rhs, x) // x^3
		ax := new(big.Int).Mul(c.A, x)
		rhs.Add(rhs, ax)
		rhs.Add(rhs, c.B)
		rhs.Mod(rhs, c.P)

		y, ok := modSqrt(c.P, rhs)
		if !ok {
			continue
		}
		return curve.NewAffinePoint(x, y), nil
	}
	return curve.AffinePoint{}, status.New(status.PointGenFailed)
}

// modSqrt returns sqrt(a) mod p for a prime p≡3 (mod 4), reporting false
// when a is not a quadratic residue.
func modSqrt(p, a *big.Int) (*big.Int, bool) {
	if a.Sign() == 0 {
		return big.NewInt(0), true
	}
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	y := new(big.Int).Exp(a, exp, p)
	check := new(big.Int).Mul(y, y)
	check.Mod(check, p)
	if check.Cmp(a) != 0 {
		return nil, false
	}
	return y, true
}
