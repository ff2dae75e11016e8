// Package pairing implements the divisor evaluator (C5) and the Miller-loop
// Tate pairing (C6) over the supersingular curve from package curve.
package pairing

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/field"
	"github.com/rfc5091/cryptid/status"
)

// Vertical evaluates the vertical divisor through a at b: B.x − A.x, lifted
// into F_p². By convention the vertical line through the point at infinity
// is the constant function 1 — the case Miller's loop hits on its very
// last step, once the running point has accumulated to exactly order·P.
func Vertical(c *curve.Curve, a curve.AffinePoint, b curve.ComplexPoint) (field.Elt, error) {
	if a.Inf {
		return field.One(), nil
	}
	return b.X.Sub(c.P, field.FromBase(a.X)), nil
}

// Tangent evaluates the tangent-line divisor at a, at b: with slope
// m=(3·A.x²+curveA)/(2·A.y), result = B.y − A.y − m·(B.x − A.x). It fails if
// a is infinity or a.Y=0 (spec §4.2).
func Tangent(c *curve.Curve, a curve.AffinePoint, b curve.ComplexPoint) (field.Elt, error) {
	if a.Inf || a.Y.Sign() == 0 {
		return field.Elt{}, status.New(status.PairingDegenerate)
	}
	num := new(big.Int).Mul(a.X, a.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Mul(a.Y, big.NewInt(2))
	den.Mod(den, c.P)
	denInv := new(big.Int).ModInverse(den, c.P)
	if denInv == nil {
		return field.Elt{}, status.New(status.PairingDegenerate)
	}
	m := new(big.Int).Mul(num, denInv)
	m.Mod(m, c.P)

	return evalLine(c, m, a, b), nil
}

// Line evaluates the divisor of the line through a and aPrime, at b. If
// a=aPrime it falls back to the tangent; if a=−aPrime it falls back to the
// vertical; otherwise the slope is (A'.y−A.y)/(A'.x−A.x) (spec §4.2).
func Line(c *curve.Curve, a, aPrime curve.AffinePoint, b curve.ComplexPoint) (field.Elt, error) {
	if a.Inf || aPrime.Inf {
		return field.Elt{}, status.New(status.PairingDegenerate)
	}
	if a.X.Cmp(aPrime.X) == 0 {
		sum := new(big.Int).Add(a.Y, aPrime.Y)
		sum.Mod(sum, c.P)
		if a.Y.Cmp(aPrime.Y) == 0 {
			return Tangent(c, a, b)
		}
		if sum.Sign() == 0 {
			return Vertical(c, a, b)
		}
	}

	num := new(big.Int).Sub(aPrime.Y, a.Y)
	den := new(big.Int).Sub(aPrime.X, a.X)
	den.Mod(den, c.P)
	denInv := new(big.Int).ModInverse(den, c.P)
	if denInv == nil {
		return field.Elt{}, status.New(status.PairingDegenerate)
	}
	m := new(big.Int).Mul(num, denInv)
	m.Mod(m, c.P)

	return evalLine(c, m, a, b), nil
}

// evalLine computes B.y − A.y − m·(B.x − A.x), the shared tail of Tangent
// and Line once a slope m∈F_p has been found.
func evalLine(c *curve.Curve, m *big.Int, a curve.AffinePoint, b curve.ComplexPoint) field.Elt {
	dx := b.X.Sub(c.P, field.FromBase(a.X))
	mTerm := dx.MulBase(c.P, m)
	ay := field.FromBase(a.Y)
	return b.Y.Sub(c.P, ay).Sub(c.P, mTerm)
}
