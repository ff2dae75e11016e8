package curve

import (
	"math/big"

	"github.com/rfc5091/cryptid/field"
)

// ComplexPoint is a point of E(F_p²): the same curve shape as AffinePoint,
// lifted to the quadratic extension field so it can stand as the second
// argument to the Tate pairing (C4).
type ComplexPoint struct {
	Inf  bool
	X, Y field.Elt
}

// ComplexInfinity returns the point at infinity over F_p².
func ComplexInfinity() ComplexPoint { return ComplexPoint{Inf: true} }

// Distort lifts P=(x,y)∈E(F_p) into E(F_p²) via φ(x,y)=(ζx,y), where ζ is
// the curve's precomputed primitive cube root of unity. Since (ζx)³=x³,
// the image still satisfies y²=x³+1, and ζ∉F_p keeps it linearly
// independent of P — the property the Tate pairing's second argument
// needs (spec §4.3, GLOSSARY "Distortion map").
func (c *Curve) Distort(p AffinePoint) ComplexPoint {
	if p.Inf {
		return ComplexInfinity()
	}
	x := c.Zeta.MulBase(c.P, p.X)
	y := field.FromBase(p.Y)
	return ComplexPoint{X: x, Y: y}
}

// ComplexAdd computes P+Q in E(F_p²) with the same affine formulas as
// Curve.Add, over field.Elt arithmetic instead of *big.Int.
func (c *Curve) ComplexAdd(p, q ComplexPoint) ComplexPoint {
	if p.Inf {
		return q
	}
	if q.Inf {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Add(c.P, q.Y).IsZero() {
			return ComplexInfinity()
		}
		return c.ComplexDouble(p)
	}

	num := q.Y.Sub(c.P, p.Y)
	den := q.X.Sub(c.P, p.X)
	denInv, err := den.Inverse(c.P)
	if err != nil {
		return ComplexInfinity()
	}
	lambda := num.Mul(c.P, denInv)
	return c.complexFromSlope(lambda, p, q)
}

// ComplexDouble computes 2P in E(F_p²).
func (c *Curve) ComplexDouble(p ComplexPoint) ComplexPoint {
	if p.Inf || p.Y.IsZero() {
		return ComplexInfinity()
	}
	three := big.NewInt(3)
	num := p.X.Square(c.P).MulBase(c.P, three).Add(c.P, field.FromBase(c.A))
	den := p.Y.MulBase(c.P, big.NewInt(2))
	denInv, err := den.Inverse(c.P)
	if err != nil {
		return ComplexInfinity()
	}
	lambda := num.Mul(c.P, denInv)
	return c.complexFromSlope(lambda, p, p)
}

func (c *Curve) complexFromSlope(lambda field.Elt, p, q ComplexPoint) ComplexPoint {
	x3 := lambda.Square(c.P).Sub(c.P, p.X).Sub(c.P, q.X)
	y3 := p.X.Sub(c.P, x3).Mul(c.P, lambda).Sub(c.P, p.Y)
	return ComplexPoint{X: x3, Y: y3}
}

// ComplexScalarMul computes k*P in E(F_p²) via the same width-4 wNAF used
// by ScalarMul.
func (c *Curve) ComplexScalarMul(p ComplexPoint, k *big.Int) ComplexPoint {
	if k.Sign() == 0 || p.Inf {
		return ComplexInfinity()
	}
	neg := k.Sign() < 0
	digits := windowNAF(new(big.Int).Abs(k), nafWindow)

	tableSize := 1 << (nafWindow - 2)
	table := make([]ComplexPoint, tableSize)
	table[0] = p
	twoP := c.ComplexDouble(p)
	for i := 1; i < tableSize; i++ {
		table[i] = c.ComplexAdd(table[i-1], twoP)
	}

	acc := ComplexInfinity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = c.ComplexDouble(acc)
		d := digits[i]
		if d == 0 {
			continue
		}
		idx := (absInt(d) - 1) / 2
		pt := table[idx]
		if d < 0 {
			pt = ComplexPoint{X: pt.X, Y: pt.Y.Neg(c.P)}
		}
		acc = c.ComplexAdd(acc, pt)
	}
	if neg {
		acc = ComplexPoint{X: acc.X, Y: acc.Y.Neg(c.P)}
	}
	return acc
}
