// Package field implements F_p², the quadratic extension of a prime field
// used as the Tate pairing's target and as the coordinate field of the
// supersingular curve's twist. Elements are a+bi with i²=−1, represented
// over a prime p≡3 (mod 4) so that every non-residue has an efficient
// square root via Euler's formula.
package field

import (
	"math/big"

	"github.com/rfc5091/cryptid/status"
)

// Elt is an element a+bi of F_p², reduced modulo p. Both components are
// kept canonical (0≤a,b<p) as a post-condition of every operation, mirroring
// the BigInt invariant in spec §3.
type Elt struct {
	A, B *big.Int
}

// New builds a reduced element a+bi mod p.
func New(p, a, b *big.Int) Elt {
	return Elt{A: new(big.Int).Mod(a, p), B: new(big.Int).Mod(b, p)}
}

// Zero returns 0+0i.
func Zero() Elt { return Elt{A: big.NewInt(0), B: big.NewInt(0)} }

// One returns 1+0i.
func One() Elt { return Elt{A: big.NewInt(1), B: big.NewInt(0)} }

// FromBase lifts an F_p element a into F_p² as a+0i.
func FromBase(a *big.Int) Elt { return Elt{A: new(big.Int).Set(a), B: big.NewInt(0)} }

// IsZero reports whether e is the additive identity.
func (e Elt) IsZero() bool { return e.A.Sign() == 0 && e.B.Sign() == 0 }

// Equal reports whether e and o denote the same field element.
func (e Elt) Equal(o Elt) bool { return e.A.Cmp(o.A) == 0 && e.B.Cmp(o.B) == 0 }

// Clone returns an independent copy of e.
func (e Elt) Clone() Elt { return Elt{A: new(big.Int).Set(e.A), B: new(big.Int).Set(e.B)} }

// Add returns e+o mod p.
func (e Elt) Add(p *big.Int, o Elt) Elt {
	return New(p, new(big.Int).Add(e.A, o.A), new(big.Int).Add(e.B, o.B))
}

// Sub returns e-o mod p.
func (e Elt) Sub(p *big.Int, o Elt) Elt {
	return New(p, new(big.Int).Sub(e.A, o.A), new(big.Int).Sub(e.B, o.B))
}

// Neg returns -e mod p.
func (e Elt) Neg(p *big.Int) Elt {
	return New(p, new(big.Int).Neg(e.A), new(big.Int).Neg(e.B))
}

// Mul returns e*o mod p, using (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (e Elt) Mul(p *big.Int, o Elt) Elt {
	ac := new(big.Int).Mul(e.A, o.A)
	bd := new(big.Int).Mul(e.B, o.B)
	ad := new(big.Int).Mul(e.A, o.B)
	bc := new(big.Int).Mul(e.B, o.A)
	re := new(big.Int).Sub(ac, bd)
	im := new(big.Int).Add(ad, bc)
	return New(p, re, im)
}

// MulBase multiplies e by a scalar in F_p (not an F_p² element).
func (e Elt) MulBase(p *big.Int, scalar *big.Int) Elt {
	return New(p, new(big.Int).Mul(e.A, scalar), new(big.Int).Mul(e.B, scalar))
}

// Square returns e² mod p.
func (e Elt) Square(p *big.Int) Elt { return e.Mul(p, e) }

// Conj returns the conjugate a-bi.
func (e Elt) Conj(p *big.Int) Elt { return New(p, e.A, new(big.Int).Neg(e.B)) }

// Norm returns a²+b² mod p, the product e*conj(e) collapsed to its real part.
func (e Elt) Norm(p *big.Int) *big.Int {
	a2 := new(big.Int).Mul(e.A, e.A)
	b2 := new(big.Int).Mul(e.B, e.B)
	n := new(big.Int).Add(a2, b2)
	return n.Mod(n, p)
}

// Inverse returns 1/e mod p using (a-bi)/(a²+b²), per spec §4.1. It fails
// with status.InverseNonInvertible when a²+b²≡0 (mod p).
func (e Elt) Inverse(p *big.Int) (Elt, error) {
	norm := e.Norm(p)
	if norm.Sign() == 0 {
		return Elt{}, status.New(status.InverseNonInvertible)
	}
	normInv := new(big.Int).ModInverse(norm, p)
	if normInv == nil {
		return Elt{}, status.New(status.InverseNonInvertible)
	}
	conj := e.Conj(p)
	return New(p, new(big.Int).Mul(conj.A, normInv), new(big.Int).Mul(conj.B, normInv)), nil
}

// Div returns e/o mod p.
func (e Elt) Div(p *big.Int, o Elt) (Elt, error) {
	inv, err := o.Inverse(p)
	if err != nil {
		return Elt{}, err
	}
	return e.Mul(p, inv), nil
}

// Pow returns e^k mod p via square-and-multiply over a BigInt exponent (C2).
// Negative exponents invert e first.
func (e Elt) Pow(p *big.Int, k *big.Int) (Elt, error) {
	base := e
	exp := k
	if k.Sign() < 0 {
		inv, err := e.Inverse(p)
		if err != nil {
			return Elt{}, err
		}
		base = inv
		exp = new(big.Int).Neg(k)
	}
	result := One()
	b := base.Clone()
	for i := 0; i < exp.BitLen(); i++ {
		if exp.Bit(i) == 1 {
			result = result.Mul(p, b)
		}
		b = b.Mul(p, b)
	}
	return result, nil
}
