package field

import "math/big"

// SqrtOfBase returns an F_p² element whose square is the base-field value
// real (i.e. real+0i), for any prime p≡3 (mod 4). Every element of F_p has
// a square root somewhere in F_p²: if real is itself a quadratic residue
// mod p the root is real-valued (p+1)/4 exponentiation; otherwise −real is
// a residue (since −1 is a non-residue whenever p≡3 mod 4, flipping
// residue-ness), and the root is purely imaginary.
//
// This only backs curve.Supersingular's computation of the primitive cube
// root of unity used by the distortion map; it is not a general-purpose
// square-root oracle and does not handle p≡1 (mod 4).
func SqrtOfBase(p *big.Int, real *big.Int) Elt {
	a := new(big.Int).Mod(real, p)
	if a.Sign() == 0 {
		return Zero()
	}
	if root, ok := modSqrtResidue(p, a); ok {
		return FromBase(root)
	}
	negA := new(big.Int).Neg(a)
	negA.Mod(negA, p)
	root, _ := modSqrtResidue(p, negA) // guaranteed to succeed: exactly one of a,-a is a residue mod a p≡3 (mod 4) prime.
	return Elt{A: big.NewInt(0), B: root}
}

// modSqrtResidue returns sqrt(a) mod p via the p≡3 (mod 4) shortcut
// y=a^((p+1)/4), verifying the result so callers can tell a non-residue
// input from a genuine root.
func modSqrtResidue(p, a *big.Int) (*big.Int, bool) {
	exp := new(big.Int).Add(p, big.NewInt(1))
	exp.Rsh(exp, 2)
	root := new(big.Int).Exp(a, exp, p)
	check := new(big.Int).Mul(root, root)
	check.Mod(check, p)
	if check.Cmp(a) != 0 {
		return nil, false
	}
	return root, true
}
