package access

import "math/big"

// LagrangeBasis computes Δ_{i,S}(x) mod q = ∏_{j∈S,j≠i} (x−j)/(i−j) (spec
// §4.8 DecryptNode). Coefficients are combined with a modular inverse, not
// integer division — §9 calls out integer-division Lagrange coefficients
// as a bug to avoid, since the exponent these feed into is reduced mod q.
func LagrangeBasis(i int, s []int, x int, q *big.Int) *big.Int {
	iv := big.NewInt(int64(i))
	xv := big.NewInt(int64(x))
	delta := big.NewInt(1)

	for _, j := range s {
		if j == i {
			continue
		}
		jv := big.NewInt(int64(j))

		numerator := new(big.Int).Sub(xv, jv)
		numerator.Mod(numerator, q)

		denominator := new(big.Int).Sub(iv, jv)
		denominator.Mod(denominator, q)
		denomInv := new(big.Int).ModInverse(denominator, q)

		fraction := new(big.Int).Mul(numerator, denomInv)
		fraction.Mod(fraction, q)

		delta.Mul(delta, fraction)
		delta.Mod(delta, q)
	}
	return delta
}
