package access

import (
	"crypto/rand"
	"math/big"
)

// RandomPolynomial draws the coefficients of a degree-(degree-1)
// polynomial over Z_q with the given constant term (spec §4.7
// compute_tree: "a random polynomial q_x of degree k−1 with q_x(0)=s"),
// coefficients ordered low-to-high: [a0, a1, ..., a_{degree-1}].
func RandomPolynomial(degree int, constantTerm, q *big.Int) ([]*big.Int, error) {
	if degree <= 0 {
		return nil, nil
	}
	coeffs := make([]*big.Int, degree)
	coeffs[0] = new(big.Int).Mod(constantTerm, q)
	for i := 1; i < degree; i++ {
		c, err := rand.Int(rand.Reader, q)
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// PolynomialValue evaluates coeffs at x mod q using Horner's method.
func PolynomialValue(coeffs []*big.Int, x, q *big.Int) *big.Int {
	if len(coeffs) == 0 {
		return big.NewInt(0)
	}
	result := new(big.Int).Set(coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, coeffs[i])
		result.Mod(result, q)
	}
	return result
}
