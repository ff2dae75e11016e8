package access

import (
	"math/big"
	"testing"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/params"
	"github.com/stretchr/testify/require"
)

// toyDomain mirrors small toy parameters satisfying p=12rq−1: y²=x³+1
// over F_167, subgroup order 7, generator (8,43).
func toyDomain() *params.Domain {
	return &params.Domain{
		Q:         big.NewInt(7),
		R:         big.NewInt(2),
		Curve:     curve.Supersingular(big.NewInt(167)),
		Generator: curve.NewAffinePoint(big.NewInt(8), big.NewInt(43)),
		Hash:      hashfn.SHA256(),
	}
}

func TestSatisfyAndGate(t *testing.T) {
	tree := NewThreshold(2, NewLeaf("a"), NewLeaf("b"))

	require.True(t, Satisfy(tree, map[string]bool{"a": true, "b": true}))
	require.False(t, Satisfy(tree, map[string]bool{"a": true}))
}

func TestSatisfyOrGate(t *testing.T) {
	tree := NewThreshold(1, NewLeaf("a"), NewLeaf("b"))

	require.True(t, Satisfy(tree, map[string]bool{"a": true}))
	require.True(t, Satisfy(tree, map[string]bool{"b": true}))
	require.False(t, Satisfy(tree, map[string]bool{}))
}

func TestSatisfyNestedThreshold(t *testing.T) {
	tree := NewThreshold(2,
		NewThreshold(1, NewLeaf("a"), NewLeaf("b")),
		NewThreshold(1, NewLeaf("c"), NewLeaf("d")),
		NewLeaf("e"),
	)

	require.True(t, Satisfy(tree, map[string]bool{"a": true, "c": true}))
	require.False(t, Satisfy(tree, map[string]bool{"a": true}))
	require.True(t, Satisfy(tree, map[string]bool{"a": true, "e": true}))
}

func TestNewThresholdPanicsOnOutOfRange(t *testing.T) {
	require.Panics(t, func() { NewThreshold(0, NewLeaf("a")) })
	require.Panics(t, func() { NewThreshold(2, NewLeaf("a")) })
}

func TestPolynomialValueAtZeroIsConstantTerm(t *testing.T) {
	q := big.NewInt(7)
	coeffs, err := RandomPolynomial(3, big.NewInt(5), q)
	require.NoError(t, err)
	require.Equal(t, 0, coeffs[0].Cmp(big.NewInt(5)))
	require.Equal(t, 0, PolynomialValue(coeffs, big.NewInt(0), q).Cmp(big.NewInt(5)))
}

func TestLagrangeBasisReconstructsConstantTerm(t *testing.T) {
	q := big.NewInt(23)
	secret := big.NewInt(11)
	coeffs, err := RandomPolynomial(3, secret, q)
	require.NoError(t, err)

	indices := []int{1, 2, 3}
	shares := make(map[int]*big.Int)
	for _, i := range indices {
		shares[i] = PolynomialValue(coeffs, big.NewInt(int64(i)), q)
	}

	recovered := big.NewInt(0)
	for _, i := range indices {
		coeff := LagrangeBasis(i, indices, 0, q)
		term := new(big.Int).Mul(coeff, shares[i])
		recovered.Add(recovered, term)
		recovered.Mod(recovered, q)
	}
	require.Equal(t, 0, recovered.Cmp(secret))
}

func TestShareSecretLeafPointsMatchShare(t *testing.T) {
	domain := toyDomain()
	tree := NewThreshold(2, NewLeaf("a"), NewLeaf("b"))

	err := ShareSecret(tree, big.NewInt(3), domain.Generator, domain)
	require.NoError(t, err)

	for _, leaf := range tree.LeafNodes() {
		require.True(t, curve.Equal(leaf.Cy, domain.Curve.ScalarMul(domain.Generator, leaf.share)))
		require.True(t, domain.Curve.IsOnCurve(leaf.Cy))
		require.True(t, domain.Curve.IsOnCurve(leaf.CyPrime))
	}
}

func TestShareSecretReconstructsViaLagrangeOnCyPoints(t *testing.T) {
	domain := toyDomain()
	secret := big.NewInt(4)
	tree := NewThreshold(2, NewLeaf("a"), NewLeaf("b"), NewLeaf("c"))

	err := ShareSecret(tree, secret, domain.Generator, domain)
	require.NoError(t, err)

	// Reconstruct secret*g from any 2 of the 3 leaf Cy points, mirroring
	// what cpabe.decryptNode does at an internal node once enough children
	// have decrypted successfully.
	leaves := tree.LeafNodes()[:2]
	indices := []int{leaves[0].Index(), leaves[1].Index()}

	recon := curve.Infinity()
	for _, leaf := range leaves {
		coeff := LagrangeBasis(leaf.Index(), indices, 0, domain.Q)
		recon = domain.Curve.Add(recon, domain.Curve.ScalarMul(leaf.Cy, coeff))
	}

	want := domain.Curve.ScalarMul(domain.Generator, secret)
	require.True(t, curve.Equal(recon, want))
}
