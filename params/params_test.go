package params

import (
	"math/big"
	"testing"

	"github.com/rfc5091/cryptid/curve"
	"github.com/stretchr/testify/require"
)

func TestRandomSolinasPrimeHasRequestedBitLength(t *testing.T) {
	p, err := RandomSolinasPrime(16, 1000)
	require.NoError(t, err)
	require.Equal(t, 16, p.BitLen())
	require.True(t, p.ProbablyPrime(20))
}

func TestRandomSolinasPrimeRejectsTooSmallRequest(t *testing.T) {
	_, err := RandomSolinasPrime(2, 10)
	require.Error(t, err)
}

func TestSearchCofactorAndPrimeSatisfiesP12rqMinus1(t *testing.T) {
	q := big.NewInt(7) // prime, stands in for a tiny Solinas order
	r, p, err := searchCofactorAndPrime(q, 10, 10000)
	require.NoError(t, err)

	want := new(big.Int).Mul(big.NewInt(12), q)
	want.Mul(want, r)
	want.Sub(want, big.NewInt(1))
	require.Equal(t, 0, want.Cmp(p))
	require.Equal(t, 10, p.BitLen())
	require.True(t, p.ProbablyPrime(20))
}

func TestRandomAffinePointLandsOnCurve(t *testing.T) {
	c := curve.Supersingular(big.NewInt(167))
	pt, err := RandomAffinePoint(c, 1000)
	require.NoError(t, err)
	require.True(t, c.IsOnCurve(pt))
}

func TestModSqrtRoundTrips(t *testing.T) {
	p := big.NewInt(167)
	for _, v := range []int64{1, 4, 9, 16, 25} {
		root, ok := modSqrt(p, big.NewInt(v))
		require.True(t, ok)
		square := new(big.Int).Mul(root, root)
		square.Mod(square, p)
		require.Equal(t, v%167, square.Int64())
	}
}

func TestSecurityLevelTableIsComplete(t *testing.T) {
	for _, level := range []SecurityLevel{Level0, Level1, Level2, Level3, Level4} {
		require.True(t, level.Valid())
		qBits, pBits := level.Bits()
		require.Positive(t, qBits)
		require.Greater(t, pBits, qBits)
		require.NotEmpty(t, level.Hash().Name)
	}
}

func TestSecurityLevelOutOfRangeIsInvalid(t *testing.T) {
	require.False(t, SecurityLevel(99).Valid())
}

func TestDomainCofactorIs12R(t *testing.T) {
	d := &Domain{R: big.NewInt(5)}
	require.Equal(t, int64(60), d.Cofactor().Int64())
}

// TestGenerateDomainLevel0 exercises the full domain-generation pipeline end
// to end; it draws genuine RFC-5091 Level0-sized parameters, so it is slower
// than the unit tests above but is the only test that wires RandomSolinas-
// Prime, searchCofactorAndPrime, and sampleGenerator together.
func TestGenerateDomainLevel0(t *testing.T) {
	d, err := GenerateDomain(Level0)
	require.NoError(t, err)
	require.True(t, d.Curve.IsOnCurve(d.Generator))
	require.True(t, d.Curve.ScalarMul(d.Generator, d.Q).Inf)
	require.False(t, d.Generator.Inf)
}
