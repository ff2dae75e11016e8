package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// p23 is small and ≡3 (mod 4), enough to exercise every arithmetic path
// without dragging in a cryptographic-size prime.
var p23 = big.NewInt(23)

func TestAddSubRoundTrip(t *testing.T) {
	a := New(p23, big.NewInt(17), big.NewInt(9))
	b := New(p23, big.NewInt(5), big.NewInt(21))

	sum := a.Add(p23, b)
	back := sum.Sub(p23, b)
	require.True(t, back.Equal(a))
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := New(p23, big.NewInt(3), big.NewInt(7))
	b := New(p23, big.NewInt(11), big.NewInt(2))
	c := New(p23, big.NewInt(4), big.NewInt(19))

	lhs := b.Add(p23, c).Mul(p23, a)
	rhs := b.Mul(p23, a).Add(p23, c.Mul(p23, a))
	require.True(t, lhs.Equal(rhs))
}

func TestInverseIsMultiplicativeIdentity(t *testing.T) {
	a := New(p23, big.NewInt(13), big.NewInt(6))
	inv, err := a.Inverse(p23)
	require.NoError(t, err)
	require.True(t, a.Mul(p23, inv).Equal(One()))
}

func TestInverseOfZeroFails(t *testing.T) {
	_, err := Zero().Inverse(p23)
	require.Error(t, err)
}

func TestDivThenMulRoundTrip(t *testing.T) {
	a := New(p23, big.NewInt(19), big.NewInt(2))
	b := New(p23, big.NewInt(8), big.NewInt(15))

	q, err := a.Div(p23, b)
	require.NoError(t, err)
	require.True(t, q.Mul(p23, b).Equal(a))
}

func TestPowMatchesRepeatedMultiplication(t *testing.T) {
	a := New(p23, big.NewInt(9), big.NewInt(14))

	got, err := a.Pow(p23, big.NewInt(5))
	require.NoError(t, err)

	want := One()
	for i := 0; i < 5; i++ {
		want = want.Mul(p23, a)
	}
	require.True(t, got.Equal(want))
}

func TestPowNegativeExponentInverts(t *testing.T) {
	a := New(p23, big.NewInt(6), big.NewInt(1))

	inv, err := a.Pow(p23, big.NewInt(-1))
	require.NoError(t, err)

	directInv, err := a.Inverse(p23)
	require.NoError(t, err)
	require.True(t, inv.Equal(directInv))
}

func TestConjTwiceIsIdentity(t *testing.T) {
	a := New(p23, big.NewInt(12), big.NewInt(20))
	require.True(t, a.Conj(p23).Conj(p23).Equal(a))
}

func TestNormEqualsSelfTimesConjugate(t *testing.T) {
	a := New(p23, big.NewInt(12), big.NewInt(20))
	product := a.Mul(p23, a.Conj(p23))
	require.Equal(t, 0, product.B.Sign())
	require.Equal(t, a.Norm(p23).String(), product.A.String())
}

func TestSqrtOfBaseProducesASquareRoot(t *testing.T) {
	// 23≡3 (mod 4): every residue class has a root in F_23² by construction.
	for _, v := range []int64{1, 2, 3, 4, 5} {
		root := SqrtOfBase(p23, big.NewInt(v))
		square := root.Square(p23)
		want := FromBase(new(big.Int).Mod(big.NewInt(v), p23))
		require.True(t, square.Equal(want), "sqrt(%d)^2 should equal %d", v, v)
	}
}
