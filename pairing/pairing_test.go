package pairing

import (
	"math/big"
	"testing"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/field"
	"github.com/stretchr/testify/require"
)

// toyCurve returns y²=x³+1 over F_167 with subgroup order 7, toy
// parameters satisfying p=12rq−1 (p=167, r=2, q=7) that still produce a
// genuine embedding-degree-2 pairing — small enough to hand-verify.
func toyCurve() (*curve.Curve, *big.Int, curve.AffinePoint) {
	p := big.NewInt(167)
	q := big.NewInt(7)
	c := curve.Supersingular(p)
	g := curve.NewAffinePoint(big.NewInt(8), big.NewInt(43))
	return c, q, g
}

func TestTateNonDegenerate(t *testing.T) {
	c, q, g := toyCurve()

	e, err := Tate(c, g, c.Distort(g), q)
	require.NoError(t, err)
	require.False(t, e.IsZero())
	require.False(t, e.Equal(field.One()))
}

func TestTateBilinearLeft(t *testing.T) {
	c, q, g := toyCurve()

	e1, err := Tate(c, g, c.Distort(g), q)
	require.NoError(t, err)

	twoG := c.Double(g)
	e2, err := Tate(c, twoG, c.Distort(g), q)
	require.NoError(t, err)

	want, err := e1.Pow(c.P, big.NewInt(2))
	require.NoError(t, err)
	require.True(t, e2.Equal(want), "e(2P,Q) should equal e(P,Q)^2")
}

func TestTateBilinearRight(t *testing.T) {
	c, q, g := toyCurve()

	e1, err := Tate(c, g, c.Distort(g), q)
	require.NoError(t, err)

	twoG := c.Double(g)
	e2, err := Tate(c, g, c.Distort(twoG), q)
	require.NoError(t, err)

	want, err := e1.Pow(c.P, big.NewInt(2))
	require.NoError(t, err)
	require.True(t, e2.Equal(want), "e(P,2Q) should equal e(P,Q)^2")
}

// TestTateKnownValue pins e(P,P) on the toy curve to a concrete value,
// independently cross-checked against a Python reimplementation of the
// same field/curve/Miller-loop arithmetic.
func TestTateKnownValue(t *testing.T) {
	c, q, g := toyCurve()

	e, err := Tate(c, g, c.Distort(g), q)
	require.NoError(t, err)

	want := field.New(c.P, big.NewInt(61), big.NewInt(156))
	require.True(t, e.Equal(want), "got %v, want %v", e, want)
}

func TestVerticalAtInfinityIsOne(t *testing.T) {
	c, _, g := toyCurve()
	one, err := Vertical(c, curve.Infinity(), c.Distort(g))
	require.NoError(t, err)
	require.True(t, one.Equal(field.One()))
}
