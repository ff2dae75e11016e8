package cpabe

import (
	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/field"
	"github.com/rfc5091/cryptid/pairing"
	"github.com/rfc5091/cryptid/params"
)

// pairGG computes e(p,p) by distorting one copy of p into E(F_p²); Setup
// uses it for e(g,g), the base of egg_alpha. Pairings of two different
// points, such as e(C,D) at decrypt time, go through pairPoints.
func pairGG(domain *params.Domain, p curve.AffinePoint) (field.Elt, error) {
	return pairing.Tate(domain.Curve, p, domain.Curve.Distort(p), domain.Q)
}

// pairPoints computes e(a,b) for two points of the same order-q subgroup
// of E(F_p).
func pairPoints(domain *params.Domain, a, b curve.AffinePoint) (field.Elt, error) {
	return pairing.Tate(domain.Curve, a, domain.Curve.Distort(b), domain.Q)
}
