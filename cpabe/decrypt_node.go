package cpabe

import (
	"github.com/rfc5091/cryptid/access"
	"github.com/rfc5091/cryptid/field"
	"github.com/rfc5091/cryptid/params"
)

// decryptNode implements spec §4.8 DecryptNode recursively: a leaf returns
// e(Dj,Cy)/e(Dj',Cy')=e(g,g)^(r·q_x(0)) when its attribute is in sk, and
// fails (ok=false) otherwise; an internal threshold-k node recurses into
// every child, and if at least k succeed, combines any k of them via
// Lagrange interpolation at 0.
func decryptNode(domain *params.Domain, sk *UserSecretKey, node *access.Node) (field.Elt, bool, error) {
	if node.IsLeaf() {
		attr := node.Attribute()
		if !sk.Attributes[attr] {
			return field.Elt{}, false, nil
		}
		dj, ok := sk.Dj[attr]
		if !ok {
			return field.Elt{}, false, nil
		}
		djPrime := sk.DjPrime[attr]

		num, err := pairPoints(domain, dj, node.Cy)
		if err != nil {
			return field.Elt{}, false, err
		}
		den, err := pairPoints(domain, djPrime, node.CyPrime)
		if err != nil {
			return field.Elt{}, false, err
		}
		result, err := num.Div(domain.Curve.P, den)
		if err != nil {
			return field.Elt{}, false, nil
		}
		return result, true, nil
	}

	type success struct {
		index int
		value field.Elt
	}
	var successes []success
	for _, child := range node.Children() {
		value, ok, err := decryptNode(domain, sk, child)
		if err != nil {
			return field.Elt{}, false, err
		}
		if ok {
			successes = append(successes, success{index: child.Index(), value: value})
		}
	}
	if len(successes) < node.Threshold() {
		return field.Elt{}, false, nil
	}
	successes = successes[:node.Threshold()]

	indices := make([]int, len(successes))
	for i, s := range successes {
		indices[i] = s.index
	}

	result := field.One()
	for _, s := range successes {
		coeff := access.LagrangeBasis(s.index, indices, 0, domain.Q)
		term, err := s.value.Pow(domain.Curve.P, coeff)
		if err != nil {
			return field.Elt{}, false, nil
		}
		result = result.Mul(domain.Curve.P, term)
	}
	return result, true, nil
}
