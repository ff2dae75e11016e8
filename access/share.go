package access

import (
	"math/big"

	"github.com/rfc5091/cryptid/curve"
	"github.com/rfc5091/cryptid/hashfn"
	"github.com/rfc5091/cryptid/params"
)

// ShareSecret propagates secret down the tree rooted at node (spec §4.7
// compute_tree): at every internal node of threshold k it draws a random
// degree-(k−1) polynomial with constant term equal to the share that node
// just received, then recurses into child i with q_x(i). At a leaf it
// stores Cy=share·g and Cy'=share·H(attribute), the two curve points
// cpabe's decryptNode pairs against a matching private key component.
func ShareSecret(node *Node, secret *big.Int, g curve.AffinePoint, domain *params.Domain) error {
	node.share = new(big.Int).Mod(secret, domain.Q)

	if node.isLeaf() {
		hAttr, err := hashfn.HashToPoint([]byte(node.attribute), domain.Curve, domain.Q, domain.Cofactor(), domain.Hash)
		if err != nil {
			return err
		}
		node.Cy = domain.Curve.ScalarMul(g, node.share)
		node.CyPrime = domain.Curve.ScalarMul(hAttr, node.share)
		return nil
	}

	coeffs, err := RandomPolynomial(node.threshold, node.share, domain.Q)
	if err != nil {
		return err
	}
	for _, child := range node.children {
		childShare := PolynomialValue(coeffs, big.NewInt(int64(child.index)), domain.Q)
		if err := ShareSecret(child, childShare, g, domain); err != nil {
			return err
		}
	}
	return nil
}
