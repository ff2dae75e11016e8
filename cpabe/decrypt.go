package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/access"
	"github.com/rfc5091/cryptid/status"
)

// Decrypt runs BSW07 decryption (spec §4.8): verify sk.Attributes satisfies
// ct.Tree, recover A=e(g,g)^(r·s) via decryptNode, then
// M=CTilde·A/e(C,D).
func (inst *Instance) Decrypt(ct *Ciphertext, sk *UserSecretKey) (*big.Int, error) {
	if ct == nil || sk == nil {
		return nil, status.New(status.IllegalCiphertext)
	}
	if !access.Satisfy(ct.Tree, sk.Attributes) {
		return nil, status.New(status.DecryptionFailed)
	}

	domain := inst.Domain
	a, ok, err := decryptNode(domain, sk, ct.Tree)
	if err != nil {
		inst.log.Errorw("decrypt: decryptNode failed", "error", err)
		return nil, err
	}
	if !ok {
		return nil, status.New(status.DecryptionFailed)
	}

	eCD, err := pairPoints(domain, ct.C, sk.D)
	if err != nil {
		inst.log.Errorw("decrypt: pairing failed", "error", err)
		return nil, err
	}

	numerator := ct.CTilde.Mul(domain.Curve.P, a)
	messageField, err := numerator.Div(domain.Curve.P, eCD)
	if err != nil {
		return nil, status.Wrap(status.DecryptionFailed, err)
	}
	if messageField.B.Sign() != 0 {
		return nil, status.New(status.DecryptionFailed)
	}

	inst.log.Debugw("decrypt complete")
	return new(big.Int).Set(messageField.A), nil
}
