package cpabe

import (
	"math/big"

	"github.com/rfc5091/cryptid/access"
	"github.com/rfc5091/cryptid/status"
)

// MultiBlockCiphertext is the output of EncryptBytes: an arbitrary-length
// byte message chunked into blockSize(P)-byte blocks, each independently
// encrypted under its own clone of the access tree, plus the original byte
// length, which fixes the width of the last, shorter block at decrypt time.
type MultiBlockCiphertext struct {
	Blocks     []*Ciphertext
	MessageLen int
}

// blockSize returns the number of bytes that fit strictly below the curve
// prime P as a big-endian unsigned integer: one bit of headroom below
// P.BitLen() guarantees every blockSize(P)-byte value is < P, the "treat M
// as an integer < p" encoding Encrypt requires (spec §4.8, §9).
func blockSize(p *big.Int) int {
	return (p.BitLen() - 1) / 8
}

// EncryptBytes implements the byte-message split spec §9 requires: CP-ABE's
// native plaintext space is a single integer below P, so an arbitrary
// message is chunked into blockSize(P)-byte blocks, each re-shared through
// its own clone of tree and encrypted independently. Cloning matters
// because ShareSecret annotates a tree's Cy/Cy' fields in place — reusing
// one tree across blocks would have every block after the first overwrite
// the annotations the one before it just wrote.
func (inst *Instance) EncryptBytes(message []byte, tree *access.Node) (*MultiBlockCiphertext, error) {
	if message == nil {
		return nil, status.New(status.MessageNull)
	}
	if len(message) == 0 {
		return nil, status.New(status.MessageLengthZero)
	}

	size := blockSize(inst.Domain.Curve.P)
	if size < 1 {
		return nil, status.New(status.IllegalPublicParameters)
	}

	var blocks []*Ciphertext
	for offset := 0; offset < len(message); offset += size {
		end := offset + size
		if end > len(message) {
			end = len(message)
		}
		block := new(big.Int).SetBytes(message[offset:end])

		ct, err := inst.Encrypt(block, tree.Clone())
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, ct)
	}

	inst.log.Debugw("encrypt bytes complete", "messageLen", len(message), "blocks", len(blocks))
	return &MultiBlockCiphertext{Blocks: blocks, MessageLen: len(message)}, nil
}

// DecryptBytes reverses EncryptBytes: every block is decrypted independently
// and rendered back to fixed-width bytes (big.Int.FillBytes left-pads with
// the zeros SetBytes/Bytes would otherwise drop) — blockSize(P) bytes for
// every block but the last, and MessageLen mod blockSize(P) bytes (or a
// full block when that is 0) for the last, which EncryptBytes left shorter.
// The blocks are concatenated, and a total length other than MessageLen is
// rejected as an illegal ciphertext.
func (inst *Instance) DecryptBytes(ct *MultiBlockCiphertext, sk *UserSecretKey) ([]byte, error) {
	if ct == nil || sk == nil {
		return nil, status.New(status.IllegalCiphertext)
	}

	size := blockSize(inst.Domain.Curve.P)
	if size < 1 {
		return nil, status.New(status.IllegalPublicParameters)
	}

	out := make([]byte, 0, ct.MessageLen)
	for i, block := range ct.Blocks {
		m, err := inst.Decrypt(block, sk)
		if err != nil {
			return nil, err
		}

		chunkLen := size
		if i == len(ct.Blocks)-1 {
			if rem := ct.MessageLen % size; rem != 0 {
				chunkLen = rem
			}
		}
		chunk := make([]byte, chunkLen)
		m.FillBytes(chunk)
		out = append(out, chunk...)
	}

	if len(out) != ct.MessageLen {
		return nil, status.New(status.IllegalCiphertext)
	}
	inst.log.Debugw("decrypt bytes complete", "messageLen", len(out))
	return out, nil
}
