package hashfn

import "math/big"

// HashToRange maps an arbitrary byte string into [0,p) (spec §4.1): hash
// t‖s for t=0,1,2,... with a big-endian 4-byte counter, concatenate the
// digests until there are at least 64 bits more than p needs to keep the
// mod-p reduction close to uniform, then reduce mod p.
func HashToRange(s []byte, p *big.Int, h HashFunction) *big.Int {
	neededBits := p.BitLen() + 64
	neededBytes := (neededBits + 7) / 8

	var buf []byte
	for t := 0; len(buf) < neededBytes; t++ {
		counter := []byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)}
		buf = append(buf, h.Hash(append(counter, s...))...)
	}

	v := new(big.Int).SetBytes(buf[:neededBytes])
	return v.Mod(v, p)
}
