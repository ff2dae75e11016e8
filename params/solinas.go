package params

import (
	"crypto/rand"
	"math/big"

	"github.com/rfc5091/cryptid/status"
)

// solinasPrimalityRounds is the Miller-Rabin round count big.Int.ProbablyPrime
// uses; 20 matches the confidence level RFC-5091 implementations commonly
// budget for prime generation at every security level in the table.
const solinasPrimalityRounds = 20

// RandomSolinasPrime draws a Solinas prime of the form 2^a±2^b±1 with
// a=nbits (spec §4.5): repeatedly sample a random exponent 0<b<a, try all
// four sign pairs for it, and return the first candidate that is exactly
// nbits bits long and prime. Since 2^a+2^b±1 has nbits+1 bits, only
// candidates of the form 2^a−2^b±1 are ever returned. Gives up after limit
// attempts with status.SolinasGenFailed.
func RandomSolinasPrime(nbits, limit int) (*big.Int, error) {
	if nbits < 3 {
		return nil, status.New(status.SolinasGenFailed)
	}
	twoA := new(big.Int).Lsh(big.NewInt(1), uint(nbits))

	for attempt := 0; attempt < limit; attempt++ {
		b, err := randomIntInRange(big.NewInt(1), big.NewInt(int64(nbits)))
		if err != nil {
			return nil, status.Wrap(status.SolinasGenFailed, err)
		}
		twoB := new(big.Int).Lsh(big.NewInt(1), uint(b.Int64()))

		for _, signA := range [2]int{1, -1} {
			for _, signB := range [2]int{1, -1} {
				candidate := new(big.Int).Set(twoA)
				if signA < 0 {
					candidate.Sub(candidate, twoB)
				} else {
					candidate.Add(candidate, twoB)
				}
				if signB < 0 {
					candidate.Sub(candidate, big.NewInt(1))
				} else {
					candidate.Add(candidate, big.NewInt(1))
				}

				if candidate.BitLen() == nbits && candidate.ProbablyPrime(solinasPrimalityRounds) {
					return candidate, nil
				}
			}
		}
	}
	return nil, status.New(status.SolinasGenFailed)
}

// randomIntInRange draws a uniform *big.Int in [lo, hi).
func randomIntInRange(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	if span.Sign() <= 0 {
		return new(big.Int).Set(lo), nil
	}
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return n.Add(n, lo), nil
}

// RandomMpzInRange draws a uniform *big.Int in [0, bound) (spec §4.5).
func RandomMpzInRange(bound *big.Int) (*big.Int, error) {
	return rand.Int(rand.Reader, bound)
}
