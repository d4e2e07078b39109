// Package naf implements binary and windowed non-adjacent-form recoding of integers (spec
// §4.8/C8), used by package mult's BinaryNAFMultiplier and WindowNAFMultiplier.
package naf

import "math/big"

// NAF returns the most-significant-digit-first binary non-adjacent-form digit sequence of k
// (k >= 0): repeatedly, if k is odd, emit d = 2 - (k mod 4) (so d is +1 or -1) and subtract d
// from k; otherwise emit 0; then shift k right by one bit. The digits are collected
// least-significant first and reversed before returning (spec §4.8).
//
// Every digit lies in {-1, 0, 1}; no two consecutive digits are both nonzero; the recoded value
// recovers k (spec §8 property 10).
func NAF(k *big.Int) []int {
	k = new(big.Int).Set(k)
	var digits []int
	four := big.NewInt(4)
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			mod4 := new(big.Int).Mod(k, four)
			d := 2 - int(mod4.Int64())
			digits = append(digits, d)
			k.Sub(k, big.NewInt(int64(d)))
		} else {
			digits = append(digits, 0)
		}
		k.Rsh(k, 1)
	}
	reverse(digits)
	return digits
}

// WNAF returns the most-significant-digit-first windowed non-adjacent-form digit sequence of k
// (k >= 0) at window width w (w >= 2): same structure as NAF, but an odd extraction takes
// d := k mod 2^w, adjusted into (-2^(w-1), 2^(w-1)] before subtracting (spec §4.8).
//
// Every nonzero digit is odd and lies in (-2^(w-1), 2^(w-1)]; between any two nonzero digits
// there are at least w-1 zero digits (spec §8 property 11).
func WNAF(k *big.Int, w int) []int {
	if w < 2 {
		panic(ErrorPrefix + "window width must be at least 2")
	}
	k = new(big.Int).Set(k)
	var digits []int
	modulus := new(big.Int).Lsh(big.NewInt(1), uint(w))
	half := new(big.Int).Lsh(big.NewInt(1), uint(w-1))
	for k.Sign() > 0 {
		if k.Bit(0) == 1 {
			d := new(big.Int).Mod(k, modulus)
			if d.Cmp(half) > 0 {
				d.Sub(d, modulus)
			}
			digits = append(digits, int(d.Int64()))
			k.Sub(k, d)
		} else {
			digits = append(digits, 0)
		}
		k.Rsh(k, 1)
	}
	reverse(digits)
	return digits
}

func reverse(d []int) {
	for i, j := 0, len(d)-1; i < j; i, j = i+1, j-1 {
		d[i], d[j] = d[j], d[i]
	}
}
