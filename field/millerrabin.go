package field

import (
	"crypto/rand"
	"math/big"
)

// millerRabinRounds is the number of independent witnesses tried; sufficient to reject
// obvious composites for the catalogue-sized primes this engine deals with (spec §4.1 only
// requires "sufficient to reject obvious composites", not a cryptographic soundness bound).
const millerRabinRounds = 20

// MillerRabin is a probabilistic primality test. It returns true if n is "probably prime" and
// false if it is definitely composite.
func MillerRabin(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	two := big.NewInt(2)
	three := big.NewInt(3)
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if n.Cmp(two) < 0 {
		return false
	}

	// n-1 = d * 2^r, d odd.
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nMinus3 := new(big.Int).Sub(n, three)
	for i := 0; i < millerRabinRounds; i++ {
		a, err := rand.Int(rand.Reader, nMinus3)
		if err != nil {
			panic(ErrorPrefix + "failed to draw randomness for Miller-Rabin: " + err.Error())
		}
		a.Add(a, two) // a in [2, n-2]
		if !millerRabinWitness(a, d, r, n, nMinus1) {
			return false
		}
	}
	return true
}

func millerRabinWitness(a, d *big.Int, r int, n, nMinus1 *big.Int) bool {
	x := new(big.Int).Exp(a, d, n)
	one := big.NewInt(1)
	if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 0; i < r-1; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}

// Gcd returns the greatest common divisor of a and b (both assumed non-negative).
func Gcd(a, b *big.Int) *big.Int {
	g, _, _ := extgcd(a, b)
	return g
}

// ExtGcd returns (g, x, y) such that a*x + b*y == g == gcd(a,b).
func ExtGcd(a, b *big.Int) (g, x, y *big.Int) {
	return extgcd(a, b)
}
