package naf

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func fromDigits(digits []int) *big.Int {
	k := big.NewInt(0)
	two := big.NewInt(2)
	for _, d := range digits {
		k.Mul(k, two)
		k.Add(k, big.NewInt(int64(d)))
	}
	return k
}

func TestNAFCanonical(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 3, 5, 7, 11, 13, 255, 1000003} {
		k := big.NewInt(v)
		digits := NAF(k)
		require.Equal(t, k, fromDigits(digits))
		for i, d := range digits {
			require.Contains(t, []int{-1, 0, 1}, d)
			if d != 0 && i > 0 {
				require.Zero(t, digits[i-1], "two consecutive nonzero NAF digits at %d for k=%d", i, v)
			}
		}
	}
}

func TestWNAFCanonical(t *testing.T) {
	for _, v := range []int64{0, 1, 2, 3, 5, 7, 11, 13, 255, 1000003, 123456789} {
		for w := 2; w <= 6; w++ {
			k := big.NewInt(v)
			digits := WNAF(k, w)
			require.Equal(t, k, fromDigits(digits))
			half := int64(1) << uint(w-1)
			lastNonzero := -1
			for i, d := range digits {
				if d == 0 {
					continue
				}
				require.Equal(t, 1, d&1, "nonzero wNAF digit must be odd: w=%d k=%d digit=%d", w, v, d)
				require.True(t, int64(d) > -half && int64(d) <= half)
				if lastNonzero >= 0 {
					require.GreaterOrEqual(t, i-lastNonzero-1, w-1)
				}
				lastNonzero = i
			}
		}
	}
}

func TestWNAFRejectsNarrowWindow(t *testing.T) {
	require.Panics(t, func() { WNAF(big.NewInt(5), 1) })
}
