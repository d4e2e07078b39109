package field

import "math/big"

// IsResidue reports whether x is a quadratic residue modulo p, via Euler's criterion:
// x == 0 is a residue; otherwise x is a residue iff x^((p-1)/2) == 1 (mod p).
func (x FE) IsResidue() (bool, error) {
	if x.undefined {
		return false, ErrUndefinedOp
	}
	if x.IsZero() {
		return true, nil
	}
	pMinus1Over2 := new(big.Int).Rsh(new(big.Int).Sub(x.mod.Int(), big.NewInt(1)), 1)
	e, err := x.Pow(pMinus1Over2)
	if err != nil {
		return false, err
	}
	one := NewUint64(1, x.mod)
	return e.Equal(one), nil
}

// Sqrt returns a square root of x modulo p using Tonelli-Shanks (direct formula for p==2 or
// p ≡ 3 (mod 4)). Fails with ErrNotResidue if x has no square root. The two square roots of a
// nonzero residue are equally valid; this function does not guarantee which one is returned
// (spec §4.1) -- callers needing a specific root apply their own parity rule (see
// curve.DecodePoint for the ANSI X9.62 compressed-point convention).
func (x FE) Sqrt() (FE, error) {
	if x.undefined {
		return FE{}, ErrUndefinedOp
	}
	p := x.mod.Int()
	if p.Cmp(big.NewInt(2)) == 0 {
		return x, nil
	}
	isResidue, err := x.IsResidue()
	if err != nil {
		return FE{}, err
	}
	if !isResidue {
		return FE{}, ErrNotResidue
	}
	if x.IsZero() {
		return x, nil
	}

	// p ≡ 3 (mod 4): direct formula r = x^((p+1)/4).
	four := big.NewInt(4)
	mod4 := new(big.Int).Mod(p, four)
	if mod4.Cmp(big.NewInt(3)) == 0 {
		e := new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
		return x.Pow(e)
	}

	// General Tonelli-Shanks: write p-1 = q * 2^s with q odd.
	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	q := new(big.Int).Set(pMinus1)
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// Find a quadratic non-residue z.
	var z FE
	for i := uint64(2); ; i++ {
		cand := NewUint64(i, x.mod)
		residue, err := cand.IsResidue()
		if err != nil {
			return FE{}, err
		}
		if !residue {
			z = cand
			break
		}
	}

	m := s
	c, err := z.Pow(q)
	if err != nil {
		return FE{}, err
	}
	t, err := x.Pow(q)
	if err != nil {
		return FE{}, err
	}
	qPlus1Over2 := new(big.Int).Rsh(new(big.Int).Add(q, big.NewInt(1)), 1)
	r, err := x.Pow(qPlus1Over2)
	if err != nil {
		return FE{}, err
	}

	one := NewUint64(1, x.mod)
	for {
		if t.Equal(one) {
			return r, nil
		}
		// find least i, 0 < i < m, such that t^(2^i) == 1.
		i := 0
		tt := t
		for ; i < m; i++ {
			if tt.Equal(one) {
				break
			}
			tt, err = tt.Mul(tt)
			if err != nil {
				return FE{}, err
			}
		}
		if i == 0 {
			return r, nil
		}
		// b = c^(2^(m-i-1))
		exp := new(big.Int).Lsh(big.NewInt(1), uint(m-i-1))
		b, err := c.Pow(exp)
		if err != nil {
			return FE{}, err
		}
		m = i
		c, err = b.Mul(b)
		if err != nil {
			return FE{}, err
		}
		t, err = t.Mul(c)
		if err != nil {
			return FE{}, err
		}
		r, err = r.Mul(b)
		if err != nil {
			return FE{}, err
		}
	}
}
