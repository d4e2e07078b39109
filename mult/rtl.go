package mult

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/points"
)

// RTLMultiplier computes [k]P right-to-left: q starts at P and is repeatedly doubled while k is
// consumed from its least-significant bit (spec §4.7).
type RTLMultiplier struct {
	base
	Always bool
}

func NewRTLMultiplier(formulas Formulas, shortCircuit, always bool) (*RTLMultiplier, error) {
	b, err := newBase(formulas, shortCircuit)
	if err != nil {
		return nil, err
	}
	return &RTLMultiplier{base: b, Always: always}, nil
}

func (m *RTLMultiplier) Init(group *curve.Group, point points.Point) error {
	return m.base.init(group, point)
}

func (m *RTLMultiplier) Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error) {
	if m.group == nil {
		return points.Point{}, ErrNotInitialized
	}
	if k.Sign() == 0 {
		return m.neutral(), nil
	}
	ctx = ensureCtx(ctx)

	r := m.neutral()
	q := m.point
	k = new(big.Int).Set(k)
	err := ctx.Scope("rtl-multiply", func() error {
		for k.Sign() > 0 {
			var e error
			if k.Bit(0) == 1 {
				r, e = m.add(ctx, r, q)
				if e != nil {
					return e
				}
			} else if m.Always {
				if _, e = m.add(ctx, r, q); e != nil {
					return e
				}
			}
			q, e = m.dbl(ctx, q)
			if e != nil {
				return e
			}
			k.Rsh(k, 1)
		}
		return nil
	})
	if err != nil {
		return points.Point{}, err
	}
	return m.scale(ctx, r)
}
