package mult

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/points"
)

// CoronMultiplier computes [k]P with Coron's always-double-and-add ladder (spec §4.7): every
// iteration performs exactly one doubling and one addition regardless of the scanned bit,
// differing only in which running value is kept.
type CoronMultiplier struct {
	base
}

func NewCoronMultiplier(formulas Formulas, shortCircuit bool) (*CoronMultiplier, error) {
	b, err := newBase(formulas, shortCircuit)
	if err != nil {
		return nil, err
	}
	return &CoronMultiplier{base: b}, nil
}

func (m *CoronMultiplier) Init(group *curve.Group, point points.Point) error {
	return m.base.init(group, point)
}

func (m *CoronMultiplier) Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error) {
	if m.group == nil {
		return points.Point{}, ErrNotInitialized
	}
	if k.Sign() == 0 {
		return m.neutral(), nil
	}
	ctx = ensureCtx(ctx)

	p0 := m.point
	err := ctx.Scope("coron-multiply", func() error {
		for i := k.BitLen() - 2; i >= 0; i-- {
			var e error
			p0, e = m.dbl(ctx, p0)
			if e != nil {
				return e
			}
			p1, e := m.add(ctx, p0, m.point)
			if e != nil {
				return e
			}
			if k.Bit(i) == 1 {
				p0 = p1
			}
		}
		return nil
	})
	if err != nil {
		return points.Point{}, err
	}
	return m.scale(ctx, p0)
}
