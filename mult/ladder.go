package mult

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/points"
)

// LadderMultiplier computes [k]P with a Montgomery ladder over a three-in/two-out ladder-step
// formula (spec §4.7): at every iteration the pair (p0,p1) maintains the invariant
// p1 = p0 + P, giving the loop a uniform access pattern independent of the scalar's bits.
type LadderMultiplier struct {
	base
}

func NewLadderMultiplier(formulas Formulas, shortCircuit bool) (*LadderMultiplier, error) {
	b, err := newBase(formulas, shortCircuit)
	if err != nil {
		return nil, err
	}
	return &LadderMultiplier{base: b}, nil
}

func (m *LadderMultiplier) Init(group *curve.Group, point points.Point) error {
	return m.base.init(group, point)
}

func (m *LadderMultiplier) Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error) {
	if m.group == nil {
		return points.Point{}, ErrNotInitialized
	}
	if k.Sign() == 0 {
		return m.neutral(), nil
	}
	ctx = ensureCtx(ctx)

	p0 := m.point
	var p1 points.Point
	err := ctx.Scope("ladder-multiply", func() error {
		var e error
		p1, e = m.dbl(ctx, m.point)
		if e != nil {
			return e
		}
		for i := k.BitLen() - 2; i >= 0; i-- {
			if k.Bit(i) == 0 {
				p0, p1, e = m.ladd(ctx, m.point, p0, p1)
			} else {
				p1, p0, e = m.ladd(ctx, m.point, p1, p0)
			}
			if e != nil {
				return e
			}
		}
		return nil
	})
	if err != nil {
		return points.Point{}, err
	}
	return m.scale(ctx, p0)
}
