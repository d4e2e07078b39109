package mult

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/points"
)

// SimpleLadderMultiplier computes [k]P with a two-register ladder maintaining the invariant
// r1 = r0 + P, using separate add and double formulas each iteration rather than a single
// combined ladder-step formula (spec §4.7). When UseDifferentialAddition is set, the addition
// step uses the differential-addition formula (_dadd, exploiting the already-known difference
// P between the two registers) instead of the plain addition formula.
type SimpleLadderMultiplier struct {
	base
	UseDifferentialAddition bool
}

func NewSimpleLadderMultiplier(formulas Formulas, shortCircuit, useDifferentialAddition bool) (*SimpleLadderMultiplier, error) {
	b, err := newBase(formulas, shortCircuit)
	if err != nil {
		return nil, err
	}
	return &SimpleLadderMultiplier{base: b, UseDifferentialAddition: useDifferentialAddition}, nil
}

func (m *SimpleLadderMultiplier) Init(group *curve.Group, point points.Point) error {
	return m.base.init(group, point)
}

func (m *SimpleLadderMultiplier) addStep(ctx *context.ObservationContext, a, b points.Point) (points.Point, error) {
	if m.UseDifferentialAddition {
		return m.dadd(ctx, a, b, m.point)
	}
	return m.add(ctx, a, b)
}

func (m *SimpleLadderMultiplier) Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error) {
	if m.group == nil {
		return points.Point{}, ErrNotInitialized
	}
	if k.Sign() == 0 {
		return m.neutral(), nil
	}
	ctx = ensureCtx(ctx)

	r0 := m.neutral()
	r1 := m.point
	err := ctx.Scope("simple-ladder-multiply", func() error {
		for i := k.BitLen() - 1; i >= 0; i-- {
			var e error
			if k.Bit(i) == 0 {
				r1, e = m.addStep(ctx, r0, r1)
				if e != nil {
					return e
				}
				r0, e = m.dbl(ctx, r0)
			} else {
				r0, e = m.addStep(ctx, r0, r1)
				if e != nil {
					return e
				}
				r1, e = m.dbl(ctx, r1)
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
	return m.scale(ctx, r0)
}
