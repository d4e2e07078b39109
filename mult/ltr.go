package mult

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/points"
)

// LTRMultiplier computes [k]P by left-to-right double-and-add (spec §4.7). When Always is set,
// a bit-clear iteration still executes a dummy addition (discarding the result), giving every
// iteration the same instruction pattern -- the textbook SPA countermeasure this toolkit exists
// to examine the limits of.
type LTRMultiplier struct {
	base
	Always bool
}

// NewLTRMultiplier constructs an LTRMultiplier, validating that formulas share one coordinate
// model (spec §4.7).
func NewLTRMultiplier(formulas Formulas, shortCircuit, always bool) (*LTRMultiplier, error) {
	b, err := newBase(formulas, shortCircuit)
	if err != nil {
		return nil, err
	}
	return &LTRMultiplier{base: b, Always: always}, nil
}

// Init binds group and the base point (spec §4.7).
func (m *LTRMultiplier) Init(group *curve.Group, point points.Point) error {
	return m.base.init(group, point)
}

// Multiply computes [k]P. A nil ctx records nothing.
func (m *LTRMultiplier) Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error) {
	if m.group == nil {
		return points.Point{}, ErrNotInitialized
	}
	if k.Sign() == 0 {
		return m.neutral(), nil
	}
	ctx = ensureCtx(ctx)

	r := m.neutral()
	err := ctx.Scope("ltr-multiply", func() error {
		for i := k.BitLen() - 1; i >= 0; i-- {
			var e error
			r, e = m.dbl(ctx, r)
			if e != nil {
				return e
			}
			if k.Bit(i) == 1 {
				r, e = m.add(ctx, r, m.point)
				if e != nil {
					return e
				}
			} else if m.Always {
				if _, e = m.add(ctx, r, m.point); e != nil {
					return e
				}
			}
		}
		return nil
	})
	if err != nil {
		return points.Point{}, err
	}
	return m.scale(ctx, r)
}
