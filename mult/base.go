// Package mult implements the ScalarMultiplier family (spec §4.7/C7): eight scalar
// multiplication algorithms sharing one formula-driven execution surface. All of them are
// built on a common unexported base carrying validated formulas, the short_circuit flag, and
// post-Init group/point state; each concrete multiplier adds only the state its own algorithm
// needs (a negated base point, a window table, ...).
package mult

import (
	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/points"
)

// Formulas is the set of named operations a multiplier may use (spec §4.7). Unused slots are
// left nil ("None-valued formula slots are dropped"); _add/_dbl/_neg/_ladd/_dadd fail with
// ErrMissingFormula if invoked against a nil slot, while a nil Scl leaves the result unscaled.
type Formulas struct {
	Add  *curves.Formula // two-in/one-out point addition
	Dbl  *curves.Formula // one-in/one-out point doubling
	Neg  *curves.Formula // one-in/one-out point negation
	Ladd *curves.Formula // three-in/two-out Montgomery ladder step
	Dadd *curves.Formula // differential addition, used by SimpleLadderMultiplier
	Scl  *curves.Formula // one-in/one-out scaling, applied exactly once to the final result
}

// base is embedded by every concrete multiplier type.
type base struct {
	formulas     Formulas
	coordModel   *curves.CoordinateModel
	shortCircuit bool

	group *curve.Group
	point points.Point
}

func newBase(formulas Formulas, shortCircuit bool) (base, error) {
	var model *curves.CoordinateModel
	for _, f := range []*curves.Formula{formulas.Add, formulas.Dbl, formulas.Neg, formulas.Ladd, formulas.Dadd, formulas.Scl} {
		if f == nil {
			continue
		}
		if model == nil {
			model = f.Coords
		} else if f.Coords != model {
			return base{}, ErrFormulaMismatch
		}
	}
	return base{formulas: formulas, coordModel: model, shortCircuit: shortCircuit}, nil
}

// init binds group and point, validating that point's coordinate model matches the formulas'
// (spec §4.7's CoordinateMismatch check covers the group's curve; since every point this
// package constructs is already tagged with b.coordModel, checking point directly is
// equivalent and simpler).
func (b *base) init(group *curve.Group, point points.Point) error {
	if b.coordModel == nil || point.CoordModel() != b.coordModel {
		return ErrCoordinateMismatch
	}
	b.group = group
	b.point = point
	return nil
}

func (b *base) neutral() points.Point {
	return points.Infinity(b.coordModel)
}

// _add evaluates the addition formula, or (when short_circuit is set) substitutes the identity
// shortcut for an operand equal to the neutral element (spec §4.7).
func (b *base) add(ctx *context.ObservationContext, p, q points.Point) (points.Point, error) {
	if b.shortCircuit {
		if p.IsInfinity() {
			return q, nil
		}
		if q.IsInfinity() {
			return p, nil
		}
	}
	if b.formulas.Add == nil {
		return points.Point{}, ErrMissingFormula
	}
	out, err := ctx.Execute(b.formulas.Add, []points.Point{p, q}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, err
	}
	return out[0], nil
}

// _dbl evaluates the doubling formula, or substitutes the identity shortcut for the neutral
// element when short_circuit is set.
func (b *base) dbl(ctx *context.ObservationContext, p points.Point) (points.Point, error) {
	if b.shortCircuit && p.IsInfinity() {
		return p, nil
	}
	if b.formulas.Dbl == nil {
		return points.Point{}, ErrMissingFormula
	}
	out, err := ctx.Execute(b.formulas.Dbl, []points.Point{p}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, err
	}
	return out[0], nil
}

// _neg evaluates the negation formula, or substitutes the identity shortcut for the neutral
// element when short_circuit is set.
func (b *base) neg(ctx *context.ObservationContext, p points.Point) (points.Point, error) {
	if b.shortCircuit && p.IsInfinity() {
		return p, nil
	}
	if b.formulas.Neg == nil {
		return points.Point{}, ErrMissingFormula
	}
	out, err := ctx.Execute(b.formulas.Neg, []points.Point{p}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, err
	}
	return out[0], nil
}

// _ladd evaluates the three-in/two-out Montgomery ladder step formula: ladd(base, p0, p1)
// returns (2*p0, p0+p1) (spec §4.7 LadderMultiplier).
func (b *base) ladd(ctx *context.ObservationContext, basePoint, p0, p1 points.Point) (points.Point, points.Point, error) {
	if b.formulas.Ladd == nil {
		return points.Point{}, points.Point{}, ErrMissingFormula
	}
	out, err := ctx.Execute(b.formulas.Ladd, []points.Point{basePoint, p0, p1}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, points.Point{}, err
	}
	return out[0], out[1], nil
}

// _dadd evaluates the differential-addition formula used by SimpleLadderMultiplier's
// differential-formula branch: dadd(p, q, diff) returns p+q given the already-known
// difference p-q (spec §4.7 SimpleLadder).
func (b *base) dadd(ctx *context.ObservationContext, p, q, diff points.Point) (points.Point, error) {
	if b.shortCircuit {
		if p.IsInfinity() {
			return q, nil
		}
		if q.IsInfinity() {
			return p, nil
		}
	}
	if b.formulas.Dadd == nil {
		return points.Point{}, ErrMissingFormula
	}
	out, err := ctx.Execute(b.formulas.Dadd, []points.Point{p, q, diff}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, err
	}
	return out[0], nil
}

// _scl applies the scaling formula to p, if one is present; otherwise p is returned unchanged.
// Every multiplier applies this exactly once, to its final result (spec §4.7).
func (b *base) scale(ctx *context.ObservationContext, p points.Point) (points.Point, error) {
	if b.formulas.Scl == nil {
		return p, nil
	}
	out, err := ctx.Execute(b.formulas.Scl, []points.Point{p}, b.group.Curve.Params)
	if err != nil {
		return points.Point{}, err
	}
	return out[0], nil
}

func ensureCtx(ctx *context.ObservationContext) *context.ObservationContext {
	if ctx == nil {
		return context.New(nil)
	}
	return ctx
}
