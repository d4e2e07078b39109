package catalogue

import (
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/mult"
	"github.com/GottfriedHerold/ecsca/points"
)

// NamedCurve bundles a concrete curve instance (spec §8's named-curve fixtures) with the
// non-affine coordinate system its catalogue formulas live in: the affine EllipticCurve/Group
// remain the oracle against which a ScalarMultiplier built from Formulas is checked.
type NamedCurve struct {
	Curve    *curve.EllipticCurve
	Group    *curve.Group
	Coords   *curves.CoordinateModel
	Formulas mult.Formulas
}

// GeneratorIn converts the curve's affine generator into nc's non-affine coordinate system.
func (nc *NamedCurve) GeneratorIn() (points.Point, error) {
	return nc.Group.Generator.ToModel(nc.Coords, nc.Curve.Params)
}
