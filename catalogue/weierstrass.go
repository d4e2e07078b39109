// Package catalogue supplies concrete CurveModel/CoordinateModel/Formula data for the curve
// shapes this engine targets, plus a handful of named real-world curves built from them (spec
// §6/§8): short Weierstrass curves in Jacobian coordinates with the EFD add-2007-bl/dbl-2007-bl
// formulas, and Montgomery curves in xz coordinates with the RFC 7748-style combined ladder
// step. It stands in for the out-of-scope EFD-derived curve/formula loader: every Formula here
// is literal data, not something assembled at runtime from a file format.
package catalogue

import (
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/expr"
)

// ShortWeierstrassModel builds the CurveModel for y² = x³ + a·x + b: two parameters, no affine
// recipe for the neutral element (its neutral element is the point at infinity, spec §4.5), and
// the standard affine chord-and-tangent addition/doubling/negation laws.
func ShortWeierstrassModel(name string) *curves.CurveModel {
	model := curves.NewAffineModel(name, []string{"a", "b"})
	model.BaseAddition = []expr.Assignment{
		expr.MustParseAssignment("lambda = (y2 - y1) / (x2 - x1)"),
		expr.MustParseAssignment("x = lambda**2 - x1 - x2"),
		expr.MustParseAssignment("y = lambda*(x1 - x) - y1"),
	}
	model.BaseDoubling = []expr.Assignment{
		expr.MustParseAssignment("lambda = (3*x1**2 + a) / (2*y1)"),
		expr.MustParseAssignment("x = lambda**2 - 2*x1"),
		expr.MustParseAssignment("y = lambda*(x1 - x) - y1"),
	}
	model.BaseNegation = []expr.Assignment{
		expr.MustParseAssignment("x = x1"),
		expr.MustParseAssignment("y = -y1"),
	}
	model.YSquared = expr.MustParseExpr("x**3 + a*x + b")
	model.EquationLHS = expr.MustParseExpr("y**2")
	model.EquationRHS = expr.MustParseExpr("x**3 + a*x + b")
	return model
}

// JacobianCoordinates registers and returns model's Jacobian coordinate system: X = x·Z²,
// Y = y·Z³. Formulas carries "add-2007-bl" and "dbl-2007-bl" (named after their EFD entries,
// spec §8 property 7), a coordinate-wise negation, and a "scale" formula normalizing Z back to
// 1 (the _scl slot every ScalarMultiplier applies once to its final result).
func JacobianCoordinates(model *curves.CurveModel) *curves.CoordinateModel {
	coord := &curves.CoordinateModel{
		Name:       "jacobian",
		CurveModel: model,
		Variables:  []string{"X", "Y", "Z"},
		Satisfying: []expr.Assignment{
			expr.MustParseAssignment("x = X/Z**2"),
			expr.MustParseAssignment("y = Y/Z**3"),
		},
		Formulas: make(map[string]*curves.Formula),
	}

	// add-2007-bl: full Jacobian addition, no assumption on either input's Z.
	coord.Formulas["add-2007-bl"] = curves.NewFormula(
		"add-2007-bl", coord,
		[]string{
			"Z1Z1 = Z1**2",
			"Z2Z2 = Z2**2",
			"U1 = X1*Z2Z2",
			"U2 = X2*Z1Z1",
			"S1 = Y1*Z2*Z2Z2",
			"S2 = Y2*Z1*Z1Z1",
			"H = U2 - U1",
			"I = (2*H)**2",
			"J = H*I",
			"r = 2*(S2 - S1)",
			"V = U1*I",
			"X3 = r**2 - J - 2*V",
			"Y3 = r*(V - X3) - 2*S1*J",
			"Z3 = ((Z1 + Z2)**2 - Z1Z1 - Z2Z2)*H",
		},
		2, 1,
		[]string{"X1", "Y1", "Z1", "X2", "Y2", "Z2"},
		[]string{"X3", "Y3", "Z3"},
		curves.OpCounts{Mul: 17, Sqr: 6, AddSub: 10},
	)

	// dbl-2007-bl: doubling, shared Z-squares reused between the two coordinate updates.
	coord.Formulas["dbl-2007-bl"] = curves.NewFormula(
		"dbl-2007-bl", coord,
		[]string{
			"XX = X1**2",
			"YY = Y1**2",
			"YYYY = YY**2",
			"ZZ = Z1**2",
			"S = 2*((X1 + YY)**2 - XX - YYYY)",
			"M = 3*XX + a*ZZ**2",
			"T = M**2 - 2*S",
			"X3 = T",
			"Y3 = M*(S - T) - 8*YYYY",
			"Z3 = (Y1 + Z1)**2 - YY - ZZ",
		},
		1, 1,
		[]string{"X1", "Y1", "Z1"},
		[]string{"X3", "Y3", "Z3"},
		curves.OpCounts{Mul: 4, Sqr: 6, AddSub: 12},
	)

	coord.Formulas["neg"] = curves.NewFormula(
		"neg", coord,
		[]string{"X3 = X1", "Y3 = -Y1", "Z3 = Z1"},
		1, 1,
		[]string{"X1", "Y1", "Z1"},
		[]string{"X3", "Y3", "Z3"},
		curves.OpCounts{AddSub: 1},
	)

	coord.Formulas["scale"] = curves.NewFormula(
		"scale", coord,
		[]string{"X3 = X1/Z1**2", "Y3 = Y1/Z1**3", "Z3 = 1"},
		1, 1,
		[]string{"X1", "Y1", "Z1"},
		[]string{"X3", "Y3", "Z3"},
		curves.OpCounts{Div: 2, Sqr: 1},
	)

	model.Coordinates["jacobian"] = coord
	return coord
}
