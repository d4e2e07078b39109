package catalogue

import (
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/expr"
)

// MontgomeryModel builds the CurveModel for B·y² = x³ + A·x² + x, carrying a third parameter
// "a24" = (A+2)/4 alongside A and B -- the constant the xz ladder-step formula actually needs,
// precomputed once rather than re-derived on every Execute (spec §6: curve parameters are
// whatever the loader hands the core, and a24 is exactly the kind of derived constant a
// Montgomery-curve loader would supply).
func MontgomeryModel(name string) *curves.CurveModel {
	model := curves.NewAffineModel(name, []string{"A", "B", "a24"})
	model.BaseAddition = []expr.Assignment{
		expr.MustParseAssignment("lambda = (y2 - y1) / (x2 - x1)"),
		expr.MustParseAssignment("x = B*lambda**2 - A - x1 - x2"),
		expr.MustParseAssignment("y = lambda*(x1 - x) - y1"),
	}
	model.BaseDoubling = []expr.Assignment{
		expr.MustParseAssignment("lambda = (3*x1**2 + 2*A*x1 + 1) / (2*B*y1)"),
		expr.MustParseAssignment("x = B*lambda**2 - A - 2*x1"),
		expr.MustParseAssignment("y = lambda*(x1 - x) - y1"),
	}
	model.BaseNegation = []expr.Assignment{
		expr.MustParseAssignment("x = x1"),
		expr.MustParseAssignment("y = -y1"),
	}
	model.YSquared = expr.MustParseExpr("(x**3 + A*x**2 + x) / B")
	model.EquationLHS = expr.MustParseExpr("B*y**2")
	model.EquationRHS = expr.MustParseExpr("x**3 + A*x**2 + x")
	return model
}

// XZCoordinates registers and returns model's x-only projective coordinate system (X,Z), with
// u = X/Z (spec §4.7's LadderMultiplier/SimpleLadderMultiplier). Satisfying recovers only "x":
// the x-only ladder never learns the sign of y, so Point.ToAffine on an xz point always fails
// with ErrConversionFailure -- matching the real X25519 API, which returns a bare u-coordinate
// rather than a full affine point.
//
// Formulas carries the RFC 7748 combined ladder step ("ladd", 3-in/2-out: ladd(diff, P0, P1) =
// (2P0, P0+P1)), the matching standalone doubling ("dbl"), and the differential-addition-only
// step ("dadd", used by SimpleLadderMultiplier's differential branch).
func XZCoordinates(model *curves.CurveModel) *curves.CoordinateModel {
	coord := &curves.CoordinateModel{
		Name:       "xz",
		CurveModel: model,
		Variables:  []string{"X", "Z"},
		Satisfying: []expr.Assignment{
			expr.MustParseAssignment("x = X/Z"),
		},
		Formulas: make(map[string]*curves.Formula),
	}

	coord.Formulas["dbl"] = curves.NewFormula(
		"xDBL", coord,
		[]string{
			"AA = (X1 + Z1)**2",
			"BB = (X1 - Z1)**2",
			"E = AA - BB",
			"X4 = AA*BB",
			"Z4 = E*(BB + a24*E)",
		},
		1, 1,
		[]string{"X1", "Z1"},
		[]string{"X4", "Z4"},
		curves.OpCounts{Mul: 3, Sqr: 2, AddSub: 4},
	)

	// dadd(p, q, diff): p=(X1,Z1), q=(X2,Z2), diff=(X3,Z3) with diff == p-q.
	coord.Formulas["dadd"] = curves.NewFormula(
		"xADD", coord,
		[]string{
			"A = X1 + Z1",
			"B = X1 - Z1",
			"C = X2 + Z2",
			"D = X2 - Z2",
			"DA = D*A",
			"CB = C*B",
			"X4 = Z3*(DA + CB)**2",
			"Z4 = X3*(DA - CB)**2",
		},
		3, 1,
		[]string{"X1", "Z1", "X2", "Z2", "X3", "Z3"},
		[]string{"X4", "Z4"},
		curves.OpCounts{Mul: 4, Sqr: 2, AddSub: 6},
	)

	// ladd(diff, P0, P1): diff=(X1,Z1), P0=(X2,Z2), P1=(X3,Z3); outputs (2*P0, P0+P1).
	coord.Formulas["ladd"] = curves.NewFormula(
		"ladderstep", coord,
		[]string{
			"A = X2 + Z2",
			"AA = A**2",
			"B = X2 - Z2",
			"BB = B**2",
			"E = AA - BB",
			"C = X3 + Z3",
			"D = X3 - Z3",
			"DA = D*A",
			"CB = C*B",
			"X5 = Z1*(DA + CB)**2",
			"Z5 = X1*(DA - CB)**2",
			"X4 = AA*BB",
			"Z4 = E*(BB + a24*E)",
		},
		3, 2,
		[]string{"X1", "Z1", "X2", "Z2", "X3", "Z3"},
		[]string{"X4", "Z4", "X5", "Z5"},
		curves.OpCounts{Mul: 7, Sqr: 4, AddSub: 8},
	)

	model.Coordinates["xz"] = coord
	return coord
}
