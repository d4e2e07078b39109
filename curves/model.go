package curves

import "github.com/GottfriedHerold/ecsca/expr"

// CurveModel describes a named curve family (short Weierstrass, Montgomery, (twisted)
// Edwards, ...): its coefficient names, its coordinate systems, and its affine group-law
// recipes (spec §3).
type CurveModel struct {
	Name           string
	ParameterNames []string
	Coordinates    map[string]*CoordinateModel

	// BaseAddition/BaseDoubling/BaseNegation/BaseNeutral are symbolic assignment lists
	// operating on affine coordinates ("x1","y1","x2","y2",...) plus curve parameters,
	// producing "x"/"y". BaseNeutral may be empty when the neutral point has no affine
	// representation (e.g. short Weierstrass's point at infinity); see
	// EllipticCurve.NeutralIsAffine.
	BaseAddition []expr.Assignment
	BaseDoubling []expr.Assignment
	BaseNegation []expr.Assignment
	BaseNeutral  []expr.Assignment

	// YSquared computes y² given x and the curve parameters (used by point decompression
	// and random-point sampling, spec §4.5).
	YSquared expr.Expr

	// EquationLHS/EquationRHS together express the curve equation as a boolean predicate:
	// a point is on the curve iff EquationLHS == EquationRHS once evaluated (spec §4.5
	// is_on_curve). Expressing it as an equality of two sides (rather than a single boolean
	// expression) keeps the expr grammar free of comparison/boolean operators (spec §9).
	EquationLHS expr.Expr
	EquationRHS expr.Expr
}

// NewAffineModel builds a CurveModel from already-parsed building blocks; the Coordinates map
// is filled in by the caller afterwards (each CoordinateModel needs a back-reference to this
// CurveModel, so construction happens in two steps -- see catalogue for the pattern).
func NewAffineModel(name string, parameterNames []string) *CurveModel {
	return &CurveModel{
		Name:           name,
		ParameterNames: parameterNames,
		Coordinates:    make(map[string]*CoordinateModel),
	}
}
