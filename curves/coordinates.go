package curves

import (
	"github.com/GottfriedHerold/ecsca/expr"
	"github.com/GottfriedHerold/ecsca/internal/utils"
)

// CoordinateModel describes one coordinate system of a CurveModel: its variable names (e.g.
// {X,Y,Z}), the symbolic recipe to recover affine (x,y) from them, and the catalogue of named
// Formula objects available in that system (spec §3).
type CoordinateModel struct {
	Name       string
	CurveModel *CurveModel // back-reference by identity, not ownership (spec §3)
	Variables  []string

	// Satisfying is the ordered assignment list used by Point.ToAffine/Point.ToModel (spec
	// §4.3/§4.4) to convert between this coordinate system and affine.
	Satisfying []expr.Assignment

	Formulas map[string]*Formula
}

// AffineCoordinateModel returns the affine coordinate system for model: variables {x,y}, no
// formulas, trivial Satisfying. It is memoized on model (keyed "affine" in model.Coordinates)
// so that repeated calls for the same CurveModel return the identical *CoordinateModel --
// required since Point.Equal and the multiplier package compare coordinate models by pointer
// identity, not structurally.
func AffineCoordinateModel(model *CurveModel) *CoordinateModel {
	if existing, ok := model.Coordinates["affine"]; ok {
		return existing
	}
	affine := &CoordinateModel{
		Name:       "affine",
		CurveModel: model,
		Variables:  []string{"x", "y"},
		Satisfying: nil,
		Formulas:   nil,
	}
	model.Coordinates["affine"] = affine
	return affine
}

// IsAffine reports whether c is an affine coordinate model (by variable-set shape, matching
// the Python original's isinstance(AffineCoordinateModel) check via a structural stand-in
// since Go has no single shared base type here).
func (c *CoordinateModel) IsAffine() bool {
	return len(c.Variables) == 2 && containsAll(c.Variables, "x", "y") && c.Formulas == nil
}

func containsAll(vars []string, names ...string) bool {
	for _, n := range names {
		if !utils.ElementInList(n, vars) {
			return false
		}
	}
	return true
}
