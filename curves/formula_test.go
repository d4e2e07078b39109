package curves

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GottfriedHerold/ecsca/field"
)

type testPoint struct {
	model  *CoordinateModel
	coords map[string]field.FE
}

func (p testPoint) Coords() map[string]field.FE { return p.coords }
func (p testPoint) CoordModel() *CoordinateModel { return p.model }

func TestFormulaEvaluateSingleOutput(t *testing.T) {
	m := field.NewModulus(big.NewInt(101))
	model := NewAffineModel("toy", []string{"a"})
	coord := &CoordinateModel{Name: "projective", CurveModel: model, Variables: []string{"X", "Y", "Z"}}
	model.Coordinates["projective"] = coord

	add := NewFormula("add-toy", coord,
		[]string{"X3 = X1*X2 + a*Z1*Z2", "Y3 = Y1 + Y2", "Z3 = Z1*Z2"},
		2, 1,
		[]string{"X1", "Y1", "Z1", "X2", "Y2", "Z2"},
		[]string{"X3", "Y3", "Z3"},
		OpCounts{Mul: 3, AddSub: 2})
	coord.Formulas = map[string]*Formula{"add-toy": add}

	p1 := testPoint{model: coord, coords: map[string]field.FE{
		"X": field.NewUint64(2, m), "Y": field.NewUint64(3, m), "Z": field.NewUint64(1, m),
	}}
	p2 := testPoint{model: coord, coords: map[string]field.FE{
		"X": field.NewUint64(5, m), "Y": field.NewUint64(7, m), "Z": field.NewUint64(1, m),
	}}
	params := map[string]field.FE{"a": field.NewUint64(1, m)}

	out, err := add.Evaluate([]PointLike{p1, p2}, params)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0]["X"].Equal(field.NewUint64(2*5+1*1*1, m)))
	require.True(t, out[0]["Y"].Equal(field.NewUint64(10, m)))
	require.True(t, out[0]["Z"].Equal(field.NewUint64(1, m)))
	require.Equal(t, 33, OpCounts{Mul: 17, Sqr: 6, AddSub: 10}.Total())
}

func TestFormulaArityError(t *testing.T) {
	m := field.NewModulus(big.NewInt(101))
	model := NewAffineModel("toy", nil)
	coord := &CoordinateModel{Name: "projective", CurveModel: model, Variables: []string{"X", "Y", "Z"}}
	dbl := NewFormula("dbl-toy", coord, []string{"X3 = X1*X1"}, 1, 1, []string{"X1"}, []string{"X3"}, OpCounts{Sqr: 1})

	p1 := testPoint{model: coord, coords: map[string]field.FE{
		"X": field.NewUint64(2, m), "Y": field.NewUint64(0, m), "Z": field.NewUint64(1, m),
	}}
	// too many points
	_, err := dbl.Evaluate([]PointLike{p1, p1}, nil)
	require.ErrorIs(t, err, ErrFormulaArityError)

	// wrong coordinate model
	other := &CoordinateModel{Name: "other", CurveModel: model, Variables: []string{"X", "Y", "Z"}}
	wrongPoint := testPoint{model: other, coords: p1.coords}
	_, err = dbl.Evaluate([]PointLike{wrongPoint}, nil)
	require.ErrorIs(t, err, ErrFormulaArityError)
}
