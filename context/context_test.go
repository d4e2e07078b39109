package context

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/points"
)

func toyAddFormula() (*curves.CoordinateModel, *curves.Formula) {
	model := curves.NewAffineModel("toy", []string{"a"})
	coord := &curves.CoordinateModel{Name: "xy", CurveModel: model, Variables: []string{"x", "y"}}
	model.Coordinates["xy"] = coord
	f := curves.NewFormula("add-toy", coord,
		[]string{"x3 = x1 + x2", "y3 = y1 + y2"},
		2, 1,
		[]string{"x1", "y1", "x2", "y2"},
		[]string{"x3", "y3"},
		curves.OpCounts{AddSub: 2})
	coord.Formulas = map[string]*curves.Formula{"add-toy": f}
	return coord, f
}

func TestExecuteRecordsSuccess(t *testing.T) {
	m := field.NewModulus(big.NewInt(101))
	coord, f := toyAddFormula()
	p := points.New(coord, map[string]field.FE{"x": field.NewUint64(2, m), "y": field.NewUint64(3, m)})
	q := points.New(coord, map[string]field.FE{"x": field.NewUint64(5, m), "y": field.NewUint64(7, m)})

	rec := &DumpRecorder{}
	ctx := New(rec)
	out, err := ctx.Execute(f, []points.Point{p, q}, nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Coords()["x"].Equal(field.NewUint64(7, m)))
	require.Equal(t, 0, ctx.Depth())
	require.Len(t, ctx.Roots(), 1)
	require.Len(t, rec.Lines, 1)
	require.NoError(t, ctx.Close())
}

func TestExecuteRecordsFailureAndClosesFrame(t *testing.T) {
	coord, f := toyAddFormula()
	ctx := New(nil)
	// wrong arity: formula wants 2 points
	m := field.NewModulus(big.NewInt(101))
	p := points.New(coord, map[string]field.FE{"x": field.NewUint64(1, m), "y": field.NewUint64(1, m)})
	_, err := ctx.Execute(f, []points.Point{p}, nil)
	require.Error(t, err)
	require.Equal(t, 0, ctx.Depth())
	require.Len(t, ctx.Roots(), 1)
	require.Error(t, ctx.Roots()[0].Err)
}

func TestScopeNestsExecutions(t *testing.T) {
	m := field.NewModulus(big.NewInt(101))
	coord, f := toyAddFormula()
	p := points.New(coord, map[string]field.FE{"x": field.NewUint64(2, m), "y": field.NewUint64(3, m)})

	ctx := New(nil)
	err := ctx.Scope("multiply", func() error {
		_, err := ctx.Execute(f, []points.Point{p, p}, nil)
		if err != nil {
			return err
		}
		_, err = ctx.Execute(f, []points.Point{p, p}, nil)
		return err
	})
	require.NoError(t, err)
	require.Len(t, ctx.Roots(), 1)
	require.Equal(t, "multiply", ctx.Roots()[0].Label)
	require.Len(t, ctx.Roots()[0].Children, 2)
}
