package mult

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/expr"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/points"
)

// testFixture builds the toy curve y² = x³ + 2x + 3 (mod 101) (generator (1,39), order 96) and
// a full set of affine-coordinate Formulas, letting every multiplier be checked directly
// against curve.AffineMultiply without a real projective/Jacobian catalogue entry.
type testFixture struct {
	curve    *curve.EllipticCurve
	group    *curve.Group
	affine   *curves.CoordinateModel
	formulas Formulas
	g        points.Point
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	m := field.NewModulus(big.NewInt(101))
	model := curves.NewAffineModel("weierstrass", []string{"a", "b"})
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
	ySquared, err := expr.ParseExpr("x**3 + a*x + b")
	require.NoError(t, err)
	model.YSquared = ySquared
	lhs, err := expr.ParseExpr("y**2")
	require.NoError(t, err)
	rhs, err := expr.ParseExpr("x**3 + a*x + b")
	require.NoError(t, err)
	model.EquationLHS = lhs
	model.EquationRHS = rhs

	affine := curves.AffineCoordinateModel(model)

	params := map[string]field.FE{"a": field.NewUint64(2, m), "b": field.NewUint64(3, m)}
	c, err := curve.New(model, affine, big.NewInt(101), params)
	require.NoError(t, err)

	g := points.New(affine, map[string]field.FE{"x": field.NewUint64(1, m), "y": field.NewUint64(39, m)})
	group, err := curve.NewGroup(c, g, big.NewInt(96), big.NewInt(1))
	require.NoError(t, err)

	add := curves.NewFormula("add", affine,
		[]string{
			"lambda = (y2 - y1) / (x2 - x1)",
			"x3 = lambda**2 - x1 - x2",
			"y3 = lambda*(x1 - x3) - y1",
		}, 2, 1, []string{"x1", "y1", "x2", "y2"}, []string{"x3", "y3"}, curves.OpCounts{})

	dbl := curves.NewFormula("dbl", affine,
		[]string{
			"lambda = (3*x1**2 + a) / (2*y1)",
			"x3 = lambda**2 - 2*x1",
			"y3 = lambda*(x1 - x3) - y1",
		}, 1, 1, []string{"x1", "y1"}, []string{"x3", "y3"}, curves.OpCounts{})

	neg := curves.NewFormula("neg", affine,
		[]string{"x3 = x1", "y3 = -y1"}, 1, 1, []string{"x1", "y1"}, []string{"x3", "y3"}, curves.OpCounts{})

	ladd := curves.NewFormula("ladd", affine,
		[]string{
			"lambda_d = (3*x2**2 + a) / (2*y2)",
			"x4 = lambda_d**2 - 2*x2",
			"y4 = lambda_d*(x2 - x4) - y2",
			"lambda_a = (y3 - y2) / (x3 - x2)",
			"x5 = lambda_a**2 - x2 - x3",
			"y5 = lambda_a*(x2 - x5) - y2",
		}, 3, 2, []string{"x1", "y1", "x2", "y2", "x3", "y3"}, []string{"x4", "y4", "x5", "y5"}, curves.OpCounts{})

	dadd := curves.NewFormula("dadd", affine,
		[]string{
			"lambda = (y2 - y1) / (x2 - x1)",
			"x4 = lambda**2 - x1 - x2",
			"y4 = lambda*(x1 - x4) - y1",
		}, 3, 1, []string{"x1", "y1", "x2", "y2", "x3", "y3"}, []string{"x4", "y4"}, curves.OpCounts{})

	return &testFixture{
		curve:  c,
		group:  group,
		affine: affine,
		g:      g,
		formulas: Formulas{
			Add:  add,
			Dbl:  dbl,
			Neg:  neg,
			Ladd: ladd,
			Dadd: dadd,
		},
	}
}

func checkAgainstOracle(t *testing.T, f *testFixture, name string, multiply func(k *big.Int) (points.Point, error)) {
	t.Helper()
	for _, k := range []int64{0, 1, 2, 3, 4, 5, 7, 10, 63, 95} {
		scalar := big.NewInt(k)
		got, err := multiply(scalar)
		require.NoError(t, err, "%s: k=%d", name, k)
		gotAffine, err := got.ToAffine()
		require.NoError(t, err)
		want, err := f.curve.AffineMultiply(f.g, scalar)
		require.NoError(t, err)
		require.True(t, gotAffine.Equal(want), "%s: k=%d got=%v want=%v", name, k, gotAffine, want)
	}
}

func TestLTRMultiplier(t *testing.T) {
	f := newFixture(t)
	for _, always := range []bool{false, true} {
		m, err := NewLTRMultiplier(f.formulas, true, always)
		require.NoError(t, err)
		require.NoError(t, m.Init(f.group, f.g))
		checkAgainstOracle(t, f, "ltr", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
	}
}

func TestRTLMultiplier(t *testing.T) {
	f := newFixture(t)
	m, err := NewRTLMultiplier(f.formulas, true, false)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	checkAgainstOracle(t, f, "rtl", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
}

func TestCoronMultiplier(t *testing.T) {
	f := newFixture(t)
	m, err := NewCoronMultiplier(f.formulas, true)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	checkAgainstOracle(t, f, "coron", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
}

func TestLadderMultiplier(t *testing.T) {
	f := newFixture(t)
	m, err := NewLadderMultiplier(f.formulas, true)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	checkAgainstOracle(t, f, "ladder", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
}

func TestSimpleLadderMultiplier(t *testing.T) {
	f := newFixture(t)
	for _, useDiff := range []bool{false, true} {
		m, err := NewSimpleLadderMultiplier(f.formulas, true, useDiff)
		require.NoError(t, err)
		require.NoError(t, m.Init(f.group, f.g))
		checkAgainstOracle(t, f, "simple-ladder", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
	}
}

func TestBinaryNAFMultiplier(t *testing.T) {
	f := newFixture(t)
	m, err := NewBinaryNAFMultiplier(f.formulas, true)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	checkAgainstOracle(t, f, "binary-naf", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
}

func TestWindowNAFMultiplier(t *testing.T) {
	f := newFixture(t)
	for _, precomputeNeg := range []bool{false, true} {
		m, err := NewWindowNAFMultiplier(f.formulas, true, 3, precomputeNeg)
		require.NoError(t, err)
		require.NoError(t, m.Init(f.group, f.g))
		checkAgainstOracle(t, f, "window-naf", func(k *big.Int) (points.Point, error) { return m.Multiply(nil, k) })
	}
}

func TestMultiplyZeroIsNeutral(t *testing.T) {
	f := newFixture(t)
	m, err := NewLTRMultiplier(f.formulas, true, false)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	got, err := m.Multiply(nil, big.NewInt(0))
	require.NoError(t, err)
	require.True(t, got.IsInfinity())
}

func TestNewRejectsMismatchedFormulas(t *testing.T) {
	f := newFixture(t)
	other := curves.NewAffineModel("other", nil)
	otherCoord := curves.AffineCoordinateModel(other)
	stray := curves.NewFormula("stray-neg", otherCoord, []string{"x3 = x1", "y3 = -y1"}, 1, 1, []string{"x1", "y1"}, []string{"x3", "y3"}, curves.OpCounts{})
	_, err := NewLTRMultiplier(Formulas{Add: f.formulas.Add, Neg: stray}, true, false)
	require.ErrorIs(t, err, ErrFormulaMismatch)
}

func TestInitRejectsCoordinateMismatch(t *testing.T) {
	f := newFixture(t)
	m, err := NewLTRMultiplier(f.formulas, true, false)
	require.NoError(t, err)

	other := curves.NewAffineModel("other", nil)
	otherCoord := curves.AffineCoordinateModel(other)
	modu := field.NewModulus(big.NewInt(101))
	wrongPoint := points.New(otherCoord, map[string]field.FE{"x": field.NewUint64(1, modu), "y": field.NewUint64(1, modu)})
	err = m.Init(f.group, wrongPoint)
	require.ErrorIs(t, err, ErrCoordinateMismatch)
}

func TestMissingFormula(t *testing.T) {
	f := newFixture(t)
	m, err := NewLTRMultiplier(Formulas{Add: f.formulas.Add}, true, false)
	require.NoError(t, err)
	require.NoError(t, m.Init(f.group, f.g))
	_, err = m.Multiply(nil, big.NewInt(5))
	require.ErrorIs(t, err, ErrMissingFormula)
}
