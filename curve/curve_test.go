package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/expr"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/points"
)

// toyWeierstrass builds y² = x³ + a·x + b over a prime modulus, mirroring the shape of the
// secp-family curves in the catalogue but small enough to brute-force in a test.
func toyWeierstrass(t *testing.T) *EllipticCurve {
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
	model.Coordinates["affine"] = affine

	params := map[string]field.FE{
		"a": field.NewUint64(2, m),
		"b": field.NewUint64(3, m),
	}
	c, err := New(model, affine, big.NewInt(101), params)
	require.NoError(t, err)
	return c
}

func affinePoint(c *EllipticCurve, x, y uint64) points.Point {
	return points.New(curves.AffineCoordinateModel(c.Model), map[string]field.FE{
		"x": field.NewUint64(x, c.Modulus),
		"y": field.NewUint64(y, c.Modulus),
	})
}

func TestNewRejectsWrongParameters(t *testing.T) {
	m := field.NewModulus(big.NewInt(101))
	model := curves.NewAffineModel("weierstrass", []string{"a", "b"})
	affine := curves.AffineCoordinateModel(model)
	model.Coordinates["affine"] = affine
	_, err := New(model, affine, big.NewInt(101), map[string]field.FE{"a": field.NewUint64(1, m)})
	require.ErrorIs(t, err, ErrInvalidCurve)
}

func TestAffineAddAndDouble(t *testing.T) {
	c := toyWeierstrass(t)
	p := affinePoint(c, 1, 39)

	doubled, err := c.AffineDouble(p)
	require.NoError(t, err)
	require.True(t, doubled.Equal(affinePoint(c, 79, 57)))

	tripled, err := c.AffineAdd(doubled, p)
	require.NoError(t, err)
	require.True(t, tripled.Equal(affinePoint(c, 85, 97)))
}

func TestAffineNegateAndAddInverse(t *testing.T) {
	c := toyWeierstrass(t)
	p := affinePoint(c, 1, 39)
	negP, err := c.AffineNegate(p)
	require.NoError(t, err)

	sum, err := c.AffineAdd(p, negP)
	require.NoError(t, err)
	require.True(t, sum.IsInfinity())
}

func TestAffineMultiply(t *testing.T) {
	c := toyWeierstrass(t)
	p := affinePoint(c, 1, 39)

	two, err := c.AffineMultiply(p, big.NewInt(2))
	require.NoError(t, err)
	require.True(t, two.Equal(affinePoint(c, 79, 57)))

	three, err := c.AffineMultiply(p, big.NewInt(3))
	require.NoError(t, err)
	require.True(t, three.Equal(affinePoint(c, 85, 97)))

	zero, err := c.AffineMultiply(p, big.NewInt(0))
	require.NoError(t, err)
	require.True(t, zero.IsInfinity())

	order, err := c.AffineMultiply(p, big.NewInt(96))
	require.NoError(t, err)
	require.True(t, order.IsInfinity())
}

func TestIsOnCurve(t *testing.T) {
	c := toyWeierstrass(t)
	onCurve, err := c.IsOnCurve(affinePoint(c, 1, 39))
	require.NoError(t, err)
	require.True(t, onCurve)

	offCurve, err := c.IsOnCurve(affinePoint(c, 1, 1))
	require.NoError(t, err)
	require.False(t, offCurve)

	inf, err := c.IsOnCurve(points.Infinity(curves.AffineCoordinateModel(c.Model)))
	require.NoError(t, err)
	require.True(t, inf)
}

func TestDecodePointUncompressed(t *testing.T) {
	c := toyWeierstrass(t)
	p := affinePoint(c, 1, 39)
	decoded, err := c.DecodePoint(p.Bytes())
	require.NoError(t, err)
	require.True(t, decoded.Equal(p))

	decodedInf, err := c.DecodePoint([]byte{0x00})
	require.NoError(t, err)
	require.True(t, decodedInf.IsInfinity())
}

func TestDecodePointCompressed(t *testing.T) {
	c := toyWeierstrass(t)
	p := affinePoint(c, 1, 39) // y = 39 is odd

	encoded := append([]byte{0x03}, field.NewUint64(1, c.Modulus).Bytes()...)
	decoded, err := c.DecodePoint(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Equal(p))

	encoded[0] = 0x02
	decoded, err = c.DecodePoint(encoded)
	require.NoError(t, err)
	require.True(t, decoded.Equal(affinePoint(c, 1, 101-39)))
}

func TestDecodePointBadEncoding(t *testing.T) {
	c := toyWeierstrass(t)
	_, err := c.DecodePoint([]byte{0x07, 0x01})
	require.ErrorIs(t, err, ErrBadEncoding)

	_, err = c.DecodePoint(nil)
	require.ErrorIs(t, err, ErrBadEncoding)
}

func TestAffineRandomIsOnCurve(t *testing.T) {
	c := toyWeierstrass(t)
	for i := 0; i < 10; i++ {
		p, err := c.AffineRandom()
		require.NoError(t, err)
		onCurve, err := c.IsOnCurve(p)
		require.NoError(t, err)
		require.True(t, onCurve)
	}
}

func TestGroupRejectsOffCurveGenerator(t *testing.T) {
	c := toyWeierstrass(t)
	_, err := NewGroup(c, affinePoint(c, 1, 1), big.NewInt(96), big.NewInt(1))
	require.ErrorIs(t, err, ErrNotOnCurve)
}

func TestGroupAccepts(t *testing.T) {
	c := toyWeierstrass(t)
	g, err := NewGroup(c, affinePoint(c, 1, 39), big.NewInt(96), big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(96), g.Order)
}
