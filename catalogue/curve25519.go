package catalogue

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/mult"
	"github.com/GottfriedHerold/ecsca/points"
)

// Curve25519 constants (Bernstein, "Curve25519: new Diffie-Hellman speed records").
const (
	curve25519A    = 486662
	curve25519B    = 1
	curve25519U    = 9
	curve25519A24  = (curve25519A + 2) / 4 // 121666, the constant the xz ladder step consumes
	curve25519NHex = "1000000000000000000000000000000014DEF9DEA2F79CD65812631A5CF5D3ED"
)

func curve25519Prime() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 255)
	return p.Sub(p, big.NewInt(19))
}

// Curve25519 builds the Curve25519 Montgomery curve in xz coordinates, backed by the RFC 7748
// combined ladder step (spec §8 scenario (b)). Only the x-only group law is wired here: a
// Curve25519 EllipticCurve's affine form exists solely as the oracle/encoding surface, never
// as something a multiplier runs formulas against directly.
func Curve25519() (*NamedCurve, error) {
	p := curve25519Prime()
	m := field.NewModulus(p)

	model := MontgomeryModel("curve25519")
	xz := XZCoordinates(model)

	params := map[string]field.FE{
		"A":   field.NewUint64(curve25519A, m),
		"B":   field.NewUint64(curve25519B, m),
		"a24": field.NewUint64(curve25519A24, m),
	}

	affineModel := curves.AffineCoordinateModel(model)
	c, err := curve.New(model, affineModel, p, params)
	if err != nil {
		return nil, err
	}

	uField := field.NewUint64(curve25519U, m)
	ySquared, err := c.YSquared(uField)
	if err != nil {
		return nil, err
	}
	y, err := ySquared.Sqrt()
	if err != nil {
		return nil, err
	}
	g := points.New(affineModel, map[string]field.FE{"x": uField, "y": y})

	n := hexInt(curve25519NHex)
	group, err := curve.NewGroup(c, g, n, big.NewInt(8))
	if err != nil {
		return nil, err
	}

	formulas := mult.Formulas{
		Ladd: xz.Formulas["ladd"],
		Dbl:  xz.Formulas["dbl"],
		Dadd: xz.Formulas["dadd"],
	}

	return &NamedCurve{Curve: c, Group: group, Coords: xz, Formulas: formulas}, nil
}
