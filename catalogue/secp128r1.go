package catalogue

import (
	"math/big"

	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/mult"
	"github.com/GottfriedHerold/ecsca/points"
)

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("catalogue: bad hex literal " + s)
	}
	return v
}

// Secp128r1 constants (SEC 2, section 2.5.1).
const (
	secp128r1P  = "FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFF"
	secp128r1B  = "E87579C11079F43DD824993C2CEE5ED3"
	secp128r1Gx = "161FF7528B899B2D0C28607CA52C5B86"
	secp128r1Gy = "CF5AC8395BAFEB13C02DA292DDED7A83"
	secp128r1N  = "FFFFFFFE0000000075A30D1B9038A115"
)

// Secp128r1 builds the secp128r1 short Weierstrass curve in Jacobian coordinates, backed by
// the EFD add-2007-bl/dbl-2007-bl formulas (spec §8 scenario (a)). a == p-3, the form every
// SEC2 "random" prime curve uses, chosen so dbl-2007-bl's a·Z⁴ term is cheap in a loader that
// special-cases it -- this engine does not special-case it, but the constant is kept in that
// shape for fidelity to the real curve.
func Secp128r1() (*NamedCurve, error) {
	p := hexInt(secp128r1P)
	m := field.NewModulus(p)
	a := new(big.Int).Sub(p, big.NewInt(3))

	model := ShortWeierstrassModel("secp128r1")
	jacobian := JacobianCoordinates(model)

	params := map[string]field.FE{
		"a": field.New(a, m),
		"b": field.New(hexInt(secp128r1B), m),
	}

	affineModel := curves.AffineCoordinateModel(model)
	c, err := curve.New(model, affineModel, p, params)
	if err != nil {
		return nil, err
	}

	g := points.New(affineModel, map[string]field.FE{
		"x": field.New(hexInt(secp128r1Gx), m),
		"y": field.New(hexInt(secp128r1Gy), m),
	})
	group, err := curve.NewGroup(c, g, hexInt(secp128r1N), big.NewInt(1))
	if err != nil {
		return nil, err
	}

	formulas := mult.Formulas{
		Add: jacobian.Formulas["add-2007-bl"],
		Dbl: jacobian.Formulas["dbl-2007-bl"],
		Neg: jacobian.Formulas["neg"],
		Scl: jacobian.Formulas["scale"],
	}

	return &NamedCurve{Curve: c, Group: group, Coords: jacobian, Formulas: formulas}, nil
}
