// Package curve implements EllipticCurve and AbelianGroup (spec §3/§4.5): the binding of a
// CurveModel + CoordinateModel + prime + parameters, exposing affine reference operations used
// as the "truth oracle" the ScalarMultiplier family is tested against, plus point (de)coding.
package curve

import (
	"math/big"
	"sort"

	"github.com/pkg/errors"

	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/expr"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/internal/utils"
	"github.com/GottfriedHerold/ecsca/points"
)

// EllipticCurve binds a curve model, a coordinate system, a prime, and concrete parameters
// (spec §3's EllipticCurve). Its affine operations (AffineAdd/AffineDouble/AffineNegate/
// AffineMultiply) are the reference against which the mult package's ScalarMultipliers are
// checked.
type EllipticCurve struct {
	Model      *curves.CurveModel
	CoordModel *curves.CoordinateModel
	Prime      *big.Int
	Modulus    *field.Modulus
	Params     map[string]field.FE
}

// New constructs an EllipticCurve, enforcing the invariants of spec §3: coordModel must belong
// to model; params' key set must equal model.ParameterNames; every parameter's modulus must
// equal prime.
func New(model *curves.CurveModel, coordModel *curves.CoordinateModel, prime *big.Int, params map[string]field.FE) (*EllipticCurve, error) {
	if coordModel.CurveModel != model {
		return nil, errors.Wrap(ErrInvalidCurve, "coordinate model belongs to a different curve model")
	}
	if !coordModel.IsAffine() {
		found := false
		for _, c := range model.Coordinates {
			if c == coordModel {
				found = true
				break
			}
		}
		if !found {
			return nil, errors.Wrap(ErrInvalidCurve, "coordinate model not registered on curve model")
		}
	}
	gotNames := make([]string, 0, len(params))
	for name := range params {
		gotNames = append(gotNames, name)
	}
	sort.Strings(gotNames)
	wantNames := append(make([]string, 0, len(model.ParameterNames)), model.ParameterNames...)
	sort.Strings(wantNames)
	if !utils.CompareSlices(gotNames, wantNames) {
		return nil, errors.Wrapf(ErrInvalidCurve, "expected parameters %v, got %v", model.ParameterNames, gotNames)
	}
	mod := field.NewModulus(prime)
	for _, name := range model.ParameterNames {
		v := params[name]
		if v.Modulus() == nil || v.Modulus().Int().Cmp(prime) != 0 {
			return nil, errors.Wrapf(ErrInvalidCurve, "parameter %q has the wrong modulus", name)
		}
	}
	return &EllipticCurve{
		Model:      model,
		CoordModel: coordModel,
		Prime:      prime,
		Modulus:    mod,
		Params:     params,
	}, nil
}

func (c *EllipticCurve) affineModel() *curves.CoordinateModel {
	return curves.AffineCoordinateModel(c.Model)
}

func (c *EllipticCurve) checkAffine(ps ...points.Point) error {
	for _, p := range ps {
		if p.IsInfinity() {
			continue
		}
		if p.CoordModel().CurveModel != c.Model || !p.CoordModel().IsAffine() {
			return ErrWrongPointType
		}
	}
	return nil
}

// envFrom seeds an evaluation environment from the curve's parameters plus the given operand
// points, whose coordinates are suffixed "1", "2", ... in operand order (matching pyecsca's
// x1/y1/x2/y2 naming for BaseAddition/BaseDoubling).
func (c *EllipticCurve) envFrom(ps ...points.Point) expr.Env {
	env := make(expr.Env, len(c.Params)+2*len(ps))
	for k, v := range c.Params {
		env[k] = v
	}
	for i, p := range ps {
		suffix := string(rune('1' + i))
		for k, v := range p.Coords() {
			env[k+suffix] = v
		}
	}
	return env
}

// AffineAdd evaluates the curve model's BaseAddition recipe over two affine points (spec
// §4.5). Special cases are handled via the usual group-law identities: P+O=P, O+P=P,
// P+(-P)=O, and P+P is computed by AffineDouble.
func (c *EllipticCurve) AffineAdd(p, q points.Point) (points.Point, error) {
	if err := c.checkAffine(p, q); err != nil {
		return points.Point{}, err
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if negP, err := c.AffineNegate(p); err == nil && q.Equal(negP) {
		return c.AffineNeutral()
	}
	if p.Equal(q) {
		return c.AffineDouble(p)
	}
	env, err := curves.ExecuteAssignments(c.Model.BaseAddition, c.envFrom(p, q))
	if err != nil {
		return points.Point{}, err
	}
	return points.New(c.affineModel(), map[string]field.FE{"x": env["x"], "y": env["y"]}), nil
}

// AffineDouble evaluates the curve model's BaseDoubling recipe over an affine point (spec
// §4.5). Doubling the neutral element, or a point equal to its own negation, yields the
// neutral element.
func (c *EllipticCurve) AffineDouble(p points.Point) (points.Point, error) {
	if err := c.checkAffine(p); err != nil {
		return points.Point{}, err
	}
	if p.IsInfinity() {
		return p, nil
	}
	if negP, err := c.AffineNegate(p); err == nil && p.Equal(negP) {
		return c.AffineNeutral()
	}
	env, err := curves.ExecuteAssignments(c.Model.BaseDoubling, c.envFrom(p, p))
	if err != nil {
		return points.Point{}, err
	}
	return points.New(c.affineModel(), map[string]field.FE{"x": env["x"], "y": env["y"]}), nil
}

// AffineNegate evaluates the curve model's BaseNegation recipe over an affine point (spec
// §4.5). Negating the neutral element yields the neutral element.
func (c *EllipticCurve) AffineNegate(p points.Point) (points.Point, error) {
	if err := c.checkAffine(p); err != nil {
		return points.Point{}, err
	}
	if p.IsInfinity() {
		return p, nil
	}
	env, err := curves.ExecuteAssignments(c.Model.BaseNegation, c.envFrom(p))
	if err != nil {
		return points.Point{}, err
	}
	return points.New(c.affineModel(), map[string]field.FE{"x": env["x"], "y": env["y"]}), nil
}

// AffineNeutral returns the curve's neutral element in affine coordinates, if it has one (spec
// §4.5). NeutralIsAffine reports whether the curve model provides an affine recipe for it at
// all (short Weierstrass does not: its neutral element is the point at infinity).
func (c *EllipticCurve) NeutralIsAffine() bool {
	return len(c.Model.BaseNeutral) > 0
}

func (c *EllipticCurve) AffineNeutral() (points.Point, error) {
	if !c.NeutralIsAffine() {
		return points.Infinity(c.affineModel()), nil
	}
	env, err := curves.ExecuteAssignments(c.Model.BaseNeutral, c.envFrom())
	if err != nil {
		return points.Point{}, err
	}
	return points.New(c.affineModel(), map[string]field.FE{"x": env["x"], "y": env["y"]}), nil
}

// AffineMultiply computes [k]P by left-to-right double-and-add directly against the affine
// group law (spec §4.5/§7): the reference implementation every ScalarMultiplier is checked
// against. k == 0 returns the neutral element before any bit is examined (spec §9 Open
// Question: the scalar-zero case is undefined in the original and is resolved here to the
// group identity, matching every scalar multiplier in package mult).
func (c *EllipticCurve) AffineMultiply(p points.Point, k *big.Int) (points.Point, error) {
	if err := c.checkAffine(p); err != nil {
		return points.Point{}, err
	}
	if k.Sign() == 0 {
		return c.AffineNeutral()
	}
	neg := k.Sign() < 0
	kAbs := new(big.Int).Abs(k)

	r := p
	for i := kAbs.BitLen() - 2; i >= 0; i-- {
		var err error
		r, err = c.AffineDouble(r)
		if err != nil {
			return points.Point{}, err
		}
		if kAbs.Bit(i) == 1 {
			r, err = c.AffineAdd(r, p)
			if err != nil {
				return points.Point{}, err
			}
		}
	}
	if neg {
		return c.AffineNegate(r)
	}
	return r, nil
}

// IsOnCurve reports whether p satisfies the curve equation (spec §4.5). The neutral element is
// always on the curve.
func (c *EllipticCurve) IsOnCurve(p points.Point) (bool, error) {
	if err := c.checkAffine(p); err != nil {
		return false, err
	}
	if p.IsInfinity() {
		return true, nil
	}
	env := c.envFrom(p)
	// the curve equation is expressed in terms of the unsuffixed "x"/"y", not "x1"/"y1"
	env["x"] = p.Coords()["x"]
	env["y"] = p.Coords()["y"]
	lhs, err := c.Model.EquationLHS.Eval(env)
	if err != nil {
		return false, err
	}
	rhs, err := c.Model.EquationRHS.Eval(env)
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// YSquared evaluates the curve model's y² formula at x (spec §4.5), used by DecodePoint and
// AffineRandom.
func (c *EllipticCurve) YSquared(x field.FE) (field.FE, error) {
	env := make(expr.Env, len(c.Params)+1)
	for k, v := range c.Params {
		env[k] = v
	}
	env["x"] = x
	return c.Model.YSquared.Eval(env)
}

// AffineRandom draws a uniformly random point on the curve by rejection sampling: repeatedly
// pick a random x, and accept it (with a uniformly random sign for y) iff y² = YSquared(x) is
// a quadratic residue.
func (c *EllipticCurve) AffineRandom() (points.Point, error) {
	for {
		x := field.Random(c.Modulus)
		ySq, err := c.YSquared(x)
		if err != nil {
			return points.Point{}, err
		}
		isResidue, err := ySq.IsResidue()
		if err != nil {
			return points.Point{}, err
		}
		if !isResidue {
			continue
		}
		y, err := ySq.Sqrt()
		if err != nil {
			return points.Point{}, err
		}
		if field.Random(field.NewModulus(big.NewInt(2))).IsZero() {
			y, err = y.Neg()
			if err != nil {
				return points.Point{}, err
			}
		}
		return points.New(c.affineModel(), map[string]field.FE{"x": x, "y": y}), nil
	}
}

// DecodePoint decodes an ANSI X9.62 point encoding (spec §4.5/§6): "\x00" for infinity,
// "\x04"/"\x06" for uncompressed/hybrid (each coordinate variable of c.CoordModel, sorted by
// name, as a fixed-length big-endian field), "\x02"/"\x03" for compressed (affine x only, with
// the low bit of the leading byte selecting which of the two square roots of YSquared(x) is
// y).
func (c *EllipticCurve) DecodePoint(data []byte) (points.Point, error) {
	if len(data) == 0 {
		return points.Point{}, ErrBadEncoding
	}
	switch data[0] {
	case 0x00:
		if len(data) != 1 {
			return points.Point{}, ErrBadEncoding
		}
		return points.Infinity(c.affineModel()), nil
	case 0x04, 0x06:
		names := sortedVariables(c.CoordModel.Variables)
		byteLen := c.Modulus.ByteLen()
		if len(data) != 1+byteLen*len(names) {
			return points.Point{}, ErrBadEncoding
		}
		coords := make(map[string]field.FE, len(names))
		offset := 1
		for _, name := range names {
			coords[name] = field.SetBytes(data[offset:offset+byteLen], c.Modulus)
			offset += byteLen
		}
		return points.New(c.CoordModel, coords), nil
	case 0x02, 0x03:
		if !c.CoordModel.IsAffine() {
			return points.Point{}, ErrBadEncoding
		}
		byteLen := c.Modulus.ByteLen()
		if len(data) != 1+byteLen {
			return points.Point{}, ErrBadEncoding
		}
		x := field.SetBytes(data[1:], c.Modulus)
		ySq, err := c.YSquared(x)
		if err != nil {
			return points.Point{}, err
		}
		isResidue, err := ySq.IsResidue()
		if err != nil {
			return points.Point{}, err
		}
		if !isResidue {
			return points.Point{}, ErrNotOnCurve
		}
		y, err := ySq.Sqrt()
		if err != nil {
			return points.Point{}, err
		}
		wantOdd := data[0] == 0x03
		if y.Int().Bit(0) == 1 != wantOdd {
			y, err = y.Neg()
			if err != nil {
				return points.Point{}, err
			}
		}
		return points.New(c.affineModel(), map[string]field.FE{"x": x, "y": y}), nil
	default:
		return points.Point{}, ErrBadEncoding
	}
}

func sortedVariables(vars []string) []string {
	out := make([]string, len(vars))
	copy(out, vars)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
