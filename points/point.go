// Package points implements the Point abstraction (spec §3/§4.4): a tuple of named field
// elements tagged with a coordinate model, with conversion between coordinate systems, and the
// InfinityPoint variant representing the group's neutral element.
package points

import (
	"sort"

	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/internal/utils"
)

// Point is a point with coordinates in a coordinate model, or the point at infinity.
//
// Point is immutable after construction (every method that "modifies" a point returns a new
// one), mirroring the Python original's value semantics and matching spec §3's "Immutable
// after construction" invariant.
type Point struct {
	_        utils.MakeIncomparable // callers must use Equal, not ==; see its doc comment
	model    *curves.CoordinateModel
	coords   map[string]field.FE
	infinity bool
}

// New constructs a finite point in the given coordinate model. Panics if the coords map's key
// set does not exactly match model.Variables (spec §3 invariant; a mismatch here is a
// programming error in the caller, not a recoverable runtime condition -- it can only be
// triggered by a buggy catalogue/loader, never by untrusted input).
func New(model *curves.CoordinateModel, coords map[string]field.FE) Point {
	if len(coords) != len(model.Variables) {
		panic(ErrorPrefix + "coordinate map does not match coordinate model's variable set")
	}
	for _, v := range model.Variables {
		if _, ok := coords[v]; !ok {
			panic(ErrorPrefix + "coordinate map is missing variable " + v)
		}
	}
	cp := make(map[string]field.FE, len(coords))
	for k, v := range coords {
		cp[k] = v
	}
	return Point{model: model, coords: cp}
}

// Infinity constructs the point at infinity tagged with the given coordinate model. Every
// coordinate is the Undefined field element (spec §3/§9).
func Infinity(model *curves.CoordinateModel) Point {
	coords := make(map[string]field.FE, len(model.Variables))
	for _, v := range model.Variables {
		coords[v] = field.Undefined(nil)
	}
	return Point{model: model, coords: coords, infinity: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return p.infinity }

// CoordModel returns p's coordinate model. Implements curves.PointLike.
func (p Point) CoordModel() *curves.CoordinateModel { return p.model }

// Coords returns p's coordinate map. Implements curves.PointLike. The returned map must not
// be mutated by callers.
func (p Point) Coords() map[string]field.FE { return p.coords }

// Clone returns an independent copy of p (Point is immutable, so this is mostly useful where
// the teacher's idiom -- and the Python original's copy.copy -- expects an explicit copy at a
// call site, e.g. before a multiplier starts mutating its running total).
func (p Point) Clone() Point {
	cp := make(map[string]field.FE, len(p.coords))
	for k, v := range p.coords {
		cp[k] = v
	}
	return Point{model: p.model, coords: cp, infinity: p.infinity}
}

// Equal is exact equality: same coordinate model (by identity) and identical coordinate
// values. For InfinityPoint, equality is by coordinate model only (spec §4.4/§9).
func (p Point) Equal(other Point) bool {
	if p.infinity || other.infinity {
		return p.infinity && other.infinity && p.model == other.model
	}
	if p.model != other.model {
		return false
	}
	if len(p.coords) != len(other.coords) {
		return false
	}
	for k, v := range p.coords {
		ov, ok := other.coords[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// EqualsAffine tests equality irrespective of coordinate model, by comparing both points'
// affine forms (spec §4.4 "equals").
func (p Point) EqualsAffine(other Point) (bool, error) {
	if p.model.CurveModel != other.model.CurveModel {
		return false, nil
	}
	pa, err := p.ToAffine()
	if err != nil {
		return false, err
	}
	oa, err := other.ToAffine()
	if err != nil {
		return false, err
	}
	return pa.Equal(oa), nil
}

// ToAffine converts p into the affine coordinate model, if possible (spec §4.4).
//
// If p is already affine, a clone is returned. If p is the point at infinity, the infinity
// point tagged with the affine coordinate model is returned. Otherwise, each of the
// coordinate model's Satisfying assignments is evaluated in turn against an environment seeded
// with p's own coordinates; an assignment referencing an unbound variable is silently skipped
// unless its output is an affine variable ("x" or "y"), in which case conversion fails with
// ErrConversionFailure.
func (p Point) ToAffine() (Point, error) {
	affineModel := curves.AffineCoordinateModel(p.model.CurveModel)
	if p.infinity {
		return Infinity(affineModel), nil
	}
	if p.model.IsAffine() {
		return p.Clone(), nil
	}
	env := make(map[string]field.FE, len(p.coords))
	for k, v := range p.coords {
		env[k] = v
	}
	for _, asn := range p.model.Satisfying {
		val, err := asn.Eval(env)
		if err != nil {
			if asn.Output == "x" || asn.Output == "y" {
				return Point{}, ErrConversionFailure
			}
			continue
		}
		env[asn.Output] = val
	}
	x, okX := env["x"]
	y, okY := env["y"]
	if !okX || !okY {
		return Point{}, ErrConversionFailure
	}
	return New(affineModel, map[string]field.FE{"x": x, "y": y}), nil
}

// ToModel converts an affine point into a given coordinate model, if possible (spec §4.4). p
// must be affine (ErrWrongPointType otherwise); params are the curve's parameters, used
// alongside p's own x/y to evaluate target.Satisfying.
//
// For each of target's variables: if the Satisfying evaluation bound it, that value is used;
// else if the variable is "X" or "Y", the source's own x/y is copied; else if it starts with
// "Z", the constant 1 is used; else if it is "T" (twisted-Edwards extended coordinate), the
// product of the source's own x and y is used (spec §9 Open Question: the Python original
// references an unbound "affine_point" here, resolved to mean the source point itself); any
// other unresolved variable fails with ErrConversionFailure.
func (p Point) ToModel(target *curves.CoordinateModel, params map[string]field.FE) (Point, error) {
	if p.infinity {
		return Infinity(target), nil
	}
	if !p.model.IsAffine() {
		return Point{}, ErrWrongPointType
	}
	x := p.coords["x"]
	y := p.coords["y"]
	m := x.Modulus()

	env := make(map[string]field.FE, len(p.coords)+len(params)+1)
	for k, v := range p.coords {
		env[k] = v
	}
	for k, v := range params {
		env[k] = v
	}
	env["Z"] = field.NewUint64(1, m)

	for _, asn := range target.Satisfying {
		val, err := asn.Eval(env)
		if err != nil {
			continue
		}
		env[asn.Output] = val
	}

	result := make(map[string]field.FE, len(target.Variables))
	for _, v := range target.Variables {
		switch {
		case hasKey(env, v):
			result[v] = env[v]
		case v == "X":
			result[v] = x
		case v == "Y":
			result[v] = y
		case len(v) > 0 && v[0] == 'Z':
			result[v] = field.NewUint64(1, m)
		case v == "T":
			t, err := x.Mul(y)
			if err != nil {
				return Point{}, err
			}
			result[v] = t
		default:
			return Point{}, ErrConversionFailure
		}
	}
	return New(target, result), nil
}

func hasKey(env map[string]field.FE, k string) bool {
	_, ok := env[k]
	return ok
}

// Bytes encodes p per ANSI X9.62: "\x04" followed by each coordinate, sorted by variable
// name, serialized big-endian at the field's byte length (spec §4.4/§6). The infinity point
// encodes as "\x00".
func (p Point) Bytes() []byte {
	if p.infinity {
		return []byte{0x00}
	}
	names := make([]string, 0, len(p.coords))
	for k := range p.coords {
		names = append(names, k)
	}
	sort.Strings(names)
	out := []byte{0x04}
	for _, name := range names {
		out = append(out, p.coords[name].Bytes()...)
	}
	return out
}
