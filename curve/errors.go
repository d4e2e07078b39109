package curve

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / curve: "

var (
	// ErrWrongPointType is returned when affine input was expected but a non-affine point
	// was given (spec §4.5).
	ErrWrongPointType = errors.New(ErrorPrefix + "wrong point type (affine expected)")

	// ErrBadEncoding is returned by DecodePoint for an unrecognized leading byte or
	// malformed length (spec §4.5/§7).
	ErrBadEncoding = errors.New(ErrorPrefix + "bad point encoding")

	// ErrNotOnCurve is returned by DecodePoint (compressed form) when the supplied x has no
	// corresponding point on the curve.
	ErrNotOnCurve = errors.New(ErrorPrefix + "point not on curve")

	// ErrInvalidCurve is returned by New when its invariants are violated.
	ErrInvalidCurve = errors.New(ErrorPrefix + "invalid curve construction")
)
