package points

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / points: "

var (
	// ErrConversionFailure is returned when a coordinate conversion could not supply a
	// required variable (spec §4.4).
	ErrConversionFailure = errors.New(ErrorPrefix + "coordinate conversion could not supply a required variable")

	// ErrWrongPointType is returned when an affine point was expected but a non-affine one
	// was given, or vice versa (spec §4.5).
	ErrWrongPointType = errors.New(ErrorPrefix + "wrong point type (affine/non-affine mismatch)")
)
