package mult

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / mult: "

var (
	// ErrFormulaMismatch is returned by the New*Multiplier constructors when the supplied formulas do not all share the
	// same coordinate model (spec §4.7).
	ErrFormulaMismatch = errors.New(ErrorPrefix + "formulas belong to more than one coordinate model")

	// ErrCoordinateMismatch is returned by Init when the base point's coordinate model does
	// not match the multiplier's formulas (spec §4.7).
	ErrCoordinateMismatch = errors.New(ErrorPrefix + "point coordinate model does not match the multiplier's formulas")

	// ErrMissingFormula is returned when an internal operation (_add, _dbl, _neg, _ladd,
	// _dadd) is invoked but its formula slot was not supplied at construction (spec §4.7).
	ErrMissingFormula = errors.New(ErrorPrefix + "required formula slot is empty")

	// ErrNotInitialized is returned by Multiply if Init was never called.
	ErrNotInitialized = errors.New(ErrorPrefix + "multiplier was not initialized")
)
