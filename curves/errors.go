package curves

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / curves: "

var (
	// ErrFormulaArityError is returned when a Formula is invoked with the wrong number of
	// point arguments, or arguments whose coordinate model doesn't match the formula's.
	ErrFormulaArityError = errors.New(ErrorPrefix + "wrong number or type of point arguments")
)
