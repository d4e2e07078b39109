package expr

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / expr: "

var (
	// ErrUnboundVariable is returned when evaluation references a name absent from the
	// environment.
	ErrUnboundVariable = errors.New(ErrorPrefix + "unbound variable")

	// ErrUnknownOperator is returned for a binary operator outside {+,-,*,/,**}; should be
	// unreachable given the parser only produces those.
	ErrUnknownOperator = errors.New(ErrorPrefix + "unknown operator")

	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New(ErrorPrefix + "syntax error")
)
