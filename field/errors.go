package field

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / field: "

// Sentinel errors for the field layer (spec taxonomy, §7). Callers should compare against
// these with errors.Is; call sites wrap them with errors.Wrapf to attach context.
var (
	// ErrModulusMismatch is returned by any binary operation between field elements of
	// differing modulus.
	ErrModulusMismatch = errors.New(ErrorPrefix + "operands have different moduli")

	// ErrUndefinedOp is returned by any operation performed on the Undefined sentinel value.
	ErrUndefinedOp = errors.New(ErrorPrefix + "operation on Undefined field element")

	// ErrNotInvertible is returned by Inverse/Div when the operand shares a nontrivial factor
	// with the modulus (only possible for non-prime moduli, which violates the FE invariant,
	// or for the zero element).
	ErrNotInvertible = errors.New(ErrorPrefix + "element is not invertible")

	// ErrNotResidue is returned by Sqrt when the element is not a quadratic residue.
	ErrNotResidue = errors.New(ErrorPrefix + "element is not a quadratic residue")
)
