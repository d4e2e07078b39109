package context

import "github.com/pkg/errors"

// ErrorPrefix is prepended to error messages originating from this package.
const ErrorPrefix = "ecsca / context: "

// ErrUnbalancedScope is returned by Close when a context still has open frames; it signals a
// programming error in the caller (a multiplier that failed to close an action it opened), not
// a recoverable runtime condition (spec §4.6: "violating the discipline is a programming
// error, not a recoverable failure").
var ErrUnbalancedScope = errors.New(ErrorPrefix + "scope closed with frames still open")
