package naf

// ErrorPrefix is prepended to panic messages originating from this package. WNAF's window
// width is a construction-time constant chosen by a multiplier, not untrusted input, so an
// invalid width is a programming error (panic), not a recoverable one.
const ErrorPrefix = "ecsca / naf: "
