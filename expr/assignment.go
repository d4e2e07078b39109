package expr

import "github.com/GottfriedHerold/ecsca/field"

// Assignment is one parsed "output = expression" statement (spec §3/§4.2: a Formula is an
// ordered list of these). It corresponds to pyecsca's CodeOp.
type Assignment struct {
	Output string
	RHS    Expr
}

// MustParseAssignment parses statement and panics on error; intended for use in package-level
// catalogue data where the statement is a compile-time constant (spec §6: the core trusts the
// loader's output, so a malformed literal here is a programming error, not a runtime one).
func MustParseAssignment(statement string) Assignment {
	output, rhs, err := Parse(statement)
	if err != nil {
		panic(ErrorPrefix + err.Error())
	}
	return Assignment{Output: output, RHS: rhs}
}

// Eval evaluates the right-hand side against env and returns the resulting value; it does not
// itself bind the result into env (callers do that, as formula execution needs to decide what
// to do when the output is a name already bound to something else, e.g. in-place updates
// during CurveModel base-operation evaluation).
func (a Assignment) Eval(env Env) (field.FE, error) {
	return a.RHS.Eval(env)
}

// MustParseExpr parses a bare expression and panics on error, for the same compile-time-literal
// use case as MustParseAssignment (catalogue YSquared/EquationLHS/EquationRHS recipes).
func MustParseExpr(s string) Expr {
	e, err := ParseExpr(s)
	if err != nil {
		panic(ErrorPrefix + err.Error())
	}
	return e
}
