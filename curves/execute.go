package curves

import "github.com/GottfriedHerold/ecsca/expr"

// ExecuteAssignments evaluates each assignment against env in order, binding each result back
// into env (a copy of the input), and returns the resulting environment. Used by
// EllipticCurve's reference affine operations and by Point's coordinate-conversion logic,
// both of which evaluate a CurveModel/CoordinateModel's symbolic assignment lists (spec
// §4.3/§4.5).
func ExecuteAssignments(assignments []expr.Assignment, env expr.Env) (expr.Env, error) {
	out := make(expr.Env, len(env)+len(assignments))
	for k, v := range env {
		out[k] = v
	}
	for _, asn := range assignments {
		val, err := asn.Eval(out)
		if err != nil {
			return nil, err
		}
		out[asn.Output] = val
	}
	return out, nil
}
