package curves

import (
	"sort"
	"strconv"

	"github.com/GottfriedHerold/ecsca/expr"
	"github.com/GottfriedHerold/ecsca/field"
)

// PointLike is the minimal surface Formula needs from a point: its coordinate values and the
// CoordinateModel it belongs to. points.Point implements this; Formula itself stays agnostic
// of the points package to avoid an import cycle (points needs CoordinateModel too).
type PointLike interface {
	Coords() map[string]field.FE
	CoordModel() *CoordinateModel
}

// OpCounts are the operation counters a Formula carries as metadata (spec §3). They are
// informational only -- Evaluate does not consult them -- but are asserted against in tests
// (spec §8 property 7) and feed internal/callcounters-based instrumentation.
type OpCounts struct {
	Mul, Sqr, AddSub, Div, Inv, Pow int
}

// Total returns the sum of all operation counts.
func (o OpCounts) Total() int {
	return o.Mul + o.Sqr + o.AddSub + o.Div + o.Inv + o.Pow
}

// Formula is an immutable, ordered list of named assignments implementing one operation (add,
// double, negate, ladder step, scale, ...) in a fixed coordinate system (spec §3/§4.2).
type Formula struct {
	Name        string
	Coords      *CoordinateModel
	Assignments []expr.Assignment
	InputIndex  int
	OutputIndex int
	Inputs      map[string]bool
	Outputs     map[string]bool
	Counts      OpCounts
}

// NewFormula constructs a Formula from raw assignment statements (spec §6: trusted loader
// input). inputIndex/outputIndex and the inputs/outputs variable sets are taken as given by
// the caller (the catalogue, standing in for the out-of-scope EFD loader); this constructor
// only parses the assignment strings.
func NewFormula(name string, coords *CoordinateModel, statements []string, inputIndex, outputIndex int, inputs, outputs []string, counts OpCounts) *Formula {
	assignments := make([]expr.Assignment, len(statements))
	for i, s := range statements {
		assignments[i] = expr.MustParseAssignment(s)
	}
	f := &Formula{
		Name:        name,
		Coords:      coords,
		Assignments: assignments,
		InputIndex:  inputIndex,
		OutputIndex: outputIndex,
		Inputs:      toSet(inputs),
		Outputs:     toSet(outputs),
		Counts:      counts,
	}
	return f
}

func toSet(xs []string) map[string]bool {
	m := make(map[string]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}

// Evaluate executes the formula against the given input points and curve parameters, per
// spec §4.2. It returns one coordinate map per output point (bare variable names, matching
// f.Coords.Variables), in ascending order of the output point's slot index.
//
// Wrong call arity -- too few/many point arguments, or points of the wrong coordinate model --
// fails with ErrFormulaArityError.
func (f *Formula) Evaluate(points []PointLike, params map[string]field.FE) ([]map[string]field.FE, error) {
	if len(points) != f.InputIndex {
		return nil, ErrFormulaArityError
	}
	env := make(expr.Env)
	for i, pt := range points {
		if pt.CoordModel() != f.Coords {
			return nil, ErrFormulaArityError
		}
		slot := strconv.Itoa(i + 1)
		for name, val := range pt.Coords() {
			env[name+slot] = val
		}
	}
	for name, val := range params {
		env[name] = val
	}
	for _, asn := range f.Assignments {
		val, err := asn.Eval(env)
		if err != nil {
			return nil, err
		}
		env[asn.Output] = val
	}

	slots := make(map[int]map[string]field.FE)
	for name := range f.Outputs {
		base, idx := splitTrailingDigits(name)
		if slots[idx] == nil {
			slots[idx] = make(map[string]field.FE)
		}
		val, ok := env[name]
		if !ok {
			return nil, ErrFormulaArityError
		}
		slots[idx][base] = val
	}
	indices := make([]int, 0, len(slots))
	for idx := range slots {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	result := make([]map[string]field.FE, len(indices))
	for i, idx := range indices {
		result[i] = slots[idx]
	}
	return result, nil
}

// splitTrailingDigits splits a variable name like "X3" into ("X", 3).
func splitTrailingDigits(name string) (base string, idx int) {
	i := len(name)
	for i > 0 && name[i-1] >= '0' && name[i-1] <= '9' {
		i--
	}
	base = name[:i]
	if i == len(name) {
		return base, 0
	}
	n, _ := strconv.Atoi(name[i:])
	return base, n
}
