package catalogue

import (
	"fmt"

	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/internal/callcounters"
)

// CallCounterRecorder is a context.Recorder that feeds every completed formula execution into
// internal/callcounters, weighted by the formula's OpCounts metadata (spec §3/§8 property 7):
// each Action's Mul/Sqr/AddSub/Div/Inv/Pow counts are added to per-curve, per-operation-kind
// counters, so a multiplication run's total field-operation cost can be read back out via
// callcounters.ReportCallCounters once the ObservationContext is closed.
//
// CurveName distinguishes counters across curves sharing a formula name (e.g. both the toy
// Jacobian fixture and Secp128r1 register a formula called "add-2007-bl").
type CallCounterRecorder struct {
	CurveName string
}

var registeredFormulaCounters = make(map[string]bool)

// formulaCounterIds returns (and lazily registers) the six field-operation-kind call counters
// for one curve/formula pair, parented under a per-curve, per-formula root.
func formulaCounterIds(curveName, formulaName string) (root callcounters.Id, mul, sqr, addsub, div, inv, pow callcounters.Id) {
	root = callcounters.Id(fmt.Sprintf("%s/%s", curveName, formulaName))
	mul = root + "/Mul"
	sqr = root + "/Sqr"
	addsub = root + "/AddSub"
	div = root + "/Div"
	inv = root + "/Inv"
	pow = root + "/Pow"

	key := string(root)
	if registeredFormulaCounters[key] {
		return
	}
	registeredFormulaCounters[key] = true

	callcounters.CreateHierarchicalCallCounter(root, fmt.Sprintf("%s: %s", curveName, formulaName), "")
	callcounters.CreateHierarchicalCallCounter(mul, "Mul", root)
	callcounters.CreateHierarchicalCallCounter(sqr, "Sqr", root)
	callcounters.CreateHierarchicalCallCounter(addsub, "AddSub", root)
	callcounters.CreateHierarchicalCallCounter(div, "Div", root)
	callcounters.CreateHierarchicalCallCounter(inv, "Inv", root)
	callcounters.CreateHierarchicalCallCounter(pow, "Pow", root)
	return
}

// Record implements context.Recorder. Non-formula Actions (opened via ObservationContext.Scope,
// e.g. a multiplier's top-level "multiply" scope) carry no OpCounts and are skipped.
func (r *CallCounterRecorder) Record(a *context.Action) {
	if a.Formula == nil || a.Err != nil {
		return
	}
	counts := a.Formula.Counts
	_, mul, sqr, addsub, div, inv, pow := formulaCounterIds(r.CurveName, a.Formula.Name)
	incrementBy(mul, counts.Mul)
	incrementBy(sqr, counts.Sqr)
	incrementBy(addsub, counts.AddSub)
	incrementBy(div, counts.Div)
	incrementBy(inv, counts.Inv)
	incrementBy(pow, counts.Pow)
}

func incrementBy(id callcounters.Id, n int) {
	for i := 0; i < n; i++ {
		id.Increment()
	}
}
