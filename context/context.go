// Package context implements ObservationContext (spec §4.6/§9): a scoped, LIFO-nested stack
// of recorded formula executions. Every point operation a ScalarMultiplier performs flows
// through an *ObservationContext's Execute method, which is the sole place side-channel
// observation hooks into the algebra.
//
// The teacher's thread-local singleton shape (a process-wide stack, implicitly scoped per
// goroutine) does not translate to idiomatic Go: instead, callers hold an explicit
// *ObservationContext value and pass it down the call chain (every ScalarMultiplier method
// that needs to record an operation takes one as a parameter). This preserves the "per
// goroutine, independent trace" property spec §5 asks for without a global or a goroutine-local
// map.
package context

import (
	"github.com/GottfriedHerold/ecsca/curves"
	"github.com/GottfriedHerold/ecsca/field"
	"github.com/GottfriedHerold/ecsca/internal/stack"
	"github.com/GottfriedHerold/ecsca/points"
)

// Action records one formula execution: its formula identity, its operand and result points,
// curve parameters it was evaluated against, any error, and the nested Actions completed while
// it was open. A formula-execution Action has no children; a Scope Action collects every
// Execute or Scope call made inside it.
type Action struct {
	// Label names a generic scope opened via Scope (e.g. "multiply", "ltr-iteration"); empty
	// for a formula-execution Action.
	Label    string
	Formula  *curves.Formula
	Inputs   []points.Point
	Params   map[string]field.FE
	Outputs  []points.Point
	Err      error
	Children []*Action
}

// Recorder receives each Action as it completes (pops off the stack), in depth-first
// completion order. Implementations may retain a: once recorded, an Action and its slices are
// never modified again. Implementations should treat a as read-only.
type Recorder interface {
	Record(a *Action)
}

// NopRecorder discards every Action. New(nil) installs it.
type NopRecorder struct{}

func (NopRecorder) Record(*Action) {}

// ObservationContext is a scoped stack of in-flight Actions (spec §4.6). Construct with New;
// every ScalarMultiplier operation records through Execute.
type ObservationContext struct {
	open     stack.Stack[*Action]
	root     []*Action
	recorder Recorder
}

// New constructs an empty ObservationContext. A nil recorder installs NopRecorder.
func New(recorder Recorder) *ObservationContext {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &ObservationContext{open: stack.MakeStack[*Action](), recorder: recorder}
}

// Depth reports the number of currently open (unpopped) frames.
func (c *ObservationContext) Depth() int {
	return c.open.Len()
}

// Roots returns the top-level completed Actions recorded so far, in completion order.
func (c *ObservationContext) Roots() []*Action {
	return c.root
}

// Close reports ErrUnbalancedScope if any frame is still open, letting a caller assert scope
// discipline. Execute and Scope each close the frame they open on every exit path, including
// on error. No multiplier in package mult calls Close.
func (c *ObservationContext) Close() error {
	if !c.open.IsEmpty() {
		return ErrUnbalancedScope
	}
	return nil
}

// Execute evaluates formula against operands and params, recording the attempt as a new Action
// (spec §4.6's execute(formula, *points, **params) -> result_points). The formula's output
// coordinate maps are reconstructed into points.Point values tagged with formula.Coords.
//
// The frame is pushed before evaluation and popped (with its result or error attached) before
// Execute returns on every path, including formula evaluation failure -- callers never need
// their own recover/defer to keep the stack balanced.
func (c *ObservationContext) Execute(formula *curves.Formula, operands []points.Point, params map[string]field.FE) ([]points.Point, error) {
	action := &Action{Formula: formula, Inputs: operands, Params: params}
	c.open.Push(action)
	defer c.pop(action)

	operandsLike := make([]curves.PointLike, len(operands))
	for i, p := range operands {
		operandsLike[i] = p
	}

	coordMaps, err := formula.Evaluate(operandsLike, params)
	if err != nil {
		action.Err = err
		return nil, err
	}
	results := make([]points.Point, len(coordMaps))
	for i, cm := range coordMaps {
		results[i] = points.New(formula.Coords, cm)
	}
	action.Outputs = results
	return results, nil
}

// Scope opens a labeled, non-formula Action (e.g. a ScalarMultiplier wrapping an entire
// `multiply` call, or one loop iteration of it), runs fn, and closes the Action with fn's
// error before returning it. Every Execute call made by fn nests as a child of this Action,
// giving the recorded tree real structure beyond a flat list of formula executions. The Action
// is closed even if fn panics.
func (c *ObservationContext) Scope(label string, fn func() error) (err error) {
	action := &Action{Label: label}
	c.open.Push(action)
	defer func() {
		action.Err = err
		c.pop(action)
	}()
	return fn()
}

// pop removes action from the open stack (which must be its top frame -- Execute guarantees
// this via strict LIFO nesting) and attaches it to its parent's Children, or to c.root if there
// is no open parent, then hands it to the recorder.
func (c *ObservationContext) pop(action *Action) {
	popped := c.open.Pop()
	if popped != action {
		panic(ErrorPrefix + "scope discipline violated: popped frame does not match the frame Execute pushed")
	}
	if c.open.IsEmpty() {
		c.root = append(c.root, action)
	} else {
		parent := c.open.Top()
		(*parent).Children = append((*parent).Children, action)
	}
	c.recorder.Record(action)
}
