// Command examplemult wires a named curve and a ScalarMultiplier together and prints the
// result in the catalogue's coordinate system; with -trace it also prints a recorded trace of
// every formula execution. It exists to demonstrate the
// catalogue/mult/context packages end to end, not as a production tool.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/GottfriedHerold/ecsca/catalogue"
	"github.com/GottfriedHerold/ecsca/context"
	"github.com/GottfriedHerold/ecsca/curve"
	"github.com/GottfriedHerold/ecsca/internal/callcounters"
	"github.com/GottfriedHerold/ecsca/mult"
	"github.com/GottfriedHerold/ecsca/points"
)

// scalarMultiplier is the common surface every mult.New*Multiplier constructor satisfies.
type scalarMultiplier interface {
	Init(group *curve.Group, point points.Point) error
	Multiply(ctx *context.ObservationContext, k *big.Int) (points.Point, error)
}

func main() {
	curveName := flag.String("curve", "secp128r1", "named curve: secp128r1 or curve25519")
	algorithm := flag.String("algorithm", "ltr", "multiplier: ltr, rtl, coron, ladder, simple-ladder, binary-naf, window-naf")
	scalarFlag := flag.String("scalar", "2", "scalar k, decimal")
	windowWidth := flag.Int("window", 4, "window width W, only used by window-naf")
	trace := flag.Bool("trace", false, "dump the full recorded action trace")
	countOps := flag.Bool("callcounters", false, "report per-formula field-operation counts")
	flag.Parse()

	if err := run(*curveName, *algorithm, *scalarFlag, *windowWidth, *trace, *countOps); err != nil {
		fmt.Fprintln(os.Stderr, "examplemult:", err)
		os.Exit(1)
	}
}

func run(curveName, algorithm, scalarStr string, windowWidth int, trace, countOps bool) error {
	k, ok := new(big.Int).SetString(scalarStr, 10)
	if !ok {
		return fmt.Errorf("bad scalar %q", scalarStr)
	}

	var nc *catalogue.NamedCurve
	var err error
	switch curveName {
	case "secp128r1":
		nc, err = catalogue.Secp128r1()
	case "curve25519":
		nc, err = catalogue.Curve25519()
	default:
		return fmt.Errorf("unknown curve %q", curveName)
	}
	if err != nil {
		return fmt.Errorf("building curve: %w", err)
	}

	point, err := nc.GeneratorIn()
	if err != nil {
		return fmt.Errorf("converting generator: %w", err)
	}

	m, err := newMultiplier(algorithm, nc.Formulas, windowWidth)
	if err != nil {
		return err
	}
	if err := m.Init(nc.Group, point); err != nil {
		return fmt.Errorf("initializing multiplier: %w", err)
	}

	dump := &context.DumpRecorder{}
	counters := &catalogue.CallCounterRecorder{CurveName: curveName}
	ctx := context.New(multiRecorder{dump, counters})
	result, err := m.Multiply(ctx, k)
	if err != nil {
		return fmt.Errorf("multiplying: %w", err)
	}
	if err := ctx.Close(); err != nil {
		return fmt.Errorf("closing trace: %w", err)
	}

	slog.Info("computed scalar multiple", "curve", curveName, "algorithm", algorithm, "scalar", k.String())
	printResult(result)

	if trace {
		fmt.Println("--- trace ---")
		for _, line := range dump.Lines {
			fmt.Println(line)
		}
	}
	if countOps {
		fmt.Println("--- field operation counts ---")
		for _, report := range callcounters.ReportCallCounters(true, true) {
			fmt.Printf("%s: %d\n", report.Tag, report.Calls)
		}
	}
	return nil
}

// multiRecorder fans out each recorded Action to every wrapped context.Recorder in order.
type multiRecorder []context.Recorder

func (m multiRecorder) Record(a *context.Action) {
	for _, r := range m {
		r.Record(a)
	}
}

func printResult(p points.Point) {
	if p.IsInfinity() {
		fmt.Println("point at infinity")
		return
	}
	for name, val := range p.Coords() {
		fmt.Printf("%s = %s\n", name, val.String())
	}
}

func newMultiplier(algorithm string, formulas mult.Formulas, windowWidth int) (scalarMultiplier, error) {
	switch algorithm {
	case "ltr":
		return mult.NewLTRMultiplier(formulas, true, false)
	case "rtl":
		return mult.NewRTLMultiplier(formulas, true, false)
	case "coron":
		return mult.NewCoronMultiplier(formulas, true)
	case "ladder":
		return mult.NewLadderMultiplier(formulas, true)
	case "simple-ladder":
		return mult.NewSimpleLadderMultiplier(formulas, true, false)
	case "binary-naf":
		return mult.NewBinaryNAFMultiplier(formulas, true)
	case "window-naf":
		return mult.NewWindowNAFMultiplier(formulas, true, windowWidth, false)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}
