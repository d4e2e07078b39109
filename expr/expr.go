// Package expr implements a small arithmetic expression language used to represent the
// right-hand side of a formula assignment (spec §9, FormulaIR): "+ - * / ** ( ) unary-" over
// variable names and integer literals. Each assignment is parsed into an AST once, at
// catalogue-load time, and evaluated repeatedly against a binding environment of field
// elements. This is a purpose-built interpreter, not a general-purpose expression evaluator:
// the grammar is fixed and small by design (spec §9 explicitly forbids embedding a general
// evaluator here).
package expr

import (
	"fmt"
	"math/big"

	"github.com/GottfriedHerold/ecsca/field"
)

// Env is the binding environment an Expr is evaluated against: variable name to field element.
type Env map[string]field.FE

// Expr is a parsed arithmetic expression.
type Expr interface {
	Eval(env Env) (field.FE, error)
	// Vars appends every variable name referenced by this (sub)expression to out and returns
	// the result, for dependency analysis. Nothing outside this package's tests calls it.
	Vars(out []string) []string
	String() string
}

type varExpr struct{ name string }

func (v *varExpr) Eval(env Env) (field.FE, error) {
	val, ok := env[v.name]
	if !ok {
		return field.FE{}, fmt.Errorf("%w: variable %q not bound", ErrUnboundVariable, v.name)
	}
	return val, nil
}
func (v *varExpr) Vars(out []string) []string { return append(out, v.name) }
func (v *varExpr) String() string             { return v.name }

// litExpr is an integer literal. Its modulus is not known until evaluation: it is taken from
// any bound variable already present in the environment (every variable in a formula's
// environment shares the same modulus, per the FE invariant).
type litExpr struct {
	value *big.Int
}

func (l *litExpr) Eval(env Env) (field.FE, error) {
	for _, v := range env {
		if v.IsUndefined() {
			continue
		}
		return field.New(l.value, v.Modulus()), nil
	}
	return field.FE{}, fmt.Errorf("%w: cannot resolve modulus for literal %s (empty environment)", ErrUnboundVariable, l.value.String())
}
func (l *litExpr) Vars(out []string) []string { return out }
func (l *litExpr) String() string             { return l.value.String() }

type unaryExpr struct {
	op string // "-"
	x  Expr
}

func (u *unaryExpr) Eval(env Env) (field.FE, error) {
	x, err := u.x.Eval(env)
	if err != nil {
		return field.FE{}, err
	}
	return x.Neg()
}
func (u *unaryExpr) Vars(out []string) []string { return u.x.Vars(out) }
func (u *unaryExpr) String() string             { return "-" + u.x.String() }

type binExpr struct {
	op   string // "+", "-", "*", "/", "**"
	x, y Expr
}

func (b *binExpr) Vars(out []string) []string {
	out = b.x.Vars(out)
	return b.y.Vars(out)
}
func (b *binExpr) String() string {
	return "(" + b.x.String() + " " + b.op + " " + b.y.String() + ")"
}

func (b *binExpr) Eval(env Env) (field.FE, error) {
	x, err := b.x.Eval(env)
	if err != nil {
		return field.FE{}, err
	}
	switch b.op {
	case "**":
		y, err := b.y.Eval(env)
		if err != nil {
			return field.FE{}, err
		}
		return x.Pow(y.Int())
	}
	y, err := b.y.Eval(env)
	if err != nil {
		return field.FE{}, err
	}
	switch b.op {
	case "+":
		return x.Add(y)
	case "-":
		return x.Sub(y)
	case "*":
		return x.Mul(y)
	case "/":
		return x.Div(y)
	default:
		return field.FE{}, fmt.Errorf("%w: %q", ErrUnknownOperator, b.op)
	}
}
