// Package equation compiles radius equations for the shaped layouter.
//
// An equation is the right-hand side of r = f(angle), written as a Go
// expression. The variable angle is in radians and the math package is in
// scope:
//
//	1
//	1 + 0.5*math.Cos(angle)
//	math.Abs(math.Sin(2*angle)) + 0.2
//
// Expressions are checked before they reach the interpreter. Only numeric
// literals, the identifier angle, arithmetic operators, parentheses and
// selectors on math are accepted, so an equation cannot loop, allocate or
// reach outside the math package. Go constant rules apply: 1/2 is zero.
package equation

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
)

// Variable is the identifier an equation uses for the ray angle.
const Variable = "angle"

const source = `package main

import "math"

var _ = math.Pi

func F(%s float64) float64 { return float64(%s) }
`

// Parse compiles expr into a radius function.
func Parse(expr string) (cloud.RadiusFunc, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidEquation, "radius equation is empty")
	}

	tree, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEquation, err, "'%s' is not a radius equation", expr)
	}
	if err := check(tree); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEquation, err, "'%s' is not a radius equation", expr)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(interp.Exports{"math/math": stdlib.Symbols["math/math"]}); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load math symbols")
	}
	if _, err := i.Eval(fmt.Sprintf(source, Variable, expr)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidEquation, err, "'%s' is not a radius equation", expr)
	}
	v, err := i.Eval("main.F")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "radius function not found")
	}
	fn, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, errors.New(errors.ErrCodeInternal, "radius function has type %s", v.Type())
	}
	return cloud.RadiusFunc(fn), nil
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) cloud.RadiusFunc {
	fn, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return fn
}

func check(n ast.Expr) error {
	switch n := n.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			return fmt.Errorf("unexpected literal %s", n.Value)
		}
		return nil
	case *ast.Ident:
		if n.Name != Variable {
			return fmt.Errorf("unknown identifier %q (use %q)", n.Name, Variable)
		}
		return nil
	case *ast.ParenExpr:
		return check(n.X)
	case *ast.UnaryExpr:
		if n.Op != token.ADD && n.Op != token.SUB {
			return fmt.Errorf("unsupported operator %s", n.Op)
		}
		return check(n.X)
	case *ast.BinaryExpr:
		switch n.Op {
		case token.ADD, token.SUB, token.MUL, token.QUO:
		default:
			return fmt.Errorf("unsupported operator %s", n.Op)
		}
		if err := check(n.X); err != nil {
			return err
		}
		return check(n.Y)
	case *ast.SelectorExpr:
		return checkMath(n)
	case *ast.CallExpr:
		sel, ok := n.Fun.(*ast.SelectorExpr)
		if !ok {
			return fmt.Errorf("only math functions can be called")
		}
		if err := checkMath(sel); err != nil {
			return err
		}
		if n.Ellipsis.IsValid() {
			return fmt.Errorf("variadic calls are not supported")
		}
		for _, arg := range n.Args {
			if err := check(arg); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unsupported expression %T", n)
}

func checkMath(sel *ast.SelectorExpr) error {
	pkg, ok := sel.X.(*ast.Ident)
	if !ok || pkg.Name != "math" {
		return fmt.Errorf("only the math package is available")
	}
	if !sel.Sel.IsExported() {
		return fmt.Errorf("math.%s is not exported", sel.Sel.Name)
	}
	return nil
}
