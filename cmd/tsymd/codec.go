package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/exprmath/tsym"
)

// exprJSON is the wire shape decodeExpr/encodeExpr agree on. Exactly one of
// Num/Sym/Const/Sum/Mul/Pow/Fn is populated per node.
type exprJSON struct {
	Num      string             `json:"num,omitempty"`
	Sym      string             `json:"sym,omitempty"`
	Positive bool               `json:"positive,omitempty"`
	Const    string             `json:"const,omitempty"`
	Sum      []json.RawMessage  `json:"sum,omitempty"`
	Mul      []json.RawMessage  `json:"mul,omitempty"`
	Pow      *powJSON           `json:"pow,omitempty"`
	Fn       string             `json:"fn,omitempty"`
	Args     []json.RawMessage  `json:"args,omitempty"`
}

type powJSON struct {
	Base json.RawMessage `json:"base"`
	Exp  json.RawMessage `json:"exp"`
}

// decodeExpr builds a *tsym.Expr from its JSON tree form, running every
// node through tsym's canonical constructors as it goes — the wire format
// has no notion of "already simplified," the constructors always canonicalize.
func decodeExpr(raw json.RawMessage) (*tsym.Expr, error) {
	var node exprJSON
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode expr: %w", err)
	}

	switch {
	case node.Num != "":
		return decodeNum(node.Num)

	case node.Sym != "":
		return tsym.Symbol(node.Sym, node.Positive), nil

	case node.Const != "":
		switch node.Const {
		case "pi":
			return tsym.ConstantPi(), nil
		case "e":
			return tsym.ConstantE(), nil
		default:
			return nil, fmt.Errorf("unknown constant %q", node.Const)
		}

	case node.Sum != nil:
		terms, err := decodeList(node.Sum)
		if err != nil {
			return nil, err
		}
		return tsym.Sum(terms...), nil

	case node.Mul != nil:
		factors, err := decodeList(node.Mul)
		if err != nil {
			return nil, err
		}
		return tsym.Product(factors...), nil

	case node.Pow != nil:
		base, err := decodeExpr(node.Pow.Base)
		if err != nil {
			return nil, err
		}
		exp, err := decodeExpr(node.Pow.Exp)
		if err != nil {
			return nil, err
		}
		return tsym.Power(base, exp), nil

	case node.Fn != "":
		args, err := decodeList(node.Args)
		if err != nil {
			return nil, err
		}
		return decodeFunction(node.Fn, args)

	default:
		return nil, fmt.Errorf("expr node has no recognized field")
	}
}

func decodeList(raw []json.RawMessage) ([]*tsym.Expr, error) {
	out := make([]*tsym.Expr, len(raw))
	for i, r := range raw {
		e, err := decodeExpr(r)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// decodeNum accepts either an integer literal or a "p/q" fraction literal.
func decodeNum(s string) (*tsym.Expr, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		p, err1 := strconv.ParseInt(s[:i], 10, 64)
		q, err2 := strconv.ParseInt(s[i+1:], 10, 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("invalid fraction literal %q", s)
		}
		return tsym.Frac(p, q), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid numeric literal %q", s)
	}
	return tsym.Int(n), nil
}

func decodeFunction(name string, args []*tsym.Expr) (*tsym.Expr, error) {
	one := func() (*tsym.Expr, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes exactly one argument", name)
		}
		return args[0], nil
	}
	switch name {
	case "log":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Log(a), nil
	case "sin":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Sin(a), nil
	case "cos":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Cos(a), nil
	case "tan":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Tan(a), nil
	case "asin":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Asin(a), nil
	case "acos":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Acos(a), nil
	case "atan":
		a, err := one()
		if err != nil {
			return nil, err
		}
		return tsym.Atan(a), nil
	case "atan2":
		if len(args) != 2 {
			return nil, fmt.Errorf("atan2 takes exactly two arguments")
		}
		return tsym.Atan2(args[0], args[1]), nil
	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}

// printExpr is a minimal, demo-only infix printer — the real print engine
// is an external collaborator per §6 and is not specified here.
func printExpr(e *tsym.Expr) string {
	switch e.KindOf() {
	case tsym.KindUndefined:
		return "undefined"
	case tsym.KindNumeric:
		return e.NumericString()
	case tsym.KindConstant:
		return e.ConstKind().String()
	case tsym.KindSymbol:
		return e.Name().String()
	case tsym.KindSum:
		parts := make([]string, len(e.Operands()))
		for i, o := range e.Operands() {
			parts[i] = printExpr(o)
		}
		return "(" + strings.Join(parts, " + ") + ")"
	case tsym.KindProduct:
		parts := make([]string, len(e.Operands()))
		for i, o := range e.Operands() {
			parts[i] = printExpr(o)
		}
		return "(" + strings.Join(parts, "*") + ")"
	case tsym.KindPower:
		return fmt.Sprintf("(%s)^(%s)", printExpr(e.Base()), printExpr(e.Exp()))
	case tsym.KindFunction:
		parts := make([]string, len(e.Operands()))
		for i, o := range e.Operands() {
			parts[i] = printExpr(o)
		}
		return e.FuncKind().String() + "(" + strings.Join(parts, ", ") + ")"
	default:
		return "?"
	}
}
