package tsym

import "math"

// FuncKind discriminates the concrete Function categories of §3:
// Logarithm and the six Trigonometric variants, plus the two-operand
// atan2.
type FuncKind uint8

const (
	FuncLog FuncKind = iota
	FuncSin
	FuncCos
	FuncTan
	FuncAsin
	FuncAcos
	FuncAtan
	FuncAtan2
)

func (f FuncKind) String() string {
	switch f {
	case FuncLog:
		return "log"
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncTan:
		return "tan"
	case FuncAsin:
		return "asin"
	case FuncAcos:
		return "acos"
	case FuncAtan:
		return "atan"
	case FuncAtan2:
		return "atan2"
	default:
		return "?"
	}
}

func newFunction(fn FuncKind, ops ...*Expr) *Expr {
	for _, o := range ops {
		if o.kind == KindUndefined {
			return Undefined()
		}
	}
	return &Expr{kind: KindFunction, fn: fn, ops: ops}
}

// Log is the natural logarithm (§6 log(x)). log(1)=0 and log(e)=1 are
// trivial reductions; a non-positive argument is DomainInvalid (real
// logarithm is undefined there).
func Log(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsOne() {
		return Int(0)
	}
	if isConstantE(x) {
		return Int(1)
	}
	if x.kind == KindNumeric && x.num.Sign() <= 0 {
		logDomainInvalid("log", errDomainLogNonPositive)
		return Undefined()
	}
	return newFunction(FuncLog, x)
}

// Sin/Cos/Tan/Asin/Acos/Atan/Atan2 are the trigonometric constructors of
// §6, each reducing the handful of trivial cases a symbolic kernel is
// expected to know without a general simplification pass.
func Sin(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsZero() {
		return Int(0)
	}
	return newFunction(FuncSin, x)
}

func Cos(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsZero() {
		return Int(1)
	}
	return newFunction(FuncCos, x)
}

func Tan(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsZero() {
		return Int(0)
	}
	return newFunction(FuncTan, x)
}

func Asin(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsZero() {
		return Int(0)
	}
	if x.kind == KindNumeric && (x.num.Cmp(RationalFromInt64(1)) > 0 || x.num.Cmp(RationalFromInt64(-1)) < 0) {
		logDomainInvalid("asin", errDomainAsinRange)
		return Undefined()
	}
	return newFunction(FuncAsin, x)
}

func Acos(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsOne() {
		return Int(0)
	}
	if x.kind == KindNumeric && (x.num.Cmp(RationalFromInt64(1)) > 0 || x.num.Cmp(RationalFromInt64(-1)) < 0) {
		logDomainInvalid("acos", errDomainAcosRange)
		return Undefined()
	}
	return newFunction(FuncAcos, x)
}

func Atan(x *Expr) *Expr {
	if x.kind == KindUndefined {
		return Undefined()
	}
	if x.IsZero() {
		return Int(0)
	}
	return newFunction(FuncAtan, x)
}

func Atan2(y, x *Expr) *Expr {
	if y.kind == KindUndefined || x.kind == KindUndefined {
		return Undefined()
	}
	if y.IsZero() && x.IsZero() {
		logDomainInvalid("atan2", errDomainAtan2Origin)
		return Undefined()
	}
	return newFunction(FuncAtan2, y, x)
}

// evalFunctionNumeric backs NumericEval for Function nodes: evaluates the
// operand(s) numerically (if possible) and applies the corresponding
// math.* routine. The result is always a double — these functions are
// almost never rational-valued.
func evalFunctionNumeric(e *Expr) (Number, bool) {
	args := make([]float64, len(e.ops))
	for i, o := range e.ops {
		v, ok := o.NumericEval()
		if !ok {
			return Number{}, false
		}
		args[i] = v.Float64()
	}
	var r float64
	switch e.fn {
	case FuncLog:
		if args[0] <= 0 {
			return Number{}, false
		}
		r = math.Log(args[0])
	case FuncSin:
		r = math.Sin(args[0])
	case FuncCos:
		r = math.Cos(args[0])
	case FuncTan:
		r = math.Tan(args[0])
	case FuncAsin:
		r = math.Asin(args[0])
	case FuncAcos:
		r = math.Acos(args[0])
	case FuncAtan:
		r = math.Atan(args[0])
	case FuncAtan2:
		r = math.Atan2(args[0], args[1])
	default:
		return Number{}, false
	}
	return DoubleFromFloat64(r), true
}
