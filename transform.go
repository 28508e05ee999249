package tsym

// expandCache memoizes Expand by the structural hash of its argument's
// factor list, per §4.8: "push Power(Sum, n) and Product containing Sum
// factors into explicit sum-of-products... memoized on the factor list."
var expandCache = newMemoMap[uint64, *Expr]()

// Expand is component H's distributive-expansion operation (§4.8): it
// rewrites Power(Sum, n) for small non-negative integer n and any Product
// containing a Sum factor into an explicit sum of products, recursively.
// Everything else is rebuilt through the canonical constructors unchanged.
func Expand(e *Expr) *Expr {
	if e.kind == KindUndefined {
		return Undefined()
	}

	key := expandCacheKey(e)
	if v, ok := expandCache.get(key); ok {
		return v
	}

	result := expandOnce(e)
	expandCache.put(key, result)
	return result
}

// expandCacheKey hashes the factor list the way §4.8 describes the memo
// key: a Product's operands define the cache key directly; any other node
// is keyed as the singleton factor list {e}, matching productFactors().
func expandCacheKey(e *Expr) uint64 {
	h := fnvSeed
	for _, f := range e.productFactors() {
		h = hashCombine(h, f.Hash())
	}
	return h
}

func expandOnce(e *Expr) *Expr {
	switch e.kind {
	case KindSum:
		terms := make([]*Expr, len(e.ops))
		for i, t := range e.ops {
			terms[i] = Expand(t)
		}
		return Sum(terms...)

	case KindPower:
		base := Expand(e.base)
		if base.kind == KindSum && e.exp.kind == KindNumeric && e.exp.num.IsInteger() {
			n := e.exp.num.IntValue()
			if n >= 0 && n <= maxExpandPowerDegree {
				return Expand(expandSumPower(base, n))
			}
		}
		return Power(base, Expand(e.exp))

	case KindProduct:
		factors := make([]*Expr, len(e.ops))
		hasSum := false
		for i, f := range e.ops {
			factors[i] = Expand(f)
			if factors[i].kind == KindSum {
				hasSum = true
			}
		}
		if !hasSum {
			return Product(factors...)
		}
		return Expand(distributeProduct(factors))

	case KindFunction:
		args := make([]*Expr, len(e.ops))
		for i, a := range e.ops {
			args[i] = Expand(a)
		}
		return rebuildFunction(e.fn, args)

	default:
		return e
	}
}

// maxExpandPowerDegree bounds binomial expansion the way §4.8 implies a
// symbolic kernel must: an unbounded integer exponent would make Expand
// produce an exponentially large sum for no practical benefit.
const maxExpandPowerDegree = 64

// expandSumPower expands (t1+...+tk)^n by repeated multiplication; n is
// small (bounded by maxExpandPowerDegree) so this stays linear in the
// number of multiplications rather than needing multinomial coefficients.
func expandSumPower(base *Expr, n int64) *Expr {
	if n == 0 {
		return Int(1)
	}
	result := base
	for i := int64(1); i < n; i++ {
		result = distributeProduct([]*Expr{result, base})
	}
	return result
}

// distributeProduct multiplies out every Sum factor against every other
// factor: the cross product of each Sum's terms (non-Sum factors act as a
// one-term "sum"), producing a flat Sum of Products.
func distributeProduct(factors []*Expr) *Expr {
	termLists := make([][]*Expr, len(factors))
	for i, f := range factors {
		if f.kind == KindSum {
			termLists[i] = f.ops
		} else {
			termLists[i] = []*Expr{f}
		}
	}

	combos := [][]*Expr{{}}
	for _, terms := range termLists {
		var next [][]*Expr
		for _, c := range combos {
			for _, t := range terms {
				branch := append(append([]*Expr{}, c...), t)
				next = append(next, branch)
			}
		}
		combos = next
	}

	products := make([]*Expr, len(combos))
	for i, c := range combos {
		products[i] = Product(c...)
	}
	return Sum(products...)
}

func rebuildFunction(fn FuncKind, args []*Expr) *Expr {
	switch fn {
	case FuncLog:
		return Log(args[0])
	case FuncSin:
		return Sin(args[0])
	case FuncCos:
		return Cos(args[0])
	case FuncTan:
		return Tan(args[0])
	case FuncAsin:
		return Asin(args[0])
	case FuncAcos:
		return Acos(args[0])
	case FuncAtan:
		return Atan(args[0])
	case FuncAtan2:
		return Atan2(args[0], args[1])
	default:
		return Undefined()
	}
}

// Subst is component H's structural substitution (§4.8): every subterm
// structurally equal to from is replaced by to, then the result is rebuilt
// bottom-up through the canonical constructors so the replacement is fully
// re-simplified in context.
func Subst(e, from, to *Expr) *Expr {
	if e.kind == KindUndefined {
		return Undefined()
	}
	if e.Equal(from) {
		return to
	}
	switch e.kind {
	case KindSum:
		terms := make([]*Expr, len(e.ops))
		for i, t := range e.ops {
			terms[i] = Subst(t, from, to)
		}
		return Sum(terms...)
	case KindProduct:
		factors := make([]*Expr, len(e.ops))
		for i, f := range e.ops {
			factors[i] = Subst(f, from, to)
		}
		return Product(factors...)
	case KindPower:
		return Power(Subst(e.base, from, to), Subst(e.exp, from, to))
	case KindFunction:
		args := make([]*Expr, len(e.ops))
		for i, a := range e.ops {
			args[i] = Subst(a, from, to)
		}
		return rebuildFunction(e.fn, args)
	default:
		return e
	}
}

// Diff is component H's symbolic differentiation (§4.8): the standard
// recursive rules (sum rule, product rule, power rule with the general
// d/dx(f^g) = f^g * (g'*log(f) + g*f'/f) form, chain rule through Function
// nodes) with respect to the symbol x.
func Diff(e, x *Expr) *Expr {
	if e.kind == KindUndefined {
		return Undefined()
	}
	if !e.Has(x) {
		return Int(0)
	}
	if e.Equal(x) {
		return Int(1)
	}

	switch e.kind {
	case KindNumeric, KindConstant, KindSymbol:
		return Int(0)

	case KindSum:
		terms := make([]*Expr, len(e.ops))
		for i, t := range e.ops {
			terms[i] = Diff(t, x)
		}
		return Sum(terms...)

	case KindProduct:
		terms := make([]*Expr, len(e.ops))
		for i := range e.ops {
			factors := make([]*Expr, len(e.ops))
			copy(factors, e.ops)
			factors[i] = Diff(e.ops[i], x)
			terms[i] = Product(factors...)
		}
		return Sum(terms...)

	case KindPower:
		return diffPower(e, x)

	case KindFunction:
		return diffFunction(e, x)

	default:
		return Undefined()
	}
}

// diffPower handles d/dx(f^g) by the case the exponent actually is, mirroring
// how a symbolic kernel avoids the general log-derivative form (which
// introduces log(f) even when f doesn't depend on x) whenever it can.
func diffPower(e, x *Expr) *Expr {
	f, g := e.base, e.exp

	if !g.Has(x) {
		// Plain power rule: d/dx(f^g) = g * f^(g-1) * f'.
		return Product(g, Power(f, Sum(g, Int(-1))), Diff(f, x))
	}
	if !f.Has(x) {
		// Exponential rule: d/dx(c^g) = c^g * log(c) * g'.
		return Product(e, Log(f), Diff(g, x))
	}
	// General case: d/dx(f^g) = f^g * (g' * log(f) + g * f' / f).
	return Product(e, Sum(Product(Diff(g, x), Log(f)), Product(g, Diff(f, x), Power(f, Int(-1)))))
}

func diffFunction(e, x *Expr) *Expr {
	u := e.ops[0]
	du := Diff(u, x)
	switch e.fn {
	case FuncLog:
		return Product(du, Power(u, Int(-1)))
	case FuncSin:
		return Product(du, Cos(u))
	case FuncCos:
		return Product(Int(-1), du, Sin(u))
	case FuncTan:
		return Product(du, Power(Cos(u), Int(-2)))
	case FuncAsin:
		return Product(du, Power(Sum(Int(1), Product(Int(-1), Power(u, Int(2)))), Frac(-1, 2)))
	case FuncAcos:
		return Product(Int(-1), du, Power(Sum(Int(1), Product(Int(-1), Power(u, Int(2)))), Frac(-1, 2)))
	case FuncAtan:
		return Product(du, Power(Sum(Int(1), Power(u, Int(2))), Int(-1)))
	case FuncAtan2:
		// d/dv atan2(y,x) = (x*y' - y*x') / (x^2+y^2); y=e.ops[0], x=e.ops[1].
		y, xArg := e.ops[0], e.ops[1]
		dy, dx := Diff(y, x), Diff(xArg, x)
		numer := Sum(Product(xArg, dy), Product(Int(-1), y, dx))
		denom := Sum(Power(xArg, Int(2)), Power(y, Int(2)))
		return Product(numer, Power(denom, Int(-1)))
	default:
		return Undefined()
	}
}
