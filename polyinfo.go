package tsym

import (
	"math/big"
	"sort"
)

// termsOf returns the top-level additive terms of e: its operands if e is a
// Sum, or the singleton {e} otherwise — the polynomial analogue of
// productFactors for the additive side.
func termsOf(e *Expr) []*Expr {
	if e.kind == KindSum {
		return e.ops
	}
	return []*Expr{e}
}

// isInputValid is the recursive validity check of §4.9: every node must be
// a Symbol, a rational Numeric, a Sum/Product of valid operands, or a Power
// whose base is valid and whose exponent is a positive machine-int-sized
// integer. isInputValid(u,v) additionally rejects the case where both are
// zero.
func isInputValid(u, v *Expr) bool {
	if u.IsZero() && v.IsZero() {
		return false
	}
	return isValidPolyNode(u) && isValidPolyNode(v)
}

func isValidPolyNode(e *Expr) bool {
	switch e.kind {
	case KindSymbol:
		return true
	case KindNumeric:
		return !e.num.IsDouble()
	case KindSum, KindProduct:
		for _, o := range e.ops {
			if !isValidPolyNode(o) {
				return false
			}
		}
		return true
	case KindPower:
		if !isValidPolyNode(e.base) {
			return false
		}
		if e.exp.kind != KindNumeric || !e.exp.num.IsInteger() {
			return false
		}
		n := e.exp.num
		return n.Sign() > 0 && n.Numerator().IsInt64()
	default:
		return false
	}
}

// degree returns the highest power of v appearing in e (0 if v doesn't
// appear at all), summing exponents multiplicatively across a term's
// factors and taking the max across additive terms (§4.9, §6 degree(var)).
func degree(e, v *Expr) int64 {
	best := int64(0)
	first := true
	for _, t := range termsOf(e) {
		d := termDegree(t, v)
		if first || d > best {
			best = d
			first = false
		}
	}
	return best
}

// minDegree returns the lowest power of v appearing among e's additive
// terms (§6 minDegree(var)).
func minDegree(e, v *Expr) int64 {
	best := int64(0)
	first := true
	for _, t := range termsOf(e) {
		d := termDegree(t, v)
		if first || d < best {
			best = d
			first = false
		}
	}
	return best
}

func termDegree(term, v *Expr) int64 {
	var total int64
	for _, f := range term.productFactors() {
		if f.Equal(v) {
			total++
			continue
		}
		if f.kind == KindPower && f.base.Equal(v) && f.exp.kind == KindNumeric && f.exp.num.IsInteger() {
			total += f.exp.num.IntValue()
		}
	}
	return total
}

// coeff returns the coefficient of v^n in e: the sum, over every additive
// term whose v-degree is exactly n, of that term with the v^n factor
// stripped out (§6 coeff(var,exp)).
func coeff(e, v *Expr, n int64) *Expr {
	var out []*Expr
	for _, t := range termsOf(e) {
		if termDegree(t, v) != n {
			continue
		}
		out = append(out, stripVarPower(t, v, n))
	}
	return Sum(out...)
}

// stripVarPower removes exactly n powers of v from term's factor list,
// returning the product of what remains.
func stripVarPower(term, v *Expr, n int64) *Expr {
	remaining := n
	var rest []*Expr
	for _, f := range term.productFactors() {
		switch {
		case remaining > 0 && f.Equal(v):
			remaining--
		case remaining > 0 && f.kind == KindPower && f.base.Equal(v) && f.exp.kind == KindNumeric && f.exp.num.IsInteger():
			e := f.exp.num.IntValue()
			if e <= remaining {
				remaining -= e
			} else {
				rest = append(rest, Power(v, Int(e-remaining)))
				remaining = 0
			}
		default:
			rest = append(rest, f)
		}
	}
	return Product(rest...)
}

func termHasVar(term, v *Expr) bool {
	for _, f := range term.productFactors() {
		if f.Equal(v) {
			return true
		}
		if f.kind == KindPower && f.base.Equal(v) {
			return true
		}
	}
	return false
}

// leadingCoeff is coeff(e, v, degree(e,v)).
func leadingCoeff(e, v *Expr) *Expr { return coeff(e, v, degree(e, v)) }

// symbolSet collects the distinct symbols occurring anywhere in e.
func symbolSet(e *Expr, seen map[string]*Expr) {
	switch e.kind {
	case KindSymbol:
		seen[e.Name().String()] = e
	case KindSum, KindProduct:
		for _, o := range e.ops {
			symbolSet(o, seen)
		}
	case KindPower:
		symbolSet(e.base, seen)
		symbolSet(e.exp, seen)
	case KindFunction:
		for _, o := range e.ops {
			symbolSet(o, seen)
		}
	}
}

// listOfSymbols is §4.9's `L` builder: the union of symbols in u and v,
// ordered by ComparePolyVariables — variables common to both, smallest
// min(deg_u,deg_v) first, then variables present in only one, ties broken
// by name.
func listOfSymbols(u, v *Expr) []*Expr {
	seen := make(map[string]*Expr)
	symbolSet(u, seen)
	symbolSet(v, seen)

	syms := make([]*Expr, 0, len(seen))
	for _, s := range seen {
		syms = append(syms, s)
	}

	key := func(s *Expr) (common bool, rank int64) {
		du, dv := degree(u, s), degree(v, s)
		hu := du > 0 || termHasVar(u, s) || u.Equal(s)
		hv := dv > 0 || termHasVar(v, s) || v.Equal(s)
		if hu && hv {
			m := du
			if dv < m {
				m = dv
			}
			return true, m
		}
		return false, 0
	}

	sort.Slice(syms, func(i, j int) bool {
		ci, ri := key(syms[i])
		cj, rj := key(syms[j])
		if ci != cj {
			return ci // common-to-both sorts before only-in-one
		}
		if ci && ri != rj {
			return ri < rj
		}
		return syms[i].Name().Less(syms[j].Name())
	})
	return syms
}

// integerContent returns the integer GCD of a polynomial's numeric
// coefficients (glossary "Content (integer)"). Coefficients are assumed
// already integer-valued, the normal case once a rational polynomial has
// had its denominators cleared by the caller (§4.11's content/primitive
// split always operates on such inputs).
func integerContent(e *Expr) Number {
	g := big.NewInt(0)
	for _, t := range termsOf(e) {
		c := t.NumericTerm().num
		g = GCDInt(g, c.Numerator())
	}
	if g.Sign() == 0 {
		return RationalFromInt64(1)
	}
	return RationalFromBigInts1(g, big.NewInt(1))
}

// Content is the public integer-content query (§4.11, glossary).
func Content(e *Expr) *Expr { return NumberExpr(integerContent(e)) }

// UnitPart is the sign (+1/-1) that, multiplied by Content and
// PrimitivePart, reconstructs e, chosen so PrimitivePart's leading
// coefficient (in the lexicographically-first variable of e) is positive.
func UnitPart(e *Expr) *Expr {
	seen := make(map[string]*Expr)
	symbolSet(e, seen)
	if len(seen) == 0 {
		if isKnownNegative(e) {
			return Int(-1)
		}
		return Int(1)
	}
	var v *Expr
	for _, s := range seen {
		if v == nil || s.Name().Less(v.Name()) {
			v = s
		}
	}
	lc := leadingCoeff(e, v)
	if isKnownNegative(lc) {
		return Int(-1)
	}
	return Int(1)
}

// PrimitivePart is e divided by UnitPart(e)*Content(e) (§4.11, glossary).
func PrimitivePart(e *Expr) *Expr {
	unit := UnitPart(e)
	content := Content(e)
	divisor := Product(unit, content)
	return Expand(Product(e, Power(divisor, Int(-1))))
}
