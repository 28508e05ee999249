package tsym

// Compare implements the total, deterministic order relation of §4.4 that
// drives canonical operand sorting for Sum and Product. It returns <0, 0,
// >0 as a < b, a == b, a > b.
func Compare(a, b *Expr) int {
	if a.kind != b.kind {
		return comparePrecedence(a, b)
	}
	switch a.kind {
	case KindNumeric:
		return a.num.Cmp(b.num)
	case KindConstant:
		return int(a.cst) - int(b.cst)
	case KindSymbol:
		return a.sym.name.Compare(b.sym.name)
	case KindFunction:
		if a.fn != b.fn {
			return int(a.fn) - int(b.fn)
		}
		return compareOperandsFromRear(a.ops, b.ops)
	case KindSum, KindProduct:
		return compareOperandsFromRear(a.ops, b.ops)
	case KindPower:
		if c := Compare(a.base, b.base); c != 0 {
			return c
		}
		return Compare(a.exp, b.exp)
	case KindUndefined:
		return 0
	}
	return 0
}

// compareOperandsFromRear is §4.4 rule 3: lexicographic comparison of two
// operand lists starting from the LAST operand, so that a*b sorts before
// a*c. Grounded on the original's src/baseptrlistfct.cpp, which keeps this
// as a standalone two-list compare rather than inlining it into the sum/
// product simplifiers.
func compareOperandsFromRear(a, b []*Expr) int {
	i, j := len(a)-1, len(b)-1
	for i >= 0 && j >= 0 {
		if c := Compare(a[i], b[j]); c != 0 {
			return c
		}
		i--
		j--
	}
	return len(a) - len(b)
}

// comparePrecedence handles a.kind != b.kind: the fixed precedence of §4.4
// rule 4, refined so a Product compares against a non-Product by treating
// the latter as a singleton factor list, and a Power compares against a
// non-Power by treating the latter as Power(x, 1).
func comparePrecedence(a, b *Expr) int {
	if a.kind == KindProduct || b.kind == KindProduct {
		return compareOperandsFromRear(a.productFactors(), b.productFactors())
	}
	if a.kind == KindPower || b.kind == KindPower {
		if c := Compare(a.Base(), b.Base()); c != 0 {
			return c
		}
		if c := Compare(a.Exp(), b.Exp()); c != 0 {
			return c
		}
	}
	return int(a.kind) - int(b.kind)
}

// Less reports a < b under the order relation.
func Less(a, b *Expr) bool { return Compare(a, b) < 0 }

// doPermute is true iff b < a under the order relation (§4.4).
func doPermute(a, b *Expr) bool { return Compare(b, a) < 0 }
