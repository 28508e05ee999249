package tsym

// Power is the canonical constructor of component G (§4.7, §6): applies
// the real-number rewrite rules for base^exp in the order spec.md lists
// them.
func Power(base, exp *Expr) *Expr {
	if base.kind == KindUndefined || exp.kind == KindUndefined {
		return Undefined()
	}
	if exp.IsZero() {
		if base.IsZero() {
			// 0^0: the rule order in §4.7 checks exp=0 before base=0/exp
			// sign cases, so this resolves to 1 rather than Undefined.
			return Int(1)
		}
		return Int(1)
	}
	if exp.IsOne() {
		return base
	}
	if base.IsOne() {
		return Int(1)
	}
	if base.IsZero() {
		if isKnownNegative(exp) || (exp.kind == KindNumeric && exp.num.Sign() < 0) {
			logDomainInvalid("pow", errNegativeZeroPower)
			return Undefined()
		}
		if exp.kind == KindNumeric && exp.num.Sign() > 0 {
			return Int(0)
		}
		// exponent sign not decidable: keep symbolic rather than guess.
		return &Expr{kind: KindPower, base: base, exp: exp}
	}

	if base.kind == KindNumeric && exp.kind == KindNumeric {
		return simplifyNumericPower(base.num, exp.num)
	}

	// (b^e1)^e2 -> b^(e1*e2), only when no real-domain information is lost
	// (§4.7): the inner exponent e1 is an integer and either e2 is an
	// integer or b is known positive (see canCollapsePower).
	if base.kind == KindPower {
		inner, e1 := base.base, base.exp
		if canCollapsePower(inner, e1, exp) {
			return Power(inner, Product(e1, exp))
		}
	}

	// Distribute an integer exponent over a Product's factors.
	if base.kind == KindProduct && exp.kind == KindNumeric && exp.num.IsInteger() {
		factors := make([]*Expr, len(base.ops))
		for i, f := range base.ops {
			factors[i] = Power(f, exp)
		}
		return Product(factors...)
	}

	// e^log(x) -> x.
	if isConstantE(base) && exp.kind == KindFunction && exp.fn == FuncLog {
		return exp.ops[0]
	}

	return &Expr{kind: KindPower, base: base, exp: exp}
}

// canCollapsePower decides whether (b^e1)^e2 may become b^(e1*e2) without
// losing real-domain information (§4.7). The direction matters: once a root
// has already been taken to produce the inner power (e1 non-integer), that
// real-root branch is fixed, and re-deriving b^(e1·e2) straight from b would
// silently discard which branch was chosen — so that direction never
// collapses, regardless of b's sign. (a^(1/3))^3 stays symbolic for exactly
// this reason even when a is known positive (§4.7, §8).
//
// When e1 is already an integer, no branch has been fixed yet: combining two
// integer exponents is always safe, and taking a further root of b^e1 (e2
// non-integer) is safe when b^e1 is known non-negative, i.e. when b itself
// is known positive — e.g. (a^3)^(1/3) -> a for positive a, but (x^3)^(1/3)
// stays symbolic for unflagged x.
func canCollapsePower(b, e1, e2 *Expr) bool {
	if e1.kind != KindNumeric || e2.kind != KindNumeric {
		return false
	}
	if !e1.num.IsInteger() {
		return false
	}
	if e2.num.IsInteger() {
		return true
	}
	return isKnownPositive(b)
}
