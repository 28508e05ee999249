package tsym

// Product is the canonical constructor of component E (§4.5, §6): it
// flattens nested products, merges like bases by exponent addition, keeps
// at most one Numeric factor (placed first), and sorts the rest by the
// order relation (§3 invariant 5).
func Product(factors ...*Expr) *Expr { return productCanonical(factors) }

func productCanonical(factors []*Expr) *Expr {
	flat := flattenProduct(factors)
	for _, f := range flat {
		if f.kind == KindUndefined {
			return Undefined()
		}
	}
	return finishProduct(mergeProductList(flat))
}

func flattenProduct(factors []*Expr) []*Expr {
	var out []*Expr
	for _, f := range factors {
		if f.kind == KindProduct {
			out = append(out, f.ops...)
		} else {
			out = append(out, f)
		}
	}
	return out
}

// mergeProductList is §4.3's merge-based algorithm, mirrored for products
// per §4.5: two factors reduce directly (simplifyTwoFactors); n>=3
// recursively simplifies the tail, then merges the (possibly Product) head
// into the result.
func mergeProductList(factors []*Expr) []*Expr {
	switch len(factors) {
	case 0:
		return nil
	case 1:
		return factors
	case 2:
		return simplifyTwoFactors(factors[0], factors[1])
	default:
		head, tail := factors[0], factors[1:]
		restMerged := mergeProductList(tail)
		if head.kind == KindProduct {
			return mergeTwoFactorLists(head.ops, restMerged)
		}
		return mergeTwoFactorLists([]*Expr{head}, restMerged)
	}
}

// mergeTwoFactorLists is §4.3's "Merge": pick the smaller head, recurse, and
// when the heads combine, splice the result in and recurse on both tails.
// Pointer-identity on the returned pair distinguishes "no interaction,
// already ordered" from "permute" from a genuine merge (§4.3).
func mergeTwoFactorLists(p, q []*Expr) []*Expr {
	if len(p) == 0 {
		return q
	}
	if len(q) == 0 {
		return p
	}
	combined := simplifyTwoFactors(p[0], q[0])
	switch {
	case len(combined) == 2 && combined[0] == p[0] && combined[1] == q[0]:
		return append([]*Expr{p[0]}, mergeTwoFactorLists(p[1:], q)...)
	case len(combined) == 2 && combined[0] == q[0] && combined[1] == p[0]:
		return append([]*Expr{q[0]}, mergeTwoFactorLists(p, q[1:])...)
	default:
		return append(append([]*Expr{}, combined...), mergeTwoFactorLists(p[1:], q[1:])...)
	}
}

// simplifyTwoFactors is the pairwise product-reduction of §4.3/§4.5.
func simplifyTwoFactors(a, b *Expr) []*Expr {
	if a.kind == KindUndefined || b.kind == KindUndefined {
		return []*Expr{Undefined()}
	}
	if a.IsOne() {
		return []*Expr{b}
	}
	if b.IsOne() {
		return []*Expr{a}
	}
	if a.IsZero() || b.IsZero() {
		return []*Expr{Int(0)}
	}
	if a.kind == KindNumeric && b.kind == KindNumeric {
		return []*Expr{NumberExpr(a.num.Mul(b.num))}
	}

	// base^e1 · base^e2 -> base^(e1+e2); bare factors act as Power(x,1)
	// via Base()/Exp() (§4.4's ordering convention, reused here). A bare
	// Numeric is not merged with a numeric-exponent power of the same base:
	// 2·2^(1/2) would become 2^(3/2), which the numeric-power simplifier
	// splits straight back into 2·2^(1/2).
	bareNumeric := a.kind == KindNumeric || b.kind == KindNumeric
	numericExps := a.Exp().kind == KindNumeric && b.Exp().kind == KindNumeric
	if ba, bb := a.Base(), b.Base(); ba.Equal(bb) && !(bareNumeric && numericExps) {
		combinedExp := Sum(a.Exp(), b.Exp())
		result := Power(ba, combinedExp)
		if result.kind != KindProduct {
			return []*Expr{result}
		}
	}

	if doPermute(a, b) {
		return []*Expr{b, a}
	}
	return []*Expr{a, b}
}

func finishProduct(factors []*Expr) *Expr {
	var numeric *Expr
	var rest []*Expr
	for _, f := range factors {
		if f.kind == KindUndefined {
			return Undefined()
		}
		if f.kind == KindNumeric {
			if numeric == nil {
				numeric = f
			} else {
				numeric = NumberExpr(numeric.num.Mul(f.num))
			}
			continue
		}
		rest = append(rest, f)
	}
	if numeric != nil && numeric.IsZero() {
		return Int(0)
	}

	var out []*Expr
	if numeric != nil && !numeric.IsOne() {
		out = append(out, numeric)
	}
	out = append(out, rest...)

	switch len(out) {
	case 0:
		return Int(1)
	case 1:
		return out[0]
	default:
		return &Expr{kind: KindProduct, ops: out}
	}
}
