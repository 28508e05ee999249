package tsym

// Sum is the canonical constructor of component F (§4.3, §6): it flattens
// nested sums, merges like terms by coefficient addition, contracts
// sin(x)^2+cos(x)^2 -> 1, keeps at most one Numeric summand (placed
// first), and sorts the rest by the order relation (§3 invariant 6).
func Sum(terms ...*Expr) *Expr { return sumCanonical(terms) }

func sumCanonical(terms []*Expr) *Expr {
	flat := flattenSum(terms)
	for _, t := range flat {
		if t.kind == KindUndefined {
			return Undefined()
		}
	}
	return finishSum(mergeSumList(flat))
}

func flattenSum(terms []*Expr) []*Expr {
	var out []*Expr
	for _, t := range terms {
		if t.kind == KindSum {
			out = append(out, t.ops...)
		} else {
			out = append(out, t)
		}
	}
	return out
}

// mergeSumList mirrors mergeProductList: 2 summands reduce directly; n>=3
// recursively simplifies the tail, then merges the (possibly Sum) head in.
func mergeSumList(terms []*Expr) []*Expr {
	switch len(terms) {
	case 0:
		return nil
	case 1:
		return terms
	case 2:
		return simplifyTwoSummands(terms[0], terms[1])
	default:
		head, tail := terms[0], terms[1:]
		restMerged := mergeSumList(tail)
		if head.kind == KindSum {
			return mergeTwoSummandLists(head.ops, restMerged)
		}
		return mergeTwoSummandLists([]*Expr{head}, restMerged)
	}
}

func mergeTwoSummandLists(p, q []*Expr) []*Expr {
	if len(p) == 0 {
		return q
	}
	if len(q) == 0 {
		return p
	}
	combined := simplifyTwoSummands(p[0], q[0])
	switch {
	case len(combined) == 2 && combined[0] == p[0] && combined[1] == q[0]:
		return append([]*Expr{p[0]}, mergeTwoSummandLists(p[1:], q)...)
	case len(combined) == 2 && combined[0] == q[0] && combined[1] == p[0]:
		return append([]*Expr{q[0]}, mergeTwoSummandLists(p, q[1:])...)
	default:
		return append(append([]*Expr{}, combined...), mergeTwoSummandLists(p[1:], q[1:])...)
	}
}

// simplifyTwoSummands is the pairwise sum-reduction of §4.3, in spec bullet
// order: absorb zeros; both-numeric add; same-non-constant-factor combine;
// same-non-numeric-factor combine; sin^2+cos^2 contraction; else ordered
// pair.
func simplifyTwoSummands(a, b *Expr) []*Expr {
	if a.kind == KindUndefined || b.kind == KindUndefined {
		return []*Expr{Undefined()}
	}
	if a.IsZero() {
		return []*Expr{b}
	}
	if b.IsZero() {
		return []*Expr{a}
	}
	if a.kind == KindNumeric && b.kind == KindNumeric {
		s := a.num.Add(b.num)
		if s.IsZero() {
			return nil
		}
		return []*Expr{NumberExpr(s)}
	}

	// Same non-constant factor: combine the constant (Numeric/Constant)
	// coefficients, but only if that combination doesn't itself stay a
	// Sum — guards against recursive re-simplification loops (§4.3).
	if restA, restB := a.NonConstTerm(), b.NonConstTerm(); restA.kind != KindNumeric && restA.Equal(restB) {
		coeff := Sum(a.ConstTerm(), b.ConstTerm())
		if coeff.kind != KindSum {
			return []*Expr{Product(coeff, restA)}
		}
	}

	// Same non-numeric factor: combine numeric coefficients.
	if restA, restB := a.NonNumericTerm(), b.NonNumericTerm(); restA.Equal(restB) {
		coeff := a.NumericTerm().num.Add(b.NumericTerm().num)
		if coeff.IsZero() {
			return nil
		}
		return []*Expr{Product(NumberExpr(coeff), restA)}
	}

	// k·sin(x)^2 + k·cos(x)^2 -> k (§3 invariant 6).
	if fa, argA, coeffA, ok := asTrigSquared(a); ok {
		if fb, argB, coeffB, ok2 := asTrigSquared(b); ok2 {
			if fa != fb && argA.Equal(argB) && coeffA.Equal(coeffB) {
				return []*Expr{coeffA}
			}
		}
	}

	if doPermute(a, b) {
		return []*Expr{b, a}
	}
	return []*Expr{a, b}
}

// asTrigSquared recognizes k·sin(x)^2 or k·cos(x)^2 (k possibly 1).
func asTrigSquared(term *Expr) (fn FuncKind, arg, coeff *Expr, ok bool) {
	coeff = term.NumericTerm()
	rest := term.NonNumericTerm()
	if rest.kind != KindPower || rest.exp.kind != KindNumeric || !rest.exp.num.Equal(RationalFromInt64(2)) {
		return 0, nil, nil, false
	}
	base := rest.base
	if base.kind == KindFunction && len(base.ops) == 1 && (base.fn == FuncSin || base.fn == FuncCos) {
		return base.fn, base.ops[0], coeff, true
	}
	return 0, nil, nil, false
}

func finishSum(terms []*Expr) *Expr {
	var numeric *Expr
	var rest []*Expr
	for _, t := range terms {
		if t.kind == KindUndefined {
			return Undefined()
		}
		if t.kind == KindNumeric {
			if numeric == nil {
				numeric = t
			} else {
				numeric = NumberExpr(numeric.num.Add(t.num))
			}
			continue
		}
		rest = append(rest, t)
	}
	var out []*Expr
	if numeric != nil && !numeric.IsZero() {
		out = append(out, numeric)
	}
	out = append(out, rest...)

	switch len(out) {
	case 0:
		return Int(0)
	case 1:
		return out[0]
	default:
		return &Expr{kind: KindSum, ops: out}
	}
}
