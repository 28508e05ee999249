package tsym

// divKey and pseudoKey are the memo keys of §4.10: "(u,v)" and "(u,v,L)".
type divKey struct {
	u, v, l uint64
}

var divideCache = newMemoMap[divKey, [2]*Expr]()
var pseudoDivideCache = newMemoMap[divKey, [2]*Expr]()

func listHash(l []*Expr) uint64 {
	h := fnvSeed
	for _, e := range l {
		h = hashCombine(h, e.Hash())
	}
	return h
}

// Divide is the recursive multivariate long division of §4.10:
// u = q*v + r with deg_x(r) < deg_x(v) for x = L[0], coefficients taken
// over the ring defined by L[1:]. If some coefficient-ring sub-division
// (the leading coefficient of v does not divide the current remainder's
// leading coefficient) leaves a non-zero remainder, division halts early:
// the quotient accumulated so far is returned (expanded), and the current
// remainder is passed back unchanged — this is the one constant-ring-division
// abort path the spec requires rather than an error.
func Divide(u, v *Expr, L []*Expr) (quotient, remainder *Expr) {
	key := divKey{u: u.Hash(), v: v.Hash(), l: listHash(L)}
	if cached, ok := divideCache.get(key); ok {
		return cached[0], cached[1]
	}
	q, r := divideImpl(u, v, L)
	divideCache.put(key, [2]*Expr{q, r})
	return q, r
}

func divideImpl(u, v *Expr, L []*Expr) (*Expr, *Expr) {
	if len(L) == 0 {
		// §9 open question: the source's L-empty branch returns (u/v, 0)
		// only when u/v is exactly rational numeric; otherwise it returns
		// (0, u) rather than erroring. Preserved here for compatibility.
		if u.kind == KindNumeric && v.kind == KindNumeric && !v.IsZero() {
			q, err := u.num.Div(v.num)
			if err != nil {
				return Int(0), u
			}
			return NumberExpr(q), Int(0)
		}
		return Int(0), u
	}

	x, rest := L[0], L[1:]
	degV := degree(v, x)
	if v.IsZero() || degV < 0 {
		logDomainInvalid("divide", errNotPolynomial)
		return Undefined(), Undefined()
	}
	lcV := leadingCoeff(v, x)

	quotientTerms := []*Expr{}
	r := Expand(u)

	for {
		degR := degree(r, x)
		if r.IsZero() || degR < degV {
			break
		}
		lcR := leadingCoeff(r, x)
		coeffQ, coeffRem := Divide(lcR, lcV, rest)
		if !coeffRem.IsZero() {
			// Leading coefficient of v does not divide r's: halt, per §4.10.
			break
		}
		term := Product(coeffQ, Power(x, Int(degR-degV)))
		quotientTerms = append(quotientTerms, term)
		r = Expand(Sum(r, Product(Int(-1), Expand(Product(term, v)))))
	}

	return Expand(Sum(quotientTerms...)), r
}

// PseudoDivide implements pseudo-division per Cohen 2003 §6.2, folding the
// sign factor sigma into (q,r): it runs ordinary division after multiplying
// the dividend through by lc(v)^N where N = deg(u)-deg(v)+1, so that
// lc(v)^N * u = q*v + r holds exactly without introducing a rational
// coefficient anywhere (§4.10).
func PseudoDivide(u, v, x *Expr) (quotient, remainder *Expr) {
	key := divKey{u: u.Hash(), v: v.Hash(), l: x.Hash()}
	if cached, ok := pseudoDivideCache.get(key); ok {
		return cached[0], cached[1]
	}
	q, r := pseudoDivideImpl(u, v, x)
	pseudoDivideCache.put(key, [2]*Expr{q, r})
	return q, r
}

func pseudoDivideImpl(u, v, x *Expr) (*Expr, *Expr) {
	degU, degV := degree(u, x), degree(v, x)
	if degU < degV {
		return Int(0), u
	}
	n := degU - degV + 1
	lcV := leadingCoeff(v, x)
	scaled := Expand(Product(Power(lcV, Int(n)), u))
	return Divide(scaled, v, []*Expr{x})
}

// PseudoRemainder is PseudoDivide's remainder alone.
func PseudoRemainder(u, v, x *Expr) *Expr {
	_, r := PseudoDivide(u, v, x)
	return r
}
