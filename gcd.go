package tsym

import "math/big"

// GCDAlgo selects between the two variants §4.11 names: the default
// subresultant algorithm and the plain primitive-PRS variant.
type GCDAlgo uint8

const (
	AlgoSubresultant GCDAlgo = iota
	AlgoPrimitive
)

type gcdKey struct {
	u, v uint64
	algo GCDAlgo
}

var gcdCache = newMemoMap[gcdKey, *Expr]()

// GCD is the driver of §4.11: invalid inputs -> Undefined; 0/1 edge cases;
// both-numeric -> integer gcd of numerators; no shared symbol -> integer
// content gcd; otherwise divide out integer content, run the chosen
// polynomial-remainder-sequence loop on the primitive parts, multiply the
// integer gcd back in, and normalize the sign with normalizeLeadingSign,
// which looks only at the leading coefficient in the lexicographically-first
// variable.
func GCD(u, v *Expr, algo GCDAlgo) *Expr {
	if !isInputValid(u, v) {
		logDomainInvalid("gcd", errNotPolynomial)
		return Undefined()
	}
	key := gcdKey{u: u.Hash(), v: v.Hash(), algo: algo}
	if cached, ok := gcdCache.get(key); ok {
		return cached
	}
	r := gcdImpl(u, v, algo)
	gcdCache.put(key, r)
	return r
}

func gcdImpl(u, v *Expr, algo GCDAlgo) *Expr {
	if u.IsZero() && v.IsZero() {
		logDomainInvalid("gcd", errGCDOfZeros)
		return Undefined()
	}
	if u.IsZero() {
		return normalizeLeadingSign(v)
	}
	if v.IsZero() {
		return normalizeLeadingSign(u)
	}

	if u.kind == KindNumeric && v.kind == KindNumeric {
		g := GCDInt(u.num.Numerator(), v.num.Numerator())
		return NumberExpr(RationalFromBigInts1(g, big.NewInt(1)))
	}

	L := listOfSymbols(u, v)
	shared := false
	for _, s := range L {
		if u.Has(s) && v.Has(s) {
			shared = true
			break
		}
	}
	if !shared {
		cu, cv := integerContent(u), integerContent(v)
		g := GCDInt(cu.Numerator(), cv.Numerator())
		return NumberExpr(RationalFromBigInts1(g, big.NewInt(1)))
	}

	cu := Content(u)
	cv := Content(v)
	contentGCD := NumberExpr(RationalFromBigInts1(GCDInt(cu.num.Numerator(), cv.num.Numerator()), big.NewInt(1)))

	pu := PrimitivePart(u)
	pv := PrimitivePart(v)

	var prs *Expr
	switch algo {
	case AlgoPrimitive:
		prs = primitivePRS(pu, pv, L)
	default:
		prs = subresultantPRS(pu, pv, L)
	}

	result := Expand(Product(contentGCD, prs))
	return normalizeLeadingSign(result)
}

// normalizeLeadingSign flips e's sign if its leading coefficient in e's
// lexicographically-first variable (the variable UnitPart also uses) is
// known to be negative. Only that one variable is examined, and only a
// coefficient that isKnownNegative recognises flips the sign: a coefficient
// that is itself a polynomial in the other variables, such as -y, leaves e
// unchanged.
func normalizeLeadingSign(e *Expr) *Expr {
	seen := make(map[string]*Expr)
	symbolSet(e, seen)
	if len(seen) == 0 {
		if isKnownNegative(e) {
			return Expand(Product(Int(-1), e))
		}
		return e
	}
	var first *Expr
	for _, s := range seen {
		if first == nil || s.Name().Less(first.Name()) {
			first = s
		}
	}
	if isKnownNegative(leadingCoeff(e, first)) {
		return Expand(Product(Int(-1), e))
	}
	return e
}

// primitivePRS is the plain primitive polynomial-remainder-sequence gcd: at
// each step take the pseudo-remainder and strip it back to a primitive
// polynomial, stopping when the remainder vanishes. With more than one
// variable left in L, the sequence in L[0] doesn't by itself decide the
// gcd (a shared factor could live entirely in the other variables), so
// that case recurses once on the leading coefficients instead — a single
// step, not another turn of this loop, since looping here over a fixed L[0]
// with x eliminated from both operands can revisit the same (a,b) pair
// forever without ever reaching zero.
func primitivePRS(u, v *Expr, L []*Expr) *Expr {
	x, rest := L[0], L[1:]
	if len(rest) != 0 {
		return GCD(leadingCoeff(u, x), leadingCoeff(v, x), AlgoPrimitive)
	}
	a, b := u, v
	for !b.IsZero() {
		a, b = b, PseudoRemainder(a, b, x)
		if !b.IsZero() {
			b = PrimitivePart(b)
		}
	}
	return PrimitivePart(a)
}

// subresultantPRS is Cohen (2003) ch. 6's subresultant algorithm atop
// pseudoDivide: it tracks the same running a,b polynomial-remainder
// sequence as the primitive variant but divides each pseudo-remainder by an
// accumulated factor built from the leading coefficients seen so far,
// which keeps the coefficients from growing as fast as the naive PRS while
// avoiding the primitive variant's repeated full-content extraction. As in
// primitivePRS, more than one remaining variable recurses once on the
// leading coefficients rather than running this x-only sequence, since L[0]
// alone can't decide the gcd and looping the leading-coefficient step here
// instead of recursing can land on a fixed (a,b) pair that never reaches
// zero.
func subresultantPRS(u, v *Expr, L []*Expr) *Expr {
	x, rest := L[0], L[1:]
	if len(rest) != 0 {
		return GCD(leadingCoeff(u, x), leadingCoeff(v, x), AlgoSubresultant)
	}
	a, b := u, v
	if degree(a, x) < degree(b, x) {
		a, b = b, a
	}
	degA, degB := degree(a, x), degree(b, x)

	g := Int(1)
	h := Int(1)

	for !b.IsZero() {
		delta := degA - degB
		r := PseudoRemainder(a, b, x)
		a, b = b, r
		if b.IsZero() {
			break
		}
		degA, degB = degB, degree(b, x)

		divisor := Expand(Product(g, Power(h, Int(delta))))
		b = Expand(Product(b, Power(divisor, Int(-1))))

		g = leadingCoeff(a, x)
		if delta <= 1 {
			h = Expand(Product(Power(h, Int(1-delta)), Power(g, Int(delta))))
		} else {
			hExp, _ := Divide(Power(g, Int(delta)), Power(h, Int(delta-1)), []*Expr{})
			h = hExp
		}
	}
	return PrimitivePart(a)
}
