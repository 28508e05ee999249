package tsym

import (
	"math"
	"math/big"
)

// extractedRoot is the result of pulling the den-th root of n^num apart:
// intCoeff is the integer part that can be moved in front of the root,
// remBase is what's left under the den-th root (§4.6).
type extractedRoot struct {
	intCoeff *big.Int
	remBase  *big.Int
}

// extractIntegerRoot factors |n|, and for each prime p^a decomposes
// a·num = q·den + r, moving p^q to intCoeff and leaving p^r in remBase —
// so that n^(num/den) == intCoeff · remBase^(1/den). If n can't be
// factored (too large, §4.6 boundary documented in bignum.go) the whole
// value is kept symbolic under the root.
func extractIntegerRoot(n *big.Int, num, den int64) extractedRoot {
	if n.Sign() == 0 {
		return extractedRoot{intCoeff: big.NewInt(0), remBase: big.NewInt(1)}
	}
	factors, ok := factorBigInt(n)
	if !ok {
		return extractedRoot{intCoeff: big.NewInt(1), remBase: new(big.Int).Set(n)}
	}
	coeff := big.NewInt(1)
	rem := big.NewInt(1)
	for _, f := range factors {
		total := int64(f.Power) * num
		q := total / den
		r := total % den
		if q > 0 {
			coeff.Mul(coeff, new(big.Int).Exp(f.Prime, big.NewInt(q), nil))
		}
		if r > 0 {
			rem.Mul(rem, new(big.Int).Exp(f.Prime, big.NewInt(r), nil))
		}
	}
	return extractedRoot{intCoeff: coeff, remBase: rem}
}

// simplifyNumericPower is the numeric-power simplifier of §4.6: canonicalize
// Numeric^Numeric to a rational coefficient times, if a radical remains, a
// rational radicand raised to 1/den (den the exponent's denominator), with
// every prime of the radicand at a power below den.
func simplifyNumericPower(b, e Number) *Expr {
	if b.IsDouble() || e.IsDouble() {
		r, _ := evalNumericPow(b, e)
		return NumberExpr(r)
	}
	if b.IsZero() {
		switch e.Sign() {
		case 0:
			return Int(1)
		case 1:
			return Int(0)
		default:
			logDomainInvalid("pow", ErrDivisionByZero)
			return Undefined()
		}
	}
	if e.IsInteger() {
		r, err := b.PowInt(e.IntValue())
		if err != nil {
			logOverflow("pow", err)
			return &Expr{kind: KindPower, base: NumberExpr(b), exp: NumberExpr(e)}
		}
		return NumberExpr(r)
	}

	num := e.Numerator()
	den := e.Denominator() // > 1: e is a non-integer reduced rational
	if b.Sign() < 0 && den.Bit(0) == 0 {
		logDomainInvalid("pow", errEvenRootOfNegative)
		return Undefined()
	}

	negBase := b.Sign() < 0
	negExp := num.Sign() < 0
	absNum := new(big.Int).Abs(num).Int64()
	denI := den.Int64()

	p := new(big.Int).Abs(b.Numerator())
	q := b.Denominator()
	if negExp {
		p, q = q, p
	}

	rootP := extractIntegerRoot(p, absNum, denI)
	rootQ := extractIntegerRoot(q, absNum, denI)

	if rootQ.intCoeff.Sign() == 0 {
		logDomainInvalid("pow", ErrDivisionByZero)
		return Undefined()
	}

	coeffRat := new(big.Rat).SetFrac(rootP.intCoeff, rootQ.intCoeff)

	sign := Int(1)
	if negBase && absNum%2 == 1 {
		sign = Int(-1)
	}

	coeff := NumberExpr(RationalFromBigRat(coeffRat))
	remBaseRat := new(big.Rat).SetFrac(rootP.remBase, rootQ.remBase)

	if remBaseRat.Cmp(bigRatOne) == 0 {
		return Product(sign, coeff)
	}

	remExp := RationalFromBigInts1(big.NewInt(1), den)
	remainder := &Expr{kind: KindPower, base: NumberExpr(RationalFromBigRat(remBaseRat)), exp: NumberExpr(remExp)}
	return Product(sign, coeff, remainder)
}

// RationalFromBigInts1 is RationalFromBigInts without the (unreachable
// here, den>0 always) error return, for call sites that already know the
// denominator is non-zero.
func RationalFromBigInts1(p, q *big.Int) Number {
	n, _ := RationalFromBigInts(p, q)
	return n
}

// evalNumericPow backs NumericEval (§6): a best-effort numeric value, not
// necessarily exact when the result is irrational.
func evalNumericPow(b, e Number) (Number, bool) {
	if !b.IsDouble() && !e.IsDouble() && e.IsInteger() {
		if r, err := b.PowInt(e.IntValue()); err == nil {
			return r, true
		}
	}
	return DoubleFromFloat64(math.Pow(b.Float64(), e.Float64())), true
}
