package tsym

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// ErrDivisionByZero is returned by Number operations that would divide by
// zero (§4.1).
var ErrDivisionByZero = errors.New("division by zero")

// ErrIrrational is returned when a power of a rational cannot be represented
// exactly as a rational or double, forcing the caller to keep a symbolic
// Power node (§4.1).
var ErrIrrational = errors.New("result not exactly representable")

// maxExponentMagnitude bounds integer exponentiation so a single PowInt call
// cannot blow up unboundedly; beyond it we report Overflow (§7) rather than
// build an astronomically large big.Int.
const maxExponentMagnitude = 1 << 20

type numKind uint8

const (
	numRational numKind = iota
	numDouble
)

var (
	bigRatZero = big.NewRat(0, 1)
	bigRatOne  = big.NewRat(1, 1)
)

// Number is the exact number kernel of §4.1: a normalized rational p/q
// (q>0, gcd(|p|,q)=1, maintained automatically by math/big.Rat) or an IEEE
// double. Doubles propagate contagiously through mixed-mode arithmetic.
type Number struct {
	kind numKind
	rat  *big.Rat
	dbl  float64
}

// RationalFromInt64 returns the exact integer n.
func RationalFromInt64(n int64) Number {
	return Number{kind: numRational, rat: big.NewRat(n, 1)}
}

// RationalFromFrac returns the exact fraction p/q, reduced to lowest terms.
func RationalFromFrac(p, q int64) (Number, error) {
	if q == 0 {
		return Number{}, ErrDivisionByZero
	}
	return Number{kind: numRational, rat: big.NewRat(p, q)}, nil
}

// RationalFromBigInts returns the exact fraction p/q for arbitrary-precision
// p, q — the big-integer entry point of §6 ("Numeric interop").
func RationalFromBigInts(p, q *big.Int) (Number, error) {
	if q.Sign() == 0 {
		return Number{}, ErrDivisionByZero
	}
	r := new(big.Rat).SetFrac(p, q)
	return Number{kind: numRational, rat: r}, nil
}

// RationalFromBigRat adopts an already-reduced big.Rat.
func RationalFromBigRat(r *big.Rat) Number {
	return Number{kind: numRational, rat: new(big.Rat).Set(r)}
}

// DoubleFromFloat64 returns an IEEE double scalar.
func DoubleFromFloat64(f float64) Number {
	return Number{kind: numDouble, dbl: f}
}

func (n Number) IsDouble() bool   { return n.kind == numDouble }
func (n Number) IsRational() bool { return n.kind == numRational }

// Float64 evaluates n numerically, regardless of representation.
func (n Number) Float64() float64 {
	if n.kind == numDouble {
		return n.dbl
	}
	f, _ := n.rat.Float64()
	return f
}

func (n Number) Sign() int {
	if n.kind == numDouble {
		switch {
		case n.dbl > 0:
			return 1
		case n.dbl < 0:
			return -1
		default:
			return 0
		}
	}
	return n.rat.Sign()
}

func (n Number) IsZero() bool { return n.Sign() == 0 }

func (n Number) IsOne() bool {
	if n.kind == numDouble {
		return n.dbl == 1
	}
	return n.rat.Cmp(bigRatOne) == 0
}

func (n Number) IsInteger() bool {
	if n.kind == numDouble {
		return n.dbl == math.Trunc(n.dbl)
	}
	return n.rat.IsInt()
}

// Numerator returns the reduced numerator (doubles are truncated).
func (n Number) Numerator() *big.Int {
	if n.kind == numRational {
		return n.rat.Num()
	}
	return big.NewInt(int64(n.dbl))
}

// Denominator returns the reduced denominator (always 1 for doubles).
func (n Number) Denominator() *big.Int {
	if n.kind == numRational {
		return n.rat.Denom()
	}
	return big.NewInt(1)
}

// IntValue returns the integer value of an integer-valued Number.
func (n Number) IntValue() int64 {
	if n.kind == numRational && n.rat.IsInt() {
		return n.rat.Num().Int64()
	}
	return int64(n.Float64())
}

func contagious(a, b Number) bool { return a.kind == numDouble || b.kind == numDouble }

func (a Number) Add(b Number) Number {
	if contagious(a, b) {
		return DoubleFromFloat64(a.Float64() + b.Float64())
	}
	return Number{kind: numRational, rat: new(big.Rat).Add(a.rat, b.rat)}
}

func (a Number) Sub(b Number) Number {
	if contagious(a, b) {
		return DoubleFromFloat64(a.Float64() - b.Float64())
	}
	return Number{kind: numRational, rat: new(big.Rat).Sub(a.rat, b.rat)}
}

func (a Number) Mul(b Number) Number {
	if contagious(a, b) {
		return DoubleFromFloat64(a.Float64() * b.Float64())
	}
	return Number{kind: numRational, rat: mulBigRat(a.rat, b.rat)}
}

func (a Number) Div(b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	if contagious(a, b) {
		return DoubleFromFloat64(a.Float64() / b.Float64()), nil
	}
	return Number{kind: numRational, rat: new(big.Rat).Quo(a.rat, b.rat)}, nil
}

func (a Number) Neg() Number {
	if a.kind == numDouble {
		return DoubleFromFloat64(-a.dbl)
	}
	return Number{kind: numRational, rat: new(big.Rat).Neg(a.rat)}
}

func (a Number) Abs() Number {
	if a.kind == numDouble {
		return DoubleFromFloat64(math.Abs(a.dbl))
	}
	return Number{kind: numRational, rat: new(big.Rat).Abs(a.rat)}
}

func (a Number) Cmp(b Number) int {
	if contagious(a, b) {
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return a.rat.Cmp(b.rat)
}

// Equal is the tag-specific numeric equality of §4.2: a rational and a
// double never compare equal even when numerically coincident, because they
// are different representational variants of Numeric.
func (a Number) Equal(b Number) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == numDouble {
		return a.dbl == b.dbl
	}
	return a.rat.Cmp(b.rat) == 0
}

func (n Number) hash() uint64 {
	if n.kind == numDouble {
		return hashCombine(fnvSeed^0xD0, math.Float64bits(n.dbl))
	}
	h := hashString(n.rat.Num().String())
	return hashCombine(h, hashString(n.rat.Denom().String()))
}

// PowInt raises a rational or double to an integer power (possibly
// negative). Overflow is reported rather than building unbounded integers.
func (a Number) PowInt(e int64) (Number, error) {
	if a.kind == numDouble {
		return DoubleFromFloat64(math.Pow(a.dbl, float64(e))), nil
	}
	if e == 0 {
		return RationalFromInt64(1), nil
	}
	neg := e < 0
	if neg {
		e = -e
	}
	if e > maxExponentMagnitude {
		return Number{}, errors.Wrapf(ErrIrrational, "exponent %d exceeds platform limit", e)
	}
	num := new(big.Int).Exp(a.rat.Num(), big.NewInt(e), nil)
	den := new(big.Int).Exp(a.rat.Denom(), big.NewInt(e), nil)
	if neg {
		if num.Sign() == 0 {
			return Number{}, ErrDivisionByZero
		}
		num, den = den, num
		if num.Sign() < 0 {
			num.Neg(num)
			den.Neg(den)
		}
	}
	return RationalFromBigInts(num, den)
}

// GCDInt is the integer gcd of §4.1: gcd(a,0)=|a|, gcd(0,0)=0.
func GCDInt(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// String renders the canonical rational/double text form (diagnostic use
// only — the real print engine is an external collaborator per §6).
func (n Number) String() string {
	if n.kind == numDouble {
		return big.NewFloat(n.dbl).Text('g', -1)
	}
	return n.rat.RatString()
}
