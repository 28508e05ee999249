package tsym

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
	"modernc.org/mathutil"
)

// bigfftWordThreshold is the operand size (in 32/64-bit big.Word limbs)
// above which FFT multiplication overtakes schoolbook multiplication. Integers
// this large only arise in the kernel through repeated pseudo-division
// coefficient blowup (§4.10, §4.11) before content removal brings them back
// down, so the fast path is exercised but not on the common case.
const bigfftWordThreshold = 1 << 11

// bigIntMul multiplies two big.Ints, routing through bigfft once both
// operands are large enough that FFT multiplication wins over math/big's
// schoolbook/Karatsuba multiply.
func bigIntMul(a, b *big.Int) *big.Int {
	if len(a.Bits()) > bigfftWordThreshold && len(b.Bits()) > bigfftWordThreshold {
		return bigfft.Mul(a, b)
	}
	return new(big.Int).Mul(a, b)
}

// mulBigRat multiplies two big.Rats using the bigfft-accelerated integer
// multiply for the numerator/denominator products, then reduces.
func mulBigRat(a, b *big.Rat) *big.Rat {
	num := bigIntMul(a.Num(), b.Num())
	den := bigIntMul(a.Denom(), b.Denom())
	return new(big.Rat).SetFrac(num, den)
}

// primeFactor is one term p^power of an integer factorization.
type primeFactor struct {
	Prime *big.Int
	Power int
}

// factorBigInt factors the absolute value of n, used by the numeric-power
// simplifier (§4.6) to pull integer/rational radicals out from under a root.
// mathutil.FactorInt only covers the int64 domain; bases that don't fit are
// handled by a bounded stdlib trial division and, failing that, left
// un-factored (ok=false) so the caller keeps the whole base under the root
// symbolically rather than spending unbounded time factoring it.
func factorBigInt(n *big.Int) (factors []primeFactor, ok bool) {
	abs := new(big.Int).Abs(n)
	if abs.Sign() == 0 {
		return nil, true
	}
	if abs.IsInt64() {
		for _, ft := range mathutil.FactorInt(abs.Int64()) {
			factors = append(factors, primeFactor{Prime: big.NewInt(ft.Prime), Power: ft.Power})
		}
		return factors, true
	}
	return factorBigIntTrialDivision(abs)
}

// trialDivisionLimit bounds the cost of factoring integers too large for
// mathutil's int64-only FactorInt.
const trialDivisionLimit = 1 << 20

func factorBigIntTrialDivision(n *big.Int) ([]primeFactor, bool) {
	rem := new(big.Int).Set(n)
	var factors []primeFactor
	p := big.NewInt(2)
	for p.Cmp(big.NewInt(trialDivisionLimit)) < 0 && p.Cmp(rem) <= 0 {
		power := 0
		q, r := new(big.Int), new(big.Int)
		for {
			q.QuoRem(rem, p, r)
			if r.Sign() != 0 {
				break
			}
			rem.Set(q)
			power++
		}
		if power > 0 {
			factors = append(factors, primeFactor{Prime: new(big.Int).Set(p), Power: power})
		}
		p.Add(p, big.NewInt(1))
	}
	if rem.Cmp(bigRatOneInt) != 0 {
		if rem.Cmp(big.NewInt(trialDivisionLimit)) >= 0 {
			// a large cofactor survived: we cannot certify full factorization.
			return factors, false
		}
		factors = append(factors, primeFactor{Prime: rem, Power: 1})
	}
	return factors, true
}

var bigRatOneInt = big.NewInt(1)
