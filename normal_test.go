package tsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprmath/tsym"
)

func TestNormalCombinesUnlikeDenominators(t *testing.T) {
	x := tsym.Symbol("x", false)
	y := tsym.Symbol("y", false)

	// normal(1/x + 1/y) -> (x+y)/(x*y)
	expr := tsym.Sum(tsym.Power(x, tsym.Int(-1)), tsym.Power(y, tsym.Int(-1)))
	frac := tsym.Normal(expr)

	want := tsym.Fraction{Num: tsym.Sum(x, y), Denom: tsym.Product(x, y)}
	assert.True(t, frac.Equal(want))
}

func TestNormalOfTrigIdentity(t *testing.T) {
	x := tsym.Symbol("x", false)
	expr := tsym.Sum(tsym.Power(tsym.Sin(x), tsym.Int(2)), tsym.Power(tsym.Cos(x), tsym.Int(2)))
	frac := tsym.Normal(expr)
	assert.True(t, frac.Num.Equal(tsym.Int(1)))
	assert.True(t, frac.Denom.Equal(tsym.Int(1)))
}

func TestNormalEquivalenceAcrossForms(t *testing.T) {
	x := tsym.Symbol("x", false)
	a := tsym.Power(x, tsym.Int(-1))
	b := tsym.Power(x, tsym.Int(-1))
	assert.True(t, tsym.Normal(a).Equal(tsym.Normal(b)))
}
