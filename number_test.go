package tsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprmath/tsym"
)

func TestRationalArithmetic(t *testing.T) {
	x := tsym.Frac(1, 2)
	y := tsym.Frac(1, 3)
	assert.True(t, tsym.Sum(x, y).Equal(tsym.Frac(5, 6)))
	assert.True(t, tsym.Product(x, y).Equal(tsym.Frac(1, 6)))
}

func TestDivisionByZeroIsUndefined(t *testing.T) {
	r := tsym.Power(tsym.Int(0), tsym.Int(-1))
	assert.True(t, r.IsUndefined())
}

func TestUndefinedAbsorbs(t *testing.T) {
	u := tsym.Undefined()
	assert.True(t, tsym.Sum(u, tsym.Int(1)).IsUndefined())
	assert.True(t, tsym.Product(u, tsym.Int(2)).IsUndefined())
}
