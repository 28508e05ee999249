package tsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprmath/tsym"
)

func TestSumCommutativeAndAssociative(t *testing.T) {
	a := tsym.Symbol("a", false)
	b := tsym.Symbol("b", false)
	c := tsym.Symbol("c", false)

	assert.True(t, tsym.Sum(a, b).Equal(tsym.Sum(b, a)))
	assert.True(t, tsym.Sum(a, tsym.Sum(b, c)).Equal(tsym.Sum(tsym.Sum(a, b), c)))
}

func TestProductCommutativeAndAssociative(t *testing.T) {
	a := tsym.Symbol("a", false)
	b := tsym.Symbol("b", false)
	c := tsym.Symbol("c", false)

	assert.True(t, tsym.Product(a, b).Equal(tsym.Product(b, a)))
	assert.True(t, tsym.Product(a, tsym.Product(b, c)).Equal(tsym.Product(tsym.Product(a, b), c)))
}

func TestConstructionIsIdempotent(t *testing.T) {
	x := tsym.Symbol("x", false)
	e := tsym.Sum(tsym.Power(x, tsym.Int(2)), tsym.Product(tsym.Int(3), x))
	again := tsym.Sum(e.Operands()...)
	assert.True(t, e.Equal(again))
}

func TestEqualImpliesSameHash(t *testing.T) {
	x := tsym.Symbol("x", false)
	a := tsym.Sum(x, tsym.Int(1))
	b := tsym.Sum(tsym.Int(1), x)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestSinSquaredPlusCosSquared(t *testing.T) {
	x := tsym.Symbol("x", false)
	trig := tsym.Sum(
		tsym.Power(tsym.Sin(x), tsym.Int(2)),
		tsym.Power(tsym.Cos(x), tsym.Int(2)),
	)
	assert.True(t, trig.Equal(tsym.Int(1)))
}

func TestLikeRadicalsCombine(t *testing.T) {
	// 2 + sqrt(3) + sqrt(3) -> 2 + 2*sqrt(3)
	sqrt3 := tsym.Power(tsym.Int(3), tsym.Frac(1, 2))
	got := tsym.Sum(tsym.Int(2), sqrt3, sqrt3)
	want := tsym.Sum(tsym.Int(2), tsym.Product(tsym.Int(2), sqrt3))
	assert.True(t, got.Equal(want))
}

func TestNumericRootExtraction(t *testing.T) {
	// sqrt(8) -> 2*sqrt(2)
	sqrt8 := tsym.Power(tsym.Int(8), tsym.Frac(1, 2))
	want := tsym.Product(tsym.Int(2), tsym.Power(tsym.Int(2), tsym.Frac(1, 2)))
	assert.True(t, sqrt8.Equal(want))

	// sqrt(4) -> 2
	sqrt4 := tsym.Power(tsym.Int(4), tsym.Frac(1, 2))
	assert.True(t, sqrt4.Equal(tsym.Int(2)))
}

func TestPowerOfPowerCollapseAsymmetry(t *testing.T) {
	a := tsym.Symbol("a", true) // positive
	x := tsym.Symbol("x", false)

	// (a^3)^(1/3) -> a for positive a.
	cubeThenRoot := tsym.Power(tsym.Power(a, tsym.Int(3)), tsym.Frac(1, 3))
	assert.True(t, cubeThenRoot.Equal(a))

	// (a^(1/3))^3 stays symbolic even for positive a.
	rootThenCube := tsym.Power(tsym.Power(a, tsym.Frac(1, 3)), tsym.Int(3))
	assert.Equal(t, tsym.KindPower, rootThenCube.KindOf())
	assert.True(t, rootThenCube.Base().Equal(tsym.Power(a, tsym.Frac(1, 3))))

	// (x^3)^(1/3) stays symbolic for unflagged x.
	unflagged := tsym.Power(tsym.Power(x, tsym.Int(3)), tsym.Frac(1, 3))
	assert.Equal(t, tsym.KindPower, unflagged.KindOf())
}

func TestEvenRootOfNegativeIsUndefined(t *testing.T) {
	r := tsym.Power(tsym.Int(-4), tsym.Frac(1, 2))
	assert.True(t, r.IsUndefined())
}
