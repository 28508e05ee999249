package tsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprmath/tsym"
)

func TestExpandDistributesOverSum(t *testing.T) {
	a := tsym.Symbol("a", false)
	b := tsym.Symbol("b", false)
	c := tsym.Symbol("c", false)
	d := tsym.Symbol("d", false)

	got := tsym.Expand(tsym.Product(tsym.Sum(a, b), tsym.Sum(c, d)))
	want := tsym.Sum(
		tsym.Product(a, c), tsym.Product(a, d),
		tsym.Product(b, c), tsym.Product(b, d),
	)
	assert.True(t, got.Equal(want))
}

func TestDiffSumRule(t *testing.T) {
	x := tsym.Symbol("x", false)
	y := tsym.Symbol("y", false)

	// diff(x, x^3 + 2*x*y) -> 3*x^2 + 2*y
	expr := tsym.Sum(tsym.Power(x, tsym.Int(3)), tsym.Product(tsym.Int(2), x, y))
	got := tsym.Diff(expr, x)
	want := tsym.Sum(tsym.Product(tsym.Int(3), tsym.Power(x, tsym.Int(2))), tsym.Product(tsym.Int(2), y))
	assert.True(t, got.Equal(want))
}

func TestDiffProductRule(t *testing.T) {
	x := tsym.Symbol("x", false)
	f := tsym.Sin(x)
	g := tsym.Power(x, tsym.Int(2))

	got := tsym.Diff(tsym.Product(f, g), x)
	want := tsym.Sum(
		tsym.Product(tsym.Diff(f, x), g),
		tsym.Product(f, tsym.Diff(g, x)),
	)
	assert.True(t, got.Equal(want))
}

func TestDiffOfUnrelatedSymbolIsZero(t *testing.T) {
	x := tsym.Symbol("x", false)
	y := tsym.Symbol("y", false)
	assert.True(t, tsym.Diff(y, x).IsZero())
}

func TestSubstReplacesStructurally(t *testing.T) {
	x := tsym.Symbol("x", false)
	y := tsym.Symbol("y", false)
	expr := tsym.Sum(tsym.Power(x, tsym.Int(2)), tsym.Int(1))
	got := tsym.Subst(expr, x, y)
	want := tsym.Sum(tsym.Power(y, tsym.Int(2)), tsym.Int(1))
	assert.True(t, got.Equal(want))
}
