package tsym_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exprmath/tsym"
)

func TestDivideIdentityHolds(t *testing.T) {
	x := tsym.Symbol("x", false)
	u := tsym.Sum(tsym.Power(x, tsym.Int(3)), tsym.Product(tsym.Int(-2), tsym.Power(x, tsym.Int(2))), tsym.Product(tsym.Int(-4), x))
	v := tsym.Sum(x, tsym.Int(-3))

	q, r := tsym.Divide(u, v, []*tsym.Expr{x})

	check := tsym.Expand(tsym.Sum(u, tsym.Product(tsym.Int(-1), tsym.Expand(tsym.Product(q, v))), tsym.Product(tsym.Int(-1), r)))
	assert.True(t, check.IsZero())
}

func TestPseudoDivideIdentityHolds(t *testing.T) {
	x := tsym.Symbol("x", false)
	u := tsym.Sum(tsym.Power(x, tsym.Int(2)), tsym.Int(1))
	v := tsym.Sum(tsym.Product(tsym.Int(2), x), tsym.Int(3))

	q, r := tsym.PseudoDivide(u, v, x)
	degU, degV := 2, 1
	n := degU - degV + 1
	lcV := tsym.Int(2)
	scaledU := tsym.Expand(tsym.Product(tsym.Power(lcV, tsym.Int(n)), u))

	check := tsym.Expand(tsym.Sum(scaledU, tsym.Product(tsym.Int(-1), tsym.Expand(tsym.Product(q, v))), tsym.Product(tsym.Int(-1), r)))
	assert.True(t, check.IsZero())
}

func TestGCDOfNumericLiterals(t *testing.T) {
	g := tsym.GCD(tsym.Int(6), tsym.Int(9), tsym.AlgoSubresultant)
	assert.True(t, g.Equal(tsym.Int(3)))
}

func TestGCDOfPolynomialsDividesBothEvenly(t *testing.T) {
	x := tsym.Symbol("x", false)
	// gcd(x^2-1, x^2-2x+1) -> x-1
	u := tsym.Sum(tsym.Power(x, tsym.Int(2)), tsym.Int(-1))
	v := tsym.Sum(tsym.Power(x, tsym.Int(2)), tsym.Product(tsym.Int(-2), x), tsym.Int(1))

	g := tsym.GCD(u, v, tsym.AlgoSubresultant)
	want := tsym.Sum(x, tsym.Int(-1))
	assert.True(t, g.Equal(want))

	_, ru := tsym.Divide(u, g, []*tsym.Expr{x})
	_, rv := tsym.Divide(v, g, []*tsym.Expr{x})
	assert.True(t, ru.IsZero())
	assert.True(t, rv.IsZero())
}

func TestPrimitivePartStripsContent(t *testing.T) {
	x := tsym.Symbol("x", false)
	e := tsym.Sum(tsym.Product(tsym.Int(6), x), tsym.Int(9))
	content := tsym.Content(e)
	assert.True(t, content.Equal(tsym.Int(3)))

	pp := tsym.PrimitivePart(e)
	want := tsym.Sum(tsym.Product(tsym.Int(2), x), tsym.Int(3))
	assert.True(t, pp.Equal(want))
}

func TestDegreeAndLeadingCoeff(t *testing.T) {
	x := tsym.Symbol("x", false)
	e := tsym.Sum(tsym.Product(tsym.Int(5), tsym.Power(x, tsym.Int(3))), tsym.Power(x, tsym.Int(2)), tsym.Int(1))
	assert.Equal(t, int64(3), e.Degree(x))
	assert.True(t, e.LeadingCoeff(x).Equal(tsym.Int(5)))
}

func TestGCDOfTwoVariablesTerminates(t *testing.T) {
	x := tsym.Symbol("x", false)
	y := tsym.Symbol("y", false)

	// x+y and x*y share no common polynomial factor, so gcd is 1; this
	// must terminate rather than cycle between coprime leading coefficients.
	g := tsym.GCD(tsym.Sum(x, y), tsym.Product(x, y), tsym.AlgoSubresultant)
	assert.True(t, g.Equal(tsym.Int(1)))

	gp := tsym.GCD(tsym.Sum(x, y), tsym.Product(x, y), tsym.AlgoPrimitive)
	assert.True(t, gp.Equal(tsym.Int(1)))
}
