package tsym

// Fraction is the rational-function normal form of §4.12: Num/Denom with
// gcd(Num,Denom)=1 under §4.11's GCD.
type Fraction struct {
	Num   *Expr
	Denom *Expr
}

// Equal reports whether two Fractions are structurally identical — since
// Normal is canonical, semantic equality of the originating expressions
// reduces to this (§4.12: "two expressions are semantically equal iff
// their normal forms are structurally equal").
func (f Fraction) Equal(o Fraction) bool {
	return f.Num.Equal(o.Num) && f.Denom.Equal(o.Denom)
}

// SymbolMap is the bidirectional substitution table of §4.12: it assigns a
// fresh temporary symbol to each distinct non-polynomial subexpression
// (Function nodes, non-integer or symbolic-exponent Power nodes) it's
// asked to encode, so normal's polynomial machinery can run on a
// polynomial surrogate.
type SymbolMap struct {
	forward  map[uint64]*Expr // subexpression hash -> temp symbol
	byHash   map[uint64]*Expr // subexpression hash -> original subexpression
	backward map[string]*Expr // temp symbol name -> original subexpression
}

func newSymbolMap() *SymbolMap {
	return &SymbolMap{
		forward:  make(map[uint64]*Expr),
		byHash:   make(map[uint64]*Expr),
		backward: make(map[string]*Expr),
	}
}

// encode returns the temp symbol standing in for sub, minting one on first
// use (keyed by sub's structural hash, with an Equal check to disambiguate
// hash collisions).
func (m *SymbolMap) encode(sub *Expr) *Expr {
	h := sub.Hash()
	if existing, ok := m.byHash[h]; ok && existing.Equal(sub) {
		return m.forward[h]
	}
	sym := TmpSymbol(false)
	m.forward[h] = sym
	m.byHash[h] = sub
	m.backward[sym.Name().String()] = sub
	return sym
}

// fromSurrogate reverses encode, substituting the original subexpression
// back in for a temp symbol.
func (m *SymbolMap) fromSurrogate(e *Expr) *Expr {
	if e.kind == KindSymbol {
		if orig, ok := m.backward[e.Name().String()]; ok {
			return orig
		}
	}
	return e
}

// backSubstTree walks e bottom-up applying fromSurrogate at every node.
func backSubstTree(e *Expr, m *SymbolMap) *Expr {
	switch e.kind {
	case KindSum:
		terms := make([]*Expr, len(e.ops))
		for i, t := range e.ops {
			terms[i] = backSubstTree(t, m)
		}
		return Sum(terms...)
	case KindProduct:
		factors := make([]*Expr, len(e.ops))
		for i, f := range e.ops {
			factors[i] = backSubstTree(f, m)
		}
		return Product(factors...)
	case KindPower:
		return Power(backSubstTree(e.base, m), backSubstTree(e.exp, m))
	case KindSymbol:
		return m.fromSurrogate(e)
	default:
		return e
	}
}

// addFractions and mulFractions are the rational-arithmetic combinators
// normalFrac folds a Sum/Product over: common-denominator addition and
// componentwise multiplication, each left unreduced until Normal's final
// gcd pass.
func addFractions(a, b Fraction) Fraction {
	num := Expand(Sum(Expand(Product(a.Num, b.Denom)), Expand(Product(b.Num, a.Denom))))
	denom := Expand(Product(a.Denom, b.Denom))
	return Fraction{Num: num, Denom: denom}
}

func mulFractions(a, b Fraction) Fraction {
	return Fraction{Num: Expand(Product(a.Num, b.Num)), Denom: Expand(Product(a.Denom, b.Denom))}
}

// normalFrac is §4.12's recursive descent: Sums combine term fractions over
// a common denominator, Products multiply factor fractions, integer powers
// of a fraction raise numerator and denominator (flipping for a negative
// exponent), and anything else — a Function call, a non-integer or
// symbolic power — is encoded as a fresh surrogate symbol over 1, so the
// polynomial gcd/divide machinery downstream never has to look inside it.
func normalFrac(e *Expr, m *SymbolMap) Fraction {
	switch e.kind {
	case KindSum:
		acc := Fraction{Num: Int(0), Denom: Int(1)}
		for _, t := range e.ops {
			acc = addFractions(acc, normalFrac(t, m))
		}
		return acc
	case KindProduct:
		acc := Fraction{Num: Int(1), Denom: Int(1)}
		for _, f := range e.ops {
			acc = mulFractions(acc, normalFrac(f, m))
		}
		return acc
	case KindPower:
		if e.exp.kind == KindNumeric && e.exp.num.IsInteger() {
			base := normalFrac(e.base, m)
			n := e.exp.num.IntValue()
			if n >= 0 {
				return Fraction{Num: Expand(Power(base.Num, Int(n))), Denom: Expand(Power(base.Denom, Int(n)))}
			}
			return Fraction{Num: Expand(Power(base.Denom, Int(-n))), Denom: Expand(Power(base.Num, Int(-n)))}
		}
		sym := m.encode(e)
		return Fraction{Num: sym, Denom: Int(1)}
	case KindFunction:
		sym := m.encode(e)
		return Fraction{Num: sym, Denom: Int(1)}
	default:
		return Fraction{Num: e, Denom: Int(1)}
	}
}

// Normal is §4.12's rational-function canonicalizer: it recursively
// combines expr into a single numerator/denominator pair over a surrogate
// encoding of its non-polynomial subterms, reduces that pair by its gcd,
// and back-substitutes the surrogates.
func Normal(expr *Expr) Fraction {
	m := newSymbolMap()
	f := normalFrac(expr, m)

	if f.Denom.IsZero() {
		logDomainInvalid("normal", errNormalZeroDenom)
		return Fraction{Num: Undefined(), Denom: Undefined()}
	}

	g := GCD(f.Num, f.Denom, AlgoSubresultant)
	redNum, redDenom := f.Num, f.Denom
	if !g.IsOne() && !g.IsUndefined() {
		redNum, _ = Divide(f.Num, g, listOfSymbols(f.Num, g))
		redDenom, _ = Divide(f.Denom, g, listOfSymbols(f.Denom, g))
	}

	return Fraction{Num: backSubstTree(redNum, m), Denom: backSubstTree(redDenom, m)}
}
