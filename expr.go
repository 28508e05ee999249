package tsym

// Kind enumerates the closed set of node variants of §3. The numeric value
// doubles as the "different kinds" precedence order of §4.4 rule 4:
// Numeric < Constant < Symbol < Function < Power < Product < Sum < Undefined.
type Kind uint8

const (
	KindNumeric Kind = iota
	KindConstant
	KindSymbol
	KindFunction
	KindPower
	KindProduct
	KindSum
	KindUndefined
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "Numeric"
	case KindConstant:
		return "Constant"
	case KindSymbol:
		return "Symbol"
	case KindFunction:
		return "Function"
	case KindPower:
		return "Power"
	case KindProduct:
		return "Product"
	case KindSum:
		return "Sum"
	case KindUndefined:
		return "Undefined"
	default:
		return "?"
	}
}

// ConstKind distinguishes the two numerically-evaluable constants (§3).
type ConstKind uint8

const (
	ConstPi ConstKind = iota
	ConstEuler
)

func (c ConstKind) String() string {
	if c == ConstPi {
		return "pi"
	}
	return "e"
}

// Expr is the immutable, shared expression handle of §3. Handles compare by
// structural equality (Equal), with an identity fast-path for interned
// symbols; each handle carries a lazily-computed, cached structural hash.
// There is no mutation after construction — "cloning" is just copying the
// pointer. Go's garbage collector plays the role the spec's "reference
// counted" language describes: a handle is reachable exactly as long as
// something holds a pointer to it.
type Expr struct {
	kind Kind

	sym *symbolInfo // KindSymbol
	num Number       // KindNumeric
	cst ConstKind    // KindConstant

	ops []*Expr  // KindSum / KindProduct operands, KindFunction's 1-2 operands
	fn  FuncKind // KindFunction

	base, exp *Expr // KindPower

	hash   uint64
	hashed bool
}

var undefinedSingleton = &Expr{kind: KindUndefined}
var constPiSingleton = &Expr{kind: KindConstant, cst: ConstPi}
var constESingleton = &Expr{kind: KindConstant, cst: ConstEuler}

// Undefined returns the absorbing leaf of §3: any operation with an
// Undefined operand yields Undefined.
func Undefined() *Expr { return undefinedSingleton }

// NumberExpr wraps a Number as a leaf expression.
func NumberExpr(n Number) *Expr { return &Expr{kind: KindNumeric, num: n} }

// Int returns the exact integer n.
func Int(n int64) *Expr { return NumberExpr(RationalFromInt64(n)) }

// Frac returns the exact rational p/q, or Undefined if q is zero.
func Frac(p, q int64) *Expr {
	n, err := RationalFromFrac(p, q)
	if err != nil {
		logDomainInvalid("frac", err)
		return Undefined()
	}
	return NumberExpr(n)
}

// Float returns an IEEE double leaf.
func Float(f float64) *Expr { return NumberExpr(DoubleFromFloat64(f)) }

// ConstantPi and ConstantE are the two numerically-evaluable constants.
func ConstantPi() *Expr { return constPiSingleton }
func ConstantE() *Expr  { return constESingleton }

func isConstantE(e *Expr) bool { return e.kind == KindConstant && e.cst == ConstEuler }
func isConstantPi(e *Expr) bool { return e.kind == KindConstant && e.cst == ConstPi }

// KindOf is the variant-dispatch query of §6.
func (e *Expr) KindOf() Kind { return e.kind }

func (e *Expr) IsUndefined() bool { return e.kind == KindUndefined }
func (e *Expr) IsNumeric() bool   { return e.kind == KindNumeric }

func (e *Expr) IsZero() bool { return e.kind == KindNumeric && e.num.IsZero() }
func (e *Expr) IsOne() bool  { return e.kind == KindNumeric && e.num.IsOne() }

// IsPositive/IsNegative answer from provable structure (§4.7 rule (c)),
// not only from the literal Numeric sign or the Symbol.positive flag.
func (e *Expr) IsPositive() bool { return isKnownPositive(e) }
func (e *Expr) IsNegative() bool { return isKnownNegative(e) }

func isKnownPositive(e *Expr) bool {
	switch e.kind {
	case KindNumeric:
		return e.num.Sign() > 0
	case KindConstant:
		return true // both pi and e are positive reals
	case KindSymbol:
		return e.sym.positive
	case KindSum:
		allPositive := true
		for _, o := range e.ops {
			if !isKnownPositive(o) {
				allPositive = false
				break
			}
		}
		return allPositive
	case KindProduct:
		negatives := 0
		for _, o := range e.ops {
			switch {
			case isKnownPositive(o):
			case isKnownNegative(o):
				negatives++
			default:
				return false
			}
		}
		return negatives%2 == 0
	case KindPower:
		if isKnownPositive(e.base) {
			return true
		}
		if isKnownNegative(e.base) && e.exp.kind == KindNumeric && e.exp.num.IsInteger() {
			return e.exp.num.IntValue()%2 == 0
		}
		return false
	default:
		return false
	}
}

func isKnownNegative(e *Expr) bool {
	switch e.kind {
	case KindNumeric:
		return e.num.Sign() < 0
	case KindProduct:
		negatives := 0
		for _, o := range e.ops {
			switch {
			case isKnownPositive(o):
			case isKnownNegative(o):
				negatives++
			default:
				return false
			}
		}
		return negatives%2 == 1
	default:
		return false
	}
}

// IsConst reports whether e carries no free symbols at all — built purely
// from Numeric/Constant leaves via Sum/Product/Power/Function (glossary
// "Non-const term" is the complement of this under multiplication).
func (e *Expr) IsConst() bool {
	switch e.kind {
	case KindNumeric, KindConstant:
		return true
	case KindSum, KindProduct, KindFunction:
		for _, o := range e.ops {
			if !o.IsConst() {
				return false
			}
		}
		return true
	case KindPower:
		return e.base.IsConst() && e.exp.IsConst()
	default:
		return false
	}
}

// NumericString renders a Numeric leaf's value in canonical text form
// (diagnostic use only — the real print engine is an external
// collaborator per §6).
func (e *Expr) NumericString() string { return e.num.String() }

// ConstKind returns which constant e is; ConstPi for non-Constant nodes.
func (e *Expr) ConstKind() ConstKind { return e.cst }

// FuncKind returns which function e applies; zero value for non-Function
// nodes.
func (e *Expr) FuncKind() FuncKind { return e.fn }

// Name returns the symbol's name; Name{} for non-symbols.
func (e *Expr) Name() Name {
	if e.kind == KindSymbol {
		return e.sym.name
	}
	return Name{}
}

// Operands returns Sum/Product/Function operands; nil otherwise.
func (e *Expr) Operands() []*Expr {
	switch e.kind {
	case KindSum, KindProduct, KindFunction:
		return e.ops
	default:
		return nil
	}
}

// Base and Exp return a Power's parts; for non-Power expressions they
// behave as if e were Power(e, 1), matching the order-relation convention
// of §4.4 rule 4.
func (e *Expr) Base() *Expr {
	if e.kind == KindPower {
		return e.base
	}
	return e
}

func (e *Expr) Exp() *Expr {
	if e.kind == KindPower {
		return e.exp
	}
	return Int(1)
}

// NumericEval evaluates a fully-constant expression to a Number, reporting
// ok=false if e still contains a free symbol or an undefined subterm.
func (e *Expr) NumericEval() (Number, bool) {
	switch e.kind {
	case KindNumeric:
		return e.num, true
	case KindConstant:
		if e.cst == ConstPi {
			return DoubleFromFloat64(piFloat64), true
		}
		return DoubleFromFloat64(eFloat64), true
	case KindSum:
		acc := RationalFromInt64(0)
		for _, o := range e.ops {
			v, ok := o.NumericEval()
			if !ok {
				return Number{}, false
			}
			acc = acc.Add(v)
		}
		return acc, true
	case KindProduct:
		acc := RationalFromInt64(1)
		for _, o := range e.ops {
			v, ok := o.NumericEval()
			if !ok {
				return Number{}, false
			}
			acc = acc.Mul(v)
		}
		return acc, true
	case KindPower:
		b, ok := e.base.NumericEval()
		if !ok {
			return Number{}, false
		}
		ex, ok := e.exp.NumericEval()
		if !ok {
			return Number{}, false
		}
		return evalNumericPow(b, ex)
	case KindFunction:
		return evalFunctionNumeric(e)
	default:
		return Number{}, false
	}
}

const piFloat64 = 3.14159265358979323846
const eFloat64 = 2.71828182845904523536

// Has reports whether sub occurs anywhere in e's structure, including e
// itself.
func (e *Expr) Has(sub *Expr) bool {
	if e.Equal(sub) {
		return true
	}
	for _, c := range e.children() {
		if c.Has(sub) {
			return true
		}
	}
	return false
}

func (e *Expr) children() []*Expr {
	switch e.kind {
	case KindSum, KindProduct, KindFunction:
		return e.ops
	case KindPower:
		return []*Expr{e.base, e.exp}
	default:
		return nil
	}
}

// Complexity is a structural cost heuristic (leaves cost 1, compound nodes
// cost 1 + the sum of their children's cost). The spec names the query but
// leaves the metric unspecified; this mirrors the "leaf count" style
// complexity measures used across CAS printers/simplifier heuristics and is
// recorded as an explicit design choice rather than pinned by spec.md.
func (e *Expr) Complexity() int {
	switch e.kind {
	case KindSum, KindProduct, KindFunction:
		c := 1
		for _, o := range e.ops {
			c += o.Complexity()
		}
		return c
	case KindPower:
		return 1 + e.base.Complexity() + e.exp.Complexity()
	default:
		return 1
	}
}

// Equal is the structural equality of §4.2: same variant tag, then
// tag-specific comparison. Interned handles short-circuit via pointer
// identity.
func (e *Expr) Equal(o *Expr) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case KindUndefined:
		return true
	case KindNumeric:
		return e.num.Equal(o.num)
	case KindConstant:
		return e.cst == o.cst
	case KindSymbol:
		return e.sym.name.Equal(o.sym.name) && e.sym.positive == o.sym.positive
	case KindSum, KindProduct:
		if len(e.ops) != len(o.ops) {
			return false
		}
		for i := range e.ops {
			if !e.ops[i].Equal(o.ops[i]) {
				return false
			}
		}
		return true
	case KindPower:
		return e.base.Equal(o.base) && e.exp.Equal(o.exp)
	case KindFunction:
		if e.fn != o.fn || len(e.ops) != len(o.ops) {
			return false
		}
		for i := range e.ops {
			if !e.ops[i].Equal(o.ops[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Hash returns the cached structural hash (§4.2: isEqual(a,b) ⇒ hash(a)==hash(b)).
func (e *Expr) Hash() uint64 {
	if e.hashed {
		return e.hash
	}
	h := hashCombine(fnvSeed, uint64(e.kind))
	switch e.kind {
	case KindNumeric:
		h = hashCombine(h, e.num.hash())
	case KindConstant:
		h = hashCombine(h, uint64(e.cst))
	case KindSymbol:
		h = hashCombine(h, hashString(e.sym.name.String()))
		if e.sym.positive {
			h = hashCombine(h, 1)
		}
	case KindSum, KindProduct:
		for _, o := range e.ops {
			h = hashCombine(h, o.Hash())
		}
	case KindPower:
		h = hashCombine(h, e.base.Hash())
		h = hashCombine(h, e.exp.Hash())
	case KindFunction:
		h = hashCombine(h, uint64(e.fn))
		for _, o := range e.ops {
			h = hashCombine(h, o.Hash())
		}
	}
	e.hash = h
	e.hashed = true
	return h
}

// productFactors returns e's multiplicative factors: its operand list if e
// is a Product, or the singleton {e} otherwise.
func (e *Expr) productFactors() []*Expr {
	if e.kind == KindProduct {
		return e.ops
	}
	return []*Expr{e}
}

func (e *Expr) partitionFactors(pred func(*Expr) bool) (matched, rest *Expr) {
	var m, r []*Expr
	for _, f := range e.productFactors() {
		if pred(f) {
			m = append(m, f)
		} else {
			r = append(r, f)
		}
	}
	return Product(m...), Product(r...)
}

// NumericTerm/NonNumericTerm partition e's factors on "is a Numeric leaf"
// (glossary "Non-numeric term").
func (e *Expr) NumericTerm() *Expr {
	m, _ := e.partitionFactors(func(x *Expr) bool { return x.kind == KindNumeric })
	return m
}

func (e *Expr) NonNumericTerm() *Expr {
	_, r := e.partitionFactors(func(x *Expr) bool { return x.kind == KindNumeric })
	return r
}

// ConstTerm/NonConstTerm partition e's factors on IsConst (glossary
// "Non-const term").
func (e *Expr) ConstTerm() *Expr {
	m, _ := e.partitionFactors(func(x *Expr) bool { return x.IsConst() })
	return m
}

func (e *Expr) NonConstTerm() *Expr {
	_, r := e.partitionFactors(func(x *Expr) bool { return x.IsConst() })
	return r
}

// Degree, MinDegree, Coeff and LeadingCoeff are the polynomial queries of
// §6: the highest/lowest power of v appearing in e, the coefficient of
// v^n, and the coefficient of v's highest power, respectively.
func (e *Expr) Degree(v *Expr) int64          { return degree(e, v) }
func (e *Expr) MinDegree(v *Expr) int64       { return minDegree(e, v) }
func (e *Expr) Coeff(v *Expr, n int64) *Expr  { return coeff(e, v, n) }
func (e *Expr) LeadingCoeff(v *Expr) *Expr    { return leadingCoeff(e, v) }
