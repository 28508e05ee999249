package tsym

import "github.com/pkg/errors"

// ErrorKind classifies the abstract error kinds of §7. None of these ever
// cross the core boundary as a Go error — every public operation signals
// them by returning Undefined (or a documented fallback) and logging.
type ErrorKind uint8

const (
	// KindDomainInvalid is an operation on incompatible operands: real
	// root of a negative base, division by zero, a polynomial operation
	// on invalid input, gcd of two zeros.
	KindDomainInvalid ErrorKind = iota
	// KindOverflow is an exponent or degree that does not fit the
	// platform integer used for exponent arithmetic.
	KindOverflow
	// KindPrecondition is API misuse: rest() of an empty list, a
	// polynomial unit of a non-polynomial expression, a symbol name
	// starting with the reserved temp prefix.
	KindPrecondition
)

func (k ErrorKind) String() string {
	switch k {
	case KindDomainInvalid:
		return "domain-invalid"
	case KindOverflow:
		return "overflow"
	case KindPrecondition:
		return "precondition"
	default:
		return "unknown"
	}
}

var (
	errEvenRootOfNegative   = errors.New("even-denominator root of a negative base")
	errNegativeZeroPower    = errors.New("0 raised to a negative power")
	errGCDOfZeros           = errors.New("gcd of two zero polynomials")
	errEmptyOperandList     = errors.New("rest of an empty operand list")
	errReservedTempPrefix   = errors.New("symbol name uses the reserved temporary prefix")
	errNotPolynomial        = errors.New("expression is not a valid polynomial")
	errDegreeTooLarge       = errors.New("degree exceeds platform integer range")
	errDomainLogNonPositive = errors.New("logarithm of a non-positive real")
	errDomainAsinRange      = errors.New("asin argument outside [-1,1]")
	errDomainAcosRange      = errors.New("acos argument outside [-1,1]")
	errDomainAtan2Origin    = errors.New("atan2(0,0) is undefined")
	errNormalZeroDenom      = errors.New("normal form has a zero denominator")
)
