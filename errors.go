package quant

import "fmt"

// Kind discriminates the taxonomy of errors this package can return.
type Kind int

const (
	// InvalidUnitString covers malformed compound expressions: more than
	// one '/', or an empty sub-unit between separators.
	InvalidUnitString Kind = iota
	// UnknownUnit means a token matched no exact unit, no prefix
	// decomposition, and was not a "_"-prefixed custom unit.
	UnknownUnit
	// InvalidExponent means a '^' suffix was present but not a nonzero
	// integer.
	InvalidExponent
	// InvalidDimensions means a Dimensions value was constructed with a
	// malformed exponent vector or custom-name list.
	InvalidDimensions
	// InvalidOffsetUse means an offset-bearing unit appeared somewhere
	// other than as the sole, unit-power element of a parsed list.
	InvalidOffsetUse
	// InvalidConversion means the source and target dimensions (ignoring
	// offset) differ.
	InvalidConversion
)

func (k Kind) String() string {
	switch k {
	case InvalidUnitString:
		return "InvalidUnitString"
	case UnknownUnit:
		return "UnknownUnit"
	case InvalidExponent:
		return "InvalidExponent"
	case InvalidDimensions:
		return "InvalidDimensions"
	case InvalidOffsetUse:
		return "InvalidOffsetUse"
	case InvalidConversion:
		return "InvalidConversion"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the single error type this package returns. Every failure is
// immediate and terminal for the operation that produced it; callers
// distinguish cases on Kind rather than string-matching Error().
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether target is a *Error with the same Kind, so callers
// can write errors.Is(err, &quant.Error{Kind: quant.InvalidConversion}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}
