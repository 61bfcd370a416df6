package quant

// The two prefix tables below are disjoint by construction: metric
// prefixes are exactly one character and decimal-scaled; binary
// prefixes are exactly two characters and power-of-two-scaled. That
// keeps resolveSingleUnit's one-rune-then-two-rune lookahead
// unambiguous without any backtracking.

// metricPrefixes maps every standard SI prefix symbol (q .. Q) to its
// decimal factor. There is deliberately no "da" (deca): the spec requires
// single-character metric symbols only, so the parser's one-character
// lookahead stays unambiguous.
var metricPrefixes = map[string]float64{
	"q": 1e-30,
	"r": 1e-27,
	"y": 1e-24,
	"z": 1e-21,
	"a": 1e-18,
	"f": 1e-15,
	"p": 1e-12,
	"n": 1e-9,
	"u": 1e-6,
	"µ": 1e-6,
	"m": 1e-3,
	"c": 1e-2,
	"d": 1e-1,
	"h": 1e2,
	"k": 1e3,
	"M": 1e6,
	"G": 1e9,
	"T": 1e12,
	"P": 1e15,
	"E": 1e18,
	"Z": 1e21,
	"Y": 1e24,
	"R": 1e27,
	"Q": 1e30,
}

// binaryPrefixes maps each two-character binary prefix to its power-of-two
// factor (stored as a decimal approximation, which is acceptable per
// spec §6).
var binaryPrefixes = map[string]float64{
	"Ki": 1024,
	"Mi": 1024 * 1024,
	"Gi": 1024 * 1024 * 1024,
	"Ti": 1024 * 1024 * 1024 * 1024,
	"Pi": 1024 * 1024 * 1024 * 1024 * 1024,
	"Ei": 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
	"Zi": 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
	"Yi": 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024 * 1024,
}

