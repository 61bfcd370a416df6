package quant

import "sort"

// Index positions of the eight basic dimensions within a Dimensions
// exponent vector.
const (
	dimMass = iota
	dimLength
	dimTime
	dimTemperature
	dimCurrent
	dimSubstance
	dimLuminosity
	dimInformation

	numBasicDimensions
)

// maxCustomDimensions is the number of reserved custom slots. Four is
// sufficient for every unit in the curated table (pphpd needs two: dir and
// pax) and keeps the common zero-custom-dimension case allocation-light.
const maxCustomDimensions = 4

// Dimensions is the exponent vector of a physical quantity over the eight
// basic SI dimensions plus up to four named custom dimensions, together
// with an optional affine offset for temperature-scale units.
//
// The basic exponents always occupy indices 0..7, in this fixed order:
// mass, length, time, temperature, current, substance, luminosity,
// information. Custom exponents occupy indices 8.. and are named, in the
// same order, by customNames.
type Dimensions struct {
	exponents   [numBasicDimensions + maxCustomDimensions]int
	customNames []string // sorted ascending, parallel to exponents[8:8+len(customNames)]
	offset      float64  // affine zero-shift; only ever nonzero for a solitary affine unit
}

// Dimensionless is the zero-exponent, zero-offset Dimensions value.
var Dimensionless = Dimensions{}

// newDimensions builds a Dimensions from exhaustive basic exponents, no
// custom dimensions. It never fails.
func newDimensions(mass, length, time, temperature, current, substance, luminosity, information int) Dimensions {
	var d Dimensions
	d.exponents[dimMass] = mass
	d.exponents[dimLength] = length
	d.exponents[dimTime] = time
	d.exponents[dimTemperature] = temperature
	d.exponents[dimCurrent] = current
	d.exponents[dimSubstance] = substance
	d.exponents[dimLuminosity] = luminosity
	d.exponents[dimInformation] = information
	return d
}

// withCustom returns a copy of d with the named custom dimension set to
// exponent exp. name must not already be present.
func (d Dimensions) withCustom(name string, exp int) Dimensions {
	idx := len(d.customNames)
	if idx >= maxCustomDimensions {
		panic("quant: too many custom dimensions in static unit table")
	}
	out := d
	out.customNames = append(append([]string(nil), d.customNames...), name)
	out.exponents[numBasicDimensions+idx] = exp
	return out
}

// validate checks the construction invariants from spec §4.1: the
// exponent count must agree with the custom-name count, and custom names
// must be strictly ascending with no duplicates.
func (d Dimensions) validate() error {
	if len(d.customNames) > maxCustomDimensions {
		return errf(InvalidDimensions, "too many custom dimensions: %d", len(d.customNames))
	}
	for i := 1; i < len(d.customNames); i++ {
		if d.customNames[i] <= d.customNames[i-1] {
			return errf(InvalidDimensions, "custom dimension names not strictly ascending: %q then %q", d.customNames[i-1], d.customNames[i])
		}
	}
	return nil
}

// EqualTo reports whether d and other have identical basic and custom
// exponents, the same custom-name list, and the same offset.
func (d Dimensions) EqualTo(other Dimensions) bool {
	if d.offset != other.offset {
		return false
	}
	return d.equalIgnoringOffset(other)
}

func (d Dimensions) equalIgnoringOffset(other Dimensions) bool {
	if len(d.customNames) != len(other.customNames) {
		return false
	}
	for i, n := range d.customNames {
		if other.customNames[i] != n {
			return false
		}
	}
	return d.exponents == other.exponents
}

// IsDimensionless reports whether every exponent is zero and the offset
// is zero.
func (d Dimensions) IsDimensionless() bool {
	return d.offset == 0 && d.exponents == Dimensions{}.exponents && len(d.customNames) == 0
}

// customIndex returns the slot index of name in d, or -1 if absent.
func (d Dimensions) customIndex(name string) int {
	for i, n := range d.customNames {
		if n == name {
			return i
		}
	}
	return -1
}

// combine implements spec §4.1: lhs + rhsSign*rhs on the basic slots, and
// a union-with-summed-exponents merge on custom slots, dropping any
// custom slot whose resulting exponent is zero. Offsets are never
// combined — composite units never carry an affine offset; see
// composite.go for how offset-bearing units are restricted to solitary
// use.
//
// The union of lhs's and rhs's custom names can grow past the reserved
// maxCustomDimensions slots (e.g. folding five distinct "_name" custom
// units into one composite) — that is a malformed quantity per spec
// §4.1's "mismatch between exponent-vector length and custom-name
// count", reported as InvalidDimensions rather than overrunning the
// fixed-size exponent array.
func combine(lhs, rhs Dimensions, rhsSign int) (Dimensions, error) {
	var out Dimensions
	for i := 0; i < numBasicDimensions; i++ {
		out.exponents[i] = lhs.exponents[i] + rhsSign*rhs.exponents[i]
	}

	names := make(map[string]int, len(lhs.customNames)+len(rhs.customNames))
	for i, n := range lhs.customNames {
		names[n] = lhs.exponents[numBasicDimensions+i]
	}
	for i, n := range rhs.customNames {
		names[n] += rhsSign * rhs.exponents[numBasicDimensions+i]
	}

	kept := make([]string, 0, len(names))
	for n, exp := range names {
		if exp != 0 {
			kept = append(kept, n)
		}
	}
	sort.Strings(kept)

	if len(kept) > maxCustomDimensions {
		return Dimensions{}, errf(InvalidDimensions, "too many distinct custom dimensions: %d (max %d)", len(kept), maxCustomDimensions)
	}

	for i, n := range kept {
		out.customNames = append(out.customNames, n)
		out.exponents[numBasicDimensions+i] = names[n]
	}
	return out, nil
}

// scaleExponents returns d's basic+custom exponents all multiplied by f,
// used when a unit appears with power f in a parsed unit list.
func (d Dimensions) scaleExponents(f int) Dimensions {
	out := d
	out.offset = 0
	for i := range out.exponents {
		out.exponents[i] *= f
	}
	return out
}
