package quant

import "math"

// composite is the reduction of a parsed unit-string into the three
// numbers the conversion engine actually needs: the scale that converts
// one whole composite unit into SI-base units, its combined dimensions,
// and an optional affine offset (spec §4.5).
type composite struct {
	scale     float64
	dims      Dimensions
	hasOffset bool
	offset    float64
}

// reduceComposite folds a parsed unit list into a composite. An affine
// (offset-bearing) unit — degC, degF — is only meaningful standing alone
// at power 1; any other combination involving one is InvalidOffsetUse,
// since "degC/s" or "degC^2" have no sensible zero point (spec §4.1, §7).
func reduceComposite(parsed []ParsedUnit) (composite, error) {
	if len(parsed) == 1 {
		pu := parsed[0]
		d, ok := unitTable[pu.Unit]
		if ok && d.hasOffset {
			if pu.Power != 1 || pu.Prefix != "" {
				return composite{}, errf(InvalidOffsetUse, "offset unit %q cannot carry a prefix or exponent", pu.Unit)
			}
			return composite{scale: d.scale, dims: d.dims, hasOffset: true, offset: d.offset}, nil
		}
	}

	out := composite{scale: 1, dims: Dimensionless}
	for _, pu := range parsed {
		d, err := lookupDescriptor(pu)
		if err != nil {
			return composite{}, err
		}
		if d.hasOffset {
			return composite{}, errf(InvalidOffsetUse, "offset unit %q must appear alone with exponent 1", pu.Unit)
		}

		unitScale := pu.prefixFactor() * d.scale
		out.scale *= math.Pow(unitScale, float64(pu.Power))
		dims, err := combine(out.dims, d.dims.scaleExponents(pu.Power), 1)
		if err != nil {
			return composite{}, err
		}
		out.dims = dims
	}
	return out, nil
}

// lookupDescriptor resolves a ParsedUnit back to its static descriptor,
// synthesizing one on the fly for "_name" custom dimensions, which have
// no table entry: a custom unit is always scale 1, dimension exponent 1
// in its own named slot.
func lookupDescriptor(pu ParsedUnit) (descriptor, error) {
	if len(pu.Unit) > 0 && pu.Unit[0] == '_' {
		return descriptor{scale: 1, dims: Dimensionless.withCustom(pu.Unit[1:], 1)}, nil
	}
	d, ok := unitTable[pu.Unit]
	if !ok {
		return descriptor{}, errf(UnknownUnit, "unrecognized unit %q", pu.Unit)
	}
	return d, nil
}

// toBase converts a magnitude expressed in this composite's unit into its
// SI-base equivalent, honoring the affine offset when present. The offset
// is applied after scaling, matching the (scale, offset) pairs in the
// unit table: base = magnitude*scale + offset.
func (c composite) toBase(magnitude float64) float64 {
	if c.hasOffset {
		return magnitude*c.scale + c.offset
	}
	return magnitude * c.scale
}

// fromBase is the inverse of toBase.
func (c composite) fromBase(base float64) float64 {
	if c.hasOffset {
		return (base - c.offset) / c.scale
	}
	return base / c.scale
}
