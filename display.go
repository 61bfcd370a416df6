package quant

import "math"

// humanizePrefix picks a metric display prefix for value by magnitude
// bucket, returning the prefix symbol and value rescaled into that
// prefix. It never picks a prefix finer than pico or coarser than giga —
// outside that band the unscaled value is returned so extreme values
// stay in scientific notation rather than acquiring an exotic prefix a
// reader wouldn't recognize at a glance.
func humanizePrefix(value float64) (prefix string, scaled float64) {
	abs := math.Abs(value)
	switch {
	case abs == 0:
		return "", 0
	case abs >= 1e12:
		return "", value
	case abs >= 1e9:
		return "G", value / 1e9
	case abs >= 1e6:
		return "M", value / 1e6
	case abs >= 1e3:
		return "k", value / 1e3
	case abs >= 1:
		return "", value
	case abs >= 1e-3:
		return "m", value * 1e3
	case abs >= 1e-6:
		return "u", value * 1e6
	case abs >= 1e-9:
		return "n", value * 1e9
	case abs >= 1e-12:
		return "p", value * 1e12
	default:
		return "", value
	}
}

// Humanize renders q's canonical SI magnitude with a single display
// prefix folded onto the leading basic or derived unit of its canonical
// unit string, for human-facing output (used by the example program).
func (q *Quantity) Humanize() (float64, string) {
	magnitude, units := q.GetSI()
	parsed := mustParseUnits(units)
	if len(parsed) == 0 {
		return magnitude, units
	}

	lead := parsed[0]
	if lead.Power != 1 || lead.Prefix != "" {
		return magnitude, units
	}
	d, ok := unitTable[lead.Unit]
	if !ok || !d.prefixable {
		return magnitude, units
	}

	prefix, scaled := humanizePrefix(magnitude)
	if prefix == "" {
		return magnitude, units
	}
	parsed[0] = ParsedUnit{Prefix: prefix, Unit: lead.Unit, Power: 1}
	return scaled, formatUnits(parsed)
}

func mustParseUnits(units string) []ParsedUnit {
	parsed, err := parseUnits(units)
	if err != nil {
		return nil
	}
	return parsed
}
