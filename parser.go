package quant

import "unicode/utf8"

// ParsedUnit is the result of tokenizing one sub-unit of a unit
// expression: an optional prefix, the resolved unit name, and a nonzero
// integer power (spec §3, §4.4).
type ParsedUnit struct {
	Prefix string
	Unit   string
	Power  int
}

func (p ParsedUnit) symbol() string {
	return p.Prefix + p.Unit
}

// prefixFactor returns the multiplicative factor contributed by p.Prefix,
// 1 if there is none.
func (p ParsedUnit) prefixFactor() float64 {
	if p.Prefix == "" {
		return 1
	}
	if f, ok := metricPrefixes[p.Prefix]; ok {
		return f
	}
	return binaryPrefixes[p.Prefix]
}

// parseUnits parses a compound unit expression such as "kg⋅m/s^2" or
// "/s" into an ordered list of ParsedUnit. An empty string parses to an
// empty (dimensionless) list.
func parseUnits(input string) ([]ParsedUnit, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	// drop the trailing EOF sentinel
	toks = toks[:len(toks)-1]

	var sides [][]token
	start := 0
	for i, t := range toks {
		if t.kind == tokDivide {
			sides = append(sides, toks[start:i])
			start = i + 1
		}
	}
	sides = append(sides, toks[start:])

	if len(sides) > 2 {
		return nil, errf(InvalidUnitString, "more than one '/' in unit string %q", input)
	}

	numerator, err := parseSide(sides[0])
	if err != nil {
		return nil, err
	}

	if len(sides) == 1 {
		return numerator, nil
	}

	if len(sides[1]) == 0 {
		return nil, errf(InvalidUnitString, "empty denominator in unit string %q", input)
	}
	denominator, err := parseSide(sides[1])
	if err != nil {
		return nil, err
	}
	for i := range denominator {
		denominator[i].Power = -denominator[i].Power
	}

	return append(numerator, denominator...), nil
}

// parseSide walks one side (numerator or denominator) of a '/' split,
// grouping each identifier with its optional "^exp" suffix.
func parseSide(toks []token) ([]ParsedUnit, error) {
	var units []ParsedUnit
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.kind != tokIdentifier {
			return nil, errf(InvalidUnitString, "expected a unit name at position %d", t.pos)
		}
		power := 1
		next := i + 1
		if next < len(toks) && toks[next].kind == tokPower {
			power = toks[next+1].value
			next += 2
		}

		pu, err := resolveSingleUnit(t.text, power)
		if err != nil {
			return nil, err
		}
		units = append(units, pu)
		i = next
	}
	return units, nil
}

// resolveSingleUnit implements the single-unit tokenization algorithm of
// spec §4.4: exact match, then custom "_name", then one-character metric
// prefix, then two-character binary prefix, in that tie-break order.
func resolveSingleUnit(name string, power int) (ParsedUnit, error) {
	if _, ok := unitTable[name]; ok {
		return ParsedUnit{Unit: name, Power: power}, nil
	}

	if len(name) > 1 && name[0] == '_' {
		return ParsedUnit{Unit: name, Power: power}, nil
	}

	if r, width := utf8.DecodeRuneInString(name); width > 0 {
		prefix := name[:width]
		if _, ok := metricPrefixes[prefix]; ok {
			rest := name[width:]
			if d, ok := unitTable[rest]; ok && d.prefixable {
				return ParsedUnit{Prefix: prefix, Unit: rest, Power: power}, nil
			}
		}
		_ = r
	}

	if w1 := runeWidth(name, 0); w1 > 0 {
		if w2 := runeWidth(name, w1); w2 > 0 {
			prefix := name[:w1+w2]
			if _, ok := binaryPrefixes[prefix]; ok {
				rest := name[w1+w2:]
				if d, ok := unitTable[rest]; ok && d.binaryPrefixable {
					return ParsedUnit{Prefix: prefix, Unit: rest, Power: power}, nil
				}
			}
		}
	}

	return ParsedUnit{}, errf(UnknownUnit, "unrecognized unit %q", name)
}

func runeWidth(s string, at int) int {
	if at >= len(s) {
		return 0
	}
	_, width := utf8.DecodeRuneInString(s[at:])
	return width
}
