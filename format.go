package quant

import (
	"strconv"
	"strings"
)

// formatUnits renders a parsed unit list back into canonical unit-string
// form: positive powers first joined by the middle dot, then at most one
// '/' followed by the negative powers (rendered positive), and an
// exponent suffix is only ever emitted for |power| != 1 (spec §4.6).
//
// A unit list with no positive-power side at all (e.g. a bare inverse
// second) is the one exception: it is rendered with each entry's
// original negative power explicit ("s^-1"), never as "1/s" — spec
// §4.6's "if only denominator" case.
func formatUnits(parsed []ParsedUnit) string {
	if len(parsed) == 0 {
		return ""
	}

	var num, den []ParsedUnit
	for _, pu := range parsed {
		if pu.Power < 0 {
			den = append(den, pu)
		} else {
			num = append(num, pu)
		}
	}

	var b strings.Builder
	if len(num) == 0 {
		writeSideExplicit(&b, den)
		return b.String()
	}

	writeSide(&b, num, 1)
	if len(den) > 0 {
		b.WriteByte('/')
		writeSide(&b, den, -1)
	}
	return b.String()
}

// writeSideExplicit writes each sub-unit's symbol joined by the middle
// dot with its power rendered verbatim (including a bare "-1"), used
// only for the denominator-only case where there is no "/" to imply
// the sign.
func writeSideExplicit(b *strings.Builder, units []ParsedUnit) {
	for i, pu := range units {
		if i > 0 {
			b.WriteRune(middleDot)
		}
		b.WriteString(pu.symbol())
		b.WriteByte('^')
		b.WriteString(strconv.Itoa(pu.Power))
	}
}

// writeSide writes each sub-unit's symbol joined by the middle dot,
// multiplying its stored power by sign before rendering the exponent.
func writeSide(b *strings.Builder, units []ParsedUnit, sign int) {
	for i, pu := range units {
		if i > 0 {
			b.WriteRune(middleDot)
		}
		b.WriteString(pu.symbol())
		p := pu.Power * sign
		if p != 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(p))
		}
	}
}
