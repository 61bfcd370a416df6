package quant

// Quantity is a magnitude paired with its dimensions, stored internally
// in SI-base units so that repeated conversions never accumulate
// rounding drift through a chain of intermediate units (spec §3, §4.5).
type Quantity struct {
	baseMagnitude float64
	dims          Dimensions

	// legacyUnits is the exact unit string the caller constructed this
	// Quantity with. GetSI always re-synthesizes a canonical SI string;
	// LegacyUnits preserves whatever the caller originally wrote, since
	// some callers round-trip unit strings verbatim (spec §6, §9).
	legacyUnits string
}

// New parses units and builds a Quantity of the given magnitude.
func New(magnitude float64, units string) (*Quantity, error) {
	parsed, err := parseUnits(units)
	if err != nil {
		return nil, err
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		return nil, err
	}
	return &Quantity{
		baseMagnitude: c.toBase(magnitude),
		dims:          c.dims,
		legacyUnits:   units,
	}, nil
}

// Dimensions returns q's dimension vector.
func (q *Quantity) Dimensions() Dimensions {
	return q.dims
}

// LegacyUnits returns the unit string q was originally constructed with,
// verbatim.
func (q *Quantity) LegacyUnits() string {
	return q.legacyUnits
}

// Convert returns q's magnitude expressed in the given target units. The
// target's dimensions must match q's, compared without regard to any
// affine offset; otherwise Convert reports InvalidConversion.
func (q *Quantity) Convert(units string) (float64, error) {
	parsed, err := parseUnits(units)
	if err != nil {
		return 0, err
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		return 0, err
	}
	if !q.dims.equalIgnoringOffset(c.dims) {
		return 0, errf(InvalidConversion, "cannot convert %q to %q: incompatible dimensions", q.legacyUnits, units)
	}
	return c.fromBase(q.baseMagnitude), nil
}

// preferredDerived lists the named derived units tried, in order, when
// re-synthesizing a canonical SI representation (spec §4.5, §6). Earlier
// entries win ties, matching the priority a reader would expect: force
// and pressure before the more exotic electromagnetic units.
var preferredDerived = []string{
	"N", "Pa", "J", "W", "C", "V", "F", "ohm", "S", "Wb", "T", "H",
}

// basicUnitSymbols maps each basic dimension slot to the ParsedUnit that
// expresses one unit of that dimension in SI base terms.
var basicUnitSymbols = map[int]ParsedUnit{
	dimMass:        {Prefix: "k", Unit: "g", Power: 1},
	dimLength:      {Unit: "m", Power: 1},
	dimTime:        {Unit: "s", Power: 1},
	dimTemperature: {Unit: "K", Power: 1},
	dimCurrent:     {Unit: "A", Power: 1},
	dimSubstance:   {Unit: "mol", Power: 1},
	dimLuminosity:  {Unit: "cd", Power: 1},
	dimInformation: {Unit: "b", Power: 1},
}

// GetSI returns q's magnitude and a canonical SI unit string: a greedy
// descent through preferredDerived, then any leftover basic dimensions,
// then any custom dimensions, all expressed with scale exactly 1 from
// q's stored SI-base magnitude (spec §4.5, §4.6).
//
// Each descent step considers every candidate in preferredDerived at
// both +1 and −1 power and commits whichever single step yields the
// largest reduction in the remaining dimensions' complexity score
// (sum of absolute exponents), ties broken by preferredDerived's order.
// This is a full-pass-best-improvement search, not a first-candidate-
// that-helps search: a unit whose own dimensions only partially overlap
// the remainder (e.g. Volt's mass exponent colliding with leftover mass
// contributed by a separate kg factor) can still be the best single
// step even though an earlier candidate in the list also reduces the
// score by a smaller amount.
func (q *Quantity) GetSI() (float64, string) {
	remaining := q.dims
	remaining.offset = 0

	order := make([]string, 0, len(preferredDerived))
	powers := make(map[string]int)

	for {
		sym, power, ok := bestDerivedStep(remaining)
		if !ok {
			break
		}
		d := unitTable[sym]
		next, err := combine(remaining, d.dims, -power)
		if err != nil {
			// unreachable in practice: preferredDerived entries carry no
			// custom dimensions, so this union can never grow past what
			// remaining already validated at construction. Stop the
			// descent rather than propagate, since GetSI has no error
			// return (spec §4.5).
			break
		}
		remaining = next
		if _, seen := powers[sym]; !seen {
			order = append(order, sym)
		}
		powers[sym] += power
	}

	var parts []ParsedUnit
	for _, sym := range order {
		if p := powers[sym]; p != 0 {
			parts = append(parts, ParsedUnit{Unit: sym, Power: p})
		}
	}

	for slot := 0; slot < numBasicDimensions; slot++ {
		if remaining.exponents[slot] == 0 {
			continue
		}
		pu := basicUnitSymbols[slot]
		pu.Power = remaining.exponents[slot]
		parts = append(parts, pu)
	}

	for i, name := range remaining.customNames {
		exp := remaining.exponents[numBasicDimensions+i]
		if exp == 0 {
			continue
		}
		parts = append(parts, ParsedUnit{Unit: "_" + name, Power: exp})
	}

	return q.baseMagnitude, formatUnits(parts)
}

// complexityScore is the sum of absolute exponents across every basic and
// custom dimension slot, per spec §4.5's "nonnegative complexity score".
func complexityScore(d Dimensions) int {
	score := 0
	for _, e := range d.exponents {
		if e < 0 {
			score -= e
		} else {
			score += e
		}
	}
	return score
}

// bestDerivedStep scans preferredDerived for the single +1 or -1 power
// step that most reduces remaining's complexity score, per spec §4.5
// step 2. It returns ok=false once no candidate step improves the score.
func bestDerivedStep(remaining Dimensions) (sym string, power int, ok bool) {
	currentScore := complexityScore(remaining)
	bestReduction := 0

	for _, candidate := range preferredDerived {
		d := unitTable[candidate]
		for _, p := range [2]int{1, -1} {
			next, err := combine(remaining, d.dims, -p)
			if err != nil {
				continue
			}
			reduction := currentScore - complexityScore(next)
			if reduction > bestReduction {
				bestReduction = reduction
				sym, power, ok = candidate, p, true
			}
		}
	}
	return sym, power, ok
}
