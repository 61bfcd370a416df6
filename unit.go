package quant

// descriptor is a static entry in the unit table: the scale that converts
// a magnitude in this unit to its SI-base magnitude, the unit's
// dimensions, an optional affine offset, and which prefix classes it
// accepts.
type descriptor struct {
	scale            float64
	dims             Dimensions
	hasOffset        bool
	offset           float64
	prefixable       bool // accepts single-letter metric prefixes
	binaryPrefixable bool // accepts two-letter binary prefixes
}

func dims(mass, length, time, temperature, current, substance, luminosity, information int) Dimensions {
	return newDimensions(mass, length, time, temperature, current, substance, luminosity, information)
}

func plain(scale float64, d Dimensions) descriptor {
	return descriptor{scale: scale, dims: d}
}

func prefixableUnit(scale float64, d Dimensions) descriptor {
	return descriptor{scale: scale, dims: d, prefixable: true}
}

func affineUnit(scale, offset float64, d Dimensions) descriptor {
	return descriptor{scale: scale, dims: d, hasOffset: true, offset: offset}
}

const secondsPerYear = 3.1536e7

// unitTable is the curated catalogue of §4.2/§6. It is built once at
// package init and never mutated afterward — the only way to name a new
// base unit at runtime is the "_name" custom-unit shorthand handled by
// the parser.
var unitTable = buildUnitTable()

func buildUnitTable() map[string]descriptor {
	mass := dims(1, 0, 0, 0, 0, 0, 0, 0)
	length := dims(0, 1, 0, 0, 0, 0, 0, 0)
	timeDim := dims(0, 0, 1, 0, 0, 0, 0, 0)
	temperature := dims(0, 0, 0, 1, 0, 0, 0, 0)
	current := dims(0, 0, 0, 0, 1, 0, 0, 0)
	substance := dims(0, 0, 0, 0, 0, 1, 0, 0)
	luminosity := dims(0, 0, 0, 0, 0, 0, 1, 0)
	information := dims(0, 0, 0, 0, 0, 0, 0, 1)

	lengthPerTime := dims(0, 1, -1, 0, 0, 0, 0, 0)
	pressure := dims(1, -1, -2, 0, 0, 0, 0, 0)
	force := dims(1, 1, -2, 0, 0, 0, 0, 0)
	energy := dims(1, 2, -2, 0, 0, 0, 0, 0)
	power := dims(1, 2, -3, 0, 0, 0, 0, 0)
	volume := dims(0, 3, 0, 0, 0, 0, 0, 0)
	area := dims(0, 2, 0, 0, 0, 0, 0, 0)
	chargeTime := dims(0, 0, 1, 0, 1, 0, 0, 0) // current*time, aka electric charge
	volt := dims(1, 2, -3, 0, -1, 0, 0, 0)
	ohmDims := dims(1, 2, -3, 0, -2, 0, 0, 0)
	farad := dims(-1, -2, 4, 0, 2, 0, 0, 0)
	henry := dims(1, 2, -2, 0, -2, 0, 0, 0)
	siemens := dims(-1, -2, 3, 0, 2, 0, 0, 0)
	weber := dims(1, 2, -2, 0, -1, 0, 0, 0)
	tesla := dims(1, 0, -2, 0, -1, 0, 0, 0)
	molarity := dims(0, -3, 0, 0, 0, 1, 0, 0)
	frequency := dims(0, 0, -1, 0, 0, 0, 0, 0)
	pphpdDims := frequency.withCustom("dir", -1).withCustom("pax", 1)

	return map[string]descriptor{
		"%":   plain(1e-2, Dimensionless),
		"ppm": plain(1e-6, Dimensionless),

		"g":  prefixableUnit(1e-3, mass),
		"lb": plain(4.5359237e-1, mass),

		"m":  prefixableUnit(1, length),
		"in": plain(2.54e-2, length),
		"ft": plain(3.048e-1, length),
		"mi": plain(1.609344e+3, length),

		"s":    prefixableUnit(1, timeDim),
		"min":  plain(60, timeDim),
		"h":    plain(3600, timeDim),
		"day":  plain(86400, timeDim),
		"week": plain(604800, timeDim),
		"yr":   plain(secondsPerYear, timeDim),
		"ka":   plain(secondsPerYear*1e3, timeDim),
		"Ma":   plain(secondsPerYear*1e6, timeDim),
		"Ga":   plain(secondsPerYear*1e9, timeDim),

		"K":      prefixableUnit(1, temperature),
		"deltaC": plain(1, temperature),
		"degC":   affineUnit(1, 273.15, temperature),
		"degF":   affineUnit(5.0/9.0, 459.67*5.0/9.0, temperature),

		"c": plain(299792458, lengthPerTime),

		"Pa":  prefixableUnit(1, pressure),
		"psi": plain(6894.75729316836, pressure),
		"atm": plain(101325, pressure),

		"N": prefixableUnit(1, force),

		"J":   prefixableUnit(1, energy),
		"eV":  prefixableUnit(1.602176634e-19, energy),
		"BTU": plain(1055.05585, energy),
		"Wh":  prefixableUnit(3600, energy),

		"W":  prefixableUnit(1, power),
		"HP": plain(745.69987158227, power),

		"L":  prefixableUnit(1e-3, volume),
		"ha": plain(1e4, area),

		"b": descriptor{scale: 1, dims: information, prefixable: true, binaryPrefixable: true},
		"B": descriptor{scale: 8, dims: information, prefixable: true, binaryPrefixable: true},

		"A":  prefixableUnit(1, current),
		"C":  prefixableUnit(1, chargeTime),
		"Ah": prefixableUnit(3600, chargeTime),

		"V":   prefixableUnit(1, volt),
		"ohm": plain(1, ohmDims),
		"F":   prefixableUnit(1, farad),
		"H":   prefixableUnit(1, henry),
		"S":   prefixableUnit(1, siemens),
		"Wb":  prefixableUnit(1, weber),
		"T":   prefixableUnit(1, tesla),

		"mol": plain(1, substance),
		"cd":  prefixableUnit(1, luminosity),
		"M":   plain(1000, molarity),

		"Hz": prefixableUnit(1, frequency),

		"pphpd": plain(1.0/3600.0, pphpdDims),
	}
}
