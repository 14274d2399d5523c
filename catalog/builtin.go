package catalog

// SIBase returns the seven SI base units.
func SIBase() Catalog {
	return Catalog{Name: "si-base", Units: []Definition{
		{Symbol: "m", Name: "meter"},
		{Symbol: "kg", Name: "kilogram"},
		{Symbol: "s", Name: "second"},
		{Symbol: "A", Name: "ampere"},
		{Symbol: "K", Name: "kelvin"},
		{Symbol: "mol", Name: "mole"},
		{Symbol: "cd", Name: "candela"},
	}}
}

// SIDerived returns the named SI derived units. Temperatures are relative:
// 1 degC is 1 K.
func SIDerived() Catalog {
	return Catalog{Name: "si-derived", Units: []Definition{
		{Symbol: "rad", Expr: "m/m", Name: "radian"},
		{Symbol: "sr", Expr: "m^2/m^2", Name: "steradian"},
		{Symbol: "Hz", Expr: "1/s", Name: "hertz"},
		{Symbol: "N", Expr: "kg*m/s^2", Name: "newton"},
		{Symbol: "Pa", Expr: "N/m^2", Name: "pascal"},
		{Symbol: "J", Expr: "N*m", Name: "joule"},
		{Symbol: "W", Expr: "J/s", Name: "watt"},
		{Symbol: "C", Expr: "s*A", Name: "coulomb"},
		{Symbol: "V", Expr: "W/A", Name: "volt"},
		{Symbol: "F", Expr: "C/V", Name: "farad"},
		{Symbol: "ohm", Expr: "V/A", Name: "ohm"},
		{Symbol: "S", Expr: "A/V", Name: "siemens"},
		{Symbol: "Wb", Expr: "V*s", Name: "weber"},
		{Symbol: "T", Expr: "Wb/m^2", Name: "tesla"},
		{Symbol: "H", Expr: "Wb/A", Name: "henry"},
		{Symbol: "degC", Expr: "K", Name: "degree Celsius"},
		{Symbol: "lm", Expr: "cd*sr", Name: "lumen"},
		{Symbol: "lx", Expr: "lm/m^2", Name: "lux"},
		{Symbol: "Bq", Expr: "1/s", Name: "becquerel"},
		{Symbol: "Gy", Expr: "J/kg", Name: "gray"},
		{Symbol: "Sv", Expr: "J/kg", Name: "sievert"},
		{Symbol: "kat", Expr: "mol/s", Name: "katal"},
	}}
}

// SIPrefixed returns the commonly used decimal multiples, including the
// gram.
func SIPrefixed() Catalog {
	return Catalog{Name: "si-prefixed", Units: []Definition{
		{Symbol: "g", Expr: "kg/1000", Name: "gram"},
		{Symbol: "mg", Expr: "g/1000", Name: "milligram"},
		{Symbol: "µg", Expr: "mg/1000", Name: "microgram"},
		{Symbol: "km", Expr: "1000 m", Name: "kilometer"},
		{Symbol: "cm", Expr: "m/100", Name: "centimeter"},
		{Symbol: "mm", Expr: "m/1000", Name: "millimeter"},
		{Symbol: "µm", Expr: "mm/1000", Name: "micrometer"},
		{Symbol: "nm", Expr: "µm/1000", Name: "nanometer"},
		{Symbol: "ms", Expr: "s/1000", Name: "millisecond"},
		{Symbol: "µs", Expr: "ms/1000", Name: "microsecond"},
		{Symbol: "ns", Expr: "µs/1000", Name: "nanosecond"},
		{Symbol: "kHz", Expr: "1000 Hz", Name: "kilohertz"},
		{Symbol: "MHz", Expr: "1000 kHz", Name: "megahertz"},
		{Symbol: "kN", Expr: "1000 N", Name: "kilonewton"},
		{Symbol: "kPa", Expr: "1000 Pa", Name: "kilopascal"},
		{Symbol: "MPa", Expr: "1000 kPa", Name: "megapascal"},
		{Symbol: "kJ", Expr: "1000 J", Name: "kilojoule"},
		{Symbol: "MJ", Expr: "1000 kJ", Name: "megajoule"},
		{Symbol: "kW", Expr: "1000 W", Name: "kilowatt"},
		{Symbol: "MW", Expr: "1000 kW", Name: "megawatt"},
		{Symbol: "mA", Expr: "A/1000", Name: "milliampere"},
		{Symbol: "kV", Expr: "1000 V", Name: "kilovolt"},
		{Symbol: "mV", Expr: "V/1000", Name: "millivolt"},
		{Symbol: "mmol", Expr: "mol/1000", Name: "millimole"},
	}}
}

// NonSI returns units accepted for use with the SI, plus a few common
// energy and power units.
func NonSI() Catalog {
	return Catalog{Name: "non-si", Units: []Definition{
		{Symbol: "min", Expr: "60 s", Name: "minute"},
		{Symbol: "h", Expr: "60 min", Name: "hour"},
		{Symbol: "d", Expr: "24 h", Name: "day"},
		{Symbol: "deg", Expr: "0.017453292519943295 rad", Name: "degree (angle)"},
		{Symbol: "'", Expr: "deg/60", Name: "minute (angle)"},
		{Symbol: "''", Expr: "'/60", Name: "second (angle)"},
		{Symbol: "L", Expr: "m^3/1000", Name: "liter"},
		{Symbol: "cc", Expr: "cm^3", Name: "cubic centimeter"},
		{Symbol: "t", Expr: "1000 kg", Name: "metric ton"},
		{Symbol: "Np", Expr: "1", Name: "neper"},
		{Symbol: "dB", Name: "decibel"},
		{Symbol: "eV", Expr: "1.602176634e-19 J", Name: "electronvolt"},
		{Symbol: "u", Expr: "1.66053906660e-27 kg", Name: "unified atomic mass unit"},
		{Symbol: "ua", Expr: "149597870700 m", Name: "astronomical unit"},
		{Symbol: "mile", Expr: "1609344/1000 m", Name: "statute mile"},
		{Symbol: "nmi", Expr: "1852 m", Name: "nautical mile"},
		{Symbol: "knot", Expr: "nmi/h", Name: "knot"},
		{Symbol: "a", Expr: "100 m^2", Name: "are"},
		{Symbol: "ha", Expr: "10000 m^2", Name: "hectare"},
		{Symbol: "bar", Expr: "100000 Pa", Name: "bar"},
		{Symbol: "angstrom", Expr: "m/10000000000", Name: "angstrom"},
		{Symbol: "b", Expr: "1e-28 m^2", Name: "barn"},
		{Symbol: "Ci", Expr: "37000000000 Bq", Name: "curie"},
		{Symbol: "R", Expr: "2.58e-4 C/kg", Name: "roentgen"},
		{Symbol: "rem", Expr: "Sv/100", Name: "rem"},
		{Symbol: "cal", Expr: "4184/1000 J", Name: "calorie"},
		{Symbol: "kcal", Expr: "1000 cal", Name: "kilocalorie"},
		{Symbol: "Wh", Expr: "W*h", Name: "watt-hour"},
		{Symbol: "kWh", Expr: "1000 Wh", Name: "kilowatt-hour"},
		{Symbol: "CV", Expr: "735.49875 W", Name: "metric horsepower"},
	}}
}

// Imperial returns British imperial length, area, volume and mass units.
// Lengths, volumes and masses are exact.
func Imperial() Catalog {
	return Catalog{Name: "imperial", Units: []Definition{
		{Symbol: "inch", Expr: "254/10000 m", Name: "inch"},
		{Symbol: "th", Expr: "inch/1000", Name: "thou"},
		{Symbol: "ft", Expr: "12 inch", Name: "foot"},
		{Symbol: "yd", Expr: "3 ft", Name: "yard"},
		{Symbol: "ch", Expr: "22 yd", Name: "chain"},
		{Symbol: "fur", Expr: "10 ch", Name: "furlong"},
		{Symbol: "mi", Expr: "8 fur", Name: "mile"},
		{Symbol: "lea", Expr: "3 mi", Name: "league"},
		{Symbol: "ftm", Expr: "6 ft", Name: "fathom"},
		{Symbol: "cable", Expr: "100 ftm", Name: "cable"},
		{Symbol: "link", Expr: "ch/100", Name: "link"},
		{Symbol: "rod", Expr: "25 link", Name: "rod"},
		{Symbol: "perch", Expr: "rod^2", Name: "perch"},
		{Symbol: "rood", Expr: "fur*rod", Name: "rood"},
		{Symbol: "acre", Expr: "fur*ch", Name: "acre"},
		{Symbol: "gal", Expr: "454609/100000000 m^3", Name: "gallon"},
		{Symbol: "qt", Expr: "gal/4", Name: "quart"},
		{Symbol: "pt", Expr: "qt/2", Name: "pint"},
		{Symbol: "fl_oz", Expr: "pt/20", Name: "fluid ounce"},
		{Symbol: "gi", Expr: "5 fl_oz", Name: "gill"},
		{Symbol: "lb", Expr: "45359237/100000000 kg", Name: "pound"},
		{Symbol: "gr", Expr: "lb/7000", Name: "grain"},
		{Symbol: "oz", Expr: "lb/16", Name: "ounce"},
		{Symbol: "dr", Expr: "oz/16", Name: "dram"},
		{Symbol: "st", Expr: "14 lb", Name: "stone"},
		{Symbol: "cwt", Expr: "112 lb", Name: "long hundredweight"},
		{Symbol: "ton", Expr: "2240 lb", Name: "long ton"},
		{Symbol: "slug", Expr: "32.17404856 lb", Name: "slug"},
		{Symbol: "lbf", Expr: "4.4482216152605 N", Name: "pound force"},
	}}
}

// All returns every built-in catalog.
func All() []Catalog {
	return []Catalog{SIBase(), SIDerived(), SIPrefixed(), NonSI(), Imperial()}
}
