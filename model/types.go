package model

// Unit is the canonical unit system of a request. Each provider speaks
// its own unit vocabulary; the adapters translate from this one.
type Unit int

const (
	// UnitAuto lets the provider choose units based on the location.
	UnitAuto Unit = iota
	// UnitSI is Celsius, m/s, hectopascals, kilometers.
	UnitSI
	// UnitImperial is Fahrenheit, mph, millibars, miles.
	UnitImperial
)

func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitSI:
		return "si"
	case UnitImperial:
		return "imperial"
	}
	return "unknown"
}

// Language of the human-readable summaries returned by a provider.
type Language int

const (
	English Language = iota
	Italian
	French
	German
)

func (l Language) String() string {
	switch l {
	case English:
		return "en"
	case Italian:
		return "it"
	case French:
		return "fr"
	case German:
		return "de"
	}
	return "unknown"
}
