package syntax

// Logic is a 4-state logic value: the scalar domain of hardware nets.
type Logic uint8

const (
	Logic0 Logic = iota
	Logic1
	// LogicZ is the high-impedance state.
	LogicZ
	// LogicX is the unknown state.
	LogicX
)

func (l Logic) String() string {
	switch l {
	case Logic0:
		return "0"
	case Logic1:
		return "1"
	case LogicZ:
		return "z"
	case LogicX:
		return "x"
	}
	return "?"
}

// LogicFromRune maps a literal digit rune to its logic value.
func LogicFromRune(r rune) (Logic, bool) {
	switch r {
	case '0':
		return Logic0, true
	case '1':
		return Logic1, true
	case 'z', 'Z', '?':
		return LogicZ, true
	case 'x', 'X':
		return LogicX, true
	default:
		return Logic0, false
	}
}

// TimeUnit scales a time literal. TimeUnitNone marks plain real literals.
type TimeUnit uint8

const (
	TimeUnitNone TimeUnit = iota
	TimeUnitSeconds
	TimeUnitMilliseconds
	TimeUnitMicroseconds
	TimeUnitNanoseconds
	TimeUnitPicoseconds
	TimeUnitFemtoseconds
)

var timeUnitNames = [...]string{
	TimeUnitNone:         "",
	TimeUnitSeconds:      "s",
	TimeUnitMilliseconds: "ms",
	TimeUnitMicroseconds: "us",
	TimeUnitNanoseconds:  "ns",
	TimeUnitPicoseconds:  "ps",
	TimeUnitFemtoseconds: "fs",
}

func (u TimeUnit) String() string {
	if int(u) < len(timeUnitNames) {
		return timeUnitNames[u]
	}
	return "?"
}

// TimeUnitFromSuffix maps a literal suffix to its unit.
func TimeUnitFromSuffix(s string) (TimeUnit, bool) {
	for u, name := range timeUnitNames {
		if u != 0 && name == s {
			return TimeUnit(u), true //nolint:gosec // G115: table index fits.
		}
	}
	return TimeUnitNone, false
}

// LiteralBase is the radix tag of a based integer literal.
type LiteralBase uint8

const (
	BaseBinary LiteralBase = iota
	BaseOctal
	BaseDecimal
	BaseHex
)

func (b LiteralBase) String() string {
	switch b {
	case BaseBinary:
		return "b"
	case BaseOctal:
		return "o"
	case BaseDecimal:
		return "d"
	case BaseHex:
		return "h"
	}
	return "?"
}

// Radix returns the numeric radix for the base tag.
func (b LiteralBase) Radix() uint32 {
	switch b {
	case BaseBinary:
		return 2
	case BaseOctal:
		return 8
	case BaseHex:
		return 16
	default:
		return 10
	}
}
