package syntax

import (
	"testing"
)

func TestLogicFromRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Logic
		ok   bool
	}{
		{'0', Logic0, true},
		{'1', Logic1, true},
		{'z', LogicZ, true},
		{'Z', LogicZ, true},
		{'?', LogicZ, true},
		{'x', LogicX, true},
		{'X', LogicX, true},
		{'2', Logic0, false},
	}
	for _, tc := range cases {
		got, ok := LogicFromRune(tc.r)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("LogicFromRune(%q) = (%v, %v), want (%v, %v)", tc.r, got, ok, tc.want, tc.ok)
		}
	}
}

func TestTimeUnitFromSuffix(t *testing.T) {
	cases := []struct {
		s    string
		want TimeUnit
		ok   bool
	}{
		{"s", TimeUnitSeconds, true},
		{"ms", TimeUnitMilliseconds, true},
		{"us", TimeUnitMicroseconds, true},
		{"ns", TimeUnitNanoseconds, true},
		{"ps", TimeUnitPicoseconds, true},
		{"fs", TimeUnitFemtoseconds, true},
		{"", TimeUnitNone, false},
		{"ks", TimeUnitNone, false},
	}
	for _, tc := range cases {
		got, ok := TimeUnitFromSuffix(tc.s)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("TimeUnitFromSuffix(%q) = (%v, %v), want (%v, %v)", tc.s, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLiteralBase_Radix(t *testing.T) {
	cases := []struct {
		base LiteralBase
		want uint32
	}{
		{BaseBinary, 2},
		{BaseOctal, 8},
		{BaseDecimal, 10},
		{BaseHex, 16},
	}
	for _, tc := range cases {
		if got := tc.base.Radix(); got != tc.want {
			t.Fatalf("%v.Radix() = %d, want %d", tc.base, got, tc.want)
		}
	}
}
