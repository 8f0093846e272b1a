package bignum

import (
	"fmt"
	"strings"
)

// FormatUint renders u in decimal.
func FormatUint(u BigUint) string {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return "0"
	}

	const base = uint32(1_000_000_000)

	cur := BigUint{Limbs: limbs}
	var parts []uint32
	for !cur.IsZero() {
		q, r, err := UintDivModSmall(cur, base)
		if err != nil {
			return "<format-error>"
		}
		parts = append(parts, r)
		cur = q
	}

	var sb strings.Builder
	last := parts[len(parts)-1]
	sb.WriteString(fmt.Sprintf("%d", last))
	for i := len(parts) - 2; i >= 0; i-- {
		sb.WriteString(fmt.Sprintf("%09d", parts[i]))
		if i == 0 {
			break
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (u BigUint) String() string {
	return FormatUint(u)
}
