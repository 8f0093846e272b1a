package bignum

import (
	"errors"
)

var ErrParse = errors.New("invalid numeric format")

// ParseUint parses digits in the given base (2, 8, 10 or 16) into a BigUint.
// Underscore digit separators are skipped; hex digits are case-insensitive.
// The string must contain at least one digit and no sign or base prefix:
// prefix handling belongs to the lexer.
func ParseUint(s string, base uint32) (BigUint, error) {
	switch base {
	case 2, 8, 10, 16:
	default:
		return BigUint{}, ErrParse
	}

	cur := BigUint{}
	seen := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '_' {
			continue
		}
		d, ok := digitValue(ch)
		if !ok || d >= base {
			return BigUint{}, ErrParse
		}
		next, err := UintMulAddSmall(cur, base, d)
		if err != nil {
			return BigUint{}, err
		}
		cur = next
		seen = true
	}
	if !seen {
		return BigUint{}, ErrParse
	}
	return cur, nil
}

func digitValue(ch byte) (uint32, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return uint32(ch - '0'), true
	case ch >= 'a' && ch <= 'f':
		return uint32(ch-'a') + 10, true
	case ch >= 'A' && ch <= 'F':
		return uint32(ch-'A') + 10, true
	default:
		return 0, false
	}
}
