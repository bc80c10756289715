package julia

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseComplex parses a complex literal of the form "a+bi": an optionally
// signed real part, a signed imaginary part, and an i (or j) suffix. Pure
// real ("1", "-0.5") and pure imaginary ("i", "-i", "2i") forms are also
// accepted, as are exponent notations like "1e-3+2.5e2i".
//
// Shells and flag parsers fight over a leading minus sign, so a value with a
// negative real part is expected quoted with a leading space (" -1+1i");
// surrounding whitespace is trimmed before parsing.
func ParseComplex(s string) (complex128, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, fmt.Errorf("empty complex literal")
	}

	switch t[len(t)-1] {
	case 'i', 'I', 'j', 'J':
	default:
		// No imaginary unit, the whole token is the real part.
		re, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q", s)
		}
		return complex(re, 0), nil
	}

	body := t[:len(t)-1]

	// Split at the sign introducing the imaginary part: the last + or -
	// that is neither the leading sign nor part of an exponent.
	for k := len(body) - 1; k > 0; k-- {
		ch := body[k]
		if (ch != '+' && ch != '-') || body[k-1] == 'e' || body[k-1] == 'E' {
			continue
		}
		re, err := strconv.ParseFloat(body[:k], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q", s)
		}
		im, err := parseImagPart(body[k:])
		if err != nil {
			return 0, fmt.Errorf("invalid complex literal %q", s)
		}
		return complex(re, im), nil
	}

	// No interior sign, the whole token is the imaginary part.
	im, err := parseImagPart(body)
	if err != nil {
		return 0, fmt.Errorf("invalid complex literal %q", s)
	}
	return complex(0, im), nil
}

// parseImagPart parses the signed magnitude in front of the imaginary unit.
// A bare sign (or nothing at all, as in "i") means a magnitude of 1.
func parseImagPart(s string) (float64, error) {
	switch s {
	case "", "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	return strconv.ParseFloat(s, 64)
}
