package cases

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyAnswer is returned for blank input.
var ErrEmptyAnswer = errors.New("empty answer")

// Answer is a parsed submission. Choice is the zero-based option index for
// multiple choice, Value the number for numeric decisions.
type Answer struct {
	Value  float64
	Choice int
}

// ParseAnswer parses what a player typed.
//
// Normalization rules:
//   - Whitespace is trimmed
//   - Numeric input may carry "$", thousands separators, a trailing "%",
//     and a "k" or "m" multiplier suffix ("1.5k" is 1500)
//   - A leading "-" negates
//   - Multiple choice accepts "1"-"4" or "A"-"D" (any case)
func ParseAnswer(input string, d Decision) (Answer, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Answer{}, ErrEmptyAnswer
	}

	if d.Kind == DecisionMCQ {
		i, err := parseChoice(input, len(d.Options))
		if err != nil {
			return Answer{}, err
		}
		return Answer{Choice: i}, nil
	}

	v, err := parseNumber(input)
	if err != nil {
		return Answer{}, err
	}
	return Answer{Value: v}, nil
}

func parseChoice(s string, n int) (int, error) {
	if n <= 0 {
		n = 4
	}
	if len(s) == 1 {
		c := s[0]
		switch {
		case c >= '1' && c <= '9':
			if i := int(c - '1'); i < n {
				return i, nil
			}
		case c >= 'a' && c <= 'z':
			if i := int(c - 'a'); i < n {
				return i, nil
			}
		case c >= 'A' && c <= 'Z':
			if i := int(c - 'A'); i < n {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid choice %q: pick 1-%d or A-%c", s, n, 'A'+n-1)
}

func parseNumber(s string) (float64, error) {
	orig := s
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(s[1:])
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"), strings.HasSuffix(s, "K"):
		mult = 1e3
		s = s[:len(s)-1]
	case strings.HasSuffix(s, "m"), strings.HasSuffix(s, "M"):
		mult = 1e6
		s = s[:len(s)-1]
	}

	if s == "" || strings.Trim(s, "0123456789.") != "" {
		return 0, fmt.Errorf("invalid number %q", orig)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", orig, err)
	}
	v *= mult
	if neg {
		v = -v
	}
	return v, nil
}
