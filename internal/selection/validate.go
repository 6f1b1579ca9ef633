package selection

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNothingSelected = errors.New("nothing selected")
	ErrMissingQuantity = errors.New("quantity missing")
	ErrInvalidQuantity = errors.New("quantity is not a positive number")
)

// Validate checks a selection before submission: at least one id, and a
// non-blank quantity for each of them.
func Validate[K comparable](s State[K]) error {
	if len(s) == 0 {
		return ErrNothingSelected
	}
	for _, qty := range s {
		if strings.TrimSpace(qty) == "" {
			return ErrMissingQuantity
		}
	}
	return nil
}

// Quantities validates s and parses every quantity. Values that do not parse
// to a finite number greater than zero are rejected with ErrInvalidQuantity.
func Quantities[K comparable](s State[K]) (map[K]float64, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	out := make(map[K]float64, len(s))
	for id, raw := range s {
		q, err := parseQuantity(raw)
		if err != nil {
			return nil, err
		}
		out[id] = q
	}
	return out, nil
}

func parseQuantity(raw string) (float64, error) {
	s := strings.TrimSpace(raw)

	// a single decimal comma ("2,5") is accepted; "1,000" or "1.000,5" are not
	if strings.Contains(s, ",") {
		if strings.Count(s, ",") != 1 || strings.Contains(s, ".") {
			return 0, ErrInvalidQuantity
		}
		s = strings.Replace(s, ",", ".", 1)
	}

	q, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 {
		return 0, ErrInvalidQuantity
	}
	return q, nil
}
