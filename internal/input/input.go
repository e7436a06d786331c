// Package input turns the text a user types into solver arguments.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidInput = errors.New("input: invalid number format")

var intervalStripper = strings.NewReplacer("[", "", "]", "", " ", "", "\t", "")

// ParseInterval reads an interval written as "[a, b]". Brackets and
// whitespace are optional.
func ParseInterval(s string) (float64, float64, error) {
	parts := strings.Split(intervalStripper.Replace(strings.TrimSpace(s)), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: interval %q must have two endpoints", ErrInvalidInput, s)
	}

	a, err := parseNumber(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: interval %q", err, s)
	}
	b, err := parseNumber(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: interval %q", err, s)
	}
	return a, b, nil
}

// ParseGuess reads a single number.
func ParseGuess(s string) (float64, error) {
	x, err := parseNumber(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: guess %q", err, s)
	}
	return x, nil
}

func parseNumber(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) {
		return 0, ErrInvalidInput
	}
	return x, nil
}
