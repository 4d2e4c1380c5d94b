package gmp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrUnparseableGain = errors.New("premium is not a decimal percentage")
	ErrNoPercent       = fmt.Errorf("%w: no percent sign", ErrUnparseableGain)
)

var decimalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// ParseGain reads a premium such as "12%" or "-3.5 %". Text without a percent
// sign is never parsed as a number.
func ParseGain(premiumText string) (float64, error) {
	if !strings.Contains(premiumText, "%") {
		return 0, ErrNoPercent
	}

	raw := strings.TrimSpace(strings.ReplaceAll(premiumText, "%", ""))
	if !decimalPattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", ErrUnparseableGain, premiumText)
	}

	gain, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrUnparseableGain, premiumText, err)
	}
	return gain, nil
}

// EvaluateGain parses the premium and reports whether it meets the threshold
// (inclusive).
func EvaluateGain(premiumText string, threshold float64) (float64, bool, error) {
	gain, err := ParseGain(premiumText)
	if err != nil {
		return 0, false, err
	}
	return gain, gain >= threshold, nil
}
