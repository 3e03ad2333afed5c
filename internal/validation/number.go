package validation

import (
	"math"
	"strconv"
)

type numberRule struct {
	integer  bool
	min, max *float64
}

// NumberOption adds a constraint to ValidNumber.
type NumberOption func(*numberRule)

// Integer requires a whole number.
func Integer() NumberOption {
	return func(r *numberRule) { r.integer = true }
}

// Min sets an inclusive lower bound.
func Min(v float64) NumberOption {
	return func(r *numberRule) { r.min = &v }
}

// Max sets an inclusive upper bound.
func Max(v float64) NumberOption {
	return func(r *numberRule) { r.max = &v }
}

// ValidNumber rejects NaN and infinities, then applies opts in a fixed
// order: integer, lower bound, upper bound.
//
//	ValidNumber(5, "x", Integer(), Min(0), Max(10)) // 5, nil
func ValidNumber(num float64, name string, opts ...NumberOption) (float64, error) {
	name = nameOr(name, "Number variable")

	var rule numberRule
	for _, opt := range opts {
		opt(&rule)
	}

	if math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, Errorf("%s must be a real number", name)
	}
	if rule.integer && math.Trunc(num) != num {
		return 0, Errorf("%s must be a whole number", name)
	}
	if rule.min != nil && num < *rule.min {
		return 0, Errorf("%s must be at least %s", name, formatFloat(*rule.min))
	}
	if rule.max != nil && num > *rule.max {
		return 0, Errorf("%s must be at most %s", name, formatFloat(*rule.max))
	}
	return num, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
