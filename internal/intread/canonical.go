package intread

import "strconv"

// ParseCanonical parses s as a base-10 int64 and reports whether s is the
// canonical rendering of the parsed value.
//
// Leading zeros, a leading '+', "-0", whitespace and out-of-range values all
// fail the round trip.
func ParseCanonical(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	if strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}

// IsCanonical reports whether s is canonical integer text.
func IsCanonical(s string) bool {
	_, ok := ParseCanonical(s)
	return ok
}
