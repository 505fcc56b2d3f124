package validation

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidID is returned by ParseEmployeeID for any rejected input.
var ErrInvalidID = errors.New("invalid id")

// ParseEmployeeID validates a raw :id path segment.
//
// The check is textual and numeric: anything containing "e" or "E" is
// rejected up front, because numeric conversion alone would accept exponent
// notation such as "1e1". The remaining text must convert to a non-negative
// integer that fits in int64, so "1.0" and "+7" are accepted while "1.5",
// "-1" and "abc" are not.
func ParseEmployeeID(raw string) (int64, error) {
	if strings.ContainsAny(raw, "eE") {
		return 0, ErrInvalidID
	}

	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidID
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '+' && r != '-' {
			return 0, ErrInvalidID
		}
	}

	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		if id < 0 {
			return 0, ErrInvalidID
		}
		return id, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidID
	}
	if f != math.Trunc(f) || f < 0 || f >= math.MaxInt64 {
		return 0, ErrInvalidID
	}

	return int64(f), nil
}
