// Package pricing derives the care schedule and package pricing of a stay.
// Every function is a pure transform of its inputs: no I/O, no shared state,
// and malformed input degrades to a zero value instead of an error.
package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)\s*(hours?|hrs?|minutes?|mins?)?$`)

// ParseDuration converts free text such as "1.5 hours" or "30 minutes" into
// fractional hours. A bare number is read as hours. Unrecognized input is 0.
func ParseDuration(text string) float64 {
	m := durationPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(text)))
	if m == nil {
		return 0
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if strings.HasPrefix(m[2], "min") {
		return n / 60
	}
	return n
}
