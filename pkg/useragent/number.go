package useragent

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPrefix = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// parseFloat reads the longest numeric prefix of s, ignoring leading whitespace.
// Strings without one yield NaN, so "5.0 (Windows)" is 5 and "" is NaN.
func parseFloat(s string) float64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}

	prefix := numberPrefix.FindString(s)
	if prefix == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}
