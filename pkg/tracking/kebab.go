package tracking

import (
	"regexp"
	"strings"
)

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	separatorRun  = regexp.MustCompile(`[\s\v\p{Zs}\p{Zl}\p{Zp}\x{feff}_]+`)
)

// Kebabize is the default property-name converter.
//
// It inserts a hyphen at every lowercase-to-uppercase boundary, collapses
// each run of whitespace or underscores into one hyphen and lowercases the
// result: "camelCase" → "camel-case", "snake_case" → "snake-case",
// "kebab-case" is unchanged.
func Kebabize(name string) string {
	s := camelBoundary.ReplaceAllString(name, "${1}-${2}")
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}

// Identity leaves property names untouched.
func Identity(name string) string { return name }

// Lower lowercases property names without inserting separators.
func Lower(name string) string { return strings.ToLower(name) }
