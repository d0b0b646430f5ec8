package validate

import (
	"strconv"
	"strings"
)

// Categories is the closed set the catalog accepts. Anything else is
// treated as "no category filter", never as an error.
var Categories = []string{"homme", "femme", "enfant"}

// Category returns the normalized category and whether it is one of the
// allowed values.
func Category(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if s == c {
			return s, true
		}
	}
	return "", false
}

// Search trims a free-text term and drops anything shorter than two
// characters. Short or blank terms behave like no search at all.
func Search(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, true
}

// Page parses a 1-based page number; non-numeric or non-positive input
// defaults to page 1.
func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Required reports whether a free-text form field is non-blank.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Status validates the order states the dashboard may set.
func Status(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "pending", "shipped", "delivered", "cancelled":
		return s, true
	}
	return "", false
}
