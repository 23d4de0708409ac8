package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Compare orders two release strings of the form "v1.2.3" (the prefix is
// optional). It returns 1 when a is newer, -1 when b is newer, and 0 when
// they match.
func Compare(a, b string) (int, error) {
	av, err := parseRelease(a)
	if err != nil {
		return 0, err
	}

	bv, err := parseRelease(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range lo.Zip2(av[:], bv[:]) {
		switch {
		case pair.A > pair.B:
			return 1, nil
		case pair.A < pair.B:
			return -1, nil
		}
	}

	return 0, nil
}

// parseRelease splits a release string into its major, minor and patch parts.
func parseRelease(s string) ([3]int, error) {
	var parts [3]int

	fields := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(fields) != len(parts) {
		return parts, fmt.Errorf("malformed release %q, expected major.minor.patch", s)
	}

	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return parts, fmt.Errorf("malformed release %q: %w", s, err)
		}
		parts[i] = n
	}

	return parts, nil
}
