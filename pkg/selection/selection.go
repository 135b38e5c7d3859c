// Package selection parses the comma/range text users type to pick rows
// from a numbered listing, e.g. "1,3,5-8".
package selection

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidFormat reports selection text that could not be parsed. Parsing
// is all-or-nothing: one bad segment fails the whole input.
var ErrInvalidFormat = errors.New("invalid selection format")

// Parse converts selection text like "1,3,5-8" into sorted, unique,
// zero-based indices into a listing of count rows.
//
// Segments are comma-separated; blank segments are skipped. Each segment is
// a single 1-based number or an inclusive "start-end" range. Values outside
// [1, count] are silently dropped rather than treated as errors, and a range
// whose start exceeds its end contributes nothing. An empty result with
// valid syntax is a success; callers decide what an empty selection means.
func Parse(text string, count int) ([]int, error) {
	picked := make(map[int]struct{})

	for _, segment := range strings.Split(text, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		if strings.Contains(segment, "-") {
			start, end, err := parseRange(segment)
			if err != nil {
				return nil, err
			}
			for value := start; value <= end; value++ {
				if value >= 1 && value <= count {
					picked[value-1] = struct{}{}
				}
			}
			continue
		}

		value, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidFormat, segment)
		}
		if value >= 1 && value <= count {
			picked[value-1] = struct{}{}
		}
	}

	indices := make([]int, 0, len(picked))
	for index := range picked {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	return indices, nil
}

// parseRange splits a "start-end" segment. A dangling hyphen, an empty
// endpoint, or extra hyphens all fail the parse.
func parseRange(segment string) (int, int, error) {
	parts := strings.Split(segment, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q is not a valid range", ErrInvalidFormat, segment)
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has an invalid range start", ErrInvalidFormat, segment)
	}

	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q has an invalid range end", ErrInvalidFormat, segment)
	}

	return start, end, nil
}
