// Package pages parses textual page specifications like "1,3-5,7" into sets
// of 1-based page indices. The parser has no knowledge of document length;
// bounds validation against a concrete page count is the caller's job.
package pages

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Set holds unique 1-based page indices.
type Set map[int]struct{}

func (s Set) Contains(n int) bool {
	_, ok := s[n]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []int {
	out := make([]int, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// OutOfRange returns the sorted members outside [1, total].
func (s Set) OutOfRange(total int) []int {
	var out []int
	for n := range s {
		if n < 1 || n > total {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

// Parse expands a comma-separated page specification into a Set. Tokens are
// either single integers or inclusive ranges "start-end" split on the first
// hyphen. A reversed range (start > end) contributes no indices rather than
// failing. Duplicates collapse silently.
func Parse(spec string) (Set, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, fmt.Errorf("empty page specification")
	}

	set := make(Set)
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)

		if first, second, isRange := strings.Cut(token, "-"); isRange {
			start, err := strconv.Atoi(strings.TrimSpace(first))
			if err != nil {
				return nil, fmt.Errorf("invalid range start %q", first)
			}
			end, err := strconv.Atoi(strings.TrimSpace(second))
			if err != nil {
				return nil, fmt.Errorf("invalid range end %q", second)
			}
			for n := start; n <= end; n++ {
				set[n] = struct{}{}
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", token)
		}
		set[n] = struct{}{}
	}

	return set, nil
}
