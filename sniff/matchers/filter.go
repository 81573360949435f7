package matchers

import "bytes"

// Filter only consults submatcher when the line contains at least one of
// the filters.
func Filter(submatcher Matcher, filters ...string) Matcher {
	fs := make([][]byte, len(filters))

	for i := range filters {
		fs[i] = []byte(filters[i])
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}
}

type filter struct {
	matcher Matcher
	filters [][]byte
}

func (f *filter) Match(line []byte) (bool, int, int) {
	for i := range f.filters {
		if bytes.Contains(line, f.filters[i]) {
			return f.matcher.Match(line)
		}
	}

	return false, 0, 0
}
