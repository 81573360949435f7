package matchers

import "bytes"

// Upcased and Downcased hand the submatcher a case-folded copy of the
// line. Offsets are relative to that copy.
func Upcased(submatcher Matcher) Matcher {
	return &caseMatcher{
		matcher: submatcher,
		fold:    bytes.ToUpper,
	}
}

func Downcased(submatcher Matcher) Matcher {
	return &caseMatcher{
		matcher: submatcher,
		fold:    bytes.ToLower,
	}
}

type caseMatcher struct {
	matcher Matcher
	fold    func([]byte) []byte
}

func (m *caseMatcher) Match(line []byte) (bool, int, int) {
	return m.matcher.Match(m.fold(line))
}
