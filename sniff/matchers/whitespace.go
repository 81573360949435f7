package matchers

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// IsSpace is unicode.IsSpace widened to the file, group, record and unit
// separators, which editors also strip as trailing whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func TrimTrailingSpace(line []byte) []byte {
	return bytes.TrimRightFunc(line, IsSpace)
}

type trailingWhitespace struct{}

// TrailingWhitespace matches the run of whitespace at the end of a line.
func TrailingWhitespace() Matcher {
	return trailingWhitespace{}
}

func (trailingWhitespace) Match(line []byte) (bool, int, int) {
	trimmed := TrimTrailingSpace(line)
	if len(trimmed) == len(line) {
		return false, 0, 0
	}

	return true, len(trimmed), len(line)
}

type longerThan struct {
	limit int
}

// LongerThan matches lines holding more than limit characters once
// trailing whitespace is stripped. The match covers the stripped line.
func LongerThan(limit int) Matcher {
	return &longerThan{limit: limit}
}

func (m *longerThan) Match(line []byte) (bool, int, int) {
	trimmed := TrimTrailingSpace(line)
	if utf8.RuneCount(trimmed) <= m.limit {
		return false, 0, 0
	}

	return true, 0, len(trimmed)
}
