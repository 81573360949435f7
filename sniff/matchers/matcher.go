package matchers

// Matcher reports whether a line matches and, if it does, the byte offsets
// of the matched region.
type Matcher interface {
	Match([]byte) (bool, int, int)
}
