package scanners

import "fmt"

type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Location is a 1-based line number. WholeFile marks a smell that belongs
// to the file rather than to any one line.
type Location int

const WholeFile Location = 0

func (l Location) IsWholeFile() bool {
	return l == WholeFile
}

func (l Location) String() string {
	if l.IsWholeFile() {
		return "whole file"
	}

	return fmt.Sprintf("line %d", int(l))
}

type Smell struct {
	Location Location
	Message  string
}

func (s Smell) String() string {
	return s.Message
}
