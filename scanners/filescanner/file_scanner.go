package filescanner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/syntax-sniffer/syntax-sniffer/mimetype"
	"github.com/syntax-sniffer/syntax-sniffer/scanners"
)

const MaxLineSize = 16 * 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	line         []byte
	err          error
}

func New(r io.Reader, filename string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	bufioScanner.Split(ScanLines)

	return &fileScanner{
		path:         filename,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	if s.err != nil {
		return false
	}

	if !s.bufioScanner.Scan() {
		if err := s.bufioScanner.Err(); err != nil {
			logger.Session("file-scanner").Error("bufio-error", err, lager.Data{"path": s.path})
			s.err = err
		}
		return false
	}

	s.lineNumber++
	s.line = s.bufioScanner.Bytes()

	if mime, ok := mimetype.IsText(s.line); !ok {
		s.err = fmt.Errorf("line %d of %s does not decode as text (%s)", s.lineNumber, s.path, mime)
		logger.Session("file-scanner").Error("decode-error", s.err)
		return false
	}

	return true
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	content := make([]byte, len(s.line))
	copy(content, s.line)

	return &scanners.Line{
		Content:    content,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.err
}

// ScanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a
// lone "\r". The terminator is dropped, and text after the last
// terminator is a final line only when it is non-empty.
func ScanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}

		if !atEOF {
			// need the next byte to tell "\r" from "\r\n"
			return 0, nil, nil
		}

		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
