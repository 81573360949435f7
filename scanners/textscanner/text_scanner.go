package textscanner

import (
	"strings"

	"github.com/syntax-sniffer/syntax-sniffer/scanners/filescanner"
	"github.com/syntax-sniffer/syntax-sniffer/sniff"
)

func New(text string) sniff.Scanner {
	reader := strings.NewReader(text)

	return filescanner.New(reader, "text")
}
