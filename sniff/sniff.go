package sniff

import (
	"fmt"
	"os"
	"unicode/utf8"

	"code.cloudfoundry.org/lager"

	"github.com/syntax-sniffer/syntax-sniffer/scanners"
	"github.com/syntax-sniffer/syntax-sniffer/scanners/filescanner"
	"github.com/syntax-sniffer/syntax-sniffer/sniff/matchers"
)

const (
	MaxLineLength = 100
	MaxFileLines  = 500
)

const (
	todoPattern       = `TODO`
	printCallPattern  = `print(`
	debugCommentGate  = `#`
	debugMarkerFormat = `#.*debug`
)

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

type Sniffer interface {
	Sniff(lager.Logger, Scanner) []scanners.Smell
	SniffFile(lager.Logger, string) []scanners.Smell
}

type lineRule struct {
	name             string
	matcher          matchers.Matcher
	exclusionMatcher matchers.Matcher
	describe         func(line *scanners.Line) string
}

type sniffer struct {
	lineRules []lineRule
	maxLines  int
}

func NewDefaultSniffer() Sniffer {
	return &sniffer{
		lineRules: []lineRule{
			{
				name:    "trailing-whitespace",
				matcher: matchers.TrailingWhitespace(),
				describe: func(line *scanners.Line) string {
					return fmt.Sprintf("Line %d: Trailing whitespace - like leaving socks on the floor", line.LineNumber)
				},
			},
			{
				name:    "tab-character",
				matcher: matchers.Substring("\t"),
				describe: func(line *scanners.Line) string {
					return fmt.Sprintf("Line %d: Tab character detected - are you coding in 1995?", line.LineNumber)
				},
			},
			{
				name:    "line-too-long",
				matcher: matchers.LongerThan(MaxLineLength),
				describe: func(line *scanners.Line) string {
					length := utf8.RuneCount(matchers.TrimTrailingSpace(line.Content))
					return fmt.Sprintf("Line %d: Line too long (%d chars) - even novels have paragraphs", line.LineNumber, length)
				},
			},
			{
				name:    "todo",
				matcher: matchers.Upcased(matchers.Substring(todoPattern)),
				describe: func(line *scanners.Line) string {
					return fmt.Sprintf("Line %d: TODO found - we both know this will never get done", line.LineNumber)
				},
			},
			{
				name:    "print-statement",
				matcher: matchers.Substring(printCallPattern),
				exclusionMatcher: matchers.Downcased(
					matchers.Filter(matchers.Format(debugMarkerFormat), debugCommentGate),
				),
				describe: func(line *scanners.Line) string {
					return fmt.Sprintf("Line %d: Print statement - the poor man's debugger", line.LineNumber)
				},
			},
		},
		maxLines: MaxFileLines,
	}
}

func (s *sniffer) Sniff(logger lager.Logger, scanner Scanner) []scanners.Smell {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	smells := []scanners.Smell{}
	lineCount := 0

	for scanner.Scan(logger) {
		line := scanner.Line(logger)
		lineCount++

		for _, rule := range s.lineRules {
			if match, _, _ := rule.matcher.Match(line.Content); !match {
				continue
			}

			if rule.exclusionMatcher != nil {
				if match, _, _ := rule.exclusionMatcher.Match(line.Content); match {
					continue
				}
			}

			logger.Debug("smell-found", lager.Data{"rule": rule.name, "line": line.LineNumber})
			smells = append(smells, scanners.Smell{
				Location: scanners.Location(line.LineNumber),
				Message:  rule.describe(line),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("failed", err)
		return []scanners.Smell{readFailure(err)}
	}

	if lineCount > s.maxLines {
		smells = append(smells, scanners.Smell{
			Location: scanners.WholeFile,
			Message:  fmt.Sprintf("File too long (%d lines) - maybe split it? Just a thought...", lineCount),
		})
	}

	logger.Debug("done", lager.Data{"lines": lineCount, "smells": len(smells)})
	return smells
}

// SniffFile opens path, sniffs it, and closes it again before returning.
// Failing to open the file is reported as a smell, never as an error.
func (s *sniffer) SniffFile(logger lager.Logger, path string) []scanners.Smell {
	logger = logger.Session("sniff-file", lager.Data{"path": path})

	file, err := os.Open(path)
	if err != nil {
		logger.Error("failed-to-open", err)
		return []scanners.Smell{readFailure(err)}
	}
	defer file.Close()

	return s.Sniff(logger, filescanner.New(file, path))
}

func readFailure(err error) scanners.Smell {
	return scanners.Smell{
		Location: scanners.WholeFile,
		Message:  fmt.Sprintf("Failed to read file: %s", err),
	}
}
