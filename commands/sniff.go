package commands

import (
	"errors"
	"io"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/syntax-sniffer/syntax-sniffer/scanners/dirscanner"
	"github.com/syntax-sniffer/syntax-sniffer/sniff"
	"github.com/syntax-sniffer/syntax-sniffer/target"
)

var (
	ErrUsage          = errors.New("no file or directory given")
	ErrTargetNotFound = errors.New("target not found")
)

type SniffCommand struct {
	Debug   bool `long:"debug" description:"enables debug logging"`
	NoColor bool `long:"no-color" description:"print markers without colour"`
	Version bool `short:"v" long:"version" description:"displays syntax-sniffer version"`

	Args struct {
		Paths []string `positional-arg-name:"FILE_OR_DIRECTORY" description:"a file to sniff, or a directory to search for *.py files"`
	} `positional-args:"yes"`

	out io.Writer
}

var SyntaxSniffer SniffCommand

// SetOutput redirects everything the command prints. It defaults to
// standard output.
func (command *SniffCommand) SetOutput(w io.Writer) {
	command.out = w
}

func (command *SniffCommand) Execute(args []string) error {
	out := command.out
	if out == nil {
		out = os.Stdout
	}

	if command.Version {
		return printVersion(out)
	}

	if command.NoColor {
		disableColors()
	}

	logger := lager.NewLogger("syntax-sniffer")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(out, lager.DEBUG))
	}

	report := newReporter(out)

	if len(command.Args.Paths) == 0 {
		report.Usage()
		return ErrUsage
	}

	// an explicit empty path is the current directory
	path := command.Args.Paths[0]
	if path == "" {
		path = "."
	}

	extra := append(append([]string{}, command.Args.Paths[1:]...), args...)
	if len(extra) > 0 {
		logger.Debug("ignoring-extra-arguments", lager.Data{"args": extra})
	}

	resolver := target.NewResolver(dirscanner.New(dirscanner.DefaultPattern))
	t, err := resolver.Resolve(logger, path)
	if err != nil {
		return err
	}

	if t.Kind == target.NotFound {
		report.NotFound(t.Path)
		return ErrTargetNotFound
	}

	total := command.sniffAll(logger, sniff.NewDefaultSniffer(), report, t.Files)
	report.Summarize(total)

	return report.Err()
}

func (command *SniffCommand) sniffAll(
	logger lager.Logger,
	sniffer sniff.Sniffer,
	report *reporter,
	files []string,
) int {
	logger = logger.Session("sniff-all", lager.Data{"files": len(files)})
	logger.Debug("starting")

	total := 0
	for _, path := range files {
		smells := sniffer.SniffFile(logger, path)
		total += report.ReportFile(logger, path, smells)
	}

	logger.Debug("done", lager.Data{"total": total})
	return total
}
