package commands

import (
	"fmt"
	"io"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/syntax-sniffer/syntax-sniffer/scanners"
)

type reporter struct {
	out io.Writer
	err error
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out}
}

// ReportFile prints the smells found in one file under a header naming it
// and returns how many were printed. Clean files print nothing.
func (r *reporter) ReportFile(logger lager.Logger, path string, smells []scanners.Smell) int {
	if len(smells) == 0 {
		return 0
	}

	r.println()
	r.println(cyan("[SNIFF]"), path+":")
	for _, smell := range smells {
		r.println(" ", yellow("[SMELL]"), smell.Message)
	}

	logger.Debug("reported", lager.Data{"path": path, "smells": len(smells)})
	return len(smells)
}

func (r *reporter) Summarize(total int) {
	r.println()
	if total > 0 {
		r.println(red("[FOUND]"), fmt.Sprintf("Found %d code smells! Your code needs a shower.", total))
		return
	}

	r.println(green("[CLEAN]"), "No smells detected! Either your code is perfect or the sniffer is broken.")
}

func (r *reporter) Usage() {
	r.println("Usage: syntax-sniffer <file_or_directory>")
	r.println("Example: syntax-sniffer my_ugly_code.py")
}

func (r *reporter) NotFound(path string) {
	r.println(red("[FAILED]"), fmt.Sprintf("Target '%s' not found - did you dream this file?", path))
}

// Err returns every write failure seen so far.
func (r *reporter) Err() error {
	return r.err
}

func (r *reporter) println(a ...interface{}) {
	if _, err := fmt.Fprintln(r.out, a...); err != nil {
		r.err = multierror.Append(r.err, err)
	}
}
