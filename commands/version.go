package commands

import (
	"fmt"
	"io"
)

var (
	// overridden in CI
	version = "dev"
)

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintln(w, version)
	return err
}
