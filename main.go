package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/syntax-sniffer/syntax-sniffer/commands"
)

func main() {
	parser := flags.NewParser(&commands.SyntaxSniffer, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "syntax-sniffer"

	rest, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, flagsErr.Message)
			os.Exit(0)
		}

		fmt.Fprintln(os.Stdout, err)
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	if err := commands.SyntaxSniffer.Execute(rest); err != nil {
		if !errors.Is(err, commands.ErrUsage) && !errors.Is(err, commands.ErrTargetNotFound) {
			fmt.Fprintln(os.Stdout, "scanning failed:", err)
		}
		os.Exit(1)
	}
}
