// Package cli implements the cnotbfs command-line surface: a default "run"
// command preserving the original's "prog [-<limit>] [<goalfile>]" argument
// convention, plus "inspect" and "repl" commands supplementing it. Command,
// IO, and Run follow the teacher's internal/cli shape (one pflag.FlagSet per
// command, warnings flushed to stderr at the start and end of output via
// IO, unified help).
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Run parses args, dispatches to the matching Command, and returns the
// process exit code. args does not include the program name (os.Args[1:]).
func Run(out, errOut io.Writer, args []string) int {
	o := NewIO(out, errOut)

	commands := []*Command{newRunCommand(), newInspectCommand(), newReplCommand()}

	name, rest := "run", args
	if len(args) > 0 {
		if _, ok := commandMap(commands)[args[0]]; ok {
			name, rest = args[0], args[1:]
		}
	}

	if name == "run" {
		rest = normalizeLegacyArgs(rest)
	}

	cmd, ok := commandMap(commands)[name]
	if !ok {
		o.ErrPrintln("error: unknown command:", name)
		printUsage(o, commands)

		return o.Finish()
	}

	code := cmd.Run(context.Background(), o, rest)
	o.Finish()

	return code
}

func commandMap(commands []*Command) map[string]*Command {
	m := make(map[string]*Command, len(commands))
	for _, c := range commands {
		m[c.Name()] = c
	}

	return m
}

func printUsage(o *IO, commands []*Command) {
	o.ErrPrintln("Usage: cnotbfs [command] [flags]")
	o.ErrPrintln()
	o.ErrPrintln("Commands:")

	for _, c := range commands {
		o.ErrPrintln(fmt.Sprintf("  %s", c.HelpLine()))
	}
}

// Main is cmd/cnotbfs's entry point body, split out so it's testable
// without an os.Exit call.
func Main() int {
	return Run(os.Stdout, os.Stderr, os.Args[1:])
}
