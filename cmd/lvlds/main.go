// Command lvlds runs the lvlds data structures from the command line.
//
//	lvlds sort --algo quick 37 73 57 75
//	lvlds brackets '{{([])}}'
//	lvlds heap --max 4 2 9 11
//	lvlds bst --find 4 5 3 7 2 4
//	lvlds stack --queues 1 2 3
//	lvlds bfs --vertices 5 --start 0 0 1 0 4 1 2
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errUsage = errors.New("usage: lvlds <sort|brackets|heap|bst|stack|bfs> [flags] args...")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Error().Err(err).Msg("lvlds failed")
		os.Exit(1)
	}
}

// run dispatches args[0] to its subcommand, writing results to out.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	log.Debug().Str("command", args[0]).Strs("args", args[1:]).Msg("dispatch")
	return cmd(args[1:], out)
}
