package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockavg/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when run as a shell completion request
	cmd.Completion().Complete("savg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.IsCommand(name) {
		if ok, code := cmd.RunExtension(name, flag.Args()[1:]); ok {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
