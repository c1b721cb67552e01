package main

import (
	"context"
	"flag"
	"os"
	"path"

	"bourse/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file can carry BOURSE_DIR so every shell finds the same game.
	godotenv.Load()

	// Shell completion exits here when invoked by the completion machinery.
	cmd.Completion().Complete("bourse")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
