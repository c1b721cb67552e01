package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct{}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new player account" }
func (*registerCmd) Usage() string {
	return `bourse register <user> <pass>

  Creates a new player account with the starting cash balance. The username
  must be unique; registering a taken name changes nothing.
`
}
func (*registerCmd) SetFlags(f *flag.FlagSet) {}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: register takes exactly a username and a password.")
		return subcommands.ExitUsageError
	}
	username, password := f.Arg(0), f.Arg(1)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	registry, err := loadRegistry(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading user registry: %v\n", err)
		return subcommands.ExitFailure
	}

	if _, err := registry.Register(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := saveRegistry(store, registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error persisting user registry: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered %s. Log in with `bourse login %s <pass>`.\n", username, username)
	return subcommands.ExitSuccess
}

type loginCmd struct{}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log a player in" }
func (*loginCmd) Usage() string {
	return `bourse login <user> <pass>

  Starts a session for the player. The session lasts, across commands,
  until logout.
`
}
func (*loginCmd) SetFlags(f *flag.FlagSet) {}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: login takes exactly a username and a password.")
		return subcommands.ExitUsageError
	}
	username, password := f.Arg(0), f.Arg(1)

	store, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	registry, err := loadRegistry(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading user registry: %v\n", err)
		return subcommands.ExitFailure
	}

	account, err := registry.Login(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeSession(account.Username()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logged in as %s.\n", account.Username())
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "end the current session" }
func (*logoutCmd) Usage() string {
	return `bourse logout

  Ends the current session, if any.
`
}
func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := clearSession(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out.")
	return subcommands.ExitSuccess
}
