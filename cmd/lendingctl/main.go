package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/SscSPs/money_lending_ledger/internal/cli"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	opts := &cli.Options{Out: os.Stdout, Err: os.Stderr}
	flag.StringVar(&opts.SnapshotPath, "snapshot", "snapshot.json", "Path to the exported store snapshot (JSON)")
	flag.StringVar(&opts.Currency, "currency", "JPY", "Display currency for formatted amounts")
	cli.Register(commander, opts)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
