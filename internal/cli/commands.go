package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/SscSPs/money_lending_ledger/internal/dto"
	"github.com/google/subcommands"
)

// Options are the global flags shared by every command.
type Options struct {
	SnapshotPath string
	Currency     string
	Out          io.Writer
	Err          io.Writer
}

// Register the subcommands.
func Register(c *subcommands.Commander, opts *Options) {
	c.Register(&personBalanceCmd{opts: opts}, "balances")
	c.Register(&accountBalanceCmd{opts: opts}, "balances")
	c.Register(&totalsCmd{opts: opts}, "balances")
	c.Register(&historyCmd{opts: opts}, "history")
}

func (o *Options) load() (*SnapshotFile, subcommands.ExitStatus) {
	s, err := OpenSnapshot(o.SnapshotPath)
	if err != nil {
		fmt.Fprintln(o.Err, err)
		return nil, subcommands.ExitFailure
	}
	return s, subcommands.ExitSuccess
}

func (o *Options) print(v any) subcommands.ExitStatus {
	enc := json.NewEncoder(o.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(o.Err, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type personBalanceCmd struct {
	opts *Options
}

func (*personBalanceCmd) Name() string     { return "person-balance" }
func (*personBalanceCmd) Synopsis() string { return "print what a person owes and their custodial balance" }
func (*personBalanceCmd) Usage() string {
	return `lendingctl [-snapshot <file>] [-currency <code>] person-balance <personID>
`
}
func (*personBalanceCmd) SetFlags(*flag.FlagSet) {}

func (c *personBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.opts.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	s, status := c.opts.load()
	if s == nil {
		return status
	}
	personID := f.Arg(0)
	return c.opts.print(dto.ToPersonBalanceResponse(s.Engine().PersonBalance(personID), c.opts.Currency))
}

type accountBalanceCmd struct {
	opts *Options
}

func (*accountBalanceCmd) Name() string { return "account-balance" }
func (*accountBalanceCmd) Synopsis() string {
	return "print an account's outstanding lending position and ledger balance"
}
func (*accountBalanceCmd) Usage() string {
	return `lendingctl [-snapshot <file>] [-currency <code>] account-balance <accountID>
`
}
func (*accountBalanceCmd) SetFlags(*flag.FlagSet) {}

func (c *accountBalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(c.opts.Err, c.Usage())
		return subcommands.ExitUsageError
	}
	s, status := c.opts.load()
	if s == nil {
		return status
	}
	accountID := f.Arg(0)
	return c.opts.print(dto.ToAccountBalanceResponse(s.Engine().AccountBalance(accountID), c.opts.Currency))
}

type totalsCmd struct {
	opts *Options
}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "print total lent and borrowed across active persons" }
func (*totalsCmd) Usage() string {
	return `lendingctl [-snapshot <file>] [-currency <code>] totals
`
}
func (*totalsCmd) SetFlags(*flag.FlagSet) {}

func (c *totalsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := c.opts.load()
	if s == nil {
		return status
	}
	return c.opts.print(dto.ToPersonTotalsResponse(s.Engine().AggregatePersonTotals(s.Persons), c.opts.Currency))
}

type historyCmd struct {
	opts            *Options
	includeArchived bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print the combined event history, newest first" }
func (*historyCmd) Usage() string {
	return `lendingctl [-snapshot <file>] [-currency <code>] history [-include-archived]

  Merges lending, transfer and net-flow events into one labelled list.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.includeArchived, "include-archived", false, "Also list archived events.")
}

func (c *historyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, status := c.opts.load()
	if s == nil {
		return status
	}
	return c.opts.print(dto.ToHistoryResponse(s.HistoryView(!c.includeArchived), c.opts.Currency))
}
