package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	crediflow "github.com/crediflow/crediflow-go"
	"github.com/crediflow/crediflow-go/middleware"
)

type CLI struct {
	Config  string `help:"Path to YAML config file." short:"c" type:"path"`
	Verbose bool   `help:"Log every outbound call." short:"v"`

	Loan       LoanCmd       `cmd:"" help:"Fetch one loan account."`
	Loans      LoansCmd      `cmd:"" help:"List loan accounts."`
	Repayments RepaymentsCmd `cmd:"" help:"List repayments for a loan account or a due-date window."`
	Client     ClientCmd     `cmd:"" help:"Fetch one client."`
}

// newClient wires the SDK client from config and flags.
func (c *CLI) newClient() (*crediflow.Client, error) {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}

	api, err := crediflow.NewClient(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.APIKey != "":
		api.WithInterceptor(middleware.APIKey(cfg.APIKey))
	case cfg.Username != "":
		api.WithInterceptor(middleware.BasicAuth(cfg.Username, cfg.Password))
	}

	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		api.WithLogger(logger).WithInterceptor(middleware.Logging(logger))
	}

	return api, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type LoanCmd struct {
	ID      string `arg:"" help:"Loan account id."`
	Details bool   `help:"Fetch with full details."`
}

func (c *LoanCmd) Run(cli *CLI) error {
	api, err := cli.newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if c.Details {
		account, err := api.Loans.GetDetails(ctx, c.ID)
		if err != nil {
			return err
		}
		return printJSON(account)
	}
	account, err := api.Loans.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	return printJSON(account)
}

type LoansCmd struct {
	Offset string `help:"Listing offset."`
	Limit  string `help:"Listing limit."`
}

func (c *LoansCmd) Run(cli *CLI) error {
	api, err := cli.newClient()
	if err != nil {
		return err
	}
	accounts, err := api.Loans.List(context.Background(), c.Offset, c.Limit)
	if err != nil {
		return err
	}
	return printJSON(accounts)
}

type RepaymentsCmd struct {
	Loan    string `help:"Loan account id." xor:"source"`
	DueFrom string `help:"Due-date window start (yyyy-mm-dd)." xor:"source"`
	DueTo   string `help:"Due-date window end (yyyy-mm-dd)."`
}

func (c *RepaymentsCmd) Run(cli *CLI) error {
	api, err := cli.newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if c.Loan != "" {
		repayments, err := api.Repayments.ForLoanAccount(ctx, c.Loan)
		if err != nil {
			return err
		}
		return printJSON(repayments)
	}
	if c.DueFrom == "" || c.DueTo == "" {
		return fmt.Errorf("either --loan or both --due-from and --due-to are required")
	}
	repayments, err := api.Repayments.ListDue(ctx, c.DueFrom, c.DueTo)
	if err != nil {
		return err
	}
	return printJSON(repayments)
}

type ClientCmd struct {
	ID      string `arg:"" help:"Client id."`
	Details bool   `help:"Fetch with full details."`
}

func (c *ClientCmd) Run(cli *CLI) error {
	api, err := cli.newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()
	if c.Details {
		client, err := api.Clients.GetDetails(ctx, c.ID)
		if err != nil {
			return err
		}
		return printJSON(client)
	}
	client, err := api.Clients.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	return printJSON(client)
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("crediflow"),
		kong.Description("Command-line access to a Crediflow backend."),
		kong.UsageOnError(),
	)
	err := ctx.Run(cli)
	ctx.FatalIfErrorf(err)
}
