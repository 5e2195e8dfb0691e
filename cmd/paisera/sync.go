package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Pull accounts, transactions and budgets into the local cache",
		Long: `Refresh the local cache from the backend.

The cache powers 'insights --local' and 'transactions export' so they
work without a network connection.`,
		RunE: runSync,
	}

	cmd.Flags().Int("days", 90, "How many days of transactions to pull")

	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	days, _ := cmd.Flags().GetInt("days")

	handler := cli.NewInterruptHandler(os.Stdout)
	ctx := handler.HandleInterrupts(cmd.Context())

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.NewOptions(3,
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Syncing...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stdout)
		}),
	)

	accounts, err := client.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to sync accounts: %w", err)
	}
	if err := store.SaveAccounts(ctx, accounts); err != nil {
		return err
	}
	if err := store.RecordSync(ctx, "accounts", len(accounts)); err != nil {
		return err
	}
	_ = bar.Add(1)

	from := time.Now().AddDate(0, 0, -days)
	transactions, err := client.ListTransactions(ctx, &from, nil)
	if err != nil {
		return fmt.Errorf("failed to sync transactions: %w", err)
	}
	if len(transactions) > 0 {
		if err := store.SaveTransactions(ctx, transactions); err != nil {
			return err
		}
	}
	if err := store.RecordSync(ctx, "transactions", len(transactions)); err != nil {
		return err
	}
	_ = bar.Add(1)

	now := time.Now()
	budgets, err := client.ListBudgets(ctx, int(now.Month()), now.Year())
	if err != nil {
		return fmt.Errorf("failed to sync budgets: %w", err)
	}
	if len(budgets) > 0 {
		if err := store.SaveBudgets(ctx, budgets); err != nil {
			return err
		}
	}
	if err := store.RecordSync(ctx, "budgets", len(budgets)); err != nil {
		return err
	}
	_ = bar.Add(1)

	if handler.WasInterrupted() {
		return nil
	}

	slog.Info("Sync complete",
		"accounts", len(accounts),
		"transactions", len(transactions),
		"budgets", len(budgets))
	fmt.Println(cli.FormatSuccess(fmt.Sprintf(
		"Synced %d accounts, %d transactions, %d budgets.",
		len(accounts), len(transactions), len(budgets))))
	return nil
}
