package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/export"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
	"github.com/paisera/paisera/internal/storage"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txns"},
		Short:   "Browse and export cached transactions",
	}

	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsExportCmd())

	return cmd
}

func transactionsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached transactions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accountID, _ := cmd.Flags().GetString("account")
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			limit, _ := cmd.Flags().GetInt("limit")
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx, storage.TransactionFilter{
				AccountID: accountID,
				Month:     month,
				Year:      year,
				Limit:     limit,
			})
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("No cached transactions. Run 'paisera sync' first."))
				return nil
			}

			var rows []string
			for _, txn := range transactions {
				amount := money.FormatINRCompact(txn.Amount)
				style := cli.AmountDebitStyle
				if txn.Type == model.TypeIncome {
					style = cli.AmountCreditStyle
					amount = "+" + amount
				} else {
					amount = "-" + amount
				}
				rows = append(rows, fmt.Sprintf("%s  %-32s %-12s %s",
					txn.Date.Format("2006-01-02"),
					truncate(txn.Description, 32),
					txn.Category,
					style.Render(amount),
				))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("Transactions (%d)", len(transactions)),
				strings.Join(rows, "\n"),
			))
			return nil
		},
	}

	cmd.Flags().String("account", "", "Filter by account ID")
	cmd.Flags().IntP("month", "m", 0, "Filter by month (1-12)")
	cmd.Flags().IntP("year", "y", 0, "Filter by year")
	cmd.Flags().Int("limit", 50, "Maximum rows to show")

	return cmd
}

func transactionsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export cached transactions as OFX or CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accountID, _ := cmd.Flags().GetString("account")
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx, storage.TransactionFilter{AccountID: accountID})
			if err != nil {
				return err
			}
			if len(transactions) == 0 {
				return fmt.Errorf("nothing to export; run 'paisera sync' first")
			}

			out := os.Stdout
			if output != "" {
				f, createErr := os.Create(output)
				if createErr != nil {
					return fmt.Errorf("failed to create output file: %w", createErr)
				}
				defer func() { _ = f.Close() }()
				out = f
			}

			switch format {
			case "csv":
				err = export.WriteCSV(out, transactions)
			case "ofx":
				if accountID == "" {
					return fmt.Errorf("OFX export needs --account; statements are per account")
				}
				account, findErr := findCachedAccount(cmd, store, accountID)
				if findErr != nil {
					return findErr
				}
				err = export.WriteOFX(out, account, transactions)
			default:
				return fmt.Errorf("unknown format %q (want ofx or csv)", format)
			}
			if err != nil {
				return err
			}

			if output != "" {
				fmt.Println(cli.FormatSuccess(fmt.Sprintf(
					"Exported %d transactions to %s.", len(transactions), output)))
			}
			return nil
		},
	}

	cmd.Flags().String("account", "", "Account to export (required for OFX)")
	cmd.Flags().StringP("format", "f", "csv", "Export format (ofx, csv)")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	return cmd
}

func findCachedAccount(cmd *cobra.Command, store *storage.SQLiteStorage, accountID string) (model.Account, error) {
	accounts, err := store.ListAccounts(cmd.Context())
	if err != nil {
		return model.Account{}, err
	}
	for _, acct := range accounts {
		if acct.ID == accountID {
			return acct, nil
		}
	}
	return model.Account{}, fmt.Errorf("account %s is not in the cache; run 'paisera sync'", accountID)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
