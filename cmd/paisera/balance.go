package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/money"
)

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Reveal an account balance (requires PIN)",
		Long: `Reveal the balance of one linked account.

The PIN entry here is a local confirmation step; the backend is not
asked to verify it. Closing the prompt leaves the balance hidden.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID := args[0]
			ctx := cmd.Context()

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			accounts, err := client.ListAccounts(ctx)
			if err != nil {
				return err
			}

			for _, acct := range accounts {
				if acct.ID != accountID {
					continue
				}

				prompter := cli.NewPrompter(os.Stdin, os.Stdout)
				if _, err := prompter.PromptPIN(ctx, "Enter your 4-digit PIN"); err != nil {
					return err
				}

				fmt.Println(cli.RenderBox(
					acct.DisplayName(),
					fmt.Sprintf("%s  %s", cli.RupeeIcon, cli.BoldStyle.Render(money.FormatINR(acct.Balance))),
				))
				return nil
			}

			return fmt.Errorf("no linked account with ID %s", accountID)
		},
	}
}
