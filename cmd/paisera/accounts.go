package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/tui/components"
	"github.com/paisera/paisera/internal/tui/themes"
)

func accountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "Browse and manage linked bank accounts",
		Long: `Open the interactive account browser.

Balances stay masked until you confirm with your PIN. Deleting an
account asks for the PIN again and the backend verifies it.`,
		RunE: runAccountsTUI,
	}

	cmd.AddCommand(accountsListCmd())
	cmd.AddCommand(accountsDeleteCmd())

	return cmd
}

func runAccountsTUI(cmd *cobra.Command, _ []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	theme := themes.GetTheme(viper.GetString("tui.theme"))
	model := components.NewAccountsModel(client, theme)

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}

func accountsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print linked accounts without opening the browser",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			accounts, err := client.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			if len(accounts) == 0 {
				fmt.Println(cli.FormatInfo("No linked accounts. Add one from the mobile app."))
				return nil
			}

			var rows []string
			for _, acct := range accounts {
				rows = append(rows, fmt.Sprintf("%-24s %-10s %s",
					acct.DisplayName(),
					acct.AccountType,
					cli.SubtleStyle.Render(cli.LockIcon+" hidden"),
				))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("%s Linked Accounts (%d)", cli.BankIcon, len(accounts)),
				strings.Join(rows, "\n"),
			))
			fmt.Println(cli.SubtleStyle.Render("Balances are PIN-gated. Use 'paisera balance <account-id>' to reveal one."))
			return nil
		},
	}
}

func accountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <account-id>",
		Short: "Unlink a bank account (requires PIN)",
		Args:  cobra.ExactArgs(1),
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

			var found bool
			for _, acct := range accounts {
				if acct.ID == accountID {
					found = true
					fmt.Println(cli.FormatWarning(formatDeleteWarning(acct)))
					break
				}
			}
			if !found {
				return fmt.Errorf("no linked account with ID %s", accountID)
			}

			prompter := cli.NewPrompter(os.Stdin, os.Stdout)
			ok, err := prompter.Confirm(ctx, "Delete this account?")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(cli.FormatInfo("Canceled. Nothing was deleted."))
				return nil
			}

			pin, err := prompter.PromptPIN(ctx, "Enter your 4-digit PIN")
			if err != nil {
				return err
			}

			if err := client.DeleteAccount(ctx, accountID, pin); err != nil {
				return err
			}

			// Drop cached rows so insights and exports stop seeing the account.
			store, err := initStorage(ctx)
			if err == nil {
				_ = store.DeleteAccountTransactions(ctx, accountID)
				_ = store.Close()
			}

			fmt.Println(cli.FormatSuccess("Account unlinked."))
			return nil
		},
	}
}

// formatDeleteWarning names the account without disclosing its balance.
// Balances stay PIN-gated on every surface.
func formatDeleteWarning(acct model.Account) string {
	return fmt.Sprintf("Deleting %s (•••• %s). This cannot be undone.",
		acct.DisplayName(), acct.LastFour())
}
