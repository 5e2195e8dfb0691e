package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/api"
	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative operations (requires an admin token)",
	}

	cmd.AddCommand(adminUsersCmd())
	cmd.AddCommand(adminTransactionsCmd())
	cmd.AddCommand(adminKYCCmd())
	cmd.AddCommand(adminRewardsCmd())
	cmd.AddCommand(adminAnalyticsCmd())
	cmd.AddCommand(adminAlertsCmd())
	cmd.AddCommand(adminLogsCmd())

	return cmd
}

func adminUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users with their verification status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			search, _ := cmd.Flags().GetString("search")
			kycDisplay, _ := cmd.Flags().GetString("kyc")

			filter := api.AdminUserFilter{Search: search}
			if kycDisplay != "" {
				status, err := model.ParseKYCDisplay(model.KYCDisplay(strings.ToUpper(kycDisplay)))
				if err != nil {
					return err
				}
				filter.KYCStatus = &status
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			users, err := client.AdminListUsers(cmd.Context(), filter)
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println(cli.FormatInfo("No matching users."))
				return nil
			}

			var rows []string
			for _, user := range users {
				display, err := model.DisplayKYC(user.KYCStatus)
				if err != nil {
					return err
				}
				rows = append(rows, fmt.Sprintf("%-12s %-24s %-28s %s",
					user.ID, user.Name, user.Email, styleKYC(display)))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("Users (%d)", len(users)),
				strings.Join(rows, "\n"),
			))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Filter by name, email or phone")
	cmd.Flags().String("kyc", "", "Filter by status (PENDING, APPROVED, REJECTED)")

	return cmd
}

func styleKYC(display model.KYCDisplay) string {
	switch display {
	case model.KYCDisplayApproved:
		return cli.SuccessStyle.Render(string(display))
	case model.KYCDisplayRejected:
		return cli.ErrorStyle.Render(string(display))
	default:
		return cli.WarningStyle.Render(string(display))
	}
}

func adminTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List transactions across all users",
		RunE: func(cmd *cobra.Command, _ []string) error {
			search, _ := cmd.Flags().GetString("search")
			status, _ := cmd.Flags().GetString("status")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			transactions, err := client.AdminListTransactions(cmd.Context(), api.AdminTransactionFilter{
				Search: search,
				Status: status,
			})
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.FormatInfo("No matching transactions."))
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
				rows = append(rows, fmt.Sprintf("%s  %-32s %-10s %s",
					txn.Date.Format("2006-01-02"),
					truncate(txn.Description, 32),
					txn.Status,
					style.Render(amount),
				))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("%s Transactions (%d)", cli.ChartIcon, len(transactions)),
				strings.Join(rows, "\n"),
			))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Filter by description or user")
	cmd.Flags().String("status", "", "Filter by status (completed, pending, failed)")

	return cmd
}

func adminKYCCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kyc <user-id> <PENDING|APPROVED|REJECTED>",
		Short: "Update a user's KYC status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := model.ParseKYCDisplay(model.KYCDisplay(strings.ToUpper(args[1])))
			if err != nil {
				return err
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.AdminSetKYCStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"User %s marked %s.", args[0], strings.ToUpper(args[1]))))
			return nil
		},
	}
}

func adminRewardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards",
		Short: "Manage promotional rewards",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List configured rewards",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			rewards, err := client.AdminListRewards(cmd.Context())
			if err != nil {
				return err
			}

			if len(rewards) == 0 {
				fmt.Println(cli.FormatInfo("No rewards configured."))
				return nil
			}

			var rows []string
			for _, reward := range rewards {
				rows = append(rows, fmt.Sprintf("%-12s %-24s %-10s %-8s %s",
					reward.ID, reward.Name, reward.RewardType, reward.Status, reward.Value))
			}
			fmt.Println(cli.RenderBox("Rewards", strings.Join(rows, "\n")))
			return nil
		},
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rewardType, _ := cmd.Flags().GetString("type")
			value, _ := cmd.Flags().GetString("value")
			appliesTo, _ := cmd.Flags().GetStringSlice("applies-to")
			description, _ := cmd.Flags().GetString("description")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			reward := model.Reward{
				ID:          uuid.NewString(),
				Name:        args[0],
				Description: description,
				RewardType:  rewardType,
				AppliesTo:   appliesTo,
				Value:       value,
			}
			if err := client.AdminCreateReward(cmd.Context(), reward); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Reward %q created.", reward.Name)))
			return nil
		},
	}
	create.Flags().String("type", "cashback", "Reward type (cashback, points, voucher)")
	create.Flags().String("value", "", "Reward value (e.g. 5% or 100)")
	create.Flags().StringSlice("applies-to", nil, "Bill types the reward applies to")
	create.Flags().String("description", "", "User-facing description")

	approve := &cobra.Command{
		Use:   "approve <reward-id>",
		Short: "Approve a pending reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.AdminApproveReward(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Reward approved."))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <reward-id>",
		Short: "Delete a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			if err := client.AdminDeleteReward(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Reward deleted."))
			return nil
		},
	}

	cmd.AddCommand(list, create, approve, remove)
	return cmd
}

func adminAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Platform analytics rollup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			summary, err := client.AdminAnalyticsSummary(ctx)
			if err != nil {
				return err
			}

			fmt.Println(cli.RenderBox(cli.ChartIcon+" Platform", strings.Join([]string{
				fmt.Sprintf("Users:        %d", summary.TotalUsers),
				fmt.Sprintf("Transactions: %d", summary.TotalTransactions),
				fmt.Sprintf("Volume:       %s", money.FormatINR(summary.TotalVolume)),
				fmt.Sprintf("Pending KYC:  %d", summary.PendingKYC),
			}, "\n")))

			topUsers, err := client.AdminTopUsers(ctx)
			if err != nil {
				return err
			}
			if len(topUsers) == 0 {
				return nil
			}

			var rows []string
			for i, user := range topUsers {
				rows = append(rows, fmt.Sprintf("%2d. %-24s %5d txns  %s",
					i+1, user.Name, user.TransactionCount, money.FormatINR(user.TotalAmount)))
			}
			fmt.Println(cli.RenderBox("Top Users", strings.Join(rows, "\n")))
			return nil
		},
	}
}

func adminAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List platform alerts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			alertType, _ := cmd.Flags().GetString("type")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			alerts, err := client.AdminAlerts(cmd.Context(), alertType)
			if err != nil {
				return err
			}

			if len(alerts) == 0 {
				fmt.Println(cli.FormatSuccess("No alerts."))
				return nil
			}

			var rows []string
			for _, alert := range alerts {
				rows = append(rows, fmt.Sprintf("[%-8s] %-16s %s",
					alert.Type, alert.UserName, alert.Message))
			}
			fmt.Println(cli.RenderBox(cli.BellIcon+" Platform Alerts", strings.Join(rows, "\n")))
			return nil
		},
	}

	cmd.Flags().String("type", "", "Filter by alert type (security, system)")
	return cmd
}

func adminLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List the admin audit trail",
		RunE: func(cmd *cobra.Command, _ []string) error {
			action, _ := cmd.Flags().GetString("action")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			logs, err := client.AdminLogs(cmd.Context(), action)
			if err != nil {
				return err
			}

			if len(logs) == 0 {
				fmt.Println(cli.FormatInfo("No audit entries."))
				return nil
			}

			var rows []string
			for _, entry := range logs {
				rows = append(rows, fmt.Sprintf("%s %-20s %-16s %s",
					entry.CreatedAt.Format("2006-01-02 15:04"),
					entry.Action, entry.Actor, entry.Detail))
			}
			fmt.Println(cli.RenderBox("Audit Log", strings.Join(rows, "\n")))
			return nil
		},
	}

	cmd.Flags().String("action", "", "Filter by action name")
	return cmd
}
