package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Track monthly category budgets",
	}

	cmd.PersistentFlags().IntP("month", "m", int(time.Now().Month()), "Month (1-12)")
	cmd.PersistentFlags().IntP("year", "y", time.Now().Year(), "Year")

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsSummaryCmd())
	cmd.AddCommand(budgetsSetCmd())
	cmd.AddCommand(budgetsDeleteCmd())

	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show budgets with spend progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			ctx := cmd.Context()

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			budgets, err := client.ListBudgets(ctx, month, year)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets set for this month."))
				return nil
			}

			// Refresh the cache so offline insights stay current.
			if store, storeErr := initStorage(ctx); storeErr == nil {
				_ = store.SaveBudgets(ctx, budgets)
				_ = store.Close()
			}

			var rows []string
			for _, budget := range budgets {
				rows = append(rows, formatBudgetRow(budget))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("Budgets %02d/%d", month, year),
				strings.Join(rows, "\n"),
			))
			return nil
		},
	}
}

func formatBudgetRow(budget model.Budget) string {
	pct := budget.PercentUsed()
	bar := renderBudgetBar(pct)

	spend := fmt.Sprintf("%s of %s",
		money.FormatINRCompact(budget.SpentAmount),
		money.FormatINRCompact(budget.LimitAmount))

	style := cli.SuccessStyle
	switch {
	case pct >= 100:
		style = cli.ErrorStyle
	case pct >= 80:
		style = cli.WarningStyle
	}

	return fmt.Sprintf("%-16s %s %3d%%  %s", budget.Category, style.Render(bar), pct, spend)
}

func budgetsSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show total budgeted vs spent for the month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			budgets, err := client.ListBudgets(cmd.Context(), month, year)
			if err != nil {
				return err
			}

			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets set for this month."))
				return nil
			}

			totalLimit := decimal.Zero
			totalSpent := decimal.Zero
			over := 0
			for _, budget := range budgets {
				totalLimit = totalLimit.Add(budget.LimitAmount)
				totalSpent = totalSpent.Add(budget.SpentAmount)
				if budget.SpentAmount.GreaterThan(budget.LimitAmount) {
					over++
				}
			}

			pct := 0
			if totalLimit.IsPositive() {
				pct = int(totalSpent.Div(totalLimit).Mul(decimal.NewFromInt(100)).IntPart())
			}

			content := fmt.Sprintf("%s %s of %s spent\n%s %d%%",
				renderBudgetBar(pct),
				money.FormatINRCompact(totalSpent),
				money.FormatINRCompact(totalLimit),
				cli.RupeeIcon, pct)
			if over > 0 {
				content += "\n" + cli.FormatWarning(fmt.Sprintf("%d categories over budget", over))
			}

			fmt.Println(cli.RenderBox(
				fmt.Sprintf("Budget Summary %d/%d", month, year),
				content,
			))
			return nil
		},
	}
}

func renderBudgetBar(pct int) string {
	const width = 20
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func budgetsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "set <category> <limit>",
		Aliases: []string{"add", "edit"},
		Short:   "Create or update a category budget",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			ctx := cmd.Context()

			limit, err := decimal.NewFromString(args[1])
			if err != nil || !limit.IsPositive() {
				return fmt.Errorf("limit must be a positive amount, got %q", args[1])
			}

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			// Update in place when the category already has a budget.
			existing, err := client.ListBudgets(ctx, month, year)
			if err != nil {
				return err
			}

			for _, budget := range existing {
				if strings.EqualFold(budget.Category, args[0]) {
					budget.LimitAmount = limit
					if err := client.UpdateBudget(ctx, budget); err != nil {
						return err
					}
					fmt.Println(cli.FormatSuccess(fmt.Sprintf(
						"Updated %s budget to %s.", budget.Category, money.FormatINR(limit))))
					return nil
				}
			}

			budget := model.Budget{
				ID:          uuid.NewString(),
				Category:    args[0],
				Month:       month,
				Year:        year,
				LimitAmount: limit,
			}
			if err := client.CreateBudget(ctx, budget); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Created %s budget of %s.", budget.Category, money.FormatINR(limit))))
			return nil
		},
	}

	return cmd
}

func budgetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <budget-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			if err := client.DeleteBudget(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess("Budget removed."))
			return nil
		},
	}
}
