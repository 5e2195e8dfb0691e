package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/money"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Spending insights and trends",
		Long: `Show income, expense and category breakdowns.

By default figures come from the backend. With --local the numbers are
computed from the synced cache instead, which works offline.`,
		RunE: runInsights,
	}

	cmd.Flags().IntP("month", "m", int(time.Now().Month()), "Month for the category breakdown (1-12)")
	cmd.Flags().IntP("year", "y", time.Now().Year(), "Year for the category breakdown")
	cmd.Flags().Bool("local", false, "Compute from the local cache instead of the backend")
	cmd.Flags().Int("months", 6, "How many months of trend to show")

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")
	local, _ := cmd.Flags().GetBool("local")
	months, _ := cmd.Flags().GetInt("months")

	if local {
		return runLocalInsights(cmd, month, year, months)
	}
	return runBackendInsights(cmd, month, year)
}

func runBackendInsights(cmd *cobra.Command, month, year int) error {
	ctx := cmd.Context()

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	summary, err := client.GetInsightsSummary(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderBox(cli.ChartIcon+" Overview", strings.Join([]string{
		"Income:   " + cli.AmountCreditStyle.Render(money.FormatINR(summary.TotalIncome)),
		"Expense:  " + cli.AmountDebitStyle.Render(money.FormatINR(summary.TotalExpense)),
		"Savings:  " + cli.BoldStyle.Render(money.FormatINR(summary.Savings)),
	}, "\n")))

	breakdown, err := client.GetCategoryBreakdown(ctx, month, year)
	if err != nil {
		return err
	}
	if len(breakdown) == 0 {
		fmt.Println(cli.FormatInfo("No spending recorded this month."))
		return nil
	}

	var rows []string
	for _, entry := range breakdown {
		rows = append(rows, fmt.Sprintf("%-16s %14s", entry.Category, money.FormatINR(entry.Total)))
	}
	fmt.Println(cli.RenderBox(
		fmt.Sprintf("Spending by Category %02d/%d", month, year),
		strings.Join(rows, "\n"),
	))
	return nil
}

func runLocalInsights(cmd *cobra.Command, month, year, months int) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	totals, err := store.GetMonthlyTotals(ctx, months)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Println(cli.FormatInfo("The cache is empty. Run 'paisera sync' first."))
		return nil
	}

	var rows []string
	for _, t := range totals {
		rows = append(rows, fmt.Sprintf("%s  in %14s  out %14s  net %14s",
			t.Month,
			money.FormatINRCompact(t.Income),
			money.FormatINRCompact(t.Expense),
			money.FormatINRCompact(t.Net()),
		))
	}
	fmt.Println(cli.RenderBox(cli.ChartIcon+" Monthly Trend (cached)", strings.Join(rows, "\n")))

	summary, err := store.GetCategorySummary(ctx, month, year)
	if err != nil {
		return err
	}
	if len(summary) == 0 {
		return nil
	}

	categories := make([]string, 0, len(summary))
	for category := range summary {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		return summary[categories[i]].GreaterThan(summary[categories[j]])
	})

	total := decimal.Zero
	for _, category := range categories {
		total = total.Add(summary[category])
	}

	rows = rows[:0]
	for _, category := range categories {
		rows = append(rows, fmt.Sprintf("%-16s %14s", category, money.FormatINR(summary[category])))
	}
	rows = append(rows, cli.SubtleStyle.Render(fmt.Sprintf("%-16s %14s", "Total", money.FormatINR(total))))

	fmt.Println(cli.RenderBox(
		fmt.Sprintf("Spending by Category %02d/%d (cached)", month, year),
		strings.Join(rows, "\n"),
	))
	return nil
}
