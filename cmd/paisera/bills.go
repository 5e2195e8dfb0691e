package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paisera/paisera/internal/cli"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/money"
	"github.com/paisera/paisera/internal/tui/components"
)

func billsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bills",
		Short: "View and pay bills",
	}

	cmd.AddCommand(billsListCmd())
	cmd.AddCommand(billsPayCmd())
	cmd.AddCommand(billsFastagCmd())
	cmd.AddCommand(billsGooglePlayCmd())

	return cmd
}

func billsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved billers and due amounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newAPIClient()
			if err != nil {
				return err
			}

			bills, err := client.ListBills(cmd.Context())
			if err != nil {
				return err
			}

			if len(bills) == 0 {
				fmt.Println(cli.FormatInfo("No saved billers."))
				return nil
			}

			var rows []string
			for _, bill := range bills {
				row := fmt.Sprintf("%-24s %-12s %12s  due %s",
					bill.BillerName, bill.Status, money.FormatINR(bill.Amount), bill.DueDate)
				if bill.AutoPay {
					row += "  " + cli.SubtleStyle.Render("(autopay)")
				}
				rows = append(rows, row)
			}

			fmt.Println(cli.RenderBox("Upcoming Bills", strings.Join(rows, "\n")))
			return nil
		},
	}
}

func billsPayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pay <bill-id>",
		Short: "Pay a saved bill (requires PIN)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			billID := args[0]
			ctx := cmd.Context()
			from, _ := cmd.Flags().GetString("from")

			client, err := newAPIClient()
			if err != nil {
				return err
			}

			bills, err := client.ListBills(ctx)
			if err != nil {
				return err
			}

			for _, bill := range bills {
				if bill.ID != billID {
					continue
				}

				accountID := from
				if accountID == "" {
					accountID = bill.AccountID
				}
				if accountID == "" {
					return fmt.Errorf("bill %s has no linked account; pass --from", billID)
				}

				fmt.Println(cli.FormatInfo(fmt.Sprintf("Paying %s: %s",
					bill.BillerName, money.FormatINR(bill.Amount))))

				prompter := cli.NewPrompter(os.Stdin, os.Stdout)
				pin, err := prompter.PromptPIN(ctx, "Enter your 4-digit PIN")
				if err != nil {
					return err
				}

				id := bill.ID
				result, err := client.ProcessPayment(ctx, model.PaymentRequest{
					BillID:      &id,
					AccountID:   accountID,
					Amount:      bill.Amount,
					PIN:         pin,
					BillType:    model.BillTypeGeneric,
					ReferenceID: uuid.NewString(),
					To:          bill.BillerName,
				})
				if err != nil {
					return err
				}

				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Payment submitted (transaction %s).", result.TransactionID)))
				return nil
			}

			return fmt.Errorf("no saved bill with ID %s", billID)
		},
	}

	cmd.Flags().String("from", "", "Source account ID (defaults to the bill's linked account)")

	return cmd
}

func billsFastagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fastag",
		Short: "Recharge a FASTag (requires PIN)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			return runPaymentFlow(cmd, components.FastagSpec(), from, nil)
		},
	}

	cmd.Flags().String("from", "", "Source account ID")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func billsGooglePlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "googleplay",
		Short: "Recharge Google Play balance (requires PIN)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			return runPaymentFlow(cmd, components.GooglePlaySpec(), from, nil)
		},
	}

	cmd.Flags().String("from", "", "Source account ID")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}
