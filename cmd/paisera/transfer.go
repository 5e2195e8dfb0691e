package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paisera/paisera/internal/api"
	"github.com/paisera/paisera/internal/model"
	"github.com/paisera/paisera/internal/tui/components"
	"github.com/paisera/paisera/internal/tui/themes"
)

// paymentForwarder adapts the API client to the payment flow's processor.
type paymentForwarder struct {
	client *api.Client
}

func (f paymentForwarder) Forward(ctx context.Context, request model.PaymentRequest) error {
	_, err := f.client.ProcessPayment(ctx, request)
	return err
}

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Send money to another account (requires PIN)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString("from")
			return runPaymentFlow(cmd, components.TransferSpec(), from, nil)
		},
	}

	cmd.Flags().String("from", "", "Source account ID")
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

// runPaymentFlow launches the interactive payment form for a spec.
func runPaymentFlow(cmd *cobra.Command, spec components.PaymentSpec, accountID string, billID *string) error {
	if accountID == "" {
		return fmt.Errorf("source account is required")
	}

	client, err := newAPIClient()
	if err != nil {
		return err
	}

	theme := themes.GetTheme(viper.GetString("tui.theme"))
	model := components.NewPaymentModel(spec, accountID, billID, paymentForwarder{client: client}, theme)

	p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
	_, err = p.Run()
	return err
}
