package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validPayment() PaymentRequest {
	provider := "FASTag"
	return PaymentRequest{
		BillID:      nil,
		AccountID:   "acc-1",
		Amount:      decimal.NewFromInt(200),
		PIN:         "1234",
		BillType:    BillTypeFastag,
		Provider:    &provider,
		ReferenceID: "ref-123",
		To:          "TN09AB1234",
	}
}

func TestPaymentRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PaymentRequest)
		wantErr string
	}{
		{name: "valid fastag recharge", mutate: func(_ *PaymentRequest) {}},
		{
			name:   "nil bill ID is allowed",
			mutate: func(p *PaymentRequest) { p.BillID = nil },
		},
		{
			name:    "missing account",
			mutate:  func(p *PaymentRequest) { p.AccountID = "" },
			wantErr: "account ID is required",
		},
		{
			name:    "zero amount",
			mutate:  func(p *PaymentRequest) { p.Amount = decimal.Zero },
			wantErr: "amount must be positive",
		},
		{
			name:    "negative amount",
			mutate:  func(p *PaymentRequest) { p.Amount = decimal.NewFromInt(-50) },
			wantErr: "amount must be positive",
		},
		{
			name:    "short PIN",
			mutate:  func(p *PaymentRequest) { p.PIN = "123" },
			wantErr: "PIN must be 4 digits",
		},
		{
			name:    "missing reference",
			mutate:  func(p *PaymentRequest) { p.ReferenceID = "" },
			wantErr: "reference ID is required",
		},
		{
			name:    "blank destination",
			mutate:  func(p *PaymentRequest) { p.To = "   " },
			wantErr: "destination is required",
		},
		{
			name:    "unknown bill type",
			mutate:  func(p *PaymentRequest) { p.BillType = BillType("lottery") },
			wantErr: "unknown bill type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayment()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestBudget_PercentUsed(t *testing.T) {
	tests := []struct {
		name   string
		budget Budget
		want   int
	}{
		{
			name:   "half used",
			budget: Budget{LimitAmount: decimal.NewFromInt(1000), SpentAmount: decimal.NewFromInt(500)},
			want:   50,
		},
		{
			name:   "overspent clamps to 100",
			budget: Budget{LimitAmount: decimal.NewFromInt(100), SpentAmount: decimal.NewFromInt(250)},
			want:   100,
		},
		{
			name:   "zero limit reads as fully used",
			budget: Budget{LimitAmount: decimal.Zero, SpentAmount: decimal.NewFromInt(10)},
			want:   100,
		},
		{
			name:   "nothing spent",
			budget: Budget{LimitAmount: decimal.NewFromInt(100)},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.budget.PercentUsed())
		})
	}
}
