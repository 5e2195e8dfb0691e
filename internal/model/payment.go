package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BillType identifies the kind of bill or recharge being paid.
type BillType string

const (
	// BillTypeFastag is a FASTag vehicle toll recharge.
	BillTypeFastag BillType = "fastag"
	// BillTypeGooglePlay is a Google Play balance recharge.
	BillTypeGooglePlay BillType = "google_play"
	// BillTypeElectricity is an electricity bill payment.
	BillTypeElectricity BillType = "electricity"
	// BillTypeGeneric is a saved biller payment.
	BillTypeGeneric BillType = "generic"
	// BillTypeTransfer is a direct account-to-account transfer.
	BillTypeTransfer BillType = "transfer"
)

// PaymentRequest is the payload handed to the payment processor once the
// user has confirmed with their PIN. The gate treats everything except PIN
// as opaque pass-through data owned by the caller.
type PaymentRequest struct {
	BillID      *string         `json:"bill_id"`
	AccountID   string          `json:"account_id"`
	Amount      decimal.Decimal `json:"amount"`
	PIN         string          `json:"pin"`
	BillType    BillType        `json:"bill_type"`
	Provider    *string         `json:"provider"`
	ReferenceID string          `json:"reference_id"`
	To          string          `json:"to"`
}

// Validate checks the request is ready to forward to the processor.
func (p PaymentRequest) Validate() error {
	if p.AccountID == "" {
		return fmt.Errorf("payment: account ID is required")
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("payment: amount must be positive, got %s", p.Amount)
	}
	if len(p.PIN) != 4 {
		return fmt.Errorf("payment: PIN must be 4 digits")
	}
	if p.ReferenceID == "" {
		return fmt.Errorf("payment: reference ID is required")
	}
	if strings.TrimSpace(p.To) == "" {
		return fmt.Errorf("payment: destination is required")
	}
	switch p.BillType {
	case BillTypeFastag, BillTypeGooglePlay, BillTypeElectricity, BillTypeGeneric, BillTypeTransfer:
	default:
		return fmt.Errorf("payment: unknown bill type %q", p.BillType)
	}
	return nil
}

// Bill represents a saved biller entry.
type Bill struct {
	ID         string          `json:"id"`
	BillerName string          `json:"biller_name"`
	DueDate    string          `json:"due_date"`
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"account_id"`
	Status     string          `json:"status"`
	AutoPay    bool            `json:"auto_pay"`
}
