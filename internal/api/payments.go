package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paisera/paisera/internal/model"
)

// PaymentResult is the processor's acknowledgment of a forwarded payment.
type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Message       string `json:"message"`
}

// ProcessPayment forwards a PIN-confirmed payment to the processing
// collaborator. The request shape is fixed; see model.PaymentRequest.
func (c *Client) ProcessPayment(ctx context.Context, req model.PaymentRequest) (*PaymentResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var result PaymentResult
	if err := c.do(ctx, http.MethodPost, "/payments/process", nil, req, &result); err != nil {
		return nil, fmt.Errorf("payment %s failed: %w", req.ReferenceID, err)
	}
	return &result, nil
}

// ListBills returns the user's saved biller entries.
func (c *Client) ListBills(ctx context.Context) ([]model.Bill, error) {
	var bills []model.Bill
	if err := c.getWithRetry(ctx, "/bills", nil, &bills); err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	return bills, nil
}

// AddBill saves a new biller entry.
func (c *Client) AddBill(ctx context.Context, bill model.Bill) error {
	if err := c.do(ctx, http.MethodPost, "/bills", nil, bill, nil); err != nil {
		return fmt.Errorf("failed to add bill: %w", err)
	}
	return nil
}
