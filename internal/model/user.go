package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an end user as seen by the admin console.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	KYCStatus KYCStatus `json:"kyc_status"`
	CreatedAt time.Time `json:"created_at"`
}

// Budget is a monthly category spending limit.
type Budget struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	SpentAmount decimal.Decimal `json:"spent_amount"`
}

// Remaining returns the unspent portion of the budget.
func (b Budget) Remaining() decimal.Decimal {
	return b.LimitAmount.Sub(b.SpentAmount)
}

// PercentUsed returns spend as a share of the limit, clamped to [0, 100].
// A zero limit reads as fully used so progress bars never divide by zero.
func (b Budget) PercentUsed() int {
	if !b.LimitAmount.IsPositive() {
		return 100
	}
	pct := b.SpentAmount.Div(b.LimitAmount).Mul(decimal.NewFromInt(100)).IntPart()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return int(pct)
}

// Reward is a promotional reward configured by an admin.
type Reward struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	RewardType  string   `json:"reward_type"`
	AppliesTo   []string `json:"applies_to"`
	Value       string   `json:"value"`
	Points      int      `json:"points"`
	Status      string   `json:"status"`
}

// Alert is a system or security notice surfaced to admins and users.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLog records an admin action.
type AuditLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Actor     string    `json:"actor"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
