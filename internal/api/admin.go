package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/paisera/paisera/internal/model"
	"github.com/shopspring/decimal"
)

// AdminUserFilter narrows the admin user listing.
type AdminUserFilter struct {
	Search    string
	KYCStatus *model.KYCStatus
}

// AdminListUsers returns users matching the filter.
func (c *Client) AdminListUsers(ctx context.Context, filter AdminUserFilter) ([]model.User, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.KYCStatus != nil {
		query.Set("kyc_status", string(*filter.KYCStatus))
	}

	var users []model.User
	if err := c.getWithRetry(ctx, "/admin/users", query, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AdminTransactionFilter narrows the admin transaction listing.
type AdminTransactionFilter struct {
	Search string
	Status string
}

// AdminListTransactions returns transactions across all users matching the
// filter.
func (c *Client) AdminListTransactions(ctx context.Context, filter AdminTransactionFilter) ([]model.Transaction, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}

	var transactions []model.Transaction
	if err := c.getWithRetry(ctx, "/admin/transactions", query, &transactions); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// AdminSetKYCStatus updates a user's verification status. The status is
// sent in the backend vocabulary; callers holding a display value must map
// it through model.ParseKYCDisplay first.
func (c *Client) AdminSetKYCStatus(ctx context.Context, userID string, status model.KYCStatus) error {
	body := struct {
		Status model.KYCStatus `json:"status"`
	}{Status: status}

	path := "/admin/users/" + url.PathEscape(userID) + "/kyc"
	if err := c.do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return fmt.Errorf("failed to update KYC status for user %s: %w", userID, err)
	}
	return nil
}

// AdminListRewards returns all configured rewards.
func (c *Client) AdminListRewards(ctx context.Context) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := c.getWithRetry(ctx, "/admin/rewards", nil, &rewards); err != nil {
		return nil, fmt.Errorf("failed to list rewards: %w", err)
	}
	return rewards, nil
}

// AdminCreateReward configures a new reward.
func (c *Client) AdminCreateReward(ctx context.Context, reward model.Reward) error {
	if err := c.do(ctx, http.MethodPost, "/admin/rewards", nil, reward, nil); err != nil {
		return fmt.Errorf("failed to create reward: %w", err)
	}
	return nil
}

// AdminApproveReward marks a pending reward as live.
func (c *Client) AdminApproveReward(ctx context.Context, rewardID string) error {
	path := "/admin/rewards/" + url.PathEscape(rewardID) + "/approve"
	if err := c.do(ctx, http.MethodPatch, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to approve reward %s: %w", rewardID, err)
	}
	return nil
}

// AdminDeleteReward removes a reward.
func (c *Client) AdminDeleteReward(ctx context.Context, rewardID string) error {
	path := "/admin/rewards/" + url.PathEscape(rewardID)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete reward %s: %w", rewardID, err)
	}
	return nil
}

// AnalyticsSummary is the admin dashboard rollup.
type AnalyticsSummary struct {
	TotalUsers        int             `json:"total_users"`
	TotalTransactions int             `json:"total_transactions"`
	TotalVolume       decimal.Decimal `json:"total_volume"`
	PendingKYC        int             `json:"pending_kyc"`
}

// TopUser is a high-activity user in the analytics view.
type TopUser struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	TransactionCount int             `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}

// AdminAnalyticsSummary fetches the dashboard rollup.
func (c *Client) AdminAnalyticsSummary(ctx context.Context) (*AnalyticsSummary, error) {
	var summary AnalyticsSummary
	if err := c.getWithRetry(ctx, "/admin/analytics/summary", nil, &summary); err != nil {
		return nil, fmt.Errorf("failed to fetch analytics summary: %w", err)
	}
	return &summary, nil
}

// AdminTopUsers fetches the highest-activity users.
func (c *Client) AdminTopUsers(ctx context.Context) ([]TopUser, error) {
	var users []TopUser
	if err := c.getWithRetry(ctx, "/admin/analytics/top-users", nil, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch top users: %w", err)
	}
	return users, nil
}

// AdminAlerts fetches system alerts, optionally filtered by type.
func (c *Client) AdminAlerts(ctx context.Context, alertType string) ([]model.Alert, error) {
	query := url.Values{}
	if alertType != "" {
		query.Set("type", alertType)
	}

	var payload struct {
		Items []model.Alert `json:"items"`
	}
	if err := c.getWithRetry(ctx, "/admin/alerts", query, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch admin alerts: %w", err)
	}
	return payload.Items, nil
}

// AdminLogs fetches audit logs, optionally filtered by action.
func (c *Client) AdminLogs(ctx context.Context, action string) ([]model.AuditLog, error) {
	query := url.Values{}
	if action != "" {
		query.Set("action", action)
	}

	var payload struct {
		Items []model.AuditLog `json:"items"`
	}
	if err := c.getWithRetry(ctx, "/admin/logs", query, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch audit logs: %w", err)
	}
	return payload.Items, nil
}
