package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/paisera/paisera/internal/model"
)

// Me returns the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.getWithRetry(ctx, "/user/me", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return &user, nil
}

// AvailableRewards returns rewards the user can currently claim.
func (c *Client) AvailableRewards(ctx context.Context) ([]model.Reward, error) {
	var rewards []model.Reward
	if err := c.getWithRetry(ctx, "/rewards/available", nil, &rewards); err != nil {
		return nil, fmt.Errorf("failed to fetch rewards: %w", err)
	}
	return rewards, nil
}

// Alerts returns the user's notices.
func (c *Client) Alerts(ctx context.Context) ([]model.Alert, error) {
	var payload struct {
		Items []model.Alert `json:"items"`
	}
	if err := c.getWithRetry(ctx, "/alerts", nil, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch alerts: %w", err)
	}
	return payload.Items, nil
}

// Settings is the user's preference blob; the client passes it through.
type Settings map[string]any

// GetSettings fetches the user's settings.
func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var settings Settings
	if err := c.getWithRetry(ctx, "/settings", nil, &settings); err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the user's settings.
func (c *Client) UpdateSettings(ctx context.Context, settings Settings) error {
	if err := c.do(ctx, http.MethodPut, "/settings", nil, settings, nil); err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
