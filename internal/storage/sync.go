package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SyncState records when a resource was last pulled from the backend.
type SyncState struct {
	Resource     string
	LastSyncedAt time.Time
	ItemCount    int
}

// RecordSync stamps a resource as synced now with the given item count.
func (s *SQLiteStorage) RecordSync(ctx context.Context, resource string, itemCount int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(resource, "resource"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sync_state (resource, last_synced_at, item_count)
		VALUES (?, ?, ?)
		ON CONFLICT(resource) DO UPDATE SET
			last_synced_at = excluded.last_synced_at,
			item_count = excluded.item_count
	`, resource, time.Now().UTC(), itemCount)
	if err != nil {
		return fmt.Errorf("failed to record sync for %s: %w", resource, err)
	}
	return nil
}

// GetSyncState returns the last sync record for a resource, or nil if the
// resource has never been synced.
func (s *SQLiteStorage) GetSyncState(ctx context.Context, resource string) (*SyncState, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(resource, "resource"); err != nil {
		return nil, err
	}

	var state SyncState
	err := s.db.QueryRowContext(ctx, `
		SELECT resource, last_synced_at, item_count
		FROM sync_state
		WHERE resource = ?
	`, resource).Scan(&state.Resource, &state.LastSyncedAt, &state.ItemCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query sync state: %w", err)
	}
	return &state, nil
}
