package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
)

// TransactionFilter narrows ListTransactions. Zero values mean "no filter".
type TransactionFilter struct {
	AccountID string
	Type      model.TransactionType
	Month     int
	Year      int
	Limit     int
}

// SaveTransactions upserts a batch of transactions into the cache.
// Re-syncing the same transaction overwrites the cached row.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO transactions (
			id, account_id, date, description, category,
			type, status, amount, reference_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if _, err := stmt.ExecContext(ctx,
			txn.ID,
			txn.AccountID,
			txn.Date,
			txn.Description,
			txn.Category,
			string(txn.Type),
			string(txn.Status),
			txn.Amount.String(),
			txn.ReferenceID,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// ListTransactions returns cached transactions, newest first.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, account_id, date, description, category, type, status, amount, reference_id
		FROM transactions
		WHERE 1=1
	`
	args := make([]any, 0, 6)

	if filter.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, string(filter.Type))
	}
	if filter.Year != 0 {
		query += " AND CAST(strftime('%Y', date) AS INTEGER) = ?"
		args = append(args, filter.Year)
	}
	if filter.Month != 0 {
		query += " AND CAST(strftime('%m', date) AS INTEGER) = ?"
		args = append(args, filter.Month)
	}

	query += " ORDER BY date DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// GetTransactionByID returns a single cached transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, account_id, date, description, category, type, status, amount, reference_id
		FROM transactions
		WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// DeleteAccountTransactions drops all cached rows for an account. Called
// after the backend confirms an account deletion.
func (s *SQLiteStorage) DeleteAccountTransactions(ctx context.Context, accountID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("failed to delete transactions for account %s: %w", accountID, err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return nil
}

// GetTransactionCount returns the number of cached transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// GetTransactionDateRange returns the earliest and latest cached dates.
func (s *SQLiteStorage) GetTransactionDateRange(ctx context.Context) (earliest, latest time.Time, err error) {
	if err = validateContext(ctx); err != nil {
		return
	}

	var minStr, maxStr sql.NullString
	err = s.db.QueryRowContext(ctx, `SELECT MIN(date), MAX(date) FROM transactions`).Scan(&minStr, &maxStr)
	if err != nil {
		err = fmt.Errorf("failed to query date range: %w", err)
		return
	}
	if !minStr.Valid || !maxStr.Valid {
		err = common.ErrNotFound
		return
	}

	earliest, err = parseSQLiteTime(minStr.String)
	if err != nil {
		return
	}
	latest, err = parseSQLiteTime(maxStr.String)
	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (model.Transaction, error) {
	var (
		txn                   model.Transaction
		txnType, status       string
		amountStr             string
		category, referenceID sql.NullString
	)

	err := row.Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.Date,
		&txn.Description,
		&category,
		&txnType,
		&status,
		&amountStr,
		&referenceID,
	)
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("transaction %s: bad cached amount %q: %w", txn.ID, amountStr, common.ErrDatabaseCorrupted)
	}

	txn.Category = category.String
	txn.ReferenceID = referenceID.String
	txn.Type = model.TransactionType(txnType)
	txn.Status = model.TransactionStatus(status)
	txn.Amount = amount
	return txn, nil
}

// parseSQLiteTime handles the formats SQLite hands back for DATETIME columns.
func parseSQLiteTime(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02 15:04:05.999999999-07:00",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q: %w", s, common.ErrDatabaseCorrupted)
}
