package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/paisera/paisera/internal/common"
	"github.com/paisera/paisera/internal/model"
)

// SaveAccounts replaces the cached account list with the given snapshot.
func (s *SQLiteStorage) SaveAccounts(ctx context.Context, accounts []model.Account) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAccounts(accounts); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM accounts`); err != nil {
		return fmt.Errorf("failed to clear account cache: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO accounts (
			id, bank_name, account_number, masked_account,
			account_type, currency, balance, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, acct := range accounts {
		if _, err := stmt.ExecContext(ctx,
			acct.ID,
			acct.BankName,
			acct.AccountNumber,
			acct.MaskedAccount,
			string(acct.AccountType),
			acct.Currency,
			acct.Balance.String(),
			acct.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to save account %s: %w", acct.ID, err)
		}
	}

	return tx.Commit()
}

// ListAccounts returns the cached account snapshot.
func (s *SQLiteStorage) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, bank_name, account_number, masked_account, account_type, currency, balance, created_at
		FROM accounts
		ORDER BY bank_name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []model.Account
	for rows.Next() {
		var (
			acct                          model.Account
			accountType, balanceStr       string
			accountNumber, maskedAccount  sql.NullString
			currency                      sql.NullString
			createdAt                     sql.NullTime
		)
		if err := rows.Scan(
			&acct.ID,
			&acct.BankName,
			&accountNumber,
			&maskedAccount,
			&accountType,
			&currency,
			&balanceStr,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}

		balance, err := decimal.NewFromString(balanceStr)
		if err != nil {
			return nil, fmt.Errorf("account %s: bad cached balance %q: %w", acct.ID, balanceStr, common.ErrDatabaseCorrupted)
		}

		acct.AccountNumber = accountNumber.String
		acct.MaskedAccount = maskedAccount.String
		acct.AccountType = model.AccountType(accountType)
		acct.Currency = currency.String
		acct.Balance = balance
		acct.CreatedAt = createdAt.Time
		accounts = append(accounts, acct)
	}

	return accounts, rows.Err()
}
