package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/paisera/paisera/internal/model"
)

var csvHeader = []string{"date", "description", "category", "type", "status", "amount", "account_id", "reference_id"}

// WriteCSV renders transactions as a CSV statement with a header row.
// Amounts are signed the same way WriteOFX signs them.
func WriteCSV(w io.Writer, transactions []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, txn := range transactions {
		if err := txn.Validate(); err != nil {
			return fmt.Errorf("cannot export transaction: %w", err)
		}

		record := []string{
			txn.Date.Format(time.RFC3339),
			txn.Description,
			txn.Category,
			string(txn.Type),
			string(txn.Status),
			txn.Signed().String(),
			txn.AccountID,
			txn.ReferenceID,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction %s: %w", txn.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
