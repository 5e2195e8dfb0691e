// Package export writes cached transactions out as OFX or CSV statements.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/google/uuid"

	"github.com/paisera/paisera/internal/model"
)

// WriteOFX renders the account's transactions as an OFX 2.0.3 bank
// statement. Income entries become credits and expenses become debits.
func WriteOFX(w io.Writer, account model.Account, transactions []model.Transaction) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("cannot export invalid account: %w", err)
	}

	now := time.Now()

	curdef, err := ofxgo.NewCurrSymbol(currencyOrDefault(account.Currency))
	if err != nil {
		return fmt.Errorf("unsupported currency %q: %w", account.Currency, err)
	}

	// ofxgo keeps the enum type behind these constants unexported.
	acctType := ofxgo.AcctTypeChecking
	if account.AccountType == model.AccountTypeSavings {
		acctType = ofxgo.AcctTypeSavings
	}

	statement := ofxgo.StatementResponse{
		TrnUID: ofxgo.UID(uuid.NewString()),
		Status: ofxgo.Status{
			Code:     0,
			Severity: "INFO",
		},
		CurDef: *curdef,
		BankAcctFrom: ofxgo.BankAcct{
			BankID:   ofxgo.String(account.BankName),
			AcctID:   ofxgo.String(account.AccountNumber),
			AcctType: acctType,
		},
		DtAsOf: ofxgo.Date{Time: now},
	}
	if _, ok := statement.BalAmt.Rat.SetString(account.Balance.String()); !ok {
		return fmt.Errorf("bad balance %q", account.Balance)
	}

	if len(transactions) > 0 {
		list := &ofxgo.TransactionList{
			DtStart: ofxgo.Date{Time: transactions[len(transactions)-1].Date},
			DtEnd:   ofxgo.Date{Time: transactions[0].Date},
		}
		for _, txn := range transactions {
			converted, convErr := convertTransaction(txn)
			if convErr != nil {
				return convErr
			}
			list.Transactions = append(list.Transactions, converted)
		}
		statement.BankTranList = list
	}

	resp := ofxgo.Response{
		Version: ofxgo.OfxVersion203,
		Signon: ofxgo.SignonResponse{
			Status: ofxgo.Status{
				Code:     0,
				Severity: "INFO",
			},
			DtServer: ofxgo.Date{Time: now},
			Language: "ENG",
			Org:      ofxgo.String(account.BankName),
		},
	}
	resp.Bank = append(resp.Bank, &statement)

	buf, err := resp.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal OFX statement: %w", err)
	}

	if _, err := io.Copy(w, buf); err != nil {
		return fmt.Errorf("failed to write OFX statement: %w", err)
	}

	slog.Info("Exported OFX statement",
		"account", account.ID,
		"transactions", len(transactions))
	return nil
}

// convertTransaction maps a ledger entry to an OFX transaction.
func convertTransaction(txn model.Transaction) (ofxgo.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return ofxgo.Transaction{}, fmt.Errorf("cannot export transaction: %w", err)
	}

	trnType := ofxgo.TrnTypeDebit
	if txn.Type == model.TypeIncome {
		trnType = ofxgo.TrnTypeCredit
	}

	out := ofxgo.Transaction{
		TrnType:  trnType,
		DtPosted: ofxgo.Date{Time: txn.Date},
		FiTID:    ofxgo.String(txn.ID),
		Name:     ofxgo.String(txn.Description),
		Memo:     ofxgo.String(txn.Category),
	}

	// OFX uses signed amounts with debits negative.
	if _, ok := out.TrnAmt.Rat.SetString(txn.Signed().String()); !ok {
		return ofxgo.Transaction{}, fmt.Errorf("transaction %s: bad amount %q", txn.ID, txn.Amount)
	}

	return out, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "INR"
	}
	return currency
}
