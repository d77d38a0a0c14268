package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxType is the ledger entry type.
type TxType string

const (
	TxCredit TxType = "credit"
	TxDebit  TxType = "debit"
)

// Valid reports whether t is one of the known transaction types.
func (t TxType) Valid() bool {
	return t == TxCredit || t == TxDebit
}

// Transaction is an immutable ledger entry. Amount is always non-negative;
// the type says which way it moves the balance.
type Transaction struct {
	ID          string          `db:"id" json:"id"`
	WalletID    string          `db:"wallet_id" json:"wallet_id"`
	Date        time.Time       `db:"date" json:"-"`
	Description string          `db:"description" json:"description"`
	Amount      decimal.Decimal `db:"amount" json:"-"`
	Type        TxType          `db:"transaction_type" json:"transaction_type"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}
