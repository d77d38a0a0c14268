package transactions

import (
	"encoding/json"
	"time"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/money"
)

// TxItem is the wire shape of one ledger entry.
type TxItem struct {
	ID          string      `json:"id"`
	WalletID    string      `json:"wallet_id"`
	Date        string      `json:"date"` // YYYY-MM-DD
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	Type        string      `json:"transaction_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toItem(t domain.Transaction) TxItem {
	return TxItem{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
		Amount:      json.Number(money.Plain(t.Amount)),
		Type:        string(t.Type),
		CreatedAt:   t.CreatedAt,
	}
}
