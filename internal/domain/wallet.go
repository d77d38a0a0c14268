package domain

import "time"

// Wallet is the per-user container transactions hang off. Its balance is
// derived from the ledger, never stored.
type Wallet struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
