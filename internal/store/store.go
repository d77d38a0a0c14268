package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
)

// Sentinel errors for cross-layer signaling.
var (
	ErrNotFound = errors.New("not_found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

// UserStore holds account records.
type UserStore interface {
	// CreateUserWithWallet inserts the user and its empty wallet atomically.
	// Returns ErrConflict when the username is already taken; in that case
	// neither row is created.
	CreateUserWithWallet(ctx context.Context, username, passwordHash string) (domain.User, error)
	UserByUsername(ctx context.Context, username string) (domain.User, error)
	UserByID(ctx context.Context, id string) (domain.User, error)
}

// WalletStore holds per-user wallets.
type WalletStore interface {
	// GetOrCreateWallet returns the user's wallet, creating it on first
	// access. Repeated or concurrent calls for the same user always resolve
	// to the same wallet row.
	GetOrCreateWallet(ctx context.Context, userID string) (domain.Wallet, error)
}

// TransactionStore holds the immutable ledger.
type TransactionStore interface {
	// TransactionsByWallet returns every entry for the wallet ordered by
	// (date ASC, created_at ASC, id ASC). That ordering is a contract:
	// history and PDF export page over it.
	TransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error)
	// SumByType totals amounts of the given type, zero for an empty set.
	SumByType(ctx context.Context, walletID string, typ domain.TxType) (decimal.Decimal, error)
	// CreateTransaction rejects entries whose type is not credit or debit
	// with ErrInvalid.
	CreateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
}

// Store is the full persistence surface the API wires up.
type Store interface {
	UserStore
	WalletStore
	TransactionStore
}
