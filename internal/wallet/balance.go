package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

// Balance computes the wallet's current balance as total debits minus total
// credits, exact decimal arithmetic throughout. The sign convention (debits
// increase the displayed balance) is contractual; do not flip it.
func Balance(ctx context.Context, ledger store.TransactionStore, walletID string) (decimal.Decimal, error) {
	debits, err := ledger.SumByType(ctx, walletID, domain.TxDebit)
	if err != nil {
		return decimal.Zero, err
	}
	credits, err := ledger.SumByType(ctx, walletID, domain.TxCredit)
	if err != nil {
		return decimal.Zero, err
	}
	return debits.Sub(credits), nil
}
