package transactions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/keith-codez/Finance-Backend/internal/auth"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

type Handler struct {
	Wallets store.WalletStore
	Ledger  store.TransactionStore
}

func NewHandler(wallets store.WalletStore, ledger store.TransactionStore) *Handler {
	return &Handler{Wallets: wallets, Ledger: ledger}
}

// List returns every transaction in the caller's wallet, ordered by
// (date, insertion). Export pages over the same order.
func (h *Handler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := auth.Context(c)
	w, err := h.Wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load wallet")
	}

	txs, err := h.Ledger.TransactionsByWallet(ctx, w.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	items := make([]TxItem, 0, len(txs))
	for _, t := range txs {
		items = append(items, toItem(t))
	}
	return c.JSON(items)
}
