package wallet

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/keith-codez/Finance-Backend/internal/auth"
	"github.com/keith-codez/Finance-Backend/internal/money"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

type Handler struct {
	Wallets store.WalletStore
	Ledger  store.TransactionStore
}

func NewHandler(wallets store.WalletStore, ledger store.TransactionStore) *Handler {
	return &Handler{Wallets: wallets, Ledger: ledger}
}

type walletView struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	Balance   json.Number `json:"balance"`
}

// GetWallet returns the caller's wallet with the derived balance merged in.
// The wallet row is created lazily on first access.
func (h *Handler) GetWallet(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := auth.Context(c)
	w, err := h.Wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load wallet")
	}

	bal, err := Balance(ctx, h.Ledger, w.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute balance")
	}

	return c.JSON(walletView{
		ID:        w.ID,
		UserID:    w.UserID,
		CreatedAt: w.CreatedAt,
		Balance:   json.Number(money.Plain(bal)),
	})
}
