package reports

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/keith-codez/Finance-Backend/internal/auth"
	"github.com/keith-codez/Finance-Backend/internal/store"
	"github.com/keith-codez/Finance-Backend/internal/wallet"
)

type Handler struct {
	Users   store.UserStore
	Wallets store.WalletStore
	Ledger  store.TransactionStore
}

func NewHandler(users store.UserStore, wallets store.WalletStore, ledger store.TransactionStore) *Handler {
	return &Handler{Users: users, Wallets: wallets, Ledger: ledger}
}

// Export streams the caller's transaction history as a PDF attachment.
// Read-only: repeated exports over an unchanged ledger produce the same rows.
func (h *Handler) Export(c *fiber.Ctx) error {
	userID, ok := auth.UserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	ctx := auth.Context(c)
	u, err := h.Users.UserByID(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	w, err := h.Wallets.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load wallet")
	}

	txs, err := h.Ledger.TransactionsByWallet(ctx, w.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load transactions")
	}

	bal, err := wallet.Balance(ctx, h.Ledger, w.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to compute balance")
	}

	doc, err := BuildHistoryPDF(u.Username, bal, txs)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "pdf build failed")
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="transaction_history_`+filenamePart(u.Username)+`.pdf"`)
	return c.Send(doc)
}

// filenamePart makes a username safe inside a quoted Content-Disposition
// filename: quotes, backslashes and control bytes would break the header.
func filenamePart(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
