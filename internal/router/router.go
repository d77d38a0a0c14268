package router

import (
	"github.com/gofiber/fiber/v2"

	handlers "github.com/keith-codez/Finance-Backend/internal/http"
	"github.com/keith-codez/Finance-Backend/internal/reports"
	"github.com/keith-codez/Finance-Backend/internal/transactions"
	"github.com/keith-codez/Finance-Backend/internal/wallet"
)

type Router struct {
	AuthHandler         *handlers.AuthHandler
	WalletHandler       *wallet.Handler
	TransactionsHandler *transactions.Handler
	ReportsHandler      *reports.Handler
	AuthMW              fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Post("/api/auth/register", RateLimitAuth(), r.AuthHandler.Register)
	app.Post("/api/auth/login", RateLimitAuth(), r.AuthHandler.Login)
	app.Post("/api/auth/refresh", RateLimitAuth(), r.AuthHandler.Refresh)

	app.Get("/api/wallet", r.AuthMW, r.WalletHandler.GetWallet)
	app.Get("/api/transactions", r.AuthMW, r.TransactionsHandler.List)
	app.Get("/api/transactions/export", r.AuthMW, r.ReportsHandler.Export)
}
