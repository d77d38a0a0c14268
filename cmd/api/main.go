package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/keith-codez/Finance-Backend/internal/auth"
	"github.com/keith-codez/Finance-Backend/internal/config"
	apphttp "github.com/keith-codez/Finance-Backend/internal/http"
	"github.com/keith-codez/Finance-Backend/internal/reports"
	"github.com/keith-codez/Finance-Backend/internal/router"
	"github.com/keith-codez/Finance-Backend/internal/store/postgres"
	"github.com/keith-codez/Finance-Backend/internal/transactions"
	"github.com/keith-codez/Finance-Backend/internal/wallet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	db := postgres.New(pool)
	issuer := auth.NewIssuer([]byte(cfg.JWTSecret), cfg.AccessTTL, cfg.RefreshTTL)

	app := router.NewApp()
	r := &router.Router{
		AuthHandler:         apphttp.NewAuthHandler(db, issuer),
		WalletHandler:       wallet.NewHandler(db, db),
		TransactionsHandler: transactions.NewHandler(db, db),
		ReportsHandler:      reports.NewHandler(db, db, db),
		AuthMW:              auth.Middleware(issuer),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
