package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo user and transactions after migrating")
	flag.Parse()

	_ = godotenv.Load()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("error opening database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	sqlBytes, err := os.ReadFile("migrations/migrations.sql")
	if err != nil {
		log.Fatalf("error reading migrations file: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Applying migrations...")
	if _, err := db.ExecContext(ctx, string(sqlBytes)); err != nil {
		log.Fatalf("error applying migrations: %v", err)
	}
	log.Println("Migrations applied successfully")

	if *seed {
		if err := seedDemo(ctx, db); err != nil {
			log.Fatalf("error seeding demo data: %v", err)
		}
		log.Println("Demo data seeded")
	}
}

// seedDemo creates a demo/demo1234 login with a few ledger entries so the
// wallet, history and export endpoints have something to show locally.
func seedDemo(ctx context.Context, db *sql.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var userID string
	err = db.QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ('demo', $1)
		 ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		 RETURNING id::text`,
		string(hashed),
	).Scan(&userID)
	if err != nil {
		return err
	}

	var walletID string
	err = db.QueryRowContext(ctx,
		`INSERT INTO wallets (user_id)
		 VALUES ($1::uuid)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING id::text`,
		userID,
	).Scan(&walletID)
	if err != nil {
		return err
	}

	rows := []struct {
		date   string
		desc   string
		amount string
		typ    string
	}{
		{"2025-01-03", "Opening deposit", "250.00", "debit"},
		{"2025-01-10", "Grocery run", "42.75", "credit"},
		{"2025-01-10", "Coffee", "4.50", "credit"},
		{"2025-02-01", "Salary advance", "120.00", "debit"},
	}
	for _, r := range rows {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO transactions (wallet_id, date, description, amount, transaction_type)
			 VALUES ($1::uuid, $2::date, $3, $4::numeric, $5)`,
			walletID, r.date, r.desc, r.amount, r.typ,
		); err != nil {
			return err
		}
	}
	return nil
}
