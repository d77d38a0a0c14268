package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

// Store is the pgx-backed implementation of store.Store.
type Store struct {
	Pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

const uniqueViolation = "23505"

func (s *Store) CreateUserWithWallet(ctx context.Context, username, passwordHash string) (domain.User, error) {
	tx, err := s.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.User{}, err
	}
	defer tx.Rollback(ctx)

	var u domain.User
	err = tx.QueryRow(ctx,
		`INSERT INTO users (username, password_hash)
		 VALUES ($1, $2)
		 RETURNING id::text, username, password_hash, created_at`,
		username, passwordHash,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.User{}, store.ErrConflict
		}
		return domain.User{}, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO wallets (user_id) VALUES ($1::uuid)`, u.ID,
	); err != nil {
		return domain.User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (domain.User, error) {
	var u domain.User
	err := s.Pool.QueryRow(ctx,
		`SELECT id::text, username, password_hash, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, store.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := s.Pool.QueryRow(ctx,
		`SELECT id::text, username, password_hash, created_at
		 FROM users WHERE id = $1::uuid`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.User{}, store.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}

// GetOrCreateWallet upserts on the UNIQUE(user_id) constraint so repeated and
// concurrent calls resolve to the same row in one round trip.
func (s *Store) GetOrCreateWallet(ctx context.Context, userID string) (domain.Wallet, error) {
	var w domain.Wallet
	err := s.Pool.QueryRow(ctx,
		`INSERT INTO wallets (user_id)
		 VALUES ($1::uuid)
		 ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		 RETURNING id::text, user_id::text, created_at`,
		userID,
	).Scan(&w.ID, &w.UserID, &w.CreatedAt)
	if err != nil {
		return domain.Wallet{}, err
	}
	return w, nil
}

func (s *Store) TransactionsByWallet(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	rows, err := s.Pool.Query(ctx,
		`SELECT id::text, wallet_id::text, date, description, amount::text, transaction_type, created_at
		 FROM transactions
		 WHERE wallet_id = $1::uuid
		 ORDER BY date ASC, created_at ASC, id ASC`,
		walletID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Transaction, 0)
	for rows.Next() {
		var (
			t      domain.Transaction
			amount string
		)
		if err := rows.Scan(&t.ID, &t.WalletID, &t.Date, &t.Description, &amount, &t.Type, &t.CreatedAt); err != nil {
			return nil, err
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) SumByType(ctx context.Context, walletID string, typ domain.TxType) (decimal.Decimal, error) {
	var total string
	err := s.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::text
		 FROM transactions
		 WHERE wallet_id = $1::uuid AND transaction_type = $2`,
		walletID, string(typ),
	).Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(total)
}

func (s *Store) CreateTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if !tx.Type.Valid() {
		return domain.Transaction{}, store.ErrInvalid
	}
	var (
		out    domain.Transaction
		amount string
	)
	err := s.Pool.QueryRow(ctx,
		`INSERT INTO transactions (wallet_id, date, description, amount, transaction_type)
		 VALUES ($1::uuid, $2, $3, $4, $5)
		 RETURNING id::text, wallet_id::text, date, description, amount::text, transaction_type, created_at`,
		tx.WalletID, tx.Date, tx.Description, tx.Amount.StringFixed(2), string(tx.Type),
	).Scan(&out.ID, &out.WalletID, &out.Date, &out.Description, &amount, &out.Type, &out.CreatedAt)
	if err != nil {
		return domain.Transaction{}, err
	}
	if out.Amount, err = decimal.NewFromString(amount); err != nil {
		return domain.Transaction{}, err
	}
	return out, nil
}
