package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

func TestCreateUserWithWallet_DuplicateUsername(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.CreateUserWithWallet(ctx, "alice", "hash1"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := s.CreateUserWithWallet(ctx, "alice", "hash2")
	if !errors.Is(err, store.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// The original account is untouched.
	u, err := s.UserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if u.PasswordHash != "hash1" {
		t.Fatalf("password hash changed on failed re-register: %q", u.PasswordHash)
	}
}

func TestGetOrCreateWallet_Idempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, _ := s.CreateUserWithWallet(ctx, "alice", "x")

	w1, err := s.GetOrCreateWallet(ctx, u.ID)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	w2, err := s.GetOrCreateWallet(ctx, u.ID)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if w1.ID != w2.ID {
		t.Fatalf("repeated calls created distinct wallets: %s vs %s", w1.ID, w2.ID)
	}
}

func TestUserByUsername_NotFound(t *testing.T) {
	s := New()
	if _, err := s.UserByUsername(context.Background(), "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTransactionsByWallet_OrderAndIsolation(t *testing.T) {
	s := New()
	ctx := context.Background()
	a, _ := s.CreateUserWithWallet(ctx, "alice", "x")
	b, _ := s.CreateUserWithWallet(ctx, "bob", "x")
	wa, _ := s.GetOrCreateWallet(ctx, a.ID)
	wb, _ := s.GetOrCreateWallet(ctx, b.ID)

	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	add := func(walletID string, d int, desc string) {
		t.Helper()
		_, err := s.CreateTransaction(ctx, domain.Transaction{
			WalletID:    walletID,
			Date:        day(d),
			Description: desc,
			Amount:      decimal.RequireFromString("1.00"),
			Type:        domain.TxDebit,
		})
		if err != nil {
			t.Fatalf("create tx: %v", err)
		}
	}

	// Inserted out of date order; same-day entries keep insertion order.
	add(wa.ID, 5, "third")
	add(wa.ID, 1, "first")
	add(wa.ID, 5, "fourth")
	add(wa.ID, 2, "second")
	add(wb.ID, 1, "bobs")

	txs, err := s.TransactionsByWallet(ctx, wa.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(txs))
	}
	want := []string{"first", "second", "third", "fourth"}
	for i, w := range want {
		if txs[i].Description != w {
			t.Errorf("position %d: got %q, want %q", i, txs[i].Description, w)
		}
	}
}

func TestCreateTransaction_RejectsUnknownType(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, _ := s.CreateUserWithWallet(ctx, "alice", "x")
	w, _ := s.GetOrCreateWallet(ctx, u.ID)

	_, err := s.CreateTransaction(ctx, domain.Transaction{
		WalletID: w.ID,
		Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString("10.00"),
		Type:     domain.TxType("transfer"),
	})
	if !errors.Is(err, store.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	txs, err := s.TransactionsByWallet(ctx, w.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("rejected entry was stored: %+v", txs)
	}
}

func TestSumByType(t *testing.T) {
	s := New()
	ctx := context.Background()
	u, _ := s.CreateUserWithWallet(ctx, "alice", "x")
	w, _ := s.GetOrCreateWallet(ctx, u.ID)

	amounts := []struct {
		typ domain.TxType
		amt string
	}{
		{domain.TxCredit, "100.00"},
		{domain.TxDebit, "30.00"},
		{domain.TxDebit, "20.00"},
	}
	for _, a := range amounts {
		_, err := s.CreateTransaction(ctx, domain.Transaction{
			WalletID: w.ID,
			Date:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			Amount:   decimal.RequireFromString(a.amt),
			Type:     a.typ,
		})
		if err != nil {
			t.Fatalf("create tx: %v", err)
		}
	}

	debits, err := s.SumByType(ctx, w.ID, domain.TxDebit)
	if err != nil {
		t.Fatalf("sum debits: %v", err)
	}
	if debits.StringFixed(2) != "50.00" {
		t.Fatalf("debits = %s, want 50.00", debits.StringFixed(2))
	}
	credits, err := s.SumByType(ctx, w.ID, domain.TxCredit)
	if err != nil {
		t.Fatalf("sum credits: %v", err)
	}
	if credits.StringFixed(2) != "100.00" {
		t.Fatalf("credits = %s, want 100.00", credits.StringFixed(2))
	}
}
