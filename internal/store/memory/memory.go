// Package memory is an in-memory implementation of store.Store used for
// development and tests. It mirrors the contracts of the postgres backend:
// unique usernames, one wallet per user, ledger ordered by (date, insertion).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/keith-codez/Finance-Backend/internal/domain"
	"github.com/keith-codez/Finance-Backend/internal/store"
)

type txRecord struct {
	domain.Transaction
	seq int64
}

// Store is guarded by an RWMutex for concurrent reads/writes.
type Store struct {
	mu             sync.RWMutex
	usersByID      map[string]domain.User
	userIDByName   map[string]string
	walletByUserID map[string]domain.Wallet
	txsByWalletID  map[string][]txRecord
	seq            int64
}

// New constructs an empty in-memory store.
func New() *Store {
	return &Store{
		usersByID:      make(map[string]domain.User),
		userIDByName:   make(map[string]string),
		walletByUserID: make(map[string]domain.Wallet),
		txsByWalletID:  make(map[string][]txRecord),
	}
}

func (s *Store) CreateUserWithWallet(_ context.Context, username, passwordHash string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.userIDByName[username]; taken {
		return domain.User{}, store.ErrConflict
	}
	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.usersByID[u.ID] = u
	s.userIDByName[u.Username] = u.ID
	s.walletByUserID[u.ID] = domain.Wallet{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: u.CreatedAt,
	}
	return u, nil
}

func (s *Store) UserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.userIDByName[username]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return s.usersByID[id], nil
}

func (s *Store) UserByID(_ context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.usersByID[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetOrCreateWallet(_ context.Context, userID string) (domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.walletByUserID[userID]; ok {
		return w, nil
	}
	w := domain.Wallet{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	s.walletByUserID[userID] = w
	return w, nil
}

func (s *Store) TransactionsByWallet(_ context.Context, walletID string) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := s.txsByWalletID[walletID]
	sorted := make([]txRecord, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].seq < sorted[j].seq
	})
	out := make([]domain.Transaction, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, r.Transaction)
	}
	return out, nil
}

func (s *Store) SumByType(_ context.Context, walletID string, typ domain.TxType) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := decimal.Zero
	for _, r := range s.txsByWalletID[walletID] {
		if r.Type == typ {
			total = total.Add(r.Amount)
		}
	}
	return total, nil
}

func (s *Store) CreateTransaction(_ context.Context, tx domain.Transaction) (domain.Transaction, error) {
	if !tx.Type.Valid() {
		return domain.Transaction{}, store.ErrInvalid
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t := tx
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.seq++
	s.txsByWalletID[t.WalletID] = append(s.txsByWalletID[t.WalletID], txRecord{Transaction: t, seq: s.seq})
	return t, nil
}
