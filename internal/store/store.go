package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/model"
)

// Store is the single source of truth for the three shop collections. All
// mutation goes through its methods; returned slices are copies, never the
// backing arrays. The original host ran single-threaded, so the mutex only
// has to reproduce "mutations run to completion before the next one".
type Store struct {
	mu        sync.RWMutex
	customers []model.Customer
	orders    []model.Order
	inventory []model.InventoryItem

	// UI-transient, never persisted, reset on restart.
	searchQuery   string
	currentFilter string
	loading       bool

	persister Persister
	log       *zap.Logger
}

// New builds an empty store. persister may be nil for in-memory-only use.
func New(p Persister, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{persister: p, log: log}
}

// Init loads the persisted snapshot, if any. Call once at startup before
// handing the store to consumers.
func (s *Store) Init(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snap, ok, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	s.mu.Lock()
	s.customers = snap.Customers
	s.orders = snap.Orders
	s.inventory = snap.Inventory
	s.mu.Unlock()
	s.log.Info("snapshot loaded",
		zap.Int("customers", len(snap.Customers)),
		zap.Int("orders", len(snap.Orders)),
		zap.Int("inventory", len(snap.Inventory)))
	return nil
}

// Close flushes one final snapshot. Mutations already flush, so this only
// matters if the last flush failed.
func (s *Store) Close(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	s.mu.RLock()
	snap := s.snapshotLocked()
	s.mu.RUnlock()
	return s.persister.Save(ctx, snap)
}

// snapshotLocked copies the three collections. Caller holds at least a
// read lock.
func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Customers: make([]model.Customer, len(s.customers)),
		Orders:    make([]model.Order, len(s.orders)),
		Inventory: make([]model.InventoryItem, len(s.inventory)),
	}
	copy(snap.Customers, s.customers)
	copy(snap.Orders, s.orders)
	copy(snap.Inventory, s.inventory)
	return snap
}

// flush persists a snapshot taken by the mutation that just committed.
// Persistence failures are logged, never surfaced: a mutation that already
// applied in memory does not get rolled back over a flush error.
func (s *Store) flush(ctx context.Context, snap Snapshot) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(ctx, snap); err != nil {
		s.log.Error("snapshot save failed", zap.Error(err))
	}
}

func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.searchQuery = q
	s.mu.Unlock()
}

func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

func (s *Store) SetFilter(f string) {
	s.mu.Lock()
	s.currentFilter = f
	s.mu.Unlock()
}

func (s *Store) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentFilter
}

func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}
