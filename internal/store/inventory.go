package store

import (
	"context"
	"strings"

	"github.com/optivision/optivision/internal/model"
)

type ItemPatch struct {
	ItemCode      *string         `json:"itemCode,omitempty"`
	Brand         *string         `json:"brand,omitempty"`
	Model         *string         `json:"model,omitempty"`
	Category      *model.Category `json:"category,omitempty"`
	Type          *string         `json:"type,omitempty"`
	Color         *string         `json:"color,omitempty"`
	Size          *string         `json:"size,omitempty"`
	CostPrice     *float64        `json:"costPrice,omitempty"`
	SellingPrice  *float64        `json:"sellingPrice,omitempty"`
	CurrentStock  *int            `json:"currentStock,omitempty"`
	ReorderLevel  *int            `json:"reorderLevel,omitempty"`
	Supplier      *string         `json:"supplier,omitempty"`
	LastRestocked *string         `json:"lastRestocked,omitempty"`
}

// AddInventoryItem appends a new item. itemCode uniqueness is not
// enforced here; the form layer owns that check.
func (s *Store) AddInventoryItem(ctx context.Context, it model.InventoryItem) model.InventoryItem {
	now := model.Now()
	it.ID = model.NewID()
	it.CreatedAt = now
	it.UpdatedAt = now

	s.mu.Lock()
	s.inventory = append(s.inventory, it)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return it
}

func (s *Store) UpdateInventoryItem(ctx context.Context, id string, p ItemPatch) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	it := &s.inventory[idx]
	if p.ItemCode != nil {
		it.ItemCode = *p.ItemCode
	}
	if p.Brand != nil {
		it.Brand = *p.Brand
	}
	if p.Model != nil {
		it.Model = *p.Model
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Type != nil {
		it.Type = *p.Type
	}
	if p.Color != nil {
		it.Color = *p.Color
	}
	if p.Size != nil {
		it.Size = *p.Size
	}
	if p.CostPrice != nil {
		it.CostPrice = *p.CostPrice
	}
	if p.SellingPrice != nil {
		it.SellingPrice = *p.SellingPrice
	}
	if p.CurrentStock != nil {
		it.CurrentStock = *p.CurrentStock
	}
	if p.ReorderLevel != nil {
		it.ReorderLevel = *p.ReorderLevel
	}
	if p.Supplier != nil {
		it.Supplier = *p.Supplier
	}
	if p.LastRestocked != nil {
		it.LastRestocked = *p.LastRestocked
	}
	it.UpdatedAt = model.Now()

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

func (s *Store) DeleteInventoryItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.inventory = append(s.inventory[:idx], s.inventory[idx+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

func (s *Store) GetInventoryItem(id string) (model.InventoryItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.inventory {
		if it.ID == id {
			return it, true
		}
	}
	return model.InventoryItem{}, false
}

func (s *Store) Inventory() []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InventoryItem, len(s.inventory))
	copy(out, s.inventory)
	return out
}

// UpdateStock adds delta (which may be negative) to currentStock. Stock is
// not floored at zero: oversold items go negative and show up as backorders.
func (s *Store) UpdateStock(ctx context.Context, id string, delta int) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.inventory {
		if s.inventory[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.inventory[idx].CurrentStock += delta
	s.inventory[idx].UpdatedAt = model.Now()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

// SearchInventory matches itemCode, brand, model, and category
// case-insensitively.
func (s *Store) SearchInventory(query string) []model.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		out := make([]model.InventoryItem, len(s.inventory))
		copy(out, s.inventory)
		return out
	}
	lower := strings.ToLower(query)
	out := make([]model.InventoryItem, 0)
	for _, it := range s.inventory {
		if strings.Contains(strings.ToLower(it.ItemCode), lower) ||
			strings.Contains(strings.ToLower(it.Brand), lower) ||
			strings.Contains(strings.ToLower(it.Model), lower) ||
			strings.Contains(strings.ToLower(string(it.Category)), lower) {
			out = append(out, it)
		}
	}
	return out
}
