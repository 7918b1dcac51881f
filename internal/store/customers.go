package store

import (
	"context"
	"strings"

	"github.com/optivision/optivision/internal/model"
)

// CustomerPatch is a partial update; nil fields are left unchanged.
type CustomerPatch struct {
	Name           *string               `json:"name,omitempty"`
	Phone          *string               `json:"phone,omitempty"`
	Email          *string               `json:"email,omitempty"`
	Gender         *string               `json:"gender,omitempty"`
	Location       *string               `json:"location,omitempty"`
	LastVisit      *string               `json:"lastVisit,omitempty"`
	TotalOrders    *int                  `json:"totalOrders,omitempty"`
	Status         *model.CustomerStatus `json:"status,omitempty"`
	ProfilePicture *string               `json:"profilePicture,omitempty"`
	Prescription   *model.Prescription   `json:"prescription,omitempty"`
}

// AddCustomer appends a new record, overwriting any id/timestamps on the
// input. It never fails: validation is the form's job, not the store's.
func (s *Store) AddCustomer(ctx context.Context, c model.Customer) model.Customer {
	now := model.Now()
	c.ID = model.NewID()
	c.CreatedAt = now
	c.UpdatedAt = now

	s.mu.Lock()
	s.customers = append(s.customers, c)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return c
}

// UpdateCustomer merges the patch into the record with the given id and
// refreshes updatedAt. Returns false when no record matches; the
// collection is untouched in that case.
func (s *Store) UpdateCustomer(ctx context.Context, id string, p CustomerPatch) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	c := &s.customers[idx]
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Gender != nil {
		c.Gender = *p.Gender
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.LastVisit != nil {
		c.LastVisit = *p.LastVisit
	}
	if p.TotalOrders != nil {
		c.TotalOrders = *p.TotalOrders
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ProfilePicture != nil {
		c.ProfilePicture = *p.ProfilePicture
	}
	if p.Prescription != nil {
		pr := *p.Prescription
		c.Prescription = &pr
	}
	c.UpdatedAt = model.Now()

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

// DeleteCustomer removes the record with the given id. Orders that
// reference the customer keep their denormalized snapshot and their
// customerId becomes a dangling lookup key; there is no cascade.
func (s *Store) DeleteCustomer(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.customers {
		if s.customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.customers = append(s.customers[:idx], s.customers[idx+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

func (s *Store) GetCustomer(id string) (model.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return model.Customer{}, false
}

func (s *Store) Customers() []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// SearchCustomers matches the query as a case-insensitive substring of
// name, email, or location, and as a raw substring of phone (digits are
// not case-folded). An empty query returns the whole collection in
// insertion order.
func (s *Store) SearchCustomers(query string) []model.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		out := make([]model.Customer, len(s.customers))
		copy(out, s.customers)
		return out
	}
	lower := strings.ToLower(query)
	out := make([]model.Customer, 0)
	for _, c := range s.customers {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(c.Phone, query) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(strings.ToLower(c.Location), lower) {
			out = append(out, c)
		}
	}
	return out
}
