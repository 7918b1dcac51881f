package store

import (
	"context"
	"strings"
	"time"

	"github.com/optivision/optivision/internal/model"
)

type OrderPatch struct {
	CustomerID       *string             `json:"customerId,omitempty"`
	CustomerName     *string             `json:"customerName,omitempty"`
	CustomerPhone    *string             `json:"customerPhone,omitempty"`
	Status           *model.OrderStatus  `json:"status,omitempty"`
	OrderDate        *string             `json:"orderDate,omitempty"`
	ExpectedDelivery *string             `json:"expectedDelivery,omitempty"`
	FrameDetails     *string             `json:"frameDetails,omitempty"`
	LensType         *string             `json:"lensType,omitempty"`
	TotalAmount      *float64            `json:"totalAmount,omitempty"`
	AdvancePaid      *float64            `json:"advancePaid,omitempty"`
	BalanceDue       *float64            `json:"balanceDue,omitempty"`
	Prescription     *model.Prescription `json:"prescription,omitempty"`
}

// AddOrder appends a new order, assigning both the opaque id and the
// human-readable order number. The customerName/customerPhone on the input
// are stored as-is: they are a point-in-time snapshot for display and are
// not re-synced if the customer record changes later.
func (s *Store) AddOrder(ctx context.Context, o model.Order) model.Order {
	now := model.Now()
	o.ID = model.NewID()
	o.OrderID = model.NewOrderID(time.Now())
	o.CreatedAt = now
	o.UpdatedAt = now

	s.mu.Lock()
	s.orders = append(s.orders, o)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return o
}

func (s *Store) UpdateOrder(ctx context.Context, id string, p OrderPatch) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}

	o := &s.orders[idx]
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.CustomerPhone != nil {
		o.CustomerPhone = *p.CustomerPhone
	}
	if p.Status != nil {
		// Any status may replace any other; there is no transition graph.
		o.Status = *p.Status
	}
	if p.OrderDate != nil {
		o.OrderDate = *p.OrderDate
	}
	if p.ExpectedDelivery != nil {
		o.ExpectedDelivery = *p.ExpectedDelivery
	}
	if p.FrameDetails != nil {
		o.FrameDetails = *p.FrameDetails
	}
	if p.LensType != nil {
		o.LensType = *p.LensType
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.AdvancePaid != nil {
		o.AdvancePaid = *p.AdvancePaid
	}
	if p.BalanceDue != nil {
		o.BalanceDue = *p.BalanceDue
	}
	if p.Prescription != nil {
		pr := *p.Prescription
		o.Prescription = &pr
	}
	o.UpdatedAt = model.Now()

	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

func (s *Store) DeleteOrder(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.flush(ctx, snap)
	return true
}

func (s *Store) GetOrder(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrdersByStatus(status model.OrderStatus) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// SearchOrders matches orderId, customerName, and frameDetails
// case-insensitively, and customerPhone as a raw substring.
func (s *Store) SearchOrders(query string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if query == "" {
		out := make([]model.Order, len(s.orders))
		copy(out, s.orders)
		return out
	}
	lower := strings.ToLower(query)
	out := make([]model.Order, 0)
	for _, o := range s.orders {
		if strings.Contains(strings.ToLower(o.OrderID), lower) ||
			strings.Contains(strings.ToLower(o.CustomerName), lower) ||
			strings.Contains(o.CustomerPhone, query) ||
			strings.Contains(strings.ToLower(o.FrameDetails), lower) {
			out = append(out, o)
		}
	}
	return out
}
