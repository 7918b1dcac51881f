package store

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optivision/optivision/internal/model"
)

func newTestStore() *Store { return New(nil, nil) }

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

func stp(s model.OrderStatus) *model.OrderStatus { return &s }

func TestAddCustomerAssignsIdentity(t *testing.T) {
	s := newTestStore()
	c := s.AddCustomer(context.Background(), model.Customer{
		Name: "Asha Rao", Phone: "9876543210", Location: "Mysore",
		Status: model.CustomerActive,
	})

	require.NotEmpty(t, c.ID)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)

	got, ok := s.GetCustomer(c.ID)
	require.True(t, ok)
	assert.Equal(t, c, got)
}

func TestUpdateCustomerMergesPatch(t *testing.T) {
	s := newTestStore()
	c := s.AddCustomer(context.Background(), model.Customer{Name: "Asha", Phone: "111", Location: "Mysore"})

	ok := s.UpdateCustomer(context.Background(), c.ID, CustomerPatch{
		Location:    strp("Bengaluru"),
		TotalOrders: intp(3),
	})
	require.True(t, ok)

	got, _ := s.GetCustomer(c.ID)
	assert.Equal(t, "Bengaluru", got.Location)
	assert.Equal(t, 3, got.TotalOrders)
	assert.Equal(t, "Asha", got.Name, "unpatched fields stay")
	assert.Equal(t, c.CreatedAt, got.CreatedAt, "createdAt is immutable")
	assert.GreaterOrEqual(t, got.UpdatedAt, c.UpdatedAt)
}

func TestUpdateMissingIDLeavesCollectionUnchanged(t *testing.T) {
	s := newTestStore()
	s.AddCustomer(context.Background(), model.Customer{Name: "A", Phone: "1"})
	before := s.Customers()

	ok := s.UpdateCustomer(context.Background(), "no-such-id", CustomerPatch{Name: strp("X")})
	assert.False(t, ok)
	assert.Equal(t, before, s.Customers())
}

func TestDeleteCustomer(t *testing.T) {
	s := newTestStore()
	a := s.AddCustomer(context.Background(), model.Customer{Name: "A", Phone: "1"})
	s.AddCustomer(context.Background(), model.Customer{Name: "B", Phone: "2"})

	require.True(t, s.DeleteCustomer(context.Background(), a.ID))
	assert.Len(t, s.Customers(), 1)

	assert.False(t, s.DeleteCustomer(context.Background(), a.ID), "second delete is a no-op")
	assert.Len(t, s.Customers(), 1)
}

func TestDeleteCustomerLeavesOrdersDangling(t *testing.T) {
	s := newTestStore()
	c := s.AddCustomer(context.Background(), model.Customer{Name: "A", Phone: "1"})
	o := s.AddOrder(context.Background(), model.Order{CustomerID: c.ID, CustomerName: c.Name})

	require.True(t, s.DeleteCustomer(context.Background(), c.ID))

	got, ok := s.GetOrder(o.ID)
	require.True(t, ok)
	assert.Equal(t, c.ID, got.CustomerID, "order keeps its lookup key")
	_, found := s.GetCustomer(got.CustomerID)
	assert.False(t, found)
}

func TestSearchCustomers(t *testing.T) {
	s := newTestStore()
	s.AddCustomer(context.Background(), model.Customer{Name: "Asha Rao", Phone: "9876543210", Email: "asha@example.com", Location: "Mysore"})
	s.AddCustomer(context.Background(), model.Customer{Name: "Binu Thomas", Phone: "8123456789", Location: "Kochi"})
	s.AddCustomer(context.Background(), model.Customer{Name: "Chitra V", Phone: "7012345678", Location: "Mysore Road"})

	all := s.SearchCustomers("")
	assert.Len(t, all, 3, "empty query returns the full collection")
	assert.Equal(t, "Asha Rao", all[0].Name, "insertion order preserved")

	assert.Len(t, s.SearchCustomers("MYSORE"), 2, "case-insensitive on location")
	assert.Len(t, s.SearchCustomers("asha@"), 1, "matches email")
	assert.Len(t, s.SearchCustomers("812345"), 1, "phone substring")
	assert.Empty(t, s.SearchCustomers("zzz"))

	// every result of any query is a member of the full collection
	for _, q := range []string{"a", "ra", "70", ""} {
		for _, hit := range s.SearchCustomers(q) {
			_, ok := s.GetCustomer(hit.ID)
			assert.True(t, ok)
		}
	}
}

func TestAddOrderAssignsBothIDs(t *testing.T) {
	s := newTestStore()
	o := s.AddOrder(context.Background(), model.Order{
		CustomerName: "Asha", FrameDetails: "Ray-Ban Aviator", LensType: "Progressive",
		Status: model.OrderPending, TotalAmount: 4500,
	})
	require.NotEmpty(t, o.ID)
	assert.Regexp(t, `^ORD-\d{4}-\d{6}$`, o.OrderID)
	assert.Equal(t, o.CreatedAt, o.UpdatedAt)
}

func TestUpdateOrderStatusFreeTransitions(t *testing.T) {
	s := newTestStore()
	o := s.AddOrder(context.Background(), model.Order{Status: model.OrderDelivered})

	// delivered back to pending is allowed: there is no transition graph
	require.True(t, s.UpdateOrder(context.Background(), o.ID, OrderPatch{Status: stp(model.OrderPending)}))
	got, _ := s.GetOrder(o.ID)
	assert.Equal(t, model.OrderPending, got.Status)
}

func TestOrdersByStatus(t *testing.T) {
	s := newTestStore()
	s.AddOrder(context.Background(), model.Order{Status: model.OrderPending})
	s.AddOrder(context.Background(), model.Order{Status: model.OrderDelivered})
	s.AddOrder(context.Background(), model.Order{Status: model.OrderPending})

	assert.Len(t, s.OrdersByStatus(model.OrderPending), 2)
	assert.Len(t, s.OrdersByStatus(model.OrderCancelled), 0)
}

func TestSearchOrders(t *testing.T) {
	s := newTestStore()
	o := s.AddOrder(context.Background(), model.Order{
		CustomerName: "Asha Rao", CustomerPhone: "9876543210",
		FrameDetails: "Titan Flexi", LensType: "Single Vision",
	})

	assert.Len(t, s.SearchOrders(strings.ToLower(o.OrderID)), 1, "order number matches case-insensitively")
	assert.Len(t, s.SearchOrders("titan"), 1)
	assert.Len(t, s.SearchOrders("98765"), 1)
	assert.Empty(t, s.SearchOrders("oakley"))
}

func TestUpdateStockAllowsNegative(t *testing.T) {
	s := newTestStore()
	it := s.AddInventoryItem(context.Background(), model.InventoryItem{
		ItemCode: "FR-001", Brand: "Titan", CurrentStock: 2, ReorderLevel: 5,
	})

	require.True(t, s.UpdateStock(context.Background(), it.ID, -5))
	got, _ := s.GetInventoryItem(it.ID)
	assert.Equal(t, -3, got.CurrentStock, "no floor at zero")

	require.True(t, s.UpdateStock(context.Background(), it.ID, 10))
	got, _ = s.GetInventoryItem(it.ID)
	assert.Equal(t, 7, got.CurrentStock)

	assert.False(t, s.UpdateStock(context.Background(), "missing", 1))
}

func TestSearchInventory(t *testing.T) {
	s := newTestStore()
	s.AddInventoryItem(context.Background(), model.InventoryItem{ItemCode: "FR-001", Brand: "Titan", Model: "TX-99", Category: model.CategoryFrame})
	s.AddInventoryItem(context.Background(), model.InventoryItem{ItemCode: "LN-002", Brand: "Zeiss", Model: "BlueGuard", Category: model.CategoryLens})

	assert.Len(t, s.SearchInventory("fr-0"), 1)
	assert.Len(t, s.SearchInventory("LENS"), 1, "category matches")
	assert.Len(t, s.SearchInventory(""), 2)
}

func TestReturnedSlicesAreCopies(t *testing.T) {
	s := newTestStore()
	s.AddCustomer(context.Background(), model.Customer{Name: "A", Phone: "1"})

	out := s.Customers()
	out[0].Name = "mutated"

	got := s.Customers()
	assert.Equal(t, "A", got[0].Name, "external mutation must not reach the store")
}

func TestTransientFields(t *testing.T) {
	s := newTestStore()
	s.SetSearchQuery("titan")
	s.SetFilter("vip")
	s.SetLoading(true)
	assert.Equal(t, "titan", s.SearchQuery())
	assert.Equal(t, "vip", s.Filter())
	assert.True(t, s.Loading())
}
