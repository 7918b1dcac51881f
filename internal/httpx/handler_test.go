package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/analytics"
	"github.com/optivision/optivision/internal/model"
	"github.com/optivision/optivision/internal/store"
)

func newTestHandler() (*ShopHandler, *testRouter) {
	st := store.New(nil, nil)
	h := &ShopHandler{Store: st, Service: "test-api", Log: zap.NewNop()}
	r := NewRouter()
	h.Register(r)
	return h, &testRouter{mux: r}
}

// testRouter wraps the router with a tiny request helper.
type testRouter struct{ mux http.Handler }

func (c *testRouter) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	c.mux.ServeHTTP(rec, req)
	return rec
}

func TestCustomerCRUDOverHTTP(t *testing.T) {
	_, rt := newTestHandler()

	// create
	rec := rt.do(t, http.MethodPost, "/api/customers", model.Customer{Name: "Asha", Phone: "98765", Location: "Mysore"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	// get
	rec = rt.do(t, http.MethodGet, "/api/customers/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// update
	rec = rt.do(t, http.MethodPut, "/api/customers/"+created.ID, map[string]any{"location": "Bengaluru"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Bengaluru", updated.Location)

	// update miss -> 404
	rec = rt.do(t, http.MethodPut, "/api/customers/missing", map[string]any{"location": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// delete
	rec = rt.do(t, http.MethodDelete, "/api/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = rt.do(t, http.MethodDelete, "/api/customers/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCustomerValidation(t *testing.T) {
	_, rt := newTestHandler()
	rec := rt.do(t, http.MethodPost, "/api/customers", model.Customer{Name: "NoPhone"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCustomersSearch(t *testing.T) {
	h, rt := newTestHandler()
	h.Store.AddCustomer(context.Background(), model.Customer{Name: "Asha Rao", Phone: "1", Location: "Mysore"})
	h.Store.AddCustomer(context.Background(), model.Customer{Name: "Binu", Phone: "2", Location: "Kochi"})

	rec := rt.do(t, http.MethodGet, "/api/customers/?q=mysore", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Asha Rao", got[0].Name)
}

func TestOrderStatusFilter(t *testing.T) {
	h, rt := newTestHandler()
	h.Store.AddOrder(context.Background(), model.Order{Status: model.OrderPending})
	h.Store.AddOrder(context.Background(), model.Order{Status: model.OrderDelivered})

	rec := rt.do(t, http.MethodGet, "/api/orders/?status=delivered", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, model.OrderDelivered, got[0].Status)
}

func TestAdjustStock(t *testing.T) {
	h, rt := newTestHandler()
	it := h.Store.AddInventoryItem(context.Background(), model.InventoryItem{
		ItemCode: "FR-001", CurrentStock: 10, ReorderLevel: 5,
	})

	rec := rt.do(t, http.MethodPost, "/api/inventory/"+it.ID+"/stock", map[string]int{"quantity": -7})
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.InventoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.CurrentStock)

	rec = rt.do(t, http.MethodPost, "/api/inventory/missing/stock", map[string]int{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboard(t *testing.T) {
	h, rt := newTestHandler()
	h.Store.AddCustomer(context.Background(), model.Customer{Name: "A", Phone: "1"})
	h.Store.AddOrder(context.Background(), model.Order{Status: model.OrderDelivered, TotalAmount: 150, FrameDetails: "F", LensType: "L"})
	h.Store.AddInventoryItem(context.Background(), model.InventoryItem{CurrentStock: 2, ReorderLevel: 5})

	rec := rt.do(t, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sum analytics.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sum))
	assert.Equal(t, 1, sum.TotalCustomers)
	assert.Equal(t, 150.0, sum.TotalRevenue)
	assert.Equal(t, 1, sum.LowStockItems)
	require.Len(t, sum.TopProducts, 1)
	assert.Equal(t, 100, sum.TopProducts[0].Percentage)
}

func TestExportEndpoints(t *testing.T) {
	h, rt := newTestHandler()

	// empty collection: no content, no file
	rec := rt.do(t, http.MethodGet, "/export/customers", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	h.Store.AddCustomer(context.Background(), model.Customer{Name: "Asha", Phone: "1"})
	rec = rt.do(t, http.MethodGet, "/export/customers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Opti-Vision-Customers-")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Customer ID,Name,"))

	rec = rt.do(t, http.MethodGet, "/export/nonsense", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
