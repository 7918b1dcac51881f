package httpx

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/optivision/optivision/internal/export"
)

// export streams one CSV per entity (or the combined dashboard export).
// An empty collection yields 204 and no body: no file is produced.
func (h *ShopHandler) export(w http.ResponseWriter, r *http.Request) {
	entity := chi.URLParam(r, "entity")

	var (
		csv  string
		ok   bool
		name string
	)
	switch entity {
	case "customers":
		csv, ok = export.CustomersTable(h.Store.Customers()).CSV()
		name = export.Filename("Customers", time.Now())
	case "orders":
		csv, ok = export.OrdersTable(h.Store.Orders()).CSV()
		name = export.Filename("Orders", time.Now())
	case "inventory":
		csv, ok = export.InventoryTable(h.Store.Inventory()).CSV()
		name = export.Filename("Inventory", time.Now())
	case "dashboard":
		csv, ok = export.DashboardCSV(h.Store.Customers(), h.Store.Orders())
		name = export.Filename("Dashboard-Export", time.Now())
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown export"})
		return
	}

	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
