package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/optivision/optivision/internal/events"
	"github.com/optivision/optivision/internal/model"
	"github.com/optivision/optivision/internal/store"
)

func (h *ShopHandler) createItem(w http.ResponseWriter, r *http.Request) {
	var in model.InventoryItem
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	it := h.Store.AddInventoryItem(r.Context(), in)
	writeJSON(w, http.StatusCreated, it)
}

func (h *ShopHandler) listInventory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.SearchInventory(r.URL.Query().Get("q")))
}

func (h *ShopHandler) getItem(w http.ResponseWriter, r *http.Request) {
	it, ok := h.Store.GetInventoryItem(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *ShopHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	var patch store.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	id := chi.URLParam(r, "id")
	if !h.Store.UpdateInventoryItem(r.Context(), id, patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	it, _ := h.Store.GetInventoryItem(id)
	writeJSON(w, http.StatusOK, it)
}

func (h *ShopHandler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteInventoryItem(r.Context(), chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type adjustStockReq struct {
	Quantity int `json:"quantity"`
}

// adjustStock applies a signed delta. Stock is allowed to go negative:
// an oversold item shows up as a backorder, and falling to or below the
// reorder level raises a low-stock event.
func (h *ShopHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var req adjustStockReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	id := chi.URLParam(r, "id")
	if !h.Store.UpdateStock(r.Context(), id, req.Quantity) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	it, _ := h.Store.GetInventoryItem(id)
	if it.LowStock() {
		h.publish(events.TopicLowStock, events.EventLowStock, it.ID,
			events.LowStockPayload{
				ItemID:       it.ID,
				ItemCode:     it.ItemCode,
				Brand:        it.Brand,
				Model:        it.Model,
				CurrentStock: it.CurrentStock,
				ReorderLevel: it.ReorderLevel,
			})
	}
	writeJSON(w, http.StatusOK, it)
}
