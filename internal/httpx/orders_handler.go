package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/optivision/optivision/internal/events"
	"github.com/optivision/optivision/internal/model"
	"github.com/optivision/optivision/internal/store"
)

func (h *ShopHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in model.Order
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	o := h.Store.AddOrder(r.Context(), in)
	h.publish(events.TopicOrderCreated, events.EventOrderCreated, o.ID,
		events.OrderCreatedPayload{
			OrderID:      o.ID,
			OrderNumber:  o.OrderID,
			CustomerID:   o.CustomerID,
			CustomerName: o.CustomerName,
			TotalAmount:  o.TotalAmount,
		})
	writeJSON(w, http.StatusCreated, o)
}

// listOrders serves ?q= substring search and ?status= exact filtering;
// with neither it returns the whole collection in insertion order.
func (h *ShopHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		writeJSON(w, http.StatusOK, h.Store.OrdersByStatus(model.OrderStatus(status)))
		return
	}
	writeJSON(w, http.StatusOK, h.Store.SearchOrders(r.URL.Query().Get("q")))
}

func (h *ShopHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Store.GetOrder(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *ShopHandler) updateOrder(w http.ResponseWriter, r *http.Request) {
	var patch store.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	id := chi.URLParam(r, "id")
	if !h.Store.UpdateOrder(r.Context(), id, patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}

	o, _ := h.Store.GetOrder(id)
	if patch.Status != nil && *patch.Status == model.OrderDelivered {
		h.publish(events.TopicOrderDelivered, events.EventOrderDelivered, o.ID,
			events.OrderDeliveredPayload{OrderID: o.ID, OrderNumber: o.OrderID, TotalAmount: o.TotalAmount})
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *ShopHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteOrder(r.Context(), chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
