package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/optivision/optivision/internal/events"
	"github.com/optivision/optivision/internal/model"
	"github.com/optivision/optivision/internal/store"
)

func (h *ShopHandler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var in model.Customer
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if in.Name == "" || in.Phone == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	c := h.Store.AddCustomer(r.Context(), in)
	h.publish(events.TopicCustomerCreated, events.EventCustomerCreated, c.ID,
		events.CustomerCreatedPayload{CustomerID: c.ID, Name: c.Name, Phone: c.Phone})
	writeJSON(w, http.StatusCreated, c)
}

func (h *ShopHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, h.Store.SearchCustomers(q))
}

func (h *ShopHandler) getCustomer(w http.ResponseWriter, r *http.Request) {
	c, ok := h.Store.GetCustomer(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *ShopHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var patch store.CustomerPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	id := chi.URLParam(r, "id")
	if !h.Store.UpdateCustomer(r.Context(), id, patch) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	c, _ := h.Store.GetCustomer(id)
	writeJSON(w, http.StatusOK, c)
}

func (h *ShopHandler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if !h.Store.DeleteCustomer(r.Context(), chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
