package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/events"
	kafkax "github.com/optivision/optivision/internal/kafka"
	"github.com/optivision/optivision/internal/store"
)

// ShopHandler serves the CRUD, dashboard, and export endpoints. Producer
// and Redis may be nil: events and dashboard caching are then skipped.
type ShopHandler struct {
	Store    *store.Store
	Producer *kafkax.Producer
	Redis    *redis.Client
	Service  string
	Log      *zap.Logger
}

func (h *ShopHandler) Register(r *chi.Mux) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Post("/", h.createCustomer)
		r.Get("/", h.listCustomers)
		r.Get("/{id}", h.getCustomer)
		r.Put("/{id}", h.updateCustomer)
		r.Delete("/{id}", h.deleteCustomer)
	})
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.createOrder)
		r.Get("/", h.listOrders)
		r.Get("/{id}", h.getOrder)
		r.Put("/{id}", h.updateOrder)
		r.Delete("/{id}", h.deleteOrder)
	})
	r.Route("/api/inventory", func(r chi.Router) {
		r.Post("/", h.createItem)
		r.Get("/", h.listInventory)
		r.Get("/{id}", h.getItem)
		r.Put("/{id}", h.updateItem)
		r.Delete("/{id}", h.deleteItem)
		r.Post("/{id}/stock", h.adjustStock)
	})
	r.Get("/api/dashboard", h.dashboard)
	r.Get("/export/{entity}", h.export)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// publish wraps a payload in the event envelope and hands it to the
// producer. A nil producer makes this a no-op.
func (h *ShopHandler) publish(topic, eventType, entityID string, payload any) {
	if h.Producer == nil {
		return
	}
	ev := events.Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		CorrelationID: entityID,
		Payload:       kafkax.MustMarshal(payload),
	}
	h.Producer.Publish(topic, events.PartitionKey(entityID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(eventType)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
