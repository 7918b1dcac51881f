package events

import (
	"encoding/json"
	"time"
)

const (
	EventCustomerCreated = "CustomerCreated"
	EventOrderCreated    = "OrderCreated"
	EventOrderDelivered  = "OrderDelivered"
	EventLowStock        = "LowStock"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"` // entity id
	Payload       json.RawMessage `json:"payload"`
}

type CustomerCreatedPayload struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

type OrderCreatedPayload struct {
	OrderID      string  `json:"order_id"`      // opaque id
	OrderNumber  string  `json:"order_number"`  // ORD-... display id
	CustomerID   string  `json:"customer_id"`
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
}

type OrderDeliveredPayload struct {
	OrderID     string  `json:"order_id"`
	OrderNumber string  `json:"order_number"`
	TotalAmount float64 `json:"total_amount"`
}

type LowStockPayload struct {
	ItemID       string `json:"item_id"`
	ItemCode     string `json:"item_code"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	CurrentStock int    `json:"current_stock"`
	ReorderLevel int    `json:"reorder_level"`
}
