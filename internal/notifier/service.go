// Package notifier consumes shop events and turns them into operator
// alerts. Today the alerts are structured log lines; the shape leaves room
// for SMS or email later.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/optivision/optivision/internal/events"
	kafkax "github.com/optivision/optivision/internal/kafka"
	"github.com/optivision/optivision/internal/redisx"
)

type Service struct {
	Redis       *redis.Client
	ServiceName string
	Log         *zap.Logger
}

// Handle is wired as the consumer handler for every shop topic. Redelivery
// is deduped by event id in Redis; a nil Redis client skips dedup.
func (s *Service) Handle(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}

	if s.Redis != nil {
		key := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
		first, err := redisx.MarkOnce(ctx, s.Redis, key, redisx.TTLDedup)
		if err == nil && !first {
			return nil
		}
	}

	switch env.EventType {
	case events.EventCustomerCreated:
		p, err := kafkax.UnwrapPayload[events.CustomerCreatedPayload](env.Payload)
		if err != nil {
			return err
		}
		s.Log.Info("new customer registered",
			zap.String("customer_id", p.CustomerID),
			zap.String("name", p.Name),
			zap.String("phone", p.Phone))

	case events.EventOrderCreated:
		p, err := kafkax.UnwrapPayload[events.OrderCreatedPayload](env.Payload)
		if err != nil {
			return err
		}
		s.Log.Info("order booked",
			zap.String("order_number", p.OrderNumber),
			zap.String("customer", p.CustomerName),
			zap.Float64("total", p.TotalAmount))

	case events.EventOrderDelivered:
		p, err := kafkax.UnwrapPayload[events.OrderDeliveredPayload](env.Payload)
		if err != nil {
			return err
		}
		s.Log.Info("order delivered",
			zap.String("order_number", p.OrderNumber),
			zap.Float64("revenue", p.TotalAmount))

	case events.EventLowStock:
		p, err := kafkax.UnwrapPayload[events.LowStockPayload](env.Payload)
		if err != nil {
			return err
		}
		s.Log.Warn("low stock alert",
			zap.String("item_code", p.ItemCode),
			zap.String("item", p.Brand+" "+p.Model),
			zap.Int("current_stock", p.CurrentStock),
			zap.Int("reorder_level", p.ReorderLevel))

	default:
		// unknown event types are committed without action
	}
	return nil
}
