package events

const (
	TopicCustomerCreated = "shop.customer.created"
	TopicOrderCreated    = "shop.order.created"
	TopicOrderDelivered  = "shop.order.delivered"
	TopicLowStock        = "shop.inventory.lowstock"
)

// AllTopics is what the notifier subscribes to.
var AllTopics = []string{
	TopicCustomerCreated,
	TopicOrderCreated,
	TopicOrderDelivered,
	TopicLowStock,
}

// Partition key = entity id, so events for one entity keep their order.
func PartitionKey(entityID string) []byte { return []byte(entityID) }
