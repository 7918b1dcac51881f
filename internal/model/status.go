package model

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "active"
	CustomerInactive CustomerStatus = "inactive"
	CustomerVIP      CustomerStatus = "vip"
)

func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerVIP:
		return true
	}
	return false
}

type OrderStatus string

// Any status may move to any other; there is no enforced transition graph.
const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderInLab     OrderStatus = "in-lab"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInLab, OrderReady, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Open reports whether the order still counts as pending work on the
// dashboard: everything before ready/delivered/cancelled.
func (s OrderStatus) Open() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderInLab:
		return true
	}
	return false
}

type Category string

const (
	CategoryFrame     Category = "frame"
	CategoryLens      Category = "lens"
	CategoryAccessory Category = "accessory"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFrame, CategoryLens, CategoryAccessory:
		return true
	}
	return false
}
