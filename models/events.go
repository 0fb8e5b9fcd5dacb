package models

import "time"

// OrderPlacedEvent is published to Kafka when an order is placed. Consumers
// (fulfilment, notifications) are external; publishing is fire-and-forget.
type OrderPlacedEvent struct {
	Event       string        `json:"event"` // always "order.placed"
	OrderID     string        `json:"order_id"`
	OrderNumber string        `json:"order_number"`
	UserID      string        `json:"user_id"`
	Snapshot    OrderSnapshot `json:"snapshot"`
	Total       float64       `json:"total"`
	Timestamp   time.Time     `json:"timestamp"`
}
