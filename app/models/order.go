package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in-progress"
	StatusCompleted  OrderStatus = "completed"
)

// Valid reports whether s is one of the three known states.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next returns the single legal successor state. Completed is terminal:
// ok is false and the caller should offer no transition.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	default:
		return s, false
	}
}

// Order is a bakery order. CustomerName is free text, denormalised from
// the client at creation time — deleting the client leaves the order intact.
type Order struct {
	ID           string      `json:"id"`
	CustomerName string      `json:"customerName"`
	Details      string      `json:"details"`
	Quantity     int         `json:"quantity"`
	DeliveryDate string      `json:"deliveryDate"` // calendar date, YYYY-MM-DD
	DeliveryTime string      `json:"deliveryTime"` // wall-clock time, e.g. "14:30"
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// OrderInput holds the caller-supplied fields for a new order.
type OrderInput struct {
	CustomerName string
	Details      string
	Quantity     int
	DeliveryDate string
	DeliveryTime string
	Status       OrderStatus
}

// OrderUpdate holds a partial edit; nil fields are left unchanged.
type OrderUpdate struct {
	CustomerName *string
	Details      *string
	Quantity     *int
	DeliveryDate *string
	DeliveryTime *string
	Status       *OrderStatus
}

// Apply merges the non-nil fields into o. Timestamps are the caller's job.
func (u OrderUpdate) Apply(o *Order) {
	if u.CustomerName != nil {
		o.CustomerName = *u.CustomerName
	}
	if u.Details != nil {
		o.Details = *u.Details
	}
	if u.Quantity != nil {
		o.Quantity = *u.Quantity
	}
	if u.DeliveryDate != nil {
		o.DeliveryDate = *u.DeliveryDate
	}
	if u.DeliveryTime != nil {
		o.DeliveryTime = *u.DeliveryTime
	}
	if u.Status != nil {
		o.Status = *u.Status
	}
}

// OrderStats is the derived per-status count view. It is computed fresh
// from the live collection on every call and never persisted.
type OrderStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Total      int `json:"total"`
}
