package model

import (
	"time"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusProcessing     OrderStatus = "processing"
	StatusShipped        OrderStatus = "shipped"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
)

// StatusSequence is the fixed order of lifecycle stages a shipment passes
// through. Timeline derivation indexes into it.
var StatusSequence = []OrderStatus{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusOutForDelivery,
	StatusDelivered,
}

// OrderItem is one line of an order manifest. Stored as JSON text in the
// orders table and parsed at the store boundary.
type OrderItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Order struct {
	ID                string      `json:"id"`
	RecipientPhone    string      `json:"recipient_phone"`
	SenderName        string      `json:"sender_name"`
	Status            OrderStatus `json:"status"`
	Items             []OrderItem `json:"items"`
	EstimatedDelivery string      `json:"estimated_delivery"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}
