package models

import "time"

// DeliveryPing is an ephemeral position update for an in-transit order.
// It is never persisted; it exists only as a broadcast payload.
type DeliveryPing struct {
	Seq       int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Heading   float64   `json:"heading,omitempty"`
	Speed     float64   `json:"speed,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
