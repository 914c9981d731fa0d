package models

import "time"

// Order statuses. Pending, Paid and shipped are transient;
// delivered and Payment Failed are terminal.
const (
	OrderPending       = "pending"
	OrderPaid          = "Paid"
	OrderPaymentFailed = "Payment Failed"
	OrderShipped       = "shipped"
	OrderDelivered     = "delivered"
)

// Order is a finalized order. Items are a denormalized snapshot of the
// cart at checkout time, not live references to catalogue products.
type Order struct {
	OrderID         string     `json:"id" bson:"orderid"`
	SessionID       string     `json:"-" bson:"sessionid"`
	UserID          string     `json:"user_id,omitempty" bson:"userid,omitempty"`
	TotalAmount     int64      `json:"total_amount" bson:"total_amount"`
	Status          string     `json:"status" bson:"status"`
	Items           []CartItem `json:"items" bson:"items"`
	DeliveryAddress string     `json:"delivery_address,omitempty" bson:"delivery_address,omitempty"`
	DeliveryLat     float64    `json:"delivery_lat,omitempty" bson:"delivery_lat,omitempty"`
	DeliveryLng     float64    `json:"delivery_lng,omitempty" bson:"delivery_lng,omitempty"`
	PaymentMethod   string     `json:"payment_method,omitempty" bson:"payment_method,omitempty"`
	MpesaCheckoutID string     `json:"mpesa_checkout_id,omitempty" bson:"mpesa_checkout_id,omitempty"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
}

// TerminalStatus reports whether no further transitions are expected.
func TerminalStatus(status string) bool {
	return status == OrderDelivered || status == OrderPaymentFailed
}
