package entity

import (
	"gorm.io/gorm"
)

// OrderStatusCompleted is the only status orders are created with: checkout
// confirmation and payment confirmation are the same (unverified) event.
const OrderStatusCompleted = "completed"

type Order struct {
	gorm.Model
	// Items holds the serialized order rows: [{id, name, price, quantity}].
	// Prices are frozen into the row at submission time.
	Items         string  `json:"items"`
	Total         float64 `json:"total"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	CustomerID    string  `json:"customerId"`
}
