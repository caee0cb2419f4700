package entity

import (
	"gorm.io/gorm"
)

// Customer is addressed by CustomerID, a minted identifier carried in a
// long-lived client cookie. There is no account or password attached.
type Customer struct {
	gorm.Model
	CustomerID string `gorm:"uniqueIndex" json:"customerId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}
