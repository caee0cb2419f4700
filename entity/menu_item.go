package entity

import (
	"gorm.io/gorm"
)

// MenuItem categories form a closed set; validated at the API boundary.
const (
	CategoryAppetizers = "appetizers"
	CategoryMains      = "mains"
	CategoryDesserts   = "desserts"
	CategoryBeverages  = "beverages"
)

type MenuItem struct {
	gorm.Model
	// ItemID is the stable identifier carts key on. It survives catalog
	// edits, so a cart entry never embeds menu data.
	ItemID      string  `gorm:"uniqueIndex" json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageUrl    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
}
