package repository

import (
	"gorm.io/gorm"

	"tastyeats/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.DB.Create(o).Error
}

// List returns newest orders first, for the kitchen view.
func (r *OrderRepository) List(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&orders).Error
	return orders, err
}
