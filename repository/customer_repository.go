package repository

import (
	"gorm.io/gorm"

	"tastyeats/entity"
)

type CustomerRepository struct{ DB *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) FindByCustomerID(customerID string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Where("customer_id = ?", customerID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.DB.Save(c).Error
}
