package services

import (
	"github.com/google/uuid"

	"tastyeats/entity"
)

// CustomerService implements ProfileStore over the customer repository.
// Profiles are keyed by a minted CustomerID, never by credentials.
type CustomerService struct {
	Repo CustomerRepo
}

func NewCustomerService(repo CustomerRepo) *CustomerService {
	return &CustomerService{Repo: repo}
}

func (s *CustomerService) Get(customerID string) (*entity.Customer, error) {
	return s.Repo.FindByCustomerID(customerID)
}

func (s *CustomerService) Save(name, phone, address string) (*entity.Customer, error) {
	c := &entity.Customer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Phone:      phone,
		Address:    address,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update is create-or-update: a stale token pointing at a purged profile
// falls back to creating a fresh one rather than failing the checkout.
func (s *CustomerService) Update(customerID, name, phone, address string) (*entity.Customer, error) {
	c, err := s.Repo.FindByCustomerID(customerID)
	if err != nil {
		return s.Save(name, phone, address)
	}
	c.Name = name
	c.Phone = phone
	c.Address = address
	if err := s.Repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}
