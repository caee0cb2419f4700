package services

import (
	"context"

	"tastyeats/entity"
)

// Collaborator interfaces consumed by the services. The gorm repositories
// and the ws/kafka adapters satisfy them; tests swap in fakes.

type CatalogSource interface {
	FetchAll() ([]entity.MenuItem, error)
}

type MenuRepo interface {
	List(category string) ([]entity.MenuItem, error)
	FindByItemID(itemID string) (*entity.MenuItem, error)
	Create(*entity.MenuItem) error
	Update(*entity.MenuItem) error
	Delete(itemID string) error
}

type CustomerRepo interface {
	FindByCustomerID(customerID string) (*entity.Customer, error)
	Create(*entity.Customer) error
	Update(*entity.Customer) error
}

type OrderRepo interface {
	Create(*entity.Order) error
	List(limit int) ([]entity.Order, error)
}

// ProfileStore is the customer-profile collaborator as the checkout flow
// sees it: fetch may fail or miss (both mean "no profile"), save commits
// a profile and returns it with its identifier.
type ProfileStore interface {
	Get(customerID string) (*entity.Customer, error)
	Save(name, phone, address string) (*entity.Customer, error)
	Update(customerID, name, phone, address string) (*entity.Customer, error)
}

// OrderSubmitter is the order collaborator: the sole irreversible external
// effect the checkout flow triggers.
type OrderSubmitter interface {
	Submit(ctx context.Context, order *entity.Order) (*entity.Order, error)
}

type OrderNotifier interface {
	NotifyOrder(order *entity.Order)
}

type EventPublisher interface {
	PublishOrder(ctx context.Context, order *entity.Order) error
}

// CatalogRefresher lets the menu admin layer nudge the cache after a
// mutation without depending on the concrete cache.
type CatalogRefresher interface {
	Refresh() error
}
