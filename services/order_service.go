package services

import (
	"context"
	"log"

	"tastyeats/entity"
)

// OrderService persists orders and fans them out to the kitchen feed and
// the event stream. Only the database write decides success; notification
// and publishing are best-effort against an already committed order.
type OrderService struct {
	Repo      OrderRepo
	Notifier  OrderNotifier  // optional
	Publisher EventPublisher // optional
}

func NewOrderService(repo OrderRepo, notifier OrderNotifier, publisher EventPublisher) *OrderService {
	return &OrderService{Repo: repo, Notifier: notifier, Publisher: publisher}
}

func (s *OrderService) Submit(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	if err := s.Repo.Create(order); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyOrder(order)
	}
	if s.Publisher != nil {
		if err := s.Publisher.PublishOrder(ctx, order); err != nil {
			log.Printf("order: publish failed for %d: %v", order.ID, err)
		}
	}
	return order, nil
}

func (s *OrderService) List(limit int) ([]entity.Order, error) {
	return s.Repo.List(limit)
}
