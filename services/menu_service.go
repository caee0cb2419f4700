package services

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"tastyeats/entity"
)

var ErrBadCategory = errors.New("unknown category")

var categories = map[string]bool{
	entity.CategoryAppetizers: true,
	entity.CategoryMains:      true,
	entity.CategoryDesserts:   true,
	entity.CategoryBeverages:  true,
}

// MenuService backs the admin CRUD panel. Every mutation nudges the
// catalog cache so storefront clients see it on their next fetch.
type MenuService struct {
	Repo    MenuRepo
	Catalog CatalogRefresher
}

func NewMenuService(repo MenuRepo, catalog CatalogRefresher) *MenuService {
	return &MenuService{Repo: repo, Catalog: catalog}
}

func (s *MenuService) List(category string) ([]entity.MenuItem, error) {
	return s.Repo.List(category)
}

func (s *MenuService) Get(itemID string) (*entity.MenuItem, error) {
	return s.Repo.FindByItemID(itemID)
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	ImageUrl    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	if !categories[in.Category] {
		return nil, ErrBadCategory
	}
	item := &entity.MenuItem{
		ItemID:      uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		ImageUrl:    in.ImageUrl,
		Rating:      in.Rating,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	s.refreshCatalog()
	return item, nil
}

func (s *MenuService) Update(itemID string, in *MenuItemIn) (*entity.MenuItem, error) {
	if !categories[in.Category] {
		return nil, ErrBadCategory
	}
	item, err := s.Repo.FindByItemID(itemID)
	if err != nil {
		return nil, err
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.Category = in.Category
	item.ImageUrl = in.ImageUrl
	item.Rating = in.Rating
	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	s.refreshCatalog()
	return item, nil
}

// Delete removes the item from the catalog only. Carts still holding its
// id keep the entry; the join simply stops resolving it.
func (s *MenuService) Delete(itemID string) error {
	if err := s.Repo.Delete(itemID); err != nil {
		return err
	}
	s.refreshCatalog()
	return nil
}

func (s *MenuService) refreshCatalog() {
	if s.Catalog == nil {
		return
	}
	if err := s.Catalog.Refresh(); err != nil {
		log.Printf("menu: catalog refresh failed: %v", err)
	}
}
