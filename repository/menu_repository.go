package repository

import (
	"gorm.io/gorm"

	"tastyeats/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	q := r.DB.Order("id")
	if category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByItemID(itemID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Where("item_id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) Delete(itemID string) error {
	return r.DB.Where("item_id = ?", itemID).Delete(&entity.MenuItem{}).Error
}

// FetchAll is the catalog-cache read. Same as an unfiltered List; kept
// separate so the catalog only depends on what it uses.
func (r *MenuRepository) FetchAll() ([]entity.MenuItem, error) {
	return r.List("")
}
