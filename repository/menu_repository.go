package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) FindByRestaurant(restaurantID string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindByID(restaurantID, itemID string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND id = ?", restaurantID, itemID).First(&item).Error
	if err != nil {
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

func (r *MenuRepository) Delete(restaurantID, itemID string) error {
	return r.DB.Where("restaurant_id = ? AND id = ?", restaurantID, itemID).
		Delete(&entity.MenuItem{}).Error
}
