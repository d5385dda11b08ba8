package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

// CartRepository stores one row per cart key. Every write replaces the whole
// row, so concurrent writers to the same key are last-write-wins.
type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Get returns the raw persisted payload for key, or "" if no cart exists.
func (r *CartRepository) Get(key string) (string, error) {
	var rec entity.CartRecord
	err := r.DB.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

// Put rewrites the full payload for key.
func (r *CartRepository) Put(key, value string) error {
	rec := entity.CartRecord{Key: key, Value: value}
	return r.DB.Save(&rec).Error
}

func (r *CartRepository) Delete(key string) error {
	return r.DB.Delete(&entity.CartRecord{}, "key = ?", key).Error
}
