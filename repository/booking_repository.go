package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type BookingRepository struct{ DB *gorm.DB }

func NewBookingRepository(db *gorm.DB) *BookingRepository { return &BookingRepository{DB: db} }

func (r *BookingRepository) TablesForCafe(cafeID string) ([]entity.CafeTable, error) {
	var tables []entity.CafeTable
	err := r.DB.Where("cafe_id = ?", cafeID).Order("number").Find(&tables).Error
	return tables, err
}

func (r *BookingRepository) FindTable(cafeID string, tableID uint) (*entity.CafeTable, error) {
	var table entity.CafeTable
	err := r.DB.Where("cafe_id = ? AND id = ?", cafeID, tableID).First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// CountConflicts reports existing bookings for the same table, date and slot.
func (r *BookingRepository) CountConflicts(tableID uint, date, slot string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Booking{}).
		Where("table_id = ? AND date = ? AND time = ?", tableID, date, slot).
		Count(&count).Error
	return count, err
}

func (r *BookingRepository) BookedTableIDs(cafeID, date, slot string) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Booking{}).
		Where("cafe_id = ? AND date = ? AND time = ?", cafeID, date, slot).
		Pluck("table_id", &ids).Error
	return ids, err
}

func (r *BookingRepository) Create(b *entity.Booking) error {
	return r.DB.Create(b).Error
}

func (r *BookingRepository) ListForUser(userKey string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.DB.Where("user_key = ?", userKey).Order("date, time").Find(&bookings).Error
	return bookings, err
}
