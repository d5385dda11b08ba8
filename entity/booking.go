package entity

import (
	"gorm.io/gorm"
)

type Booking struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	CafeID  string    `gorm:"index;not null" json:"cafeId"`
	TableID uint      `gorm:"index" json:"tableId"`
	Table   CafeTable `json:"-"`

	Date      string `gorm:"index" json:"date"` // YYYY-MM-DD
	Time      string `json:"time"`              // slot label, e.g. "09:00 AM"
	PartySize int    `json:"partySize"`
	Name      string `json:"name"`
	Contact   string `json:"contact"`

	UserKey string `gorm:"index" json:"-"`
}
