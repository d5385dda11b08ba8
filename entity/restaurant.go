package entity

import (
	"time"
)

// Restaurant keeps the slug-style string id the catalog has always used
// (e.g. "golden-bakery"). The id doubles as the URL identifier, so it must
// stay stable once menu snapshots reference it.
type Restaurant struct {
	ID           string   `gorm:"primaryKey" json:"_id"`
	Name         string   `gorm:"not null" json:"name"`
	Cuisine      string   `json:"cuisine"`
	PriceRange   string   `json:"priceRange"`
	DeliveryTime string   `json:"deliveryTime"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Description  string   `json:"description"`
	Images       []string `gorm:"serializer:json" json:"images"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Menu []MenuItem `gorm:"foreignKey:RestaurantID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
