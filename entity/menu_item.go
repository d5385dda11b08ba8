package entity

import (
	"time"
)

type MenuItem struct {
	ID           string `gorm:"primaryKey" json:"_id"`
	RestaurantID string `gorm:"index;not null" json:"restaurant"`

	Name                string   `gorm:"not null" json:"name"`
	Price               int64    `json:"price"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Category            string   `json:"category"`
	Image               string   `json:"image"`
	Ingredients         []string `gorm:"serializer:json" json:"ingredients"`
	Allergens           []string `gorm:"serializer:json" json:"allergens"`
	IsVegetarian        bool     `json:"isVegetarian"`
	PreparationTime     string   `json:"preparationTime"`
	Rating              float64  `json:"rating"`
	SpicyLevel          string   `json:"spicyLevel"`
	ServingSize         string   `json:"servingSize"`
	IsAvailable         bool     `json:"isAvailable"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
