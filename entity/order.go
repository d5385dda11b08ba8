package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	EstimatedTime int    `json:"estimatedTime"`
	Status        string `gorm:"not null;default:pending" json:"status"`
	Subtotal      int64  `json:"subtotal"`

	RestaurantID string     `gorm:"index;not null" json:"restaurant"`
	Restaurant   Restaurant `json:"-"`

	// Cart key of the user who placed the order; indexed for profile listings.
	UserKey string `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
