package entity

import (
	"time"
)

// CartRecord is one persisted cart: the whole cart for a key is a single JSON
// array, rewritten in full on every mutation. Concurrent writers under the same
// key are last-write-wins, same as the localStorage layout this replaces.
type CartRecord struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartEntry is one line of a cart. Name, price, image and description are
// snapshots of the menu item at add time; they are not re-validated against the
// catalog afterwards.
type CartEntry struct {
	ItemID      string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Restaurant  string `json:"restaurant"`
}
