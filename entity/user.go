package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	// Subject id assigned by the federated provider; empty for password-only accounts.
	ProviderUID string `gorm:"index" json:"-"`
}
