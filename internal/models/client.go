package models

import "time"

type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Opaque credential. Empty for clients created lazily on first booking.
	Password string `gorm:"size:255" json:"-"`

	IsAdmin bool `gorm:"default:false" json:"is_admin"`
	Blocked bool `gorm:"default:false" json:"blocked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
