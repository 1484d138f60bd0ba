package models

import "time"

// User is a back-office operator account. Customer bookings do not require
// an account; only the admin dashboard is authenticated.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"-"`
	Role      int       `json:"role"`   // 1: staff, 2: admin
	Status    int       `json:"status"` // 0: inactive, 1: active
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
