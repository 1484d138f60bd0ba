package models

import "time"

type Location struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Packages  []Package `json:"packages,omitempty" gorm:"foreignKey:LocationID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
