package models

import "time"

// GalleryImage is one hosted image belonging to a package's gallery. The
// binary lives on Cloudinary; only the URL is stored here.
type GalleryImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PackageID uint      `json:"packageId"`
	URL       string    `json:"url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
