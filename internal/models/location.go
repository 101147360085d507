package models

import "time"

// Location is a human-entered address shared by many complaints.
// Address is the natural key: lookups match it verbatim and the unique
// index is what closes the concurrent get-or-create race.
type Location struct {
	LocationID   uint      `json:"location_id" gorm:"primaryKey;column:location_id"`
	Address      string    `json:"address" gorm:"column:address;size:255;uniqueIndex;not null"`
	DistrictName string    `json:"district_name" gorm:"column:district_name;size:255;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Location) TableName() string {
	return "locations"
}
