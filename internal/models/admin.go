package models

import "time"

// Admin is an administrator responsible for complaints in one district.
type Admin struct {
	AdminID      uint      `json:"admin_id" gorm:"primaryKey;column:admin_id"`
	Username     string    `json:"username" gorm:"column:username;size:100;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"column:email;size:255"`
	DistrictName string    `json:"district_name" gorm:"column:district_name;size:255;index;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Admin) TableName() string {
	return "admins"
}
