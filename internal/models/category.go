package models

import "time"

// Category is a complaint type shared by many complaints, keyed by its
// canonical name.
type Category struct {
	CategoryID uint      `json:"category_id" gorm:"primaryKey;column:category_id"`
	Name       string    `json:"name" gorm:"column:name;size:100;uniqueIndex;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Category) TableName() string {
	return "categories"
}
