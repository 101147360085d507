package models

import "time"

// ComplaintStatus is the lifecycle state of a complaint. Intake always
// creates complaints as StatusPending; later transitions belong to the
// admin workflow.
type ComplaintStatus string

const (
	StatusPending       ComplaintStatus = "pending"
	StatusVerifying     ComplaintStatus = "verifying"
	StatusInvestigating ComplaintStatus = "investigating"
	StatusResolved      ComplaintStatus = "resolved"
)

// Complaint represents a submitted crime complaint, relating the
// resolved Location and Category and the routed admin.
type Complaint struct {
	ComplaintID     uint            `json:"complaint_id" gorm:"primaryKey;column:complaint_id"`
	ComplaintType   string          `json:"complaint_type" gorm:"column:complaint_type;size:100;not null"`
	Description     string          `json:"description" gorm:"column:description;type:text;not null"`
	IncidentDate    string          `json:"incident_date" gorm:"column:incident_date;size:32;not null"`
	Status          ComplaintStatus `json:"status" gorm:"column:status;size:32;not null"`
	Username        string          `json:"username" gorm:"column:username;size:100;not null;index"`
	AdminUsername   string          `json:"admin_username" gorm:"column:admin_username;size:100;not null"`
	LocationID      uint            `json:"location_id" gorm:"column:location_id;not null"`
	Location        Location        `json:"location" gorm:"foreignKey:LocationID"`
	LocationAddress string          `json:"location_address" gorm:"column:location_address;size:255;not null"`
	CategoryID      uint            `json:"category_id" gorm:"column:category_id;not null"`
	Category        Category        `json:"category" gorm:"foreignKey:CategoryID"`
	Latitude        *float64        `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude       *float64        `json:"longitude,omitempty" gorm:"column:longitude"`
	AccuracyRadiusM *int            `json:"accuracy_radius_m,omitempty" gorm:"column:accuracy_radius_m"`
	Evidence        []Evidence      `json:"evidence" gorm:"foreignKey:ComplaintID"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Complaint) TableName() string {
	return "complaints"
}
