package model

import (
	"time"

	"github.com/google/uuid"
)

// ListingModel mirrors the 'listings' table.
//
// Two generations of rows coexist: legacy rows carry only the boolean
// 'approved' column, newer rows carry 'approval_status' and 'active'. Both
// column sets stay mapped so reads keep working while the backfill runs; the
// resolution rules live in the mapper.
type ListingModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(200);not null"`
	CategoryID  string     `gorm:"type:varchar(50);not null;index"`
	Description string     `gorm:"type:text"`
	ImageRef    string     `gorm:"type:varchar(500)"`
	Address     string     `gorm:"type:varchar(500)"`
	Hours       string     `gorm:"type:jsonb"`
	Phone       string     `gorm:"type:varchar(50)"`

	Rating      float64 `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount int     `gorm:"not null;default:0"`
	Featured    bool    `gorm:"not null;default:false"`
	Latitude    float64 `gorm:"type:decimal(10,7);not null"`
	Longitude   float64 `gorm:"type:decimal(10,7);not null"`

	Approved        bool   `gorm:"not null;default:false"`
	ApprovalStatus  string `gorm:"type:varchar(20);index"`
	Active          *bool
	RejectionReason string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
