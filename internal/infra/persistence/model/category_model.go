package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        string `gorm:"type:varchar(50);primary_key"`
	Name      string `gorm:"type:varchar(100);not null"`
	Color     string `gorm:"type:varchar(7)"`
	Icon      string `gorm:"type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
