package models

import (
	"time"
)

// SubCategory is owned by the category module; the catalog only reads it to
// validate a service's parent.
type SubCategory struct {
	ID           uint         `gorm:"primaryKey"`
	UUID         string       `gorm:"type:varchar(36);uniqueIndex;not null"`
	Name         string       `gorm:"size:255;not null"`
	Slug         string       `gorm:"size:255;index"`
	Active       bool         `gorm:"not null"`
	DeleteStatus DeleteStatus `gorm:"type:smallint;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SubCategory) TableName() string {
	return "sub_categories"
}
