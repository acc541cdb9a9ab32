package models

import (
	"time"
)

type ServiceDetail struct {
	ID   uint   `gorm:"primaryKey"`
	UUID string `gorm:"type:varchar(36);uniqueIndex;not null"`

	Heading      string `gorm:"size:255"`
	Details      string `gorm:"type:text"`
	DisplayOrder int    `gorm:"not null;default:0"`
	Active       bool   `gorm:"not null"`

	ServiceID uint     `gorm:"index;not null"`
	Service   *Service `gorm:"foreignKey:ServiceID"`

	CreatedByID *uint `gorm:"index"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID"`

	DeleteStatus DeleteStatus `gorm:"type:smallint;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d *ServiceDetail) SetCreatedBy(u *User) {
	d.CreatedBy = u
	if u == nil {
		d.CreatedByID = nil
		return
	}
	id := u.ID
	d.CreatedByID = &id
}

func (d *ServiceDetail) MarkDeleted() {
	d.DeleteStatus = DeleteStatusDeleted
	d.Active = false
}
