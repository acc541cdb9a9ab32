package models

import (
	"time"
)

// ActiveSlugIndex is the partial unique index that keeps slugs unique among
// live services while letting a deleted service's slug be reused.
const ActiveSlugIndex = "idx_services_active_slug"

type Service struct {
	ID   uint   `gorm:"primaryKey"`
	UUID string `gorm:"type:varchar(36);uniqueIndex;not null"`

	Name            string `gorm:"size:255"`
	Description     string `gorm:"type:text"`
	IconURL         string `gorm:"column:icon_url;size:512"`
	Image           string `gorm:"size:512"`
	MetaTitle       string `gorm:"size:255"`
	MetaKeyword     string `gorm:"size:512"`
	MetaDescription string `gorm:"type:text"`
	Slug            string `gorm:"size:255;not null;uniqueIndex:idx_services_active_slug,where:delete_status = 2"`

	Active        bool `gorm:"not null"`
	DisplayStatus bool `gorm:"not null"`
	ShowOnHome    bool `gorm:"not null"`

	SubCategoryID uint         `gorm:"index;not null"`
	SubCategory   *SubCategory `gorm:"foreignKey:SubCategoryID"`

	CreatedByID *uint `gorm:"index"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID"`

	DeleteStatus DeleteStatus `gorm:"type:smallint;not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SetCreatedBy records the acting user, or clears the author when the change
// was made anonymously.
func (s *Service) SetCreatedBy(u *User) {
	s.CreatedBy = u
	if u == nil {
		s.CreatedByID = nil
		return
	}
	id := u.ID
	s.CreatedByID = &id
}

// MarkDeleted hides the service everywhere: it is flagged deleted and every
// visibility flag is switched off.
func (s *Service) MarkDeleted() {
	s.DeleteStatus = DeleteStatusDeleted
	s.Active = false
	s.DisplayStatus = false
	s.ShowOnHome = false
}
