package services

import (
	"catalog-backend/models"
	"time"
)

type ServiceView struct {
	ID              uint      `json:"id"`
	UUID            string    `json:"uuid"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	SubCategoryID   uint      `json:"subCategoryId"`
	IconURL         string    `json:"iconUrl"`
	Image           string    `json:"image"`
	MetaTitle       string    `json:"metaTitle"`
	MetaKeyword     string    `json:"metaKeyword"`
	MetaDescription string    `json:"metaDescription"`
	Slug            string    `json:"slug"`
	Active          bool      `json:"active"`
	DisplayStatus   bool      `json:"displayStatus"`
	ShowOnHome      bool      `json:"showOnHome"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	CreatedByID     *uint     `json:"createdById"`
}

func NewServiceView(s *models.Service) ServiceView {
	return ServiceView{
		ID:              s.ID,
		UUID:            s.UUID,
		Name:            s.Name,
		Description:     s.Description,
		SubCategoryID:   s.SubCategoryID,
		IconURL:         s.IconURL,
		Image:           s.Image,
		MetaTitle:       s.MetaTitle,
		MetaKeyword:     s.MetaKeyword,
		MetaDescription: s.MetaDescription,
		Slug:            s.Slug,
		Active:          s.Active,
		DisplayStatus:   s.DisplayStatus,
		ShowOnHome:      s.ShowOnHome,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		CreatedByID:     copyID(s.CreatedByID),
	}
}

type ServiceDetailView struct {
	ID           uint      `json:"id"`
	UUID         string    `json:"uuid"`
	Heading      string    `json:"heading"`
	Details      string    `json:"details"`
	DisplayOrder int       `json:"displayOrder"`
	ServiceID    uint      `json:"serviceId"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CreatedByID  *uint     `json:"createdById"`
}

func NewServiceDetailView(d *models.ServiceDetail) ServiceDetailView {
	return ServiceDetailView{
		ID:           d.ID,
		UUID:         d.UUID,
		Heading:      d.Heading,
		Details:      d.Details,
		DisplayOrder: d.DisplayOrder,
		ServiceID:    d.ServiceID,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		CreatedByID:  copyID(d.CreatedByID),
	}
}

// ServiceDetailSummary is the detail shape embedded in a service fetched with
// its details. Clients read the body text under "overview" there.
type ServiceDetailSummary struct {
	ID           uint      `json:"id"`
	UUID         string    `json:"uuid"`
	Heading      string    `json:"heading"`
	Overview     string    `json:"overview"`
	DisplayOrder int       `json:"displayOrder"`
	ServiceID    uint      `json:"serviceId"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	CreatedByID  *uint     `json:"createdById"`
}

func NewServiceDetailSummary(d *models.ServiceDetail) ServiceDetailSummary {
	return ServiceDetailSummary{
		ID:           d.ID,
		UUID:         d.UUID,
		Heading:      d.Heading,
		Overview:     d.Details,
		DisplayOrder: d.DisplayOrder,
		ServiceID:    d.ServiceID,
		Active:       d.Active,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		CreatedByID:  copyID(d.CreatedByID),
	}
}

type ServiceWithDetailsView struct {
	ServiceView
	ServiceDetails []ServiceDetailSummary `json:"serviceDetails"`
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
