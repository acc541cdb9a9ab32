package services

import (
	"catalog-backend/models"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/juju/errors"
)

// ServiceRequest carries the caller-editable fields of a service. Create and
// update both overwrite every field with what is sent.
type ServiceRequest struct {
	Name            string `json:"name" validate:"max=255"`
	Description     string `json:"description"`
	SubCategoryID   uint   `json:"subCategoryId"`
	IconURL         string `json:"iconUrl" validate:"max=512"`
	Image           string `json:"image" validate:"max=512"`
	MetaTitle       string `json:"metaTitle" validate:"max=255"`
	MetaKeyword     string `json:"metaKeyword" validate:"max=512"`
	MetaDescription string `json:"metaDescription"`
	Slug            string `json:"slug" validate:"max=255"`
	Active          bool   `json:"active"`
	DisplayStatus   bool   `json:"displayStatus"`
	ShowOnHome      bool   `json:"showOnHome"`
}

func (r ServiceRequest) applyTo(s *models.Service, subCategory *models.SubCategory) {
	s.Name = r.Name
	s.Description = r.Description
	s.SubCategory = subCategory
	s.SubCategoryID = subCategory.ID
	s.IconURL = r.IconURL
	s.Image = r.Image
	s.MetaTitle = r.MetaTitle
	s.MetaKeyword = r.MetaKeyword
	s.MetaDescription = r.MetaDescription
	s.Slug = r.Slug
	s.Active = r.Active
	s.DisplayStatus = r.DisplayStatus
	s.ShowOnHome = r.ShowOnHome
}

type ServiceDetailRequest struct {
	ServiceID    uint   `json:"serviceId"`
	Heading      string `json:"heading" validate:"max=255"`
	Details      string `json:"details"`
	DisplayOrder int    `json:"displayOrder"`
	Active       bool   `json:"active"`
}

func (r ServiceDetailRequest) applyTo(d *models.ServiceDetail, service *models.Service) {
	d.Heading = r.Heading
	d.Details = r.Details
	d.DisplayOrder = r.DisplayOrder
	d.Service = service
	d.ServiceID = service.ID
	d.Active = r.Active
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateRequest reports every failing field as a single NotValid error.
func validateRequest(req interface{}, what string) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.NewNotValid(err, "invalid "+what)
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			problems = append(problems, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return errors.NewNotValid(nil, fmt.Sprintf("invalid %s: %s", what, strings.Join(problems, ", ")))
}
