package repositories

import (
	"catalog-backend/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ServiceDetailRepository interface {
	FindByID(ctx context.Context, id uint) (*models.ServiceDetail, error)
	FindByUUID(ctx context.Context, uuid string) (*models.ServiceDetail, error)
	// FindActiveByServiceID returns the live details of a service ordered by
	// display order, ties broken by id.
	FindActiveByServiceID(ctx context.Context, serviceID uint) ([]models.ServiceDetail, error)
	Save(ctx context.Context, detail *models.ServiceDetail) error
}

type gormServiceDetailRepository struct {
	db *gorm.DB
}

func NewServiceDetailRepository(db *gorm.DB) ServiceDetailRepository {
	return &gormServiceDetailRepository{db: db}
}

func (r *gormServiceDetailRepository) FindByID(ctx context.Context, id uint) (*models.ServiceDetail, error) {
	var detail models.ServiceDetail
	if err := r.db.WithContext(ctx).First(&detail, id).Error; err != nil {
		return nil, translate(err, "service detail with id %d", id)
	}
	return &detail, nil
}

func (r *gormServiceDetailRepository) FindByUUID(ctx context.Context, uuid string) (*models.ServiceDetail, error) {
	var detail models.ServiceDetail
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&detail).Error; err != nil {
		return nil, translate(err, "service detail with uuid %q", uuid)
	}
	return &detail, nil
}

func (r *gormServiceDetailRepository) FindActiveByServiceID(ctx context.Context, serviceID uint) ([]models.ServiceDetail, error) {
	var details []models.ServiceDetail
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND delete_status = ?", serviceID, models.DeleteStatusActive).
		Order("display_order, id").
		Find(&details).Error
	if err != nil {
		return nil, translate(err, "list details of service %d", serviceID)
	}
	return details, nil
}

func (r *gormServiceDetailRepository) Save(ctx context.Context, detail *models.ServiceDetail) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(detail).Error
	return translate(err, "service detail %q", detail.UUID)
}
