package repositories

import (
	"catalog-backend/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlugCollision is a slug held by more than one live service.
type SlugCollision struct {
	Slug  string
	Count int64
}

type ServiceRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Service, error)
	FindByUUID(ctx context.Context, uuid string) (*models.Service, error)
	// FindActiveBySlug ignores deleted services, so a deleted service never
	// blocks reuse of its slug.
	FindActiveBySlug(ctx context.Context, slug string) (*models.Service, error)
	// SlugTaken reports whether a live service other than excludeID holds slug.
	// Pass 0 to consider every service.
	SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error)
	// FindAllActive returns live services with the active flag set, by id.
	FindAllActive(ctx context.Context) ([]models.Service, error)
	FindDuplicateActiveSlugs(ctx context.Context) ([]SlugCollision, error)
	// FindActiveWithInactiveParent returns live services whose subcategory has
	// been deleted or no longer exists, by id.
	FindActiveWithInactiveParent(ctx context.Context) ([]models.Service, error)
	// Save inserts a new service (zero ID) or overwrites every column of an
	// existing one. Associations are never written through.
	Save(ctx context.Context, service *models.Service) error
}

type gormServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &gormServiceRepository{db: db}
}

func (r *gormServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, translate(err, "service with id %d", id)
	}
	return &service, nil
}

func (r *gormServiceRepository) FindByUUID(ctx context.Context, uuid string) (*models.Service, error) {
	var service models.Service
	if err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&service).Error; err != nil {
		return nil, translate(err, "service with uuid %q", uuid)
	}
	return &service, nil
}

func (r *gormServiceRepository) FindActiveBySlug(ctx context.Context, slug string) (*models.Service, error) {
	var service models.Service
	err := r.db.WithContext(ctx).
		Where("slug = ? AND delete_status = ?", slug, models.DeleteStatusActive).
		Order("id").
		First(&service).Error
	if err != nil {
		return nil, translate(err, "service with slug %q", slug)
	}
	return &service, nil
}

func (r *gormServiceRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("slug = ? AND delete_status = ? AND id <> ?", slug, models.DeleteStatusActive, excludeID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "check slug %q", slug)
	}
	return count > 0, nil
}

func (r *gormServiceRepository) FindAllActive(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Where("delete_status = ? AND active = ?", models.DeleteStatusActive, true).
		Order("id").
		Find(&services).Error
	if err != nil {
		return nil, translate(err, "list active services")
	}
	return services, nil
}

func (r *gormServiceRepository) FindDuplicateActiveSlugs(ctx context.Context) ([]SlugCollision, error) {
	var collisions []SlugCollision
	err := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Select("slug, COUNT(*) AS count").
		Where("delete_status = ?", models.DeleteStatusActive).
		Group("slug").
		Having("COUNT(*) > ?", 1).
		Order("slug").
		Scan(&collisions).Error
	if err != nil {
		return nil, translate(err, "scan duplicate slugs")
	}
	return collisions, nil
}

func (r *gormServiceRepository) FindActiveWithInactiveParent(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := r.db.WithContext(ctx).
		Select("services.*").
		Joins("LEFT JOIN sub_categories ON sub_categories.id = services.sub_category_id").
		Where("services.delete_status = ?", models.DeleteStatusActive).
		Where("(sub_categories.id IS NULL OR sub_categories.delete_status <> ?)", models.DeleteStatusActive).
		Order("services.id").
		Find(&services).Error
	if err != nil {
		return nil, translate(err, "scan services under inactive subcategories")
	}
	return services, nil
}

func (r *gormServiceRepository) Save(ctx context.Context, service *models.Service) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(service).Error
	return translate(err, "service with slug %q or uuid %q", service.Slug, service.UUID)
}
