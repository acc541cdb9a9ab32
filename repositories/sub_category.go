package repositories

import (
	"catalog-backend/models"
	"context"

	"gorm.io/gorm"
)

type SubCategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.SubCategory, error)
}

type gormSubCategoryRepository struct {
	db *gorm.DB
}

func NewSubCategoryRepository(db *gorm.DB) SubCategoryRepository {
	return &gormSubCategoryRepository{db: db}
}

func (r *gormSubCategoryRepository) FindByID(ctx context.Context, id uint) (*models.SubCategory, error) {
	var subCategory models.SubCategory
	if err := r.db.WithContext(ctx).First(&subCategory, id).Error; err != nil {
		return nil, translate(err, "subcategory with id %d", id)
	}
	return &subCategory, nil
}
