package config

import (
	"catalog-backend/models"
	"catalog-backend/repositories"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/juju/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Annotate(err, "failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Trace(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

// Migrate creates or updates every table the catalog owns or reads, including
// the partial unique index on live service slugs. Building that index over
// rows that already share a live slug would fail, so those slugs are looked up
// first and reported by name.
func Migrate(db *gorm.DB) error {
	if err := checkActiveSlugsUnique(db); err != nil {
		return err
	}
	err := db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.SubCategory{},
		&models.Service{},
		&models.ServiceDetail{},
	)
	return errors.Annotate(err, "auto-migrating catalog tables")
}

func checkActiveSlugsUnique(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&models.Service{}) || m.HasIndex(&models.Service{}, models.ActiveSlugIndex) {
		return nil
	}

	collisions, err := repositories.NewServiceRepository(db).FindDuplicateActiveSlugs(context.Background())
	if err != nil {
		return errors.Annotate(err, "checking live service slugs")
	}
	if len(collisions) == 0 {
		return nil
	}

	held := make([]string, 0, len(collisions))
	for _, c := range collisions {
		held = append(held, fmt.Sprintf("%q (%d services)", c.Slug, c.Count))
	}
	return errors.NewNotValid(nil, fmt.Sprintf(
		"cannot create %s: slugs held by several live services: %s",
		models.ActiveSlugIndex, strings.Join(held, ", ")))
}

// PingTimeout bounds the readiness check done at startup.
const PingTimeout = 10 * time.Second
