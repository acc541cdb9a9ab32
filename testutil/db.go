// Package testutil provides a throwaway catalog database for tests.
//
// Every database is a fresh SQLite file under t.TempDir(), migrated with the
// same models and indexes the server uses.
package testutil

import (
	"catalog-backend/config"
	"catalog-backend/models"
	"catalog-backend/utils"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Password is the clear-text password of every user created by CreateUser.
const Password = "correct-horse-battery"

var emailSeq atomic.Int64

// NewDB opens and migrates a new database. Password hashing is switched to the
// cheapest bcrypt cost for the rest of the test binary.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.PasswordCost = bcrypt.MinCost

	dsn := filepath.Join(t.TempDir(), "catalog.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// CreateRole returns the role with the given name, creating it if needed.
func CreateRole(t *testing.T, db *gorm.DB, name models.RoleName) *models.Role {
	t.Helper()
	role := models.Role{Name: models.NormalizeRoleName(name), DeleteStatus: models.DeleteStatusActive}
	require.NoError(t, db.Where(models.Role{Name: role.Name}).FirstOrCreate(&role).Error)
	return &role
}

type UserOption func(*models.User)

func Disabled() UserOption {
	return func(u *models.User) { u.Enabled = false }
}

func Deleted() UserOption {
	return func(u *models.User) { u.DeleteStatus = models.DeleteStatusDeleted }
}

func WithEmail(email string) UserOption {
	return func(u *models.User) { u.Email = email }
}

// CreateUser inserts an enabled, live user holding role. The password is
// Password.
func CreateUser(t *testing.T, db *gorm.DB, role models.RoleName, opts ...UserOption) *models.User {
	t.Helper()
	r := CreateRole(t, db, role)
	user := &models.User{
		Email:        fmt.Sprintf("user%d@example.com", emailSeq.Add(1)),
		Password:     Password,
		Name:         "Test User",
		RoleID:       r.ID,
		Enabled:      true,
		DeleteStatus: models.DeleteStatusActive,
	}
	for _, opt := range opts {
		opt(user)
	}
	require.NoError(t, db.Create(user).Error)
	user.Role = r
	return user
}

// CreateSubCategory inserts a subcategory with the given delete status.
func CreateSubCategory(t *testing.T, db *gorm.DB, status models.DeleteStatus) *models.SubCategory {
	t.Helper()
	sc := &models.SubCategory{
		UUID:         uuid.NewString(),
		Name:         "Plumbing",
		Slug:         "plumbing",
		Active:       true,
		DeleteStatus: status,
	}
	require.NoError(t, db.Create(sc).Error)
	return sc
}

// CreateService inserts a live, active service directly, bypassing the
// managers.
func CreateService(t *testing.T, db *gorm.DB, subCategory *models.SubCategory, slug string) *models.Service {
	t.Helper()
	s := &models.Service{
		UUID:          uuid.NewString(),
		Name:          slug,
		Slug:          slug,
		Active:        true,
		DisplayStatus: true,
		SubCategoryID: subCategory.ID,
		DeleteStatus:  models.DeleteStatusActive,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

// CreateServiceDetail inserts a live detail of service directly.
func CreateServiceDetail(t *testing.T, db *gorm.DB, service *models.Service, heading string, order int) *models.ServiceDetail {
	t.Helper()
	d := &models.ServiceDetail{
		UUID:         uuid.NewString(),
		Heading:      heading,
		Details:      heading + " body",
		DisplayOrder: order,
		Active:       true,
		ServiceID:    service.ID,
		DeleteStatus: models.DeleteStatusActive,
	}
	require.NoError(t, db.Create(d).Error)
	return d
}
