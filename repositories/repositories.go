// Package repositories holds the gorm queries behind the catalog managers.
//
// Finders by id or uuid are unscoped: they return deleted rows too and leave
// the delete-status decision to the caller. Finders whose name says Active
// only ever see live rows. A missing row is reported as errors.NotFound and a
// unique-key violation as errors.AlreadyExists.
package repositories

import (
	"fmt"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

type Repositories struct {
	Users          UserRepository
	SubCategories  SubCategoryRepository
	Services       ServiceRepository
	ServiceDetails ServiceDetailRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(db),
		SubCategories:  NewSubCategoryRepository(db),
		Services:       NewServiceRepository(db),
		ServiceDetails: NewServiceDetailRepository(db),
	}
}

// translate maps gorm errors onto error kinds the managers understand.
func translate(err error, format string, args ...interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.NotFoundf(format, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.NewAlreadyExists(nil, fmt.Sprintf(format, args...)+" already exists")
	default:
		return errors.Annotatef(err, format, args...)
	}
}
