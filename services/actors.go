package services

import (
	"catalog-backend/models"
	"catalog-backend/repositories"
	"context"

	"github.com/juju/errors"
	"go.uber.org/zap"
)

// actorResolver turns an optional acting-user id into the user a catalog
// change is attributed to.
type actorResolver struct {
	users repositories.UserRepository
}

// author resolves the acting user of a create or update. No id means an
// anonymous change with no author recorded.
func (a actorResolver) author(ctx context.Context, actingUserID *uint, action string) (*models.User, error) {
	if actingUserID == nil {
		return nil, nil
	}
	return a.admin(ctx, *actingUserID, action)
}

// requireAdmin is author for deletes, which are never anonymous.
func (a actorResolver) requireAdmin(ctx context.Context, actingUserID *uint, action string) (*models.User, error) {
	if actingUserID == nil {
		return nil, errors.NewNotValid(nil, "an acting user is required to "+action)
	}
	return a.admin(ctx, *actingUserID, action)
}

func (a actorResolver) admin(ctx context.Context, id uint, action string) (*models.User, error) {
	user, err := a.users.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !user.IsUsable() {
		return nil, errors.NotFoundf("user with id %d", id)
	}
	if !user.CanManageCatalog() {
		return nil, errors.NewForbidden(nil, "only ADMIN users can "+action)
	}
	return user, nil
}

// isRejection reports failures caused by the caller's input or identity, as
// opposed to infrastructure failures.
func isRejection(err error) bool {
	return errors.Is(err, errors.NotFound) ||
		errors.Is(err, errors.Forbidden) ||
		errors.Is(err, errors.NotValid) ||
		errors.Is(err, errors.AlreadyExists)
}

// logFailure logs a failed mutation once, at the manager boundary.
func logFailure(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if isRejection(err) {
		logger.Debug(msg, fields...)
		return
	}
	logger.Error(msg, fields...)
}

func actorField(actingUserID *uint) zap.Field {
	if actingUserID == nil {
		return zap.Skip()
	}
	return zap.Uint("acting_user_id", *actingUserID)
}
