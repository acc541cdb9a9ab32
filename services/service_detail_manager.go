package services

import (
	"catalog-backend/models"
	"catalog-backend/repositories"
	"context"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// ServiceDetailManager manages the detail sections shown on a service page.
type ServiceDetailManager struct {
	details  repositories.ServiceDetailRepository
	services repositories.ServiceRepository
	actors   actorResolver
	logger   *zap.Logger
}

func NewServiceDetailManager(repos *repositories.Repositories, logger *zap.Logger) *ServiceDetailManager {
	return &ServiceDetailManager{
		details:  repos.ServiceDetails,
		services: repos.Services,
		actors:   actorResolver{users: repos.Users},
		logger:   logger.Named("service_detail_manager"),
	}
}

// Create adds a detail to a live service.
func (m *ServiceDetailManager) Create(ctx context.Context, req ServiceDetailRequest, actingUserID *uint) (ServiceDetailView, error) {
	detail, err := m.create(ctx, req, actingUserID)
	if err != nil {
		logFailure(m.logger, "create service detail failed", err,
			zap.Uint("service_id", req.ServiceID), actorField(actingUserID))
		return ServiceDetailView{}, err
	}

	m.logger.Info("service detail created",
		zap.Uint("service_detail_id", detail.ID),
		zap.String("uuid", detail.UUID),
		zap.Uint("service_id", detail.ServiceID),
		actorField(actingUserID))
	return NewServiceDetailView(detail), nil
}

func (m *ServiceDetailManager) create(ctx context.Context, req ServiceDetailRequest, actingUserID *uint) (*models.ServiceDetail, error) {
	if err := validateRequest(req, "service detail request"); err != nil {
		return nil, err
	}
	author, err := m.actors.author(ctx, actingUserID, "create service details")
	if err != nil {
		return nil, err
	}
	service, err := findActiveService(ctx, m.services, req.ServiceID)
	if err != nil {
		return nil, err
	}

	detail := &models.ServiceDetail{
		UUID:         uuid.NewString(),
		DeleteStatus: models.DeleteStatusActive,
	}
	req.applyTo(detail, service)
	detail.SetCreatedBy(author)

	if err := m.details.Save(ctx, detail); err != nil {
		return nil, errors.Trace(err)
	}
	return detail, nil
}

// GetByID returns false when the detail does not exist or is deleted.
func (m *ServiceDetailManager) GetByID(ctx context.Context, id uint) (ServiceDetailView, bool, error) {
	detail, err := liveDetail(m.details.FindByID(ctx, id))
	if err != nil || detail == nil {
		return ServiceDetailView{}, false, err
	}
	return NewServiceDetailView(detail), true, nil
}

func (m *ServiceDetailManager) GetByUUID(ctx context.Context, uuid string) (ServiceDetailView, bool, error) {
	detail, err := liveDetail(m.details.FindByUUID(ctx, uuid))
	if err != nil || detail == nil {
		return ServiceDetailView{}, false, err
	}
	return NewServiceDetailView(detail), true, nil
}

// ListByServiceID returns the live details of a service in display order. An
// unknown service simply has no details.
func (m *ServiceDetailManager) ListByServiceID(ctx context.Context, serviceID uint) ([]ServiceDetailView, error) {
	details, err := m.details.FindActiveByServiceID(ctx, serviceID)
	if err != nil {
		m.logger.Error("list service details failed", zap.Uint("service_id", serviceID), zap.Error(err))
		return nil, errors.Trace(err)
	}

	views := make([]ServiceDetailView, 0, len(details))
	for i := range details {
		views = append(views, NewServiceDetailView(&details[i]))
	}
	return views, nil
}

// Update overwrites a live detail, possibly moving it to another live service.
func (m *ServiceDetailManager) Update(ctx context.Context, id uint, req ServiceDetailRequest, actingUserID *uint) (ServiceDetailView, error) {
	detail, err := m.update(ctx, id, req, actingUserID)
	if err != nil {
		logFailure(m.logger, "update service detail failed", err,
			zap.Uint("service_detail_id", id), actorField(actingUserID))
		return ServiceDetailView{}, err
	}

	m.logger.Info("service detail updated",
		zap.Uint("service_detail_id", detail.ID),
		zap.Uint("service_id", detail.ServiceID),
		actorField(actingUserID))
	return NewServiceDetailView(detail), nil
}

func (m *ServiceDetailManager) update(ctx context.Context, id uint, req ServiceDetailRequest, actingUserID *uint) (*models.ServiceDetail, error) {
	if err := validateRequest(req, "service detail request"); err != nil {
		return nil, err
	}
	detail, err := m.findActive(ctx, id)
	if err != nil {
		return nil, err
	}
	author, err := m.actors.author(ctx, actingUserID, "update service details")
	if err != nil {
		return nil, err
	}
	service, err := findActiveService(ctx, m.services, req.ServiceID)
	if err != nil {
		return nil, err
	}

	req.applyTo(detail, service)
	detail.SetCreatedBy(author)

	if err := m.details.Save(ctx, detail); err != nil {
		return nil, errors.Trace(err)
	}
	return detail, nil
}

// SoftDelete flags a live detail deleted and inactive. Only an ADMIN may do it.
func (m *ServiceDetailManager) SoftDelete(ctx context.Context, id uint, actingUserID *uint) error {
	if err := m.softDelete(ctx, id, actingUserID); err != nil {
		logFailure(m.logger, "delete service detail failed", err,
			zap.Uint("service_detail_id", id), actorField(actingUserID))
		return err
	}

	m.logger.Info("service detail deleted",
		zap.Uint("service_detail_id", id),
		actorField(actingUserID))
	return nil
}

func (m *ServiceDetailManager) softDelete(ctx context.Context, id uint, actingUserID *uint) error {
	detail, err := m.findActive(ctx, id)
	if err != nil {
		return err
	}
	if _, err := m.actors.requireAdmin(ctx, actingUserID, "delete service details"); err != nil {
		return err
	}

	detail.MarkDeleted()
	return errors.Trace(m.details.Save(ctx, detail))
}

func (m *ServiceDetailManager) findActive(ctx context.Context, id uint) (*models.ServiceDetail, error) {
	detail, err := m.details.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !detail.DeleteStatus.IsActive() {
		return nil, errors.NotFoundf("service detail with id %d", id)
	}
	return detail, nil
}

// liveDetail filters a lookup for reads: missing and deleted rows come back as
// nil without an error.
func liveDetail(detail *models.ServiceDetail, err error) (*models.ServiceDetail, error) {
	if errors.Is(err, errors.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !detail.DeleteStatus.IsActive() {
		return nil, nil
	}
	return detail, nil
}
