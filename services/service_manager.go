package services

import (
	"catalog-backend/models"
	"catalog-backend/repositories"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/juju/errors"
	"go.uber.org/zap"
)

// ServiceManager manages catalog services. A service belongs to a
// subcategory, is addressed by id, uuid or slug, and is never physically
// removed.
//
// Slug uniqueness is checked here before every write, but the check and the
// write are not atomic. The partial unique index on services.slug is what
// actually guarantees it; a write that loses the race fails the same way.
type ServiceManager struct {
	services      repositories.ServiceRepository
	subCategories repositories.SubCategoryRepository
	details       repositories.ServiceDetailRepository
	actors        actorResolver
	logger        *zap.Logger
}

func NewServiceManager(repos *repositories.Repositories, logger *zap.Logger) *ServiceManager {
	return &ServiceManager{
		services:      repos.Services,
		subCategories: repos.SubCategories,
		details:       repos.ServiceDetails,
		actors:        actorResolver{users: repos.Users},
		logger:        logger.Named("service_manager"),
	}
}

func (m *ServiceManager) Create(ctx context.Context, req ServiceRequest, actingUserID *uint) (ServiceView, error) {
	service, err := m.create(ctx, req, actingUserID)
	if err != nil {
		logFailure(m.logger, "create service failed", err,
			zap.String("slug", req.Slug), actorField(actingUserID))
		return ServiceView{}, err
	}

	m.logger.Info("service created",
		zap.Uint("service_id", service.ID),
		zap.String("uuid", service.UUID),
		zap.String("slug", service.Slug),
		actorField(actingUserID))
	return NewServiceView(service), nil
}

func (m *ServiceManager) create(ctx context.Context, req ServiceRequest, actingUserID *uint) (*models.Service, error) {
	if err := validateRequest(req, "service request"); err != nil {
		return nil, err
	}
	if err := m.ensureSlugAvailable(ctx, req.Slug, 0); err != nil {
		return nil, err
	}
	author, err := m.actors.author(ctx, actingUserID, "create services")
	if err != nil {
		return nil, err
	}
	subCategory, err := m.findActiveSubCategory(ctx, req.SubCategoryID)
	if err != nil {
		return nil, err
	}

	service := &models.Service{
		UUID:         uuid.NewString(),
		DeleteStatus: models.DeleteStatusActive,
	}
	req.applyTo(service, subCategory)
	service.SetCreatedBy(author)

	if err := m.services.Save(ctx, service); err != nil {
		return nil, errors.Trace(err)
	}
	return service, nil
}

func (m *ServiceManager) GetByID(ctx context.Context, id uint) (ServiceView, bool, error) {
	service, err := liveService(m.services.FindByID(ctx, id))
	if err != nil || service == nil {
		return ServiceView{}, false, err
	}
	return NewServiceView(service), true, nil
}

func (m *ServiceManager) GetByUUID(ctx context.Context, uuid string) (ServiceView, bool, error) {
	service, err := liveService(m.services.FindByUUID(ctx, uuid))
	if err != nil || service == nil {
		return ServiceView{}, false, err
	}
	return NewServiceView(service), true, nil
}

func (m *ServiceManager) GetBySlug(ctx context.Context, slug string) (ServiceView, bool, error) {
	service, err := liveService(m.services.FindActiveBySlug(ctx, slug))
	if err != nil || service == nil {
		return ServiceView{}, false, err
	}
	return NewServiceView(service), true, nil
}

// ListActive returns every live service whose active flag is set.
func (m *ServiceManager) ListActive(ctx context.Context) ([]ServiceView, error) {
	services, err := m.services.FindAllActive(ctx)
	if err != nil {
		m.logger.Error("list active services failed", zap.Error(err))
		return nil, errors.Trace(err)
	}

	views := make([]ServiceView, 0, len(services))
	for i := range services {
		views = append(views, NewServiceView(&services[i]))
	}
	return views, nil
}

// GetWithDetails returns a live service together with its live details in
// display order.
func (m *ServiceManager) GetWithDetails(ctx context.Context, id uint) (ServiceWithDetailsView, bool, error) {
	service, err := liveService(m.services.FindByID(ctx, id))
	if err != nil || service == nil {
		return ServiceWithDetailsView{}, false, err
	}

	details, err := m.details.FindActiveByServiceID(ctx, service.ID)
	if err != nil {
		m.logger.Error("load service details failed", zap.Uint("service_id", id), zap.Error(err))
		return ServiceWithDetailsView{}, false, errors.Trace(err)
	}

	view := ServiceWithDetailsView{
		ServiceView:    NewServiceView(service),
		ServiceDetails: make([]ServiceDetailSummary, 0, len(details)),
	}
	for i := range details {
		view.ServiceDetails = append(view.ServiceDetails, NewServiceDetailSummary(&details[i]))
	}
	return view, true, nil
}

func (m *ServiceManager) Update(ctx context.Context, id uint, req ServiceRequest, actingUserID *uint) (ServiceView, error) {
	service, err := m.update(ctx, id, req, actingUserID)
	if err != nil {
		logFailure(m.logger, "update service failed", err,
			zap.Uint("service_id", id), zap.String("slug", req.Slug), actorField(actingUserID))
		return ServiceView{}, err
	}

	m.logger.Info("service updated",
		zap.Uint("service_id", service.ID),
		zap.String("slug", service.Slug),
		actorField(actingUserID))
	return NewServiceView(service), nil
}

func (m *ServiceManager) update(ctx context.Context, id uint, req ServiceRequest, actingUserID *uint) (*models.Service, error) {
	if err := validateRequest(req, "service request"); err != nil {
		return nil, err
	}
	service, err := findActiveService(ctx, m.services, id)
	if err != nil {
		return nil, err
	}
	if err := m.ensureSlugAvailable(ctx, req.Slug, service.ID); err != nil {
		return nil, err
	}
	author, err := m.actors.author(ctx, actingUserID, "update services")
	if err != nil {
		return nil, err
	}
	subCategory, err := m.findActiveSubCategory(ctx, req.SubCategoryID)
	if err != nil {
		return nil, err
	}

	req.applyTo(service, subCategory)
	service.SetCreatedBy(author)

	if err := m.services.Save(ctx, service); err != nil {
		return nil, errors.Trace(err)
	}
	return service, nil
}

// SoftDelete hides a live service completely. Only an ADMIN may do it. Its
// details are left as they are.
func (m *ServiceManager) SoftDelete(ctx context.Context, id uint, actingUserID *uint) error {
	if err := m.softDelete(ctx, id, actingUserID); err != nil {
		logFailure(m.logger, "delete service failed", err,
			zap.Uint("service_id", id), actorField(actingUserID))
		return err
	}

	m.logger.Info("service deleted", zap.Uint("service_id", id), actorField(actingUserID))
	return nil
}

func (m *ServiceManager) softDelete(ctx context.Context, id uint, actingUserID *uint) error {
	service, err := findActiveService(ctx, m.services, id)
	if err != nil {
		return err
	}
	if _, err := m.actors.requireAdmin(ctx, actingUserID, "delete services"); err != nil {
		return err
	}

	service.MarkDeleted()
	return errors.Trace(m.services.Save(ctx, service))
}

func (m *ServiceManager) ensureSlugAvailable(ctx context.Context, slug string, excludeID uint) error {
	taken, err := m.services.SlugTaken(ctx, slug, excludeID)
	if err != nil {
		return errors.Trace(err)
	}
	if taken {
		return errors.NewAlreadyExists(nil, fmt.Sprintf("service with slug %q already exists", slug))
	}
	return nil
}

func (m *ServiceManager) findActiveSubCategory(ctx context.Context, id uint) (*models.SubCategory, error) {
	subCategory, err := m.subCategories.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !subCategory.DeleteStatus.IsActive() {
		return nil, errors.NotFoundf("subcategory with id %d", id)
	}
	return subCategory, nil
}

// findActiveService resolves a service that may be written to or referenced.
// Deleted services are reported as not found.
func findActiveService(ctx context.Context, services repositories.ServiceRepository, id uint) (*models.Service, error) {
	service, err := services.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !service.DeleteStatus.IsActive() {
		return nil, errors.NotFoundf("service with id %d", id)
	}
	return service, nil
}

func liveService(service *models.Service, err error) (*models.Service, error) {
	if errors.Is(err, errors.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !service.DeleteStatus.IsActive() {
		return nil, nil
	}
	return service, nil
}
