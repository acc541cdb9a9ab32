// services/catalog_audit.go
package services

import (
	"catalog-backend/repositories"
	"context"
	"time"

	"github.com/juju/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const catalogAuditTimeout = time.Minute

// OrphanedService is a live service whose subcategory has been deleted, or
// removed outright, by the module that owns subcategories.
type OrphanedService struct {
	ServiceID     uint
	Slug          string
	SubCategoryID uint
}

// CatalogAuditService periodically looks for live services whose subcategory
// is no longer live. Writes never create them, but subcategories are deleted
// elsewhere. The audit only reports them.
type CatalogAuditService struct {
	services repositories.ServiceRepository
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewCatalogAuditService(services repositories.ServiceRepository, logger *zap.Logger) *CatalogAuditService {
	return &CatalogAuditService{
		services: services,
		logger:   logger.Named("catalog_audit"),
	}
}

// StartScheduler runs the audit on a standard five-field cron schedule. An
// empty schedule disables it.
func (s *CatalogAuditService) StartScheduler(schedule string) error {
	if schedule == "" {
		s.logger.Info("catalog audit disabled")
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), catalogAuditTimeout)
		defer cancel()
		_, _ = s.Run(ctx)
	})
	if err != nil {
		return errors.Annotatef(err, "invalid catalog audit schedule %q", schedule)
	}

	s.cron = c
	c.Start()
	s.logger.Info("catalog audit scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop waits for a running audit to finish.
func (s *CatalogAuditService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.cron = nil
}

func (s *CatalogAuditService) Run(ctx context.Context) ([]OrphanedService, error) {
	start := time.Now()
	services, err := s.services.FindActiveWithInactiveParent(ctx)
	if err != nil {
		s.logger.Error("catalog audit failed", zap.Error(err))
		return nil, errors.Trace(err)
	}

	orphans := make([]OrphanedService, 0, len(services))
	for _, svc := range services {
		orphans = append(orphans, OrphanedService{
			ServiceID:     svc.ID,
			Slug:          svc.Slug,
			SubCategoryID: svc.SubCategoryID,
		})
		s.logger.Warn("live service under an inactive subcategory",
			zap.Uint("service_id", svc.ID),
			zap.String("slug", svc.Slug),
			zap.Uint("sub_category_id", svc.SubCategoryID))
	}
	s.logger.Info("catalog audit completed",
		zap.Int("orphans", len(orphans)),
		zap.Duration("took", time.Since(start)))
	return orphans, nil
}
