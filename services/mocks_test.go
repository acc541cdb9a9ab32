package services_test

import (
	"catalog-backend/models"
	"catalog-backend/repositories"
	"catalog-backend/services"
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// MockServiceRepository mocks the ServiceRepository interface
type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) FindByID(ctx context.Context, id uint) (*models.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindByUUID(ctx context.Context, uuid string) (*models.Service, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindActiveBySlug(ctx context.Context, slug string) (*models.Service, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) SlugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockServiceRepository) FindAllActive(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) FindDuplicateActiveSlugs(ctx context.Context) ([]repositories.SlugCollision, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.SlugCollision), args.Error(1)
}

func (m *MockServiceRepository) FindActiveWithInactiveParent(ctx context.Context) ([]models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Service), args.Error(1)
}

func (m *MockServiceRepository) Save(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

// MockSubCategoryRepository mocks the SubCategoryRepository interface
type MockSubCategoryRepository struct {
	mock.Mock
}

func (m *MockSubCategoryRepository) FindByID(ctx context.Context, id uint) (*models.SubCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubCategory), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id uint, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

// MockServiceDetailRepository mocks the ServiceDetailRepository interface
type MockServiceDetailRepository struct {
	mock.Mock
}

func (m *MockServiceDetailRepository) FindByID(ctx context.Context, id uint) (*models.ServiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDetail), args.Error(1)
}

func (m *MockServiceDetailRepository) FindByUUID(ctx context.Context, uuid string) (*models.ServiceDetail, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ServiceDetail), args.Error(1)
}

func (m *MockServiceDetailRepository) FindActiveByServiceID(ctx context.Context, serviceID uint) ([]models.ServiceDetail, error) {
	args := m.Called(ctx, serviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ServiceDetail), args.Error(1)
}

func (m *MockServiceDetailRepository) Save(ctx context.Context, detail *models.ServiceDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

type mockRepos struct {
	services      *MockServiceRepository
	subCategories *MockSubCategoryRepository
	users         *MockUserRepository
	details       *MockServiceDetailRepository
}

func newMockRepos() (*mockRepos, *repositories.Repositories) {
	m := &mockRepos{
		services:      &MockServiceRepository{},
		subCategories: &MockSubCategoryRepository{},
		users:         &MockUserRepository{},
		details:       &MockServiceDetailRepository{},
	}
	return m, &repositories.Repositories{
		Users:          m.users,
		SubCategories:  m.subCategories,
		Services:       m.services,
		ServiceDetails: m.details,
	}
}

var errConnReset = stderrors.New("connection reset by peer")

func TestServiceManagerPropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	sub := &models.SubCategory{ID: 5, DeleteStatus: models.DeleteStatusActive}
	req := services.ServiceRequest{SubCategoryID: 5, Slug: "plumbing"}

	t.Run("save", func(t *testing.T) {
		m, repos := newMockRepos()
		m.services.On("SlugTaken", ctx, "plumbing", uint(0)).Return(false, nil)
		m.subCategories.On("FindByID", ctx, uint(5)).Return(sub, nil)
		m.services.On("Save", ctx, mock.AnythingOfType("*models.Service")).Return(errConnReset)

		_, err := services.NewServiceManager(repos, zaptest.NewLogger(t)).Create(ctx, req, nil)
		require.Error(t, err)
		assert.True(t, stderrors.Is(err, errConnReset))
		assert.False(t, errors.Is(err, errors.NotFound))
		m.services.AssertExpectations(t)
	})

	t.Run("slug check", func(t *testing.T) {
		m, repos := newMockRepos()
		m.services.On("SlugTaken", ctx, "plumbing", uint(0)).Return(false, errConnReset)

		_, err := services.NewServiceManager(repos, zaptest.NewLogger(t)).Create(ctx, req, nil)
		assert.True(t, stderrors.Is(err, errConnReset))
		m.subCategories.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		m.services.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("read", func(t *testing.T) {
		m, repos := newMockRepos()
		m.services.On("FindByID", ctx, uint(1)).Return(nil, errConnReset)

		_, found, err := services.NewServiceManager(repos, zaptest.NewLogger(t)).GetByID(ctx, 1)
		assert.False(t, found)
		assert.True(t, stderrors.Is(err, errConnReset))
	})

	t.Run("list", func(t *testing.T) {
		m, repos := newMockRepos()
		m.services.On("FindAllActive", ctx).Return(nil, errConnReset)

		_, err := services.NewServiceManager(repos, zaptest.NewLogger(t)).ListActive(ctx)
		assert.True(t, stderrors.Is(err, errConnReset))
	})

	t.Run("details of service", func(t *testing.T) {
		m, repos := newMockRepos()
		m.services.On("FindByID", ctx, uint(1)).
			Return(&models.Service{ID: 1, DeleteStatus: models.DeleteStatusActive}, nil)
		m.details.On("FindActiveByServiceID", ctx, uint(1)).Return(nil, errConnReset)

		_, found, err := services.NewServiceManager(repos, zaptest.NewLogger(t)).GetWithDetails(ctx, 1)
		assert.False(t, found)
		assert.True(t, stderrors.Is(err, errConnReset))
	})
}

func TestServiceManagerActorLookupFailure(t *testing.T) {
	ctx := context.Background()
	m, repos := newMockRepos()
	m.services.On("FindByID", ctx, uint(1)).
		Return(&models.Service{ID: 1, DeleteStatus: models.DeleteStatusActive}, nil)
	m.users.On("FindByID", ctx, uint(2)).Return(nil, errConnReset)

	admin := uint(2)
	err := services.NewServiceManager(repos, zaptest.NewLogger(t)).SoftDelete(ctx, 1, &admin)
	assert.True(t, stderrors.Is(err, errConnReset))
	m.services.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestServiceDetailManagerPropagatesStorageErrors(t *testing.T) {
	ctx := context.Background()
	m, repos := newMockRepos()
	m.services.On("FindByID", ctx, uint(1)).
		Return(&models.Service{ID: 1, DeleteStatus: models.DeleteStatusActive}, nil)
	m.details.On("Save", ctx, mock.AnythingOfType("*models.ServiceDetail")).Return(errConnReset)
	m.details.On("FindActiveByServiceID", ctx, uint(1)).Return(nil, errConnReset)

	manager := services.NewServiceDetailManager(repos, zaptest.NewLogger(t))

	_, err := manager.Create(ctx, services.ServiceDetailRequest{ServiceID: 1, Heading: "Scope"}, nil)
	assert.True(t, stderrors.Is(err, errConnReset))

	_, err = manager.ListByServiceID(ctx, 1)
	assert.True(t, stderrors.Is(err, errConnReset))
	m.details.AssertExpectations(t)
}
