package packages

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mkravelev/maas-platform/internal/config"
	"github.com/mkravelev/maas-platform/internal/models"
	"github.com/mkravelev/maas-platform/internal/usage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity) (int64, error) {
	args := m.Called(ctx, pkg, activities)
	return args.Get(0).(int64), args.Error(1)
}
func (m *RepoMock) ReadPackage(ctx context.Context, id int64) (*models.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Package), args.Error(1)
}
func (m *RepoMock) ListPackages(ctx context.Context, limit, offset int) ([]*models.Package, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Package), args.Error(1)
}
func (m *RepoMock) UpdatePackage(ctx context.Context, pkg models.Package, activities []models.PackageActivity, id int64) (int, error) {
	args := m.Called(ctx, pkg, activities, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemovePackage(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ListPackageActivityRows(ctx context.Context, packageID int64) ([]models.PackageActivityRow, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PackageActivityRow), args.Error(1)
}

type CatalogMock struct{ mock.Mock }

func (m *CatalogMock) CatalogMap(ctx context.Context) (map[int64]models.ActivityTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]models.ActivityTemplate), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

type AlertsMock struct{ mock.Mock }

func (m *AlertsMock) Publish(routingKey string, message any) error {
	return m.Called(routingKey, message).Error(0)
}

func testService(repo *RepoMock, catalog *CatalogMock, cache *CacheMock, alerts *AlertsMock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, catalog, cache, alerts, config.Rates{HourlyRate: 50, CostRate: 35}, log)
}

func TestCompose_FlatRateAndMissing(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	catalog.On("CatalogMap", mock.Anything).Return(map[int64]models.ActivityTemplate{
		1: {ID: 1, Name: "SEO-аудит", EstimatedHours: 4, SellingPrice: 80},
	}, nil)

	result, err := svc.Compose(context.Background(), models.DummyComposeRequest{
		Selections: []models.DummySelection{
			{ActivityTemplateID: 1, Quantity: 3},
			{ActivityTemplateID: 99, Quantity: 2},
		},
	})
	require.NoError(t, err)

	// 12 часов по плоской ставке 50, а не по ставке шаблона 80.
	assert.Equal(t, 12.0, result.TotalHours)
	assert.Equal(t, 600.0, result.TotalPrice)
	assert.Equal(t, 600.0, result.TotalCost)
	assert.Equal(t, []int64{99}, result.Missing)

	catalog.AssertExpectations(t)
}

func TestCompose_CatalogError(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	catalog.On("CatalogMap", mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Compose(context.Background(), models.DummyComposeRequest{
		Selections: []models.DummySelection{{ActivityTemplateID: 1, Quantity: 1}},
	})
	assert.Error(t, err)
}

func TestUsage_PublishesOverloadAlert(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	cache.On("Get", "usage:7", mock.Anything).Return(false, nil)
	repo.On("ReadPackage", mock.Anything, int64(7)).Return(&models.Package{
		ID: 7, Name: "Старт", MaxHours: 20,
	}, nil)
	repo.On("ListPackageActivityRows", mock.Anything, int64(7)).Return([]models.PackageActivityRow{
		{EstimatedHours: 5, Quantity: 5, IsIncluded: true},
	}, nil)
	cache.On("Set", "usage:7", mock.Anything, 5*time.Minute).Return(nil)
	alerts.On("Publish", "package.overloaded", mock.MatchedBy(func(msg any) bool {
		alert, ok := msg.(OverloadAlert)
		return ok && alert.PackageID == 7 && alert.UsedHours == 25
	})).Return(nil)

	report, err := svc.Usage(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, usage.StatusOverloaded, report.Status)
	assert.Equal(t, 100.0, report.Percentage)

	alerts.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUsage_NoAlertWhenOptimal(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	cache.On("Get", "usage:3", mock.Anything).Return(false, nil)
	repo.On("ReadPackage", mock.Anything, int64(3)).Return(&models.Package{
		ID: 3, Name: "Старт", MaxHours: 40,
	}, nil)
	repo.On("ListPackageActivityRows", mock.Anything, int64(3)).Return([]models.PackageActivityRow{
		{EstimatedHours: 4, Quantity: 2, IsIncluded: true},
	}, nil)
	cache.On("Set", "usage:3", mock.Anything, 5*time.Minute).Return(nil)

	report, err := svc.Usage(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, usage.StatusOptimal, report.Status)

	alerts.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUsage_CacheHitSkipsRepository(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	cached := usage.Report{UsedHours: 10, TotalHours: 20, Percentage: 50, FreeHours: 10, Status: usage.StatusOptimal}
	cache.On("Get", "usage:5", mock.Anything).Run(func(args mock.Arguments) {
		out := args.Get(1).(*usage.Report)
		*out = cached
	}).Return(true, nil)

	report, err := svc.Usage(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, cached, report)

	repo.AssertNotCalled(t, "ReadPackage", mock.Anything, mock.Anything)
}

func TestCreate_DropsZeroQuantitySelections(t *testing.T) {
	repo := new(RepoMock)
	catalog := new(CatalogMock)
	cache := new(CacheMock)
	alerts := new(AlertsMock)
	svc := testService(repo, catalog, cache, alerts)

	repo.On("CreatePackage", mock.Anything, mock.Anything, mock.MatchedBy(func(activities []models.PackageActivity) bool {
		return len(activities) == 1 && activities[0].ActivityTemplateID == 1
	})).Return(int64(11), nil)

	id, err := svc.Create(context.Background(), models.DummyPackage{
		Name:     "Старт",
		MaxHours: 20,
		Price:    1000,
		Selections: []models.DummySelection{
			{ActivityTemplateID: 1, Quantity: 2},
			{ActivityTemplateID: 2, Quantity: 0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)

	repo.AssertExpectations(t)
}
