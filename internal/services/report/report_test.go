package report

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
	"github.com/mkravelev/maas-platform/internal/profitability"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) ListCustomerFigures(ctx context.Context) ([]models.CustomerFigures, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CustomerFigures), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}

func testService(repo *RepoMock, cache *CacheMock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, cache, config.Rates{HourlyRate: 50, CostRate: 60}, log)
}

func TestProfitability_BuildsSnapshotsAndSummary(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	cache.On("Get", "profitability:report", mock.Anything).Return(false, nil)
	repo.On("ListCustomerFigures", mock.Anything).Return([]models.CustomerFigures{
		{CustomerID: 1, CompanyName: "ООО Ромашка", CurrentHours: 10, CurrentRevenue: 1000, RealHours: 10},
		{CustomerID: 2, CompanyName: "ИП Иванов", CurrentHours: 10, CurrentRevenue: 500, RealHours: 20},
	}, nil)
	cache.On("Set", "profitability:report", mock.Anything, 5*time.Minute).Return(nil)

	data, err := svc.Profitability(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Customers, 2)

	assert.Equal(t, profitability.StatusProfit, data.Customers[0].Status)
	assert.Equal(t, profitability.StatusLoss, data.Customers[1].Status)
	assert.Equal(t, 1, data.Summary.ProfitCount)
	assert.Equal(t, 1, data.Summary.LossCount)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestProfitability_CacheHitSkipsRepository(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	cached := Data{
		Customers: []profitability.Snapshot{{CustomerID: 1, Status: profitability.StatusProfit}},
		Summary:   profitability.Summary{ProfitCount: 1},
	}
	cache.On("Get", "profitability:report", mock.Anything).Run(func(args mock.Arguments) {
		out := args.Get(1).(*Data)
		*out = cached
	}).Return(true, nil)

	data, err := svc.Profitability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &cached, data)

	repo.AssertNotCalled(t, "ListCustomerFigures", mock.Anything)
}

func TestProfitability_EmptyPortfolio(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	cache.On("Get", "profitability:report", mock.Anything).Return(false, nil)
	repo.On("ListCustomerFigures", mock.Anything).Return([]models.CustomerFigures{}, nil)
	cache.On("Set", "profitability:report", mock.Anything, 5*time.Minute).Return(nil)

	data, err := svc.Profitability(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Customers)
	assert.Equal(t, profitability.Summary{}, data.Summary)
}

func TestProfitability_RepositoryError(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	cache.On("Get", "profitability:report", mock.Anything).Return(false, nil)
	repo.On("ListCustomerFigures", mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Profitability(context.Background())
	assert.Error(t, err)
}

func TestProfitability_CacheErrorFallsThrough(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	svc := testService(repo, cache)

	cache.On("Get", "profitability:report", mock.Anything).Return(false, errors.New("redis down"))
	repo.On("ListCustomerFigures", mock.Anything).Return([]models.CustomerFigures{}, nil)
	cache.On("Set", "profitability:report", mock.Anything, 5*time.Minute).Return(errors.New("redis down"))

	data, err := svc.Profitability(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, data)
}
